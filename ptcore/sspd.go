package ptcore

import "sort"

// SSPD ("sorted set per dimension") bundles p ordered containers over the
// same logical point set, one per feature, each sorted by
// (X[sample, j], sample). Every column always holds the same sample
// indices; they differ only in sort order. Columns are represented as
// contiguous slices (the original used boost::flat_set for the same
// cache-friendliness reason) rather than a balanced tree, since Go has no
// stdlib ordered-set type; find is a binary search, insert/erase keep the
// slice sorted by shifting the tail.
type SSPD struct {
	data *Data
	cols [][]Point // len == data.p, each sorted by (Value(j), Index())
}

// buildFull returns an SSPD containing every row of data, each column
// sorted along its own dimension.
func buildFull(data *Data) *SSPD {
	s := &SSPD{data: data, cols: make([][]Point, data.p)}
	for j := 0; j < data.p; j++ {
		col := make([]Point, data.n)
		for i := 0; i < data.n; i++ {
			col[i] = Point{sample: i, data: data}
		}
		jj := j
		sort.Slice(col, func(a, b int) bool { return less(col[a], col[b], jj) })
		s.cols[j] = col
	}
	return s
}

// buildEmpty returns an SSPD with p empty columns sharing data's
// comparators, ready to receive points via insert/migrate.
func buildEmpty(data *Data) *SSPD {
	s := &SSPD{data: data, cols: make([][]Point, data.p)}
	for j := 0; j < data.p; j++ {
		s.cols[j] = make([]Point, 0)
	}
	return s
}

// size returns the number of points held (identical across all columns).
func (s *SSPD) size() int {
	if len(s.cols) == 0 {
		return 0
	}
	return len(s.cols[0])
}

// leftmost returns the smallest point of column j.
func (s *SSPD) leftmost(j int) Point { return s.cols[j][0] }

// clone deep-copies every column. Used once per feature trial in the
// general recursive search (§4.4), which needs its own mutable
// left/right pair per candidate feature.
func (s *SSPD) clone() *SSPD {
	cols := make([][]Point, len(s.cols))
	for j, col := range s.cols {
		cols[j] = append([]Point(nil), col...)
	}
	return &SSPD{data: s.data, cols: cols}
}

// find returns the index of pt within column j via binary search on the
// (value, sample) key. If pt is absent, it returns the position where pt
// would be inserted to keep the column sorted.
func (s *SSPD) find(j int, pt Point) int {
	col := s.cols[j]
	lo, hi := 0, len(col)
	for lo < hi {
		mid := (lo + hi) / 2
		if less(col[mid], pt, j) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// insert places pt into column j keeping sort order, via binary search
// followed by a slice insertion.
func (s *SSPD) insert(j int, pt Point) {
	pos := s.find(j, pt)
	col := s.cols[j]
	col = append(col, Point{})
	copy(col[pos+1:], col[pos:])
	col[pos] = pt
	s.cols[j] = col
}

// eraseAt removes the point at position pos of column j.
func (s *SSPD) eraseAt(j, pos int) {
	col := s.cols[j]
	copy(col[pos:], col[pos+1:])
	s.cols[j] = col[:len(col)-1]
}

// migrate moves pt from "from" to "to" across every dimension (§4.1).
// sweepDim/sweepPos identify the dimension currently being swept and
// pt's position in that column, so the caller's already-known leftmost
// position is reused there instead of a redundant find.
func migrate(pt Point, from, to *SSPD, sweepDim, sweepPos int) error {
	p := len(from.cols)
	for j := 0; j < p; j++ {
		pos := sweepPos
		if j != sweepDim {
			pos = from.find(j, pt)
		}
		if pos >= len(from.cols[j]) || from.cols[j][pos].sample != pt.sample {
			return invariantViolation("migrate: point %d absent from dimension %d", pt.sample, j)
		}
		from.eraseAt(j, pos)
		to.insert(j, pt)
	}
	return nil
}
