package ptcore

// Point is a cheap-to-copy handle onto one training row: a sample index
// plus a reference to the Data it was drawn from. It carries no value of
// its own, mirroring the original's "Point{sample, data}" handle.
type Point struct {
	sample int
	data   *Data
}

// Index returns the underlying sample row.
func (pt Point) Index() int { return pt.sample }

// Value returns X[sample, j].
func (pt Point) Value(j int) float64 { return pt.data.valueAt(pt.sample, j) }

// Reward returns Gamma[sample, a].
func (pt Point) Reward(a int) float64 { return pt.data.rewardAt(pt.sample, a) }

// less orders two points by the lexicographic key (value along j, sample
// index), which is the total order every S_j in an SSPD maintains.
func less(a, b Point, j int) bool {
	av, bv := a.Value(j), b.Value(j)
	if av != bv {
		return av < bv
	}
	return a.sample < b.sample
}
