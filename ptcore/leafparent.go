package ptcore

import "math"

// solveLeafParent is the level-1 fast path (§4.3): for each feature,
// fill the cumulative-reward scratch by sweeping the feature's sorted
// column once, then walk adjacent pairs looking for the admissible split
// that maximizes best-left-reward + best-right-reward. O(p*m*d), the
// cost that makes depth-2 search tractable.
func solveLeafParent(s *SSPD, data *Data, sc *scratch, splitStep, minNodeSize int) (*Node, error) {
	m := s.size()
	if m == 0 {
		return nil, invariantViolation("solveLeafParent: empty point set")
	}

	bestScore := math.Inf(-1)
	found := false
	var bestVar int
	var bestVal float64
	var bestLeftAction, bestRightAction int
	var bestLeftReward, bestRightReward float64

	for j := 0; j < data.p; j++ {
		col := s.cols[j]

		for a := 0; a < data.d; a++ {
			row := sc.sumArray[a]
			row[0] = 0
			for k := 1; k <= m; k++ {
				row[k] = row[k-1] + col[k-1].Reward(a)
			}
		}

		splitCounter := 0
		for n := 1; n < m; n++ {
			splitCounter++

			value := col[n-1].Value(j)
			nextValue := col[n].Value(j)
			if value == nextValue {
				continue
			}
			if n < minNodeSize || m-n < minNodeSize {
				continue
			}

			if splitCounter < splitStep {
				continue
			}
			splitCounter = 0

			leftAction, leftReward := argmaxLeft(sc, n, data.d)
			rightAction, rightReward := argmaxRight(sc, n, m, data.d)
			score := leftReward + rightReward

			if score > bestScore {
				bestScore = score
				found = true
				bestVar = j
				bestVal = value
				bestLeftAction, bestLeftReward = leftAction, leftReward
				bestRightAction, bestRightReward = rightAction, rightReward
			}
		}
	}

	if !found {
		return solveLeaf(s, data)
	}

	if bestLeftAction == bestRightAction {
		return newLeaf(bestLeftAction, bestLeftReward+bestRightReward), nil
	}
	left := newLeaf(bestLeftAction, bestLeftReward)
	right := newLeaf(bestRightAction, bestRightReward)
	return newSplit(bestVar, bestVal, left, right), nil
}

// argmaxLeft returns the action maximizing sum_array[a][n] (reward of
// the left side if the split falls after the n-th point).
func argmaxLeft(sc *scratch, n, d int) (int, float64) {
	bestA := 0
	bestR := sc.sumArray[0][n]
	for a := 1; a < d; a++ {
		r := sc.sumArray[a][n]
		if r > bestR {
			bestR = r
			bestA = a
		}
	}
	return bestA, bestR
}

// argmaxRight returns the action maximizing sum_array[a][m]-sum_array[a][n]
// (reward of the right side).
func argmaxRight(sc *scratch, n, m, d int) (int, float64) {
	bestA := 0
	bestR := sc.sumArray[0][m] - sc.sumArray[0][n]
	for a := 1; a < d; a++ {
		r := sc.sumArray[a][m] - sc.sumArray[a][n]
		if r > bestR {
			bestR = r
			bestA = a
		}
	}
	return bestA, bestR
}
