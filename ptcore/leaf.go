package ptcore

// solveLeaf is the level-0 solver (§4.2): scan the point set once, sum
// per-action rewards, and return the action with the largest sum. Ties
// keep the lowest action index because updates use strict ">".
func solveLeaf(s *SSPD, data *Data) (*Node, error) {
	col := s.cols[0]
	if len(col) == 0 {
		return nil, invariantViolation("solveLeaf: empty point set")
	}

	sums := make([]float64, data.d)
	for _, pt := range col {
		for a := 0; a < data.d; a++ {
			sums[a] += pt.Reward(a)
		}
	}

	bestAction := 0
	bestReward := sums[0]
	for a := 1; a < data.d; a++ {
		if sums[a] > bestReward {
			bestReward = sums[a]
			bestAction = a
		}
	}
	return newLeaf(bestAction, bestReward), nil
}
