package ptcore

import "gonum.org/v1/gonum/mat"

// Predict walks the tree once per row of Xprime (§4.5): at an internal
// node, X'[row, split_var] <= split_val descends left, otherwise right;
// a leaf's action is returned. §6's precondition is that Xprime's column
// count equals the training p exactly; tree.TrainP (stamped by
// TreeSearch) lets Predict check that literally. A tree with TrainP
// unset — decoded via Unflatten, or built by hand, neither of which
// carries the training p — falls back to requiredColumns(tree), the
// largest split_var actually used, so a column mismatch still surfaces
// as InvalidDimensions instead of the undefined behaviour spec.md leaves
// open for an out-of-range split_var.
func Predict(tree *Node, Xprime *mat.Dense) ([]int, error) {
	if tree == nil {
		return nil, newError(InvalidDimensions, "nil tree")
	}
	if Xprime == nil {
		return nil, newError(InvalidDimensions, "nil query matrix")
	}

	m, p := Xprime.Dims()
	if tree.TrainP > 0 {
		if p != tree.TrainP {
			return nil, newError(InvalidDimensions, "query matrix has %d columns, tree was trained on %d", p, tree.TrainP)
		}
	} else if need := requiredColumns(tree); p < need {
		return nil, newError(InvalidDimensions, "query matrix has %d columns, tree needs at least %d", p, need)
	}

	actions := make([]int, m)
	for i := 0; i < m; i++ {
		action, err := predictRow(tree, Xprime, i)
		if err != nil {
			return nil, err
		}
		actions[i] = action
	}
	return actions, nil
}

func predictRow(node *Node, X *mat.Dense, row int) (int, error) {
	for {
		if node == nil {
			return 0, invariantViolation("predict: nil node reached")
		}
		if node.IsLeaf {
			return node.Action, nil
		}
		if X.At(row, node.SplitVar) <= node.SplitVal {
			node = node.Left
		} else {
			node = node.Right
		}
	}
}

// requiredColumns returns one past the largest split_var used anywhere
// in the tree, i.e. the minimum p a query matrix must have.
func requiredColumns(tree *Node) int {
	if tree == nil || tree.IsLeaf {
		return 0
	}
	need := tree.SplitVar + 1
	if l := requiredColumns(tree.Left); l > need {
		need = l
	}
	if r := requiredColumns(tree.Right); r > need {
		need = r
	}
	return need
}
