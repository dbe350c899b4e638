package ptcore

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Flat tree encoding columns (§4.6), following the original R binding's
// tree_array sentinel convention precisely: -1 for an absent
// feature/child/action, NaN for an absent threshold.
const (
	colNodeID = iota
	colIsLeaf
	colSplitVar
	colSplitVal
	colLeftChild
	colRightChild
	colAction
	colReward
	numEncodedCols
)

// Flatten serializes tree into a (nodes x 8) matrix in breadth-first
// order with contiguous node ids, losslessly: decoding and predicting on
// the result yields identical actions to predicting on tree directly.
func Flatten(tree *Node) *mat.Dense {
	if tree == nil {
		return mat.NewDense(0, numEncodedCols, nil)
	}

	order := make([]*Node, 0)
	ids := make(map[*Node]int)
	queue := []*Node{tree}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		ids[n] = len(order)
		order = append(order, n)
		if !n.IsLeaf {
			queue = append(queue, n.Left, n.Right)
		}
	}

	out := mat.NewDense(len(order), numEncodedCols, nil)
	for i, n := range order {
		row := []float64{
			float64(i),
			0,
			-1,
			math.NaN(),
			-1,
			-1,
			-1,
			n.Reward,
		}
		if n.IsLeaf {
			row[colIsLeaf] = 1
			row[colAction] = float64(n.Action)
		} else {
			row[colSplitVar] = float64(n.SplitVar)
			row[colSplitVal] = n.SplitVal
			row[colLeftChild] = float64(ids[n.Left])
			row[colRightChild] = float64(ids[n.Right])
		}
		out.SetRow(i, row)
	}
	return out
}

// Unflatten decodes a matrix produced by Flatten back into an in-memory
// tree rooted at node id 0.
func Unflatten(encoded *mat.Dense) (*Node, error) {
	if encoded == nil {
		return nil, newError(InvalidDimensions, "nil encoded tree")
	}
	rows, cols := encoded.Dims()
	if rows == 0 {
		return nil, newError(InvalidDimensions, "encoded tree has no rows")
	}
	if cols != numEncodedCols {
		return nil, newError(InvalidDimensions, "encoded tree has %d columns, want %d", cols, numEncodedCols)
	}

	nodes := make([]*Node, rows)
	for i := 0; i < rows; i++ {
		isLeaf := encoded.At(i, colIsLeaf) != 0
		if isLeaf {
			nodes[i] = newLeaf(int(encoded.At(i, colAction)), encoded.At(i, colReward))
		} else {
			nodes[i] = &Node{
				SplitVar: int(encoded.At(i, colSplitVar)),
				SplitVal: encoded.At(i, colSplitVal),
				Reward:   encoded.At(i, colReward),
			}
		}
	}
	for i := 0; i < rows; i++ {
		if nodes[i].IsLeaf {
			continue
		}
		leftID := int(encoded.At(i, colLeftChild))
		rightID := int(encoded.At(i, colRightChild))
		if leftID < 0 || leftID >= rows || rightID < 0 || rightID >= rows {
			return nil, newError(InvalidDimensions, "node %d has out-of-range children (%d, %d)", i, leftID, rightID)
		}
		nodes[i].Left = nodes[leftID]
		nodes[i].Right = nodes[rightID]
	}
	return nodes[0], nil
}

// PredictEncoded decodes encoded and predicts on it directly, the shape
// the original R binding's tree_search_rcpp_predict exposes: predict
// operates on the flat array that crossed the language boundary, not on
// the in-memory node tree.
func PredictEncoded(encoded, Xprime *mat.Dense) ([]int, error) {
	tree, err := Unflatten(encoded)
	if err != nil {
		return nil, err
	}
	return Predict(tree, Xprime)
}
