package ptcore

// Node is one element of the returned policy tree. Leaves carry an
// action and the reward earned by the training rows that land there;
// internal nodes carry the splitting rule and own their two children
// exclusively. reward on an internal node always equals the sum of its
// descendants' leaf rewards (§3's Node invariant).
type Node struct {
	IsLeaf bool

	// Leaf fields.
	Action int

	// Internal fields.
	SplitVar int
	SplitVal float64
	Left     *Node
	Right    *Node

	Reward float64

	// TrainP is the number of feature columns the tree was trained on,
	// stamped onto the root by TreeSearch (spec.md §6: "p matches the
	// training p"). Zero on every non-root node and on any tree that
	// did not come straight out of TreeSearch (e.g. one decoded via
	// Unflatten, or a literal tree built by hand in a test), since
	// neither carries this number; Predict falls back to its relaxed,
	// split_var-driven check in that case.
	TrainP int
}

func newLeaf(action int, reward float64) *Node {
	return &Node{IsLeaf: true, Action: action, Reward: reward}
}

func newSplit(splitVar int, splitVal float64, left, right *Node) *Node {
	return &Node{
		SplitVar: splitVar,
		SplitVal: splitVal,
		Left:     left,
		Right:    right,
		Reward:   left.Reward + right.Reward,
	}
}
