package ptcore

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFindBestSplitNoAdmissibleCandidateFallsBackToLeaf(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 1, 1})
	Gamma := mat.NewDense(3, 2, []float64{
		1, 0,
		1, 0,
		0, 1,
	})
	data := newData(X, Gamma)
	sc := newScratch(data.d, data.n)
	node, err := findBestSplit(buildFull(data), 2, data, sc, 1, 1)
	if err != nil {
		t.Fatalf("findBestSplit: %v", err)
	}
	if !node.IsLeaf {
		t.Fatalf("constant feature leaves no admissible split at any level")
	}
	if node.Action != 0 || node.Reward != 2 {
		t.Fatalf("want leaf(action=0, reward=2), got leaf(action=%d, reward=%g)", node.Action, node.Reward)
	}
}

func TestFindBestSplitPicksFirstFeatureOnTiedScore(t *testing.T) {
	// Feature 0 and feature 1 carry an identical split signal; feature
	// 0 must win the tie because it is examined first.
	X := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 0,
		1, 1,
		1, 1,
	})
	Gamma := mat.NewDense(4, 2, []float64{
		1, 0,
		1, 0,
		0, 1,
		0, 1,
	})
	data := newData(X, Gamma)
	sc := newScratch(data.d, data.n)
	node, err := findBestSplit(buildFull(data), 2, data, sc, 1, 1)
	if err != nil {
		t.Fatalf("findBestSplit: %v", err)
	}
	if node.IsLeaf {
		t.Fatalf("expected an internal node")
	}
	if node.SplitVar != 0 {
		t.Fatalf("expected the tie to resolve to feature 0, got feature %d", node.SplitVar)
	}
}

// TestTreeSearchIsDeterministic is property S8.6: two invocations with
// identical inputs must produce byte-identical serialized trees.
func TestTreeSearchIsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n, p, d := 40, 3, 3
	xs := make([]float64, n*p)
	for i := range xs {
		xs[i] = float64(rng.Intn(4))
	}
	gs := make([]float64, n*d)
	for i := range gs {
		gs[i] = rng.NormFloat64()
	}
	X := mat.NewDense(n, p, xs)
	Gamma := mat.NewDense(n, d, gs)

	tree1, err := TreeSearch(X, Gamma, NewSearchParams(2, 1, 1))
	if err != nil {
		t.Fatalf("TreeSearch 1: %v", err)
	}
	tree2, err := TreeSearch(X, Gamma, NewSearchParams(2, 1, 1))
	if err != nil {
		t.Fatalf("TreeSearch 2: %v", err)
	}

	e1, e2 := Flatten(tree1), Flatten(tree2)
	if !mat.Equal(e1, e2) {
		t.Fatalf("two runs over identical input produced different trees:\n%v\n%v", e1, e2)
	}
}

// TestTreeSearchNoPrunedNodeHasIdenticalActionLeaves is property S8.4.
func TestTreeSearchNoPrunedNodeHasIdenticalActionLeaves(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 15; trial++ {
		n, p, d := 20+rng.Intn(30), 1+rng.Intn(3), 2+rng.Intn(3)
		xs := make([]float64, n*p)
		for i := range xs {
			xs[i] = float64(rng.Intn(5))
		}
		gs := make([]float64, n*d)
		for i := range gs {
			gs[i] = rng.NormFloat64()
		}
		X := mat.NewDense(n, p, xs)
		Gamma := mat.NewDense(n, d, gs)

		tree, err := TreeSearch(X, Gamma, NewSearchParams(3, 1, 1))
		if err != nil {
			t.Fatalf("trial %d: TreeSearch: %v", trial, err)
		}
		assertNoIdenticalActionSiblings(t, tree, trial)
	}
}

func assertNoIdenticalActionSiblings(t *testing.T, node *Node, trial int) {
	if node == nil || node.IsLeaf {
		return
	}
	if node.Left.IsLeaf && node.Right.IsLeaf && node.Left.Action == node.Right.Action {
		t.Fatalf("trial %d: internal node has two leaf children with identical action %d", trial, node.Left.Action)
	}
	assertNoIdenticalActionSiblings(t, node.Left, trial)
	assertNoIdenticalActionSiblings(t, node.Right, trial)
}
