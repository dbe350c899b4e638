package ptcore

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func sampleTree() *Node {
	return newSplit(0, 1,
		newLeaf(0, 2),
		newLeaf(1, 2),
	)
}

func TestPredictThresholdSemantics(t *testing.T) {
	tree := sampleTree()
	// X[i,0] <= 1 goes left (action 0); X[i,0] > 1 goes right (action 1).
	X := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	actions, err := Predict(tree, X)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	want := []int{0, 0, 1, 1}
	for i := range want {
		if actions[i] != want[i] {
			t.Fatalf("row %d: want %d, got %d", i, want[i], actions[i])
		}
	}
}

func TestPredictColumnMismatchIsError(t *testing.T) {
	// The tree splits on feature 1; the query matrix has only column 0.
	tree := newSplit(1, 1, newLeaf(0, 2), newLeaf(1, 2))
	X := mat.NewDense(2, 1, []float64{0, 1})
	if _, err := Predict(tree, X); err == nil {
		t.Fatalf("expected InvalidDimensions for a query matrix missing split_var's column")
	} else if perr, ok := err.(*Error); !ok || perr.Kind != InvalidDimensions {
		t.Fatalf("expected InvalidDimensions, got %v", err)
	}
}

func TestPredictSingleLeafIgnoresFeatures(t *testing.T) {
	leaf := newLeaf(1, 7)
	X := mat.NewDense(3, 2, []float64{0, 0, 1, 1, 2, 2})
	actions, err := Predict(leaf, X)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	for i, a := range actions {
		if a != 1 {
			t.Fatalf("row %d: want action 1, got %d", i, a)
		}
	}
}
