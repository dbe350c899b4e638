package ptcore

import "gonum.org/v1/gonum/mat"

// TreeSearch is the core entry point (§6). It validates X, Gamma and
// params, builds the initial per-dimension sorted views of every row,
// allocates the cumulative-reward scratch, and runs the recursive search
// at the requested depth. All validation happens before any SSPD is
// allocated, per §7.
func TreeSearch(X, Gamma *mat.Dense, params SearchParams) (*Node, error) {
	if err := validateSearchInput(X, Gamma, params); err != nil {
		return nil, err
	}

	data := newData(X, Gamma)
	sc := newScratch(data.d, data.n)
	full := buildFull(data)

	root, err := findBestSplit(full, params.Depth, data, sc, params.SplitStep, params.MinNodeSize)
	if err != nil {
		return nil, err
	}
	root.TrainP = data.p
	return root, nil
}

func validateSearchInput(X, Gamma *mat.Dense, params SearchParams) error {
	if X == nil || Gamma == nil {
		return newError(InvalidDimensions, "X and Gamma must not be nil")
	}

	n, p := X.Dims()
	gn, d := Gamma.Dims()

	if n == 0 {
		return newError(EmptyInput, "X has zero rows")
	}
	if n != gn {
		return newError(InvalidDimensions, "X has %d rows but Gamma has %d", n, gn)
	}
	if p < 1 {
		return newError(InvalidHyperparameter, "X must have at least one feature column, got %d", p)
	}
	if d < 2 {
		return newError(InvalidHyperparameter, "Gamma must have at least two action columns, got %d", d)
	}
	if params.Depth < 0 {
		return newError(InvalidHyperparameter, "depth must be >= 0, got %d", params.Depth)
	}
	if params.SplitStep < 1 {
		return newError(InvalidHyperparameter, "split_step must be >= 1, got %d", params.SplitStep)
	}
	if params.MinNodeSize < 1 {
		return newError(InvalidHyperparameter, "min_node_size must be >= 1, got %d", params.MinNodeSize)
	}
	return nil
}
