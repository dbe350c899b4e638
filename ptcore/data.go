package ptcore

import "gonum.org/v1/gonum/mat"

// Data is a read-only view over the feature matrix X and the per-action
// reward matrix Gamma for one tree_search call. It is constructed once
// by TreeSearch and never mutated afterwards; Point, SSPD and every
// solver only read through it.
type Data struct {
	x     *mat.Dense
	gamma *mat.Dense
	n, p, d int
}

// newData wraps X and Gamma without re-validating dimensions; callers
// (TreeSearch) must validate first.
func newData(x, gamma *mat.Dense) *Data {
	n, p := x.Dims()
	_, d := gamma.Dims()
	return &Data{x: x, gamma: gamma, n: n, p: p, d: d}
}

// N, P and D mirror spec.md's n (rows), p (features) and d (actions).
func (data *Data) N() int { return data.n }
func (data *Data) P() int { return data.p }
func (data *Data) D() int { return data.d }

func (data *Data) valueAt(i, j int) float64  { return data.x.At(i, j) }
func (data *Data) rewardAt(i, a int) float64 { return data.gamma.At(i, a) }
