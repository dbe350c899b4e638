// Package ptio offers ambient I/O convenience on top of ptcore: loading
// X and Gamma from .npy files the way the teacher's ReadEMatrix/ReadNpy
// load EMatrix components, and saving/loading a flattened tree. None of
// this is part of the core (spec.md §1 puts the data-frame/boundary
// adapter out of scope); it is carried because the teacher repo ships
// this kind of loader alongside its core in the same module.
package ptio

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// ReadNpy reads one .npy-encoded matrix from path. Unlike the teacher's
// ReadNpy (golang/extra_boost/ebl/ematrix.go), which calls log.Fatal on
// any failure, this returns the error to the caller: ptcore's contract
// (spec.md §7) never terminates the process on bad input, and ptio
// follows the same discipline for consistency.
func ReadNpy(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ptio: open %s", path)
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "ptio: read npy header %s", path)
	}

	dense := &mat.Dense{}
	if err := r.Read(dense); err != nil {
		return nil, errors.Wrapf(err, "ptio: read npy body %s", path)
	}
	return dense, nil
}

// WriteNpy writes m to path in .npy format, overwriting any existing
// file.
func WriteNpy(path string, m *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "ptio: create %s", path)
	}
	defer f.Close()

	if err := npyio.Write(f, m); err != nil {
		return errors.Wrapf(err, "ptio: write npy %s", path)
	}
	return nil
}

// LoadDataset reads the feature matrix and reward matrix from two .npy
// files, mirroring the shape ReadEMatrix assembles from separate
// FeaturesInter/FeaturesExtra/Target files, collapsed here to the two
// matrices ptcore.TreeSearch actually consumes.
func LoadDataset(xPath, gammaPath string) (X, Gamma *mat.Dense, err error) {
	X, err = ReadNpy(xPath)
	if err != nil {
		return nil, nil, err
	}
	Gamma, err = ReadNpy(gammaPath)
	if err != nil {
		return nil, nil, err
	}
	return X, Gamma, nil
}
