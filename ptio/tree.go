package ptio

import (
	"github.com/pkg/errors"

	"github.com/tarstars/policytree/ptcore"
)

// SaveTree flattens tree (ptcore.Flatten, spec.md §4.6) and writes the
// resulting matrix to path as .npy, the encoding the original R binding
// returns as tree_array across the language boundary.
func SaveTree(path string, tree *ptcore.Node) error {
	encoded := ptcore.Flatten(tree)
	if err := WriteNpy(path, encoded); err != nil {
		return errors.Wrap(err, "ptio: save tree")
	}
	return nil
}

// LoadTree reads a flattened tree written by SaveTree and decodes it
// back into an in-memory *ptcore.Node.
func LoadTree(path string) (*ptcore.Node, error) {
	encoded, err := ReadNpy(path)
	if err != nil {
		return nil, errors.Wrap(err, "ptio: load tree")
	}
	tree, err := ptcore.Unflatten(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "ptio: decode tree")
	}
	return tree, nil
}
