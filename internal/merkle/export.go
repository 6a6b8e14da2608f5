package merkle

import (
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

// ExportedTree is the serialized form handed to clients for proof
// generation and kept in the tree cache.
type ExportedTree struct {
	Depth    int            `json:"depth"`
	Capacity int            `json:"capacity"`
	Root     string         `json:"root"`
	Leaves   []ExportedLeaf `json:"leaves"`
	Layers   [][]string     `json:"layers"`
}

type ExportedLeaf struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

func (t *Tree) Export() ExportedTree {
	out := ExportedTree{
		Depth:    t.depth,
		Capacity: t.Capacity(),
		Root:     t.Root().String(),
		Leaves:   make([]ExportedLeaf, 0, len(t.leaves)),
		Layers:   make([][]string, len(t.layers)),
	}
	for _, l := range t.leaves {
		out.Leaves = append(out.Leaves, ExportedLeaf{Address: l.Address, Balance: l.Balance.String()})
	}
	for i, layer := range t.layers {
		out.Layers[i] = make([]string, len(layer))
		for j, h := range layer {
			out.Layers[i][j] = h.String()
		}
	}
	return out
}

// Import rebuilds a tree from its export and checks the root.
func Import(e ExportedTree) (*Tree, error) {
	t, err := New(e.Depth)
	if err != nil {
		return nil, err
	}
	for _, l := range e.Leaves {
		balance, ok := new(big.Int).SetString(l.Balance, 10)
		if !ok {
			return nil, fmt.Errorf("invalid balance %q for %s", l.Balance, l.Address)
		}
		if _, err := t.Insert(model.HolderLeaf{Address: l.Address, Balance: balance}); err != nil {
			return nil, err
		}
	}
	if got := t.Root().String(); got != e.Root {
		return nil, fmt.Errorf("root mismatch: exported %s, rebuilt %s", e.Root, got)
	}
	return t, nil
}
