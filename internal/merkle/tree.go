// Package merkle implements the fixed-depth incremental binary tree that
// commits to a credential's holder set.
package merkle

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

const MaxDepth = 32

var (
	ErrTreeFull = errors.New("merkle tree is full")
	ErrNotFound = errors.New("leaf not found")
)

// Tree is an append-only binary Merkle tree. Unfilled slots hash as sentinel
// leaves, so a tree padded with sentinels has the same root as the unpadded
// one.
type Tree struct {
	depth  int
	zeros  []Hash
	layers [][]Hash
	leaves []model.HolderLeaf
}

// Path is an inclusion proof for one leaf.
type Path struct {
	Index     int      `json:"index"`
	Address   string   `json:"address"`
	Balance   string   `json:"balance"`
	Leaf      string   `json:"leaf"`
	Siblings  []string `json:"siblings"`
	Positions []int    `json:"positions"`
	Root      string   `json:"root"`
}

func New(depth int) (*Tree, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("depth %d out of range [1,%d]", depth, MaxDepth)
	}
	sentinel, err := LeafHash(model.ZeroAddress, big.NewInt(0))
	if err != nil {
		return nil, err
	}
	zeros := make([]Hash, depth+1)
	zeros[0] = sentinel
	for i := 1; i <= depth; i++ {
		zeros[i] = NodeHash(zeros[i-1], zeros[i-1])
	}
	return &Tree{
		depth:  depth,
		zeros:  zeros,
		layers: make([][]Hash, depth+1),
	}, nil
}

// Build sorts leaves by (address, balance) and inserts them into a new tree.
func Build(depth int, leaves []model.HolderLeaf) (*Tree, error) {
	t, err := New(depth)
	if err != nil {
		return nil, err
	}
	sorted := make([]model.HolderLeaf, len(leaves))
	copy(sorted, leaves)
	SortLeaves(sorted)
	for _, leaf := range sorted {
		if _, err := t.Insert(leaf); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// SortLeaves orders leaves deterministically.
func SortLeaves(leaves []model.HolderLeaf) {
	sort.SliceStable(leaves, func(i, j int) bool {
		ai, aj := model.NormalizeAddress(leaves[i].Address), model.NormalizeAddress(leaves[j].Address)
		if ai != aj {
			return ai < aj
		}
		return balanceOf(leaves[i]).Cmp(balanceOf(leaves[j])) < 0
	})
}

func (t *Tree) Depth() int    { return t.depth }
func (t *Tree) Capacity() int { return 1 << t.depth }
func (t *Tree) Len() int      { return len(t.layers[0]) }

func (t *Tree) Root() Hash {
	if len(t.layers[t.depth]) == 0 {
		return t.zeros[t.depth]
	}
	return t.layers[t.depth][0]
}

// Leaves returns a copy of the inserted leaves in insertion order.
func (t *Tree) Leaves() []model.HolderLeaf {
	out := make([]model.HolderLeaf, len(t.leaves))
	copy(out, t.leaves)
	return out
}

// Insert appends a leaf and updates the path to the root.
func (t *Tree) Insert(leaf model.HolderLeaf) (int, error) {
	idx := len(t.layers[0])
	if idx >= t.Capacity() {
		return 0, ErrTreeFull
	}
	h, err := LeafHash(leaf.Address, leaf.Balance)
	if err != nil {
		return 0, err
	}
	t.leaves = append(t.leaves, model.HolderLeaf{
		Address: model.NormalizeAddress(leaf.Address),
		Balance: new(big.Int).Set(balanceOf(leaf)),
	})
	t.layers[0] = append(t.layers[0], h)

	pos := idx
	for level := 0; level < t.depth; level++ {
		var left, right Hash
		if pos%2 == 0 {
			left, right = t.layers[level][pos], t.node(level, pos+1)
		} else {
			left, right = t.layers[level][pos-1], t.layers[level][pos]
		}
		parent := NodeHash(left, right)
		pos /= 2
		if pos < len(t.layers[level+1]) {
			t.layers[level+1][pos] = parent
		} else {
			t.layers[level+1] = append(t.layers[level+1], parent)
		}
	}
	return idx, nil
}

// IndexOf returns the leaf index for address. Sentinel leaves are never
// found.
func (t *Tree) IndexOf(address string) (int, error) {
	address = model.NormalizeAddress(address)
	if strings.EqualFold(address, model.ZeroAddress) {
		return 0, ErrNotFound
	}
	for i, leaf := range t.leaves {
		if leaf.Address == address {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

// Prove builds the inclusion path for address.
func (t *Tree) Prove(address string) (Path, error) {
	idx, err := t.IndexOf(address)
	if err != nil {
		return Path{}, err
	}
	return t.ProveIndex(idx)
}

func (t *Tree) ProveIndex(idx int) (Path, error) {
	if idx < 0 || idx >= len(t.layers[0]) {
		return Path{}, ErrNotFound
	}
	path := Path{
		Index:     idx,
		Address:   t.leaves[idx].Address,
		Balance:   t.leaves[idx].Balance.String(),
		Leaf:      t.layers[0][idx].String(),
		Siblings:  make([]string, 0, t.depth),
		Positions: make([]int, 0, t.depth),
		Root:      t.Root().String(),
	}
	pos := idx
	for level := 0; level < t.depth; level++ {
		path.Siblings = append(path.Siblings, t.node(level, pos^1).String())
		path.Positions = append(path.Positions, pos%2)
		pos /= 2
	}
	return path, nil
}

// VerifyPath recomputes the root from the leaf commitment and siblings.
func VerifyPath(p Path) (bool, error) {
	balance, ok := new(big.Int).SetString(p.Balance, 10)
	if !ok {
		return false, fmt.Errorf("invalid balance %q", p.Balance)
	}
	cur, err := LeafHash(p.Address, balance)
	if err != nil {
		return false, err
	}
	if len(p.Siblings) != len(p.Positions) {
		return false, errors.New("siblings and positions length mismatch")
	}
	for i, s := range p.Siblings {
		sib, err := ParseHash(s)
		if err != nil {
			return false, err
		}
		if p.Positions[i] == 0 {
			cur = NodeHash(cur, sib)
		} else {
			cur = NodeHash(sib, cur)
		}
	}
	root, err := ParseHash(p.Root)
	if err != nil {
		return false, err
	}
	return cur == root, nil
}

func (t *Tree) node(level, pos int) Hash {
	if pos < len(t.layers[level]) {
		return t.layers[level][pos]
	}
	return t.zeros[level]
}

func balanceOf(l model.HolderLeaf) *big.Int {
	if l.Balance == nil {
		return big.NewInt(0)
	}
	return l.Balance
}
