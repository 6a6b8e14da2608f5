// Package model holds the domain types shared across services and repositories.
package model

import (
	"math/big"
	"strings"
	"time"
)

// ZeroAddress is the sentinel leaf used to pad credential trees.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// Credential identifies a class of eligibility: holders of TokenAddress on
// ChainID with at least MinBalance.
type Credential struct {
	ID           string
	ChainID      uint64
	TokenAddress string
	MinBalance   *big.Int
}

// HolderLeaf is one entry of a holder snapshot.
type HolderLeaf struct {
	Address string
	Balance *big.Int
}

// IsSentinel reports whether the leaf is a padding leaf.
func (l HolderLeaf) IsSentinel() bool {
	return strings.EqualFold(l.Address, ZeroAddress)
}

// CredentialRoot is one entry of the per-credential recency ring.
type CredentialRoot struct {
	CredentialID string
	Root         string
	CreatedAt    time.Time
}

// NormalizeAddress lowercases a hex address and ensures the 0x prefix.
func NormalizeAddress(address string) string {
	address = strings.ToLower(strings.TrimSpace(address))
	if !strings.HasPrefix(address, "0x") {
		address = "0x" + address
	}
	return address
}
