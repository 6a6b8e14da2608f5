package merkle

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// Hash is a bn254 scalar field element in big-endian form.
type Hash [fr.Bytes]byte

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// ParseHash accepts a 0x-prefixed or bare hex string of at most 32 bytes.
func ParseHash(s string) (Hash, error) {
	var h Hash
	raw := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if raw == "" {
		return h, errors.New("empty hash")
	}
	if len(raw)%2 == 1 {
		raw = "0" + raw
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return h, fmt.Errorf("decode hash: %w", err)
	}
	if len(b) > len(h) {
		return h, fmt.Errorf("hash too long: %d bytes", len(b))
	}
	copy(h[len(h)-len(b):], b)
	return h, nil
}

// LeafHash commits to (address, balance).
func LeafHash(address string, balance *big.Int) (Hash, error) {
	addr, err := addressElement(address)
	if err != nil {
		return Hash{}, err
	}
	var bal fr.Element
	if balance != nil {
		if balance.Sign() < 0 {
			return Hash{}, fmt.Errorf("negative balance for %s", address)
		}
		bal.SetBigInt(balance)
	}
	return sum(addr, bal), nil
}

// NodeHash hashes two children into their parent.
func NodeHash(left, right Hash) Hash {
	var l, r fr.Element
	l.SetBytes(left[:])
	r.SetBytes(right[:])
	return sum(l, r)
}

func sum(elems ...fr.Element) Hash {
	h := mimc.NewMiMC()
	for _, e := range elems {
		b := e.Bytes()
		// Write only fails on non-canonical blocks; Bytes() is canonical.
		_, _ = h.Write(b[:])
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

func addressElement(address string) (fr.Element, error) {
	var e fr.Element
	raw := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(address)), "0x")
	if len(raw) != 40 {
		return e, fmt.Errorf("invalid address %q", address)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return e, fmt.Errorf("invalid address %q: %w", address, err)
	}
	e.SetBytes(b)
	return e, nil
}
