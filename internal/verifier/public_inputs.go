// Package verifier checks membership proofs and reads the values they bind.
package verifier

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

// Public input positions shared with the proving circuit.
const (
	RootIndex     = 0
	DataHashIndex = 1
)

// Verifier is the opaque proof system. Roots and data hashes are read from
// the proof's public inputs, never from anything the client declares.
type Verifier interface {
	Verify(ctx context.Context, proof model.Proof) (bool, error)
	ExtractRoot(publicInputs []string) (string, error)
	ExtractDataHash(publicInputs []string) (string, error)
}

// PublicInputs implements the extraction half of Verifier for the standard
// [root, dataHash, ...] layout.
type PublicInputs struct{}

func (PublicInputs) ExtractRoot(publicInputs []string) (string, error) {
	return inputAt(publicInputs, RootIndex, "root")
}

func (PublicInputs) ExtractDataHash(publicInputs []string) (string, error) {
	return inputAt(publicInputs, DataHashIndex, "data hash")
}

func inputAt(publicInputs []string, idx int, name string) (string, error) {
	if len(publicInputs) <= idx {
		return "", apperr.New(apperr.KindInvalidProof, "public inputs carry no %s", name)
	}
	v, err := Normalize(publicInputs[idx])
	if err != nil {
		return "", apperr.Wrap(apperr.KindInvalidProof, err, "malformed %s public input", name)
	}
	return v, nil
}

var maxWord = new(big.Int).Lsh(big.NewInt(1), 256)

// Normalize converts a 0x-hex or decimal public input into 32-byte
// lowercase 0x-hex.
func Normalize(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty public input")
	}
	n := new(big.Int)
	if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
		raw := input[2:]
		if len(raw)%2 == 1 {
			raw = "0" + raw
		}
		b, err := hex.DecodeString(raw)
		if err != nil {
			return "", fmt.Errorf("decode %q: %w", input, err)
		}
		n.SetBytes(b)
	} else if _, ok := n.SetString(input, 10); !ok {
		return "", fmt.Errorf("invalid public input %q", input)
	}
	if n.Sign() < 0 || n.Cmp(maxWord) >= 0 {
		return "", fmt.Errorf("public input %q out of range", input)
	}
	var out [32]byte
	n.FillBytes(out[:])
	return "0x" + hex.EncodeToString(out[:]), nil
}
