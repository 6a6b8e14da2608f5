// Package payload canonicalizes action payloads and derives their
// idempotency hash.
package payload

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/sha3"
)

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cbor: core deterministic encoding mode: %v", err))
	}
}

// Canonicalize encodes a JSON payload with CBOR core deterministic encoding
// so that key order and whitespace do not affect the hash.
func Canonicalize(raw json.RawMessage) ([]byte, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.New("empty payload")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after payload")
	}
	normalized, err := normalize(v)
	if err != nil {
		return nil, err
	}
	out, err := encMode.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return out, nil
}

// DataHash returns the 0x-prefixed keccak256 of the canonical payload.
func DataHash(raw json.RawMessage) (string, error) {
	canonical, err := Canonicalize(raw)
	if err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(Keccak256(canonical)), nil
}

func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// FieldHash truncates a 32-byte hash so it fits the proof system's scalar
// field, which is how provers bind the payload into public inputs.
func FieldHash(dataHash string) (string, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(dataHash, "0x"))
	if err != nil {
		return "", fmt.Errorf("decode data hash: %w", err)
	}
	n := new(big.Int).SetBytes(raw)
	n.Rsh(n, 8)
	var out [32]byte
	n.FillBytes(out[:])
	return "0x" + hex.EncodeToString(out[:]), nil
}

// Matches reports whether a hash taken from public inputs binds dataHash,
// either verbatim or field-truncated.
func Matches(bound, dataHash string) bool {
	bound = strings.ToLower(bound)
	if bound == strings.ToLower(dataHash) {
		return true
	}
	field, err := FieldHash(dataHash)
	if err != nil {
		return false
	}
	return bound == field
}

func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case json.Number:
		return normalizeNumber(t)
	default:
		return v, nil
	}
}

func normalizeNumber(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	if b, ok := new(big.Int).SetString(n.String(), 10); ok {
		return b, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", n, err)
	}
	return f, nil
}
