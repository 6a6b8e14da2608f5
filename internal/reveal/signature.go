package reveal

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/internal/payload"
)

// CommitmentHash is the hash stored at post creation for a reveal phrase.
func CommitmentHash(phrase string) string {
	return "0x" + hex.EncodeToString(payload.Keccak256([]byte(phrase)))
}

// PersonalMessageHash is the EIP-191 hash signed by wallets for
// personal_sign.
func PersonalMessageHash(message string) []byte {
	prefix := fmt.Sprintf("\x19Ethereum Signed Message:\n%d", len(message))
	return payload.Keccak256([]byte(prefix), []byte(message))
}

// RecoverAddress returns the address that produced a 65-byte r||s||v
// personal_sign signature over message.
func RecoverAddress(message, signature string) (string, error) {
	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return "", fmt.Errorf("decode signature: %w", err)
	}
	if len(sig) != 65 {
		return "", fmt.Errorf("signature must be 65 bytes, got %d", len(sig))
	}
	v := sig[64]
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return "", errors.New("invalid signature recovery id")
	}

	compact := make([]byte, 65)
	compact[0] = 27 + v
	copy(compact[1:], sig[:64])

	pub, _, err := ecdsa.RecoverCompact(compact, PersonalMessageHash(message))
	if err != nil {
		return "", fmt.Errorf("recover public key: %w", err)
	}
	uncompressed := pub.SerializeUncompressed()
	addr := payload.Keccak256(uncompressed[1:])[12:]
	return model.NormalizeAddress(hex.EncodeToString(addr)), nil
}
