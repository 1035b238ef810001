package hiero

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// KeyKind distinguishes the supported public key algorithms.
type KeyKind string

const (
	KeyKindEd25519   KeyKind = "ED25519"
	KeyKindECDSA     KeyKind = "ECDSA_SECP256K1"
)

// PublicKey is an account or entity public key, kept as normalized
// lowercase hex. The toolkit never signs; keys are only attached to
// transactions and resolved through the mirror service.
type PublicKey struct {
	kind KeyKind
	hex  string
}

// ParsePublicKey accepts raw hex (with or without 0x prefix) for an
// ed25519 (32 byte) or compressed/uncompressed secp256k1 (33/65 byte) key.
func ParsePublicKey(s string) (PublicKey, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(cleaned)
	if err != nil {
		return PublicKey{}, fmt.Errorf("invalid public key %q: %w", s, err)
	}
	var kind KeyKind
	switch len(raw) {
	case 32:
		kind = KeyKindEd25519
	case 33, 65:
		kind = KeyKindECDSA
	default:
		return PublicKey{}, fmt.Errorf("invalid public key %q: unsupported length %d", s, len(raw))
	}
	return PublicKey{kind: kind, hex: strings.ToLower(cleaned)}, nil
}

// Kind returns the key algorithm.
func (k PublicKey) Kind() KeyKind { return k.kind }

// IsZero reports whether the key is unset.
func (k PublicKey) IsZero() bool { return k.hex == "" }

// String returns the normalized hex form.
func (k PublicKey) String() string { return k.hex }

func (k PublicKey) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(k.hex)), nil
}

func (k *PublicKey) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	parsed, err := ParsePublicKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
