// Package hash implements the 32-byte hash value type used as the message
// digest representation by the signature packages.
package hash

import (
	"crypto/sha512"
	"encoding"
	"encoding/hex"
	"errors"
)

// Size is the size of a Hash in bytes.
const Size = 32

// ErrMalformed is the error returned when a hash is malformed.
var ErrMalformed = errors.New("hash: malformed hash")

var (
	_ encoding.BinaryMarshaler   = Hash{}
	_ encoding.BinaryUnmarshaler = (*Hash)(nil)
	_ encoding.TextMarshaler     = Hash{}
	_ encoding.TextUnmarshaler   = (*Hash)(nil)
)

// Hash is a 32-byte message digest.
type Hash [Size]byte

// NewFromBytes creates a new hash by digesting the provided byte slices
// with SHA-512/256.
func NewFromBytes(data ...[]byte) (h Hash) {
	hasher := sha512.New512_256()
	for _, d := range data {
		_, _ = hasher.Write(d)
	}
	copy(h[:], hasher.Sum(nil))
	return
}

// MarshalBinary encodes a hash into binary form.
func (h Hash) MarshalBinary() ([]byte, error) {
	return append([]byte{}, h[:]...), nil
}

// UnmarshalBinary decodes a binary marshaled hash. The input must be
// exactly Size bytes.
func (h *Hash) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return ErrMalformed
	}
	copy(h[:], data)
	return nil
}

// MarshalText encodes a hash into text form.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(h[:])), nil
}

// UnmarshalText decodes a text marshaled hash.
func (h *Hash) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return ErrMalformed
	}
	return h.UnmarshalBinary(b)
}

// Equal compares vs another hash for equality.
func (h Hash) Equal(other Hash) bool {
	return h == other
}

// String returns the string representation of a hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}
