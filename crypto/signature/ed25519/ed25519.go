// Package ed25519 provides the Ed25519 instantiation of the generic
// signature contract, backed by curve25519-voi.
package ed25519

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"io"

	voied25519 "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/mutalabs/go-crypto/crypto/hash"
	"github.com/mutalabs/go-crypto/crypto/signature"
)

const (
	// PrivateKeySize is the size of a serialized private key (the RFC 8032
	// seed) in bytes.
	PrivateKeySize = voied25519.SeedSize

	// PublicKeySize is the size of a serialized public key in bytes.
	PublicKeySize = voied25519.PublicKeySize

	// SignatureSize is the size of a serialized signature in bytes.
	SignatureSize = voied25519.SignatureSize
)

var (
	_ signature.PrivateKey = (*PrivateKey)(nil)
	_ signature.PublicKey  = (*PublicKey)(nil)
	_ signature.Signature  = (*Signature)(nil)

	_ encoding.BinaryMarshaler   = (*PublicKey)(nil)
	_ encoding.BinaryUnmarshaler = (*PublicKey)(nil)
	_ encoding.TextMarshaler     = (*PublicKey)(nil)
	_ encoding.TextUnmarshaler   = (*PublicKey)(nil)
)

// Scheme binds the Ed25519 key and signature types together.
var Scheme signature.Scheme = scheme{}

type scheme struct{}

func (scheme) Name() string        { return "ed25519" }
func (scheme) PrivateKeySize() int { return PrivateKeySize }
func (scheme) PublicKeySize() int  { return PublicKeySize }
func (scheme) SignatureSize() int  { return SignatureSize }

func (scheme) ParsePrivateKey(data []byte) (signature.PrivateKey, error) {
	return ParsePrivateKey(data)
}

func (scheme) ParsePublicKey(data []byte) (signature.PublicKey, error) {
	return ParsePublicKey(data)
}

func (scheme) ParseSignature(data []byte) (signature.Signature, error) {
	return ParseSignature(data)
}

// PrivateKey is an Ed25519 private key.
type PrivateKey struct {
	inner voied25519.PrivateKey
}

// PublicKey is an Ed25519 public key.
type PublicKey struct {
	inner voied25519.PublicKey
}

// Signature is an Ed25519 signature.
type Signature struct {
	raw [SignatureSize]byte
}

// GenerateKeyPair draws fresh key material from the given entropy source
// and returns the bound key pair. The caller is responsible for supplying
// a cryptographically secure source.
//
// Ed25519 signing is deterministic and needs no shared engine, so unlike
// the secp256k1 scheme there is no process-wide context behind this.
func GenerateKeyPair(rng io.Reader) (*PrivateKey, *PublicKey, error) {
	pub, priv, err := voied25519.GenerateKey(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("ed25519: failed to generate key pair: %w", err)
	}

	return &PrivateKey{inner: priv}, &PublicKey{inner: pub}, nil
}

// ParsePrivateKey parses a private key from its 32-byte seed form.
func ParsePrivateKey(data []byte) (*PrivateKey, error) {
	if len(data) != PrivateKeySize {
		return nil, signature.ErrInvalidLength
	}

	return &PrivateKey{inner: voied25519.NewKeyFromSeed(data)}, nil
}

// SignMessage signs the given message digest with the private key.
func (sk *PrivateKey) SignMessage(msg hash.Hash) signature.Signature {
	var sig Signature
	copy(sig.raw[:], voied25519.Sign(sk.inner, msg[:]))
	return &sig
}

// Public returns the PublicKey corresponding to the private key.
func (sk *PrivateKey) Public() signature.PublicKey {
	return &PublicKey{inner: sk.inner.Public().(voied25519.PublicKey)}
}

// MarshalBinary encodes the private key into its 32-byte seed form.
func (sk *PrivateKey) MarshalBinary() ([]byte, error) {
	return sk.inner.Seed(), nil
}

// String returns the string representation of the corresponding public
// key, never the key material itself.
func (sk *PrivateKey) String() string {
	return sk.Public().String()
}

// ParsePublicKey parses a public key from its 32-byte serialized form.
func ParsePublicKey(data []byte) (*PublicKey, error) {
	if len(data) != PublicKeySize {
		return nil, signature.ErrInvalidLength
	}

	pk := PublicKey{inner: make(voied25519.PublicKey, PublicKeySize)}
	copy(pk.inner, data)
	return &pk, nil
}

// VerifySignature verifies the signature over the given message digest
// under the public key.
func (pk *PublicKey) VerifySignature(msg hash.Hash, sig signature.Signature) error {
	osig, ok := sig.(*Signature)
	if !ok {
		return fmt.Errorf("%w: not an ed25519 signature", signature.ErrInvalidSignature)
	}
	return osig.Verify(msg, pk)
}

// Equal compares vs another public key for equality.
func (pk *PublicKey) Equal(other signature.PublicKey) bool {
	opk, ok := other.(*PublicKey)
	if !ok {
		return false
	}
	return pk.inner.Equal(opk.inner)
}

// MarshalBinary encodes the public key into its 32-byte serialized form.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return append([]byte{}, pk.inner...), nil
}

// UnmarshalBinary decodes a binary marshaled public key.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	parsed, err := ParsePublicKey(data)
	if err != nil {
		return err
	}
	pk.inner = parsed.inner
	return nil
}

// MarshalText encodes a public key into text form.
func (pk *PublicKey) MarshalText() ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(pk.inner)), nil
}

// UnmarshalText decodes a text marshaled public key.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	b, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return err
	}
	return pk.UnmarshalBinary(b)
}

// String returns a string representation of the public key.
func (pk *PublicKey) String() string {
	s, _ := pk.MarshalText()
	return string(s)
}

// ParseSignature parses a signature from its 64-byte serialized form.
func ParseSignature(data []byte) (*Signature, error) {
	if len(data) != SignatureSize {
		return nil, signature.ErrInvalidLength
	}

	var sig Signature
	copy(sig.raw[:], data)
	return &sig, nil
}

// Verify verifies the signature over the given message digest under the
// public key.
func (sig *Signature) Verify(msg hash.Hash, pk signature.PublicKey) error {
	opk, ok := pk.(*PublicKey)
	if !ok {
		return fmt.Errorf("%w: not an ed25519 public key", signature.ErrInvalidPublicKey)
	}

	if !voied25519.Verify(opk.inner, msg[:], sig.raw[:]) {
		return signature.ErrInvalidSignature
	}
	return nil
}

// MarshalBinary encodes the signature into its 64-byte serialized form.
func (sig *Signature) MarshalBinary() ([]byte, error) {
	return append([]byte{}, sig.raw[:]...), nil
}
