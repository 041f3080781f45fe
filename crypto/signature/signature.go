// Package signature contains the generic asymmetric signature contract
// implemented by every supported scheme.
package signature

import (
	"github.com/mutalabs/go-crypto/crypto/hash"
)

// PrivateKey is an opaque interface for private keys that is capable of
// producing signatures, in the spirit of `crypto.Signer`.
type PrivateKey interface {
	// SignMessage generates a signature with the private key over the
	// given message digest. Signing never fails for a successfully
	// constructed key.
	SignMessage(msg hash.Hash) Signature

	// Public returns the PublicKey corresponding to the private key.
	Public() PublicKey

	// MarshalBinary encodes the private key into exactly
	// Scheme.PrivateKeySize() bytes. The encoding round-trips the
	// original key material.
	MarshalBinary() ([]byte, error)

	// String returns the string representation of a PrivateKey, which
	// MUST not include any sensitive information.
	String() string
}

// PublicKey is a public key.
type PublicKey interface {
	// VerifySignature returns nil iff the signature is valid for the
	// public key over the given message digest, and ErrInvalidSignature
	// otherwise.
	VerifySignature(msg hash.Hash, sig Signature) error

	// Equal compares vs another public key for equality.
	Equal(other PublicKey) bool

	// MarshalBinary encodes the public key into exactly
	// Scheme.PublicKeySize() bytes.
	MarshalBinary() ([]byte, error)

	// String returns a string representation of the public key.
	String() string
}

// Signature is a signature over a message digest.
//
// Signature.Verify and PublicKey.VerifySignature must produce identical
// accept/reject outcomes for the same (digest, signature, key) triple.
type Signature interface {
	// Verify returns nil iff the signature is valid for the public key
	// over the given message digest, and ErrInvalidSignature otherwise.
	Verify(msg hash.Hash, pk PublicKey) error

	// MarshalBinary encodes the signature into exactly
	// Scheme.SignatureSize() bytes.
	MarshalBinary() ([]byte, error)
}

// Scheme binds a PrivateKey/PublicKey/Signature triple together and
// exposes the fixed encoding widths that are part of the scheme's static
// contract.
type Scheme interface {
	// Name returns the name of the scheme.
	Name() string

	// PrivateKeySize returns the size in bytes of a serialized private key.
	PrivateKeySize() int

	// PublicKeySize returns the size in bytes of a serialized public key.
	PublicKeySize() int

	// SignatureSize returns the size in bytes of a serialized signature.
	SignatureSize() int

	// ParsePrivateKey parses a private key from exactly PrivateKeySize()
	// bytes of trusted key material.
	ParsePrivateKey(data []byte) (PrivateKey, error)

	// ParsePublicKey parses a public key from exactly PublicKeySize()
	// bytes of untrusted input.
	ParsePublicKey(data []byte) (PublicKey, error)

	// ParseSignature parses a signature from exactly SignatureSize()
	// bytes of untrusted input.
	ParseSignature(data []byte) (Signature, error)
}
