// Package secp256k1 provides the secp256k1 instantiation of the generic
// signature contract, backed by btcec's ECDSA implementation.
package secp256k1

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/mutalabs/go-crypto/crypto/hash"
	"github.com/mutalabs/go-crypto/crypto/signature"
)

const (
	// PrivateKeySize is the size of a serialized private key in bytes.
	PrivateKeySize = 32

	// PublicKeySize is the size of a serialized compressed public key in
	// bytes.
	PublicKeySize = 33

	// SignatureSize is the size of a serialized compact (r || s)
	// signature in bytes.
	SignatureSize = 64

	// RecoverableSignatureSize is the size of a compact signature
	// extended with its recovery id (r || s || id) in bytes.
	RecoverableSignatureSize = 65
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

// Scheme binds the secp256k1 key and signature types together.
var Scheme signature.Scheme = scheme{}

type scheme struct{}

func (scheme) Name() string        { return "secp256k1" }
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

// PrivateKey is a secp256k1 private key.
type PrivateKey struct {
	inner *btcec.PrivateKey
}

// PublicKey is a secp256k1 public key.
type PublicKey struct {
	inner *btcec.PublicKey
}

// Signature is a secp256k1 ECDSA signature in compact form.
type Signature struct {
	r btcec.ModNScalar
	s btcec.ModNScalar
}

// GenerateKeyPair draws fresh key material from the given entropy source
// and returns the bound key pair. The caller is responsible for supplying
// a cryptographically secure source.
func GenerateKeyPair(rng io.Reader) (*PrivateKey, *PublicKey, error) {
	key, err := getEngine().generateKey(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("secp256k1: failed to generate key pair: %w", err)
	}

	return &PrivateKey{inner: key}, &PublicKey{inner: key.PubKey()}, nil
}

// ParsePrivateKey parses a private key from its 32-byte serialized form.
// The scalar must be in the [1, N) range of the curve order.
func ParsePrivateKey(data []byte) (*PrivateKey, error) {
	if len(data) != PrivateKeySize {
		return nil, signature.ErrInvalidLength
	}

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(data); overflow || scalar.IsZero() {
		return nil, signature.ErrInvalidPrivateKey
	}

	return &PrivateKey{inner: dcrsecp.NewPrivateKey(&scalar)}, nil
}

// SignMessage signs the given message digest with the private key.
func (sk *PrivateKey) SignMessage(msg hash.Hash) signature.Signature {
	compact := getEngine().signCompact(sk.inner, msg[:])

	var sig Signature
	sig.r.SetByteSlice(compact[1:33])
	sig.s.SetByteSlice(compact[33:65])
	return &sig
}

// SignRecoverable signs the given message digest, returning the compact
// signature extended with its recovery id so that the public key can be
// recovered from the signature alone.
func (sk *PrivateKey) SignRecoverable(msg hash.Hash) []byte {
	compact := getEngine().signCompact(sk.inner, msg[:])

	out := make([]byte, RecoverableSignatureSize)
	copy(out[:SignatureSize], compact[1:])
	out[SignatureSize] = (compact[0] - 27) & 0x03
	return out
}

// Public returns the PublicKey corresponding to the private key.
func (sk *PrivateKey) Public() signature.PublicKey {
	return &PublicKey{inner: sk.inner.PubKey()}
}

// MarshalBinary encodes the private key into its 32-byte serialized form.
func (sk *PrivateKey) MarshalBinary() ([]byte, error) {
	return sk.inner.Serialize(), nil
}

// String returns the string representation of the corresponding public
// key, never the key material itself.
func (sk *PrivateKey) String() string {
	return sk.Public().String()
}

// ParsePublicKey parses a public key from its 33-byte compressed
// serialized form.
func ParsePublicKey(data []byte) (*PublicKey, error) {
	if len(data) != PublicKeySize {
		return nil, signature.ErrInvalidLength
	}

	pk, err := btcec.ParsePubKey(data)
	if err != nil {
		return nil, mapPublicKeyError(err)
	}

	return &PublicKey{inner: pk}, nil
}

// RecoverPublicKey recovers the public key that produced the given
// recoverable signature over the message digest.
func RecoverPublicKey(msg hash.Hash, sig []byte) (*PublicKey, error) {
	if len(sig) != RecoverableSignatureSize {
		return nil, signature.ErrInvalidLength
	}
	recoveryID := sig[SignatureSize]
	if recoveryID >= 4 {
		return nil, fmt.Errorf("%w: invalid recovery id", signature.ErrInvalidSignature)
	}

	compact := make([]byte, RecoverableSignatureSize)
	compact[0] = 27 + recoveryID + 4 // header form, compressed key
	copy(compact[1:], sig[:SignatureSize])

	pk, _, err := btcecdsa.RecoverCompact(compact, msg[:])
	if err != nil {
		return nil, mapSignatureError(err)
	}

	return &PublicKey{inner: pk}, nil
}

// VerifySignature verifies the signature over the given message digest
// under the public key.
func (pk *PublicKey) VerifySignature(msg hash.Hash, sig signature.Signature) error {
	osig, ok := sig.(*Signature)
	if !ok {
		return fmt.Errorf("%w: not a secp256k1 signature", signature.ErrInvalidSignature)
	}
	return osig.Verify(msg, pk)
}

// Equal compares vs another public key for equality.
func (pk *PublicKey) Equal(other signature.PublicKey) bool {
	opk, ok := other.(*PublicKey)
	if !ok {
		return false
	}
	return pk.inner.IsEqual(opk.inner)
}

// MarshalBinary encodes the public key into its 33-byte compressed form.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return pk.inner.SerializeCompressed(), nil
}

// MarshalBinaryUncompressed encodes the public key into its 65-byte
// uncompressed form.
func (pk *PublicKey) MarshalBinaryUncompressed() ([]byte, error) {
	return pk.inner.SerializeUncompressed(), nil
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
	b, err := pk.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return []byte(base64.StdEncoding.EncodeToString(b)), nil
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

// ParseSignature parses a signature from its 64-byte compact (r || s)
// serialized form. Both scalars must be canonical and non-zero.
func ParseSignature(data []byte) (*Signature, error) {
	if len(data) != SignatureSize {
		return nil, signature.ErrInvalidLength
	}

	var sig Signature
	if overflow := sig.r.SetByteSlice(data[:32]); overflow {
		return nil, fmt.Errorf("%w: r overflows the group order", signature.ErrInvalidSignature)
	}
	if overflow := sig.s.SetByteSlice(data[32:]); overflow {
		return nil, fmt.Errorf("%w: s overflows the group order", signature.ErrInvalidSignature)
	}
	if sig.r.IsZero() || sig.s.IsZero() {
		return nil, fmt.Errorf("%w: zero scalar", signature.ErrInvalidSignature)
	}

	return &sig, nil
}

// Verify verifies the signature over the given message digest under the
// public key.
func (sig *Signature) Verify(msg hash.Hash, pk signature.PublicKey) error {
	opk, ok := pk.(*PublicKey)
	if !ok {
		return fmt.Errorf("%w: not a secp256k1 public key", signature.ErrInvalidPublicKey)
	}

	ecSig := btcecdsa.NewSignature(&sig.r, &sig.s)
	if !getEngine().verify(ecSig, msg[:], opk.inner) {
		return signature.ErrInvalidSignature
	}
	return nil
}

// MarshalBinary encodes the signature into its 64-byte compact form.
func (sig *Signature) MarshalBinary() ([]byte, error) {
	out := make([]byte, SignatureSize)
	r := sig.r.Bytes()
	s := sig.s.Bytes()
	copy(out[:32], r[:])
	copy(out[32:], s[:])
	return out, nil
}
