package signature

import "errors"

// Errors returned by the signature contract and its scheme
// implementations. Every fallible operation surfaces one of these,
// matchable with errors.Is, possibly wrapped with scheme-specific detail.
// Backend failures that have no classification of their own are wrapped
// as plain errors carrying a reason instead.
var (
	// ErrInvalidLength is the error returned when a byte slice has the
	// wrong size for its target type.
	ErrInvalidLength = errors.New("signature: invalid length")

	// ErrInvalidSignature is the error returned when signature bytes are
	// malformed, or when a well-formed signature fails to verify. The two
	// causes are deliberately not distinguished.
	ErrInvalidSignature = errors.New("signature: invalid signature")

	// ErrInvalidPublicKey is the error returned when public key bytes do
	// not decode to a valid public key.
	ErrInvalidPublicKey = errors.New("signature: invalid public key")

	// ErrInvalidPrivateKey is the error returned when private key bytes do
	// not decode to a valid private key.
	ErrInvalidPrivateKey = errors.New("signature: invalid private key")
)
