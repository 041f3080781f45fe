package secp256k1

import (
	"errors"
	"fmt"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/mutalabs/go-crypto/crypto/signature"
)

// mapPublicKeyError converts a backend public key parse error into the
// unified taxonomy. The switch covers every error kind ParsePubKey can
// produce for a 33-byte input; anything unrecognized is surfaced as a
// wrapped backend error carrying its reason.
func mapPublicKeyError(err error) error {
	switch {
	case errors.Is(err, dcrsecp.ErrPubKeyInvalidLen):
		return signature.ErrInvalidLength
	case errors.Is(err, dcrsecp.ErrPubKeyInvalidFormat),
		errors.Is(err, dcrsecp.ErrPubKeyXTooBig),
		errors.Is(err, dcrsecp.ErrPubKeyYTooBig),
		errors.Is(err, dcrsecp.ErrPubKeyNotOnCurve),
		errors.Is(err, dcrsecp.ErrPubKeyMismatchedOddness):
		return fmt.Errorf("%w: %s", signature.ErrInvalidPublicKey, err)
	default:
		return fmt.Errorf("secp256k1: %w", err)
	}
}

// mapSignatureError converts a backend compact signature recovery error
// into the unified taxonomy.
func mapSignatureError(err error) error {
	switch {
	case errors.Is(err, dcrecdsa.ErrSigInvalidLen):
		return signature.ErrInvalidLength
	case errors.Is(err, dcrecdsa.ErrSigInvalidRecoveryCode),
		errors.Is(err, dcrecdsa.ErrSigOverflowsPrime),
		errors.Is(err, dcrecdsa.ErrSigRIsZero),
		errors.Is(err, dcrecdsa.ErrSigRTooBig),
		errors.Is(err, dcrecdsa.ErrSigSIsZero),
		errors.Is(err, dcrecdsa.ErrSigSTooBig),
		errors.Is(err, dcrecdsa.ErrPointNotOnCurve):
		return fmt.Errorf("%w: %s", signature.ErrInvalidSignature, err)
	default:
		return fmt.Errorf("secp256k1: %w", err)
	}
}
