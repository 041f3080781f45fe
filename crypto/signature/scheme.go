package signature

import (
	"github.com/mutalabs/go-crypto/crypto/hash"
)

// The functions below are the raw-bytes-in, raw-bytes-out convenience
// surface for callers that do not want to hold typed key or signature
// objects. Each one chains the fallible parse steps and short-circuits on
// the first failure, propagating its error unchanged.

// PublicKeyFromPrivate parses raw private key material and derives the
// corresponding public key.
func PublicKeyFromPrivate(s Scheme, rawPrivateKey []byte) (PublicKey, error) {
	privateKey, err := s.ParsePrivateKey(rawPrivateKey)
	if err != nil {
		return nil, err
	}

	return privateKey.Public(), nil
}

// SignMessage parses raw private key material and signs the raw message,
// which must be an exactly hash.Size byte digest.
func SignMessage(s Scheme, rawMessage, rawPrivateKey []byte) (Signature, error) {
	privateKey, err := s.ParsePrivateKey(rawPrivateKey)
	if err != nil {
		return nil, err
	}
	msg, err := parseMessage(rawMessage)
	if err != nil {
		return nil, err
	}

	return privateKey.SignMessage(msg), nil
}

// VerifySignature checks the raw signature over the raw message digest
// under the raw public key.
func VerifySignature(s Scheme, rawMessage, rawSignature, rawPublicKey []byte) error {
	msg, err := parseMessage(rawMessage)
	if err != nil {
		return err
	}
	sig, err := s.ParseSignature(rawSignature)
	if err != nil {
		return err
	}
	publicKey, err := s.ParsePublicKey(rawPublicKey)
	if err != nil {
		return err
	}

	return sig.Verify(msg, publicKey)
}

func parseMessage(rawMessage []byte) (hash.Hash, error) {
	var msg hash.Hash
	if err := msg.UnmarshalBinary(rawMessage); err != nil {
		return msg, ErrInvalidLength
	}
	return msg, nil
}
