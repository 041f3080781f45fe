// Package types contains scheme-tagged serializable wrappers around the
// generic signature types.
package types

import (
	"encoding/json"
	"fmt"

	cbor "github.com/fxamacker/cbor/v2"

	"github.com/mutalabs/go-crypto/crypto/signature"
	"github.com/mutalabs/go-crypto/crypto/signature/ed25519"
	"github.com/mutalabs/go-crypto/crypto/signature/secp256k1"
)

var (
	_ json.Marshaler   = (*PublicKey)(nil)
	_ json.Unmarshaler = (*PublicKey)(nil)
	_ cbor.Marshaler   = (*PublicKey)(nil)
	_ cbor.Unmarshaler = (*PublicKey)(nil)
)

// PublicKey is a serializable public key.
type PublicKey struct {
	signature.PublicKey
}

type serializedPublicKey struct {
	Ed25519   []byte `json:"ed25519,omitempty" cbor:"ed25519,omitempty"`
	Secp256k1 []byte `json:"secp256k1,omitempty" cbor:"secp256k1,omitempty"`
}

func (pk PublicKey) serialize() (*serializedPublicKey, error) {
	var spk serializedPublicKey

	b, err := pk.PublicKey.MarshalBinary()
	if err != nil {
		return nil, err
	}

	switch pk.PublicKey.(type) {
	case *ed25519.PublicKey:
		spk.Ed25519 = b
	case *secp256k1.PublicKey:
		spk.Secp256k1 = b
	default:
		return nil, fmt.Errorf("types: unsupported public key type")
	}
	return &spk, nil
}

func (pk *PublicKey) unmarshal(spk *serializedPublicKey) error {
	if spk.Ed25519 != nil && spk.Secp256k1 != nil {
		return fmt.Errorf("types: malformed public key")
	}

	switch {
	case spk.Ed25519 != nil:
		inner, err := ed25519.ParsePublicKey(spk.Ed25519)
		if err != nil {
			return err
		}
		pk.PublicKey = inner
	case spk.Secp256k1 != nil:
		inner, err := secp256k1.ParsePublicKey(spk.Secp256k1)
		if err != nil {
			return err
		}
		pk.PublicKey = inner
	default:
		return fmt.Errorf("types: unsupported public key type")
	}
	return nil
}

// MarshalCBOR encodes the public key as CBOR.
func (pk PublicKey) MarshalCBOR() ([]byte, error) {
	spk, err := pk.serialize()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(spk)
}

// UnmarshalCBOR decodes the public key from CBOR.
func (pk *PublicKey) UnmarshalCBOR(data []byte) error {
	var spk serializedPublicKey
	if err := cbor.Unmarshal(data, &spk); err != nil {
		return err
	}
	return pk.unmarshal(&spk)
}

// MarshalJSON encodes the public key as JSON.
func (pk PublicKey) MarshalJSON() ([]byte, error) {
	spk, err := pk.serialize()
	if err != nil {
		return nil, err
	}
	return json.Marshal(spk)
}

// UnmarshalJSON decodes the public key from JSON.
func (pk *PublicKey) UnmarshalJSON(data []byte) error {
	var spk serializedPublicKey
	if err := json.Unmarshal(data, &spk); err != nil {
		return err
	}
	return pk.unmarshal(&spk)
}

// Signature is a serializable signature.
type Signature struct {
	signature.Signature
}

type serializedSignature struct {
	Ed25519   []byte `json:"ed25519,omitempty" cbor:"ed25519,omitempty"`
	Secp256k1 []byte `json:"secp256k1,omitempty" cbor:"secp256k1,omitempty"`
}

func (sig Signature) serialize() (*serializedSignature, error) {
	var ssig serializedSignature

	b, err := sig.Signature.MarshalBinary()
	if err != nil {
		return nil, err
	}

	switch sig.Signature.(type) {
	case *ed25519.Signature:
		ssig.Ed25519 = b
	case *secp256k1.Signature:
		ssig.Secp256k1 = b
	default:
		return nil, fmt.Errorf("types: unsupported signature type")
	}
	return &ssig, nil
}

func (sig *Signature) unmarshal(ssig *serializedSignature) error {
	if ssig.Ed25519 != nil && ssig.Secp256k1 != nil {
		return fmt.Errorf("types: malformed signature")
	}

	switch {
	case ssig.Ed25519 != nil:
		inner, err := ed25519.ParseSignature(ssig.Ed25519)
		if err != nil {
			return err
		}
		sig.Signature = inner
	case ssig.Secp256k1 != nil:
		inner, err := secp256k1.ParseSignature(ssig.Secp256k1)
		if err != nil {
			return err
		}
		sig.Signature = inner
	default:
		return fmt.Errorf("types: unsupported signature type")
	}
	return nil
}

// MarshalCBOR encodes the signature as CBOR.
func (sig Signature) MarshalCBOR() ([]byte, error) {
	ssig, err := sig.serialize()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(ssig)
}

// UnmarshalCBOR decodes the signature from CBOR.
func (sig *Signature) UnmarshalCBOR(data []byte) error {
	var ssig serializedSignature
	if err := cbor.Unmarshal(data, &ssig); err != nil {
		return err
	}
	return sig.unmarshal(&ssig)
}

// MarshalJSON encodes the signature as JSON.
func (sig Signature) MarshalJSON() ([]byte, error) {
	ssig, err := sig.serialize()
	if err != nil {
		return nil, err
	}
	return json.Marshal(ssig)
}

// UnmarshalJSON decodes the signature from JSON.
func (sig *Signature) UnmarshalJSON(data []byte) error {
	var ssig serializedSignature
	if err := json.Unmarshal(data, &ssig); err != nil {
		return err
	}
	return sig.unmarshal(&ssig)
}
