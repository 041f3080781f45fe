// Package testing provides deterministic keys for use in tests.
package testing

import (
	"crypto/sha512"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"

	"github.com/mutalabs/go-crypto/crypto/signature"
	"github.com/mutalabs/go-crypto/crypto/signature/ed25519"
	"github.com/mutalabs/go-crypto/crypto/signature/secp256k1"
)

// TestKey is a key used for testing.
type TestKey struct {
	SecretKey  []byte
	PrivateKey signature.PrivateKey
	PublicKey  signature.PublicKey

	// EthAddress is the corresponding Ethereum address if the key is secp256k1.
	EthAddress ethCommon.Address
}

func newEd25519TestKey(seed string) TestKey {
	sk := sha512.Sum512_256([]byte(seed))
	key, err := ed25519.ParsePrivateKey(sk[:])
	if err != nil {
		panic(err)
	}
	return TestKey{
		SecretKey:  sk[:],
		PrivateKey: key,
		PublicKey:  key.Public(),
	}
}

func newSecp256k1TestKey(seed string) TestKey {
	sk := sha512.Sum512_256([]byte(seed))
	key, err := secp256k1.ParsePrivateKey(sk[:])
	if err != nil {
		panic(err)
	}

	pub := key.Public().(*secp256k1.PublicKey)
	uncompressed, err := pub.MarshalBinaryUncompressed()
	if err != nil {
		panic(err)
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(uncompressed[1:])
	var ethAddress ethCommon.Address
	copy(ethAddress[:], h.Sum(nil)[32-20:])

	return TestKey{
		SecretKey:  sk[:],
		PrivateKey: key,
		PublicKey:  pub,
		EthAddress: ethAddress,
	}
}

var (
	// Alice is the Ed25519 test key A.
	Alice = newEd25519TestKey("mutalabs-go-crypto/test-keys: alice")
	// Bob is the Ed25519 test key B.
	Bob = newEd25519TestKey("mutalabs-go-crypto/test-keys: bob")
	// Dave is the secp256k1 test key D.
	Dave = newSecp256k1TestKey("mutalabs-go-crypto/test-keys: dave")
	// Erin is the secp256k1 test key E.
	Erin = newSecp256k1TestKey("mutalabs-go-crypto/test-keys: erin")

	// TestKeys contains all test keys.
	TestKeys = map[string]TestKey{
		"alice": Alice,
		"bob":   Bob,
		"dave":  Dave,
		"erin":  Erin,
	}
)
