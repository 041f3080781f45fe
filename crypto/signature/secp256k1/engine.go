package secp256k1

import (
	"io"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// engine bundles the shared curve context used by every generate, sign
// and verify operation. Construction touches the precomputed group
// tables, so it happens exactly once per process and the instance is
// read-only afterwards.
type engine struct {
	curve *btcec.KoblitzCurve
}

var (
	engineOnce sync.Once
	engineInst *engine
)

func getEngine() *engine {
	engineOnce.Do(func() {
		engineInst = &engine{
			curve: btcec.S256(),
		}
	})
	return engineInst
}

func (e *engine) generateKey(rng io.Reader) (*btcec.PrivateKey, error) {
	return dcrsecp.GeneratePrivateKeyFromRand(rng)
}

// signCompact produces a 65-byte compact signature in the
// header || r || s form, with the header encoding the recovery id.
func (e *engine) signCompact(key *btcec.PrivateKey, digest []byte) []byte {
	return btcecdsa.SignCompact(key, digest, true)
}

func (e *engine) verify(sig *btcecdsa.Signature, digest []byte, key *btcec.PublicKey) bool {
	return sig.Verify(digest, key)
}
