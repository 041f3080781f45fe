package secp256k1

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mutalabs/go-crypto/crypto/hash"
	"github.com/mutalabs/go-crypto/crypto/signature"
)

// seededRand is a deterministic byte stream for key generation in tests.
type seededRand struct {
	state [32]byte
}

func newSeededRand(seed string) *seededRand {
	return &seededRand{state: sha512.Sum512_256([]byte(seed))}
}

func (r *seededRand) Read(p []byte) (int, error) {
	for n := 0; n < len(p); {
		r.state = sha512.Sum512_256(r.state[:])
		n += copy(p[n:], r.state[:])
	}
	return len(p), nil
}

// A helper that creates the test private key used in the btcec examples.
func newTestKey(t *testing.T) *PrivateKey {
	require := require.New(t)

	hexPrivateKey := "22a47fa09a223f2aa079edf85a7c2d4f87" + "20ee63e502ee2869afab7de234b80c"
	rawPrivateKey, err := hex.DecodeString(hexPrivateKey)
	require.NoError(err, "DecodeString")

	key, err := ParsePrivateKey(rawPrivateKey)
	require.NoError(err, "ParsePrivateKey")
	require.NotNil(key.Public(), "public key should not be nil")

	return key
}

func TestSignAndVerify(t *testing.T) {
	require := require.New(t)
	key := newTestKey(t)

	msg1 := hash.NewFromBytes([]byte("msg1"))
	msg2 := hash.NewFromBytes([]byte("msg2"))

	sig1 := key.SignMessage(msg1)
	sig2 := key.SignMessage(msg2)
	pk := key.Public()

	require.NoError(pk.VerifySignature(msg1, sig1), "verification should succeed")
	require.NoError(pk.VerifySignature(msg2, sig2), "verification should succeed")
	require.NoError(sig1.Verify(msg1, pk), "symmetric verification should succeed")

	require.ErrorIs(pk.VerifySignature(msg2, sig1), signature.ErrInvalidSignature)
	require.ErrorIs(pk.VerifySignature(msg1, sig2), signature.ErrInvalidSignature)
	require.ErrorIs(sig1.Verify(msg2, pk), signature.ErrInvalidSignature)
}

func TestCrossKeyRejection(t *testing.T) {
	require := require.New(t)

	sk1, _, err := GenerateKeyPair(rand.Reader)
	require.NoError(err, "GenerateKeyPair")
	_, pk2, err := GenerateKeyPair(rand.Reader)
	require.NoError(err, "GenerateKeyPair")

	msg := hash.NewFromBytes([]byte("cross key rejection"))
	sig := sk1.SignMessage(msg)

	require.ErrorIs(pk2.VerifySignature(msg, sig), signature.ErrInvalidSignature)
}

func TestTamperDetection(t *testing.T) {
	require := require.New(t)
	key := newTestKey(t)

	msg := hash.NewFromBytes([]byte("tamper detection"))
	sig := key.SignMessage(msg)
	pk := key.Public()

	rawSig, err := sig.MarshalBinary()
	require.NoError(err, "MarshalBinary")

	for bit := 0; bit < SignatureSize*8; bit++ {
		mutated := append([]byte{}, rawSig...)
		mutated[bit/8] ^= 1 << (bit % 8)

		parsed, err := ParseSignature(mutated)
		if err != nil {
			require.ErrorIs(err, signature.ErrInvalidSignature, "bit %d", bit)
			continue
		}
		require.Error(parsed.Verify(msg, pk), "bit %d", bit)
	}
}

func TestLengthEnforcement(t *testing.T) {
	require := require.New(t)

	for _, size := range []int{0, 1, 31, 34, 63, 65, 128} {
		data := make([]byte, size)

		_, err := ParsePrivateKey(data)
		require.ErrorIs(err, signature.ErrInvalidLength, "private key size %d", size)

		_, err = ParsePublicKey(data)
		require.ErrorIs(err, signature.ErrInvalidLength, "public key size %d", size)

		_, err = ParseSignature(data)
		require.ErrorIs(err, signature.ErrInvalidLength, "signature size %d", size)
	}
}

func TestParsePrivateKeyRange(t *testing.T) {
	require := require.New(t)

	_, err := ParsePrivateKey(make([]byte, PrivateKeySize))
	require.ErrorIs(err, signature.ErrInvalidPrivateKey, "zero scalar")

	overflowing := make([]byte, PrivateKeySize)
	for i := range overflowing {
		overflowing[i] = 0xff
	}
	_, err = ParsePrivateKey(overflowing)
	require.ErrorIs(err, signature.ErrInvalidPrivateKey, "scalar above the group order")
}

func TestParsePublicKeyInvalid(t *testing.T) {
	require := require.New(t)

	bad := make([]byte, PublicKeySize)
	bad[0] = 0x05 // not a valid point encoding format
	_, err := ParsePublicKey(bad)
	require.ErrorIs(err, signature.ErrInvalidPublicKey, "invalid format byte")

	offCurve := make([]byte, PublicKeySize)
	offCurve[0] = 0x02 // compressed, x with no curve point for this oddness
	for i := 1; i < PublicKeySize; i++ {
		offCurve[i] = 0xff
	}
	_, err = ParsePublicKey(offCurve)
	require.ErrorIs(err, signature.ErrInvalidPublicKey, "x coordinate not a field element")
}

func TestParseSignatureInvalid(t *testing.T) {
	require := require.New(t)

	overflowing := make([]byte, SignatureSize)
	for i := range overflowing {
		overflowing[i] = 0xff
	}
	_, err := ParseSignature(overflowing)
	require.ErrorIs(err, signature.ErrInvalidSignature, "r overflows the group order")

	zero := make([]byte, SignatureSize)
	zero[SignatureSize-1] = 1 // r = 0, s = 1
	_, err = ParseSignature(zero)
	require.ErrorIs(err, signature.ErrInvalidSignature, "zero r")
}

func TestPubKeySerDes(t *testing.T) {
	require := require.New(t)
	key := newTestKey(t)

	pk := key.Public().(*PublicKey)

	mbin, err := pk.MarshalBinary()
	require.NoError(err, "MarshalBinary")
	require.Len(mbin, PublicKeySize)

	var upk PublicKey
	require.NoError(upk.UnmarshalBinary(mbin), "UnmarshalBinary")
	require.True(pk.Equal(&upk))
	require.True(upk.Equal(pk))

	mtxt, err := pk.MarshalText()
	require.NoError(err, "MarshalText")

	var utpk PublicKey
	require.NoError(utpk.UnmarshalText(mtxt), "UnmarshalText")
	require.True(pk.Equal(&utpk))

	require.EqualValues(pk.String(), key.String())

	var x PublicKey
	require.Error(x.UnmarshalText([]byte("asdf")))
	require.Error(x.UnmarshalBinary([]byte("ghij")))
}

func TestRecoverPublicKey(t *testing.T) {
	require := require.New(t)
	key := newTestKey(t)

	msg := hash.NewFromBytes([]byte("recoverable signature"))
	sig := key.SignRecoverable(msg)
	require.Len(sig, RecoverableSignatureSize)

	recovered, err := RecoverPublicKey(msg, sig)
	require.NoError(err, "RecoverPublicKey")
	require.True(recovered.Equal(key.Public()), "recovered key should match")

	// The plain compact part verifies as a regular signature.
	parsed, err := ParseSignature(sig[:SignatureSize])
	require.NoError(err, "ParseSignature")
	require.NoError(parsed.Verify(msg, key.Public()), "Verify")

	bad := append([]byte{}, sig...)
	bad[SignatureSize] = 4
	_, err = RecoverPublicKey(msg, bad)
	require.ErrorIs(err, signature.ErrInvalidSignature, "invalid recovery id")

	_, err = RecoverPublicKey(msg, sig[:SignatureSize])
	require.ErrorIs(err, signature.ErrInvalidLength, "missing recovery id")
}

func TestGenerateKeyPairSeeded(t *testing.T) {
	require := require.New(t)

	rng := newSeededRand("secp256k1 keygen test")
	sk, pk, err := GenerateKeyPair(rng)
	require.NoError(err, "GenerateKeyPair")
	require.True(pk.Equal(sk.Public()), "returned pair should be bound")

	// Same seed, same key.
	sk2, _, err := GenerateKeyPair(newSeededRand("secp256k1 keygen test"))
	require.NoError(err, "GenerateKeyPair")
	rawSk, err := sk.MarshalBinary()
	require.NoError(err, "MarshalBinary")
	rawSk2, err := sk2.MarshalBinary()
	require.NoError(err, "MarshalBinary")
	require.EqualValues(rawSk, rawSk2, "seeded generation should be deterministic")

	msg := hash.NewFromBytes([]byte("you can(not) redo"))
	sig := sk.SignMessage(msg)
	require.NoError(pk.VerifySignature(msg, sig), "verification should succeed")

	_, otherPk, err := GenerateKeyPair(rand.Reader)
	require.NoError(err, "GenerateKeyPair")
	require.ErrorIs(otherPk.VerifySignature(msg, sig), signature.ErrInvalidSignature)
}

func TestEngineSingleton(t *testing.T) {
	require := require.New(t)

	const workers = 32

	var wg sync.WaitGroup
	engines := make([]*engine, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = GenerateKeyPair(rand.Reader)
			engines[i] = getEngine()
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(errs[i], "GenerateKeyPair")
		require.Same(engines[0], engines[i], "all callers should observe the same engine")
	}
}
