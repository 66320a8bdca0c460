package precompile

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// A known-good blob: h || r || s || qx || qy, produced by a reference
// P-256 signer.
const validBlobHex = "bb5a52f42f9c9261ed4361f59422a1e30036e7c32b270c8807a419feca605023" +
	"2ba3a8be6b94d5ec80a6d9d1190a436effe50d85a1eee859b8cc6af9bd5c2e18" +
	"4cd60b855d442f5b3c7b11eb6c4e0ae7525fe710fab9aa7c77a67f79e6fadd76" +
	"2927b10512bae3eddcfe467828128bad2903269919f7086069c8c4df6c732838" +
	"c7787964eaac00e5921fb1498a60f4606766b3d9685001558d1a974e7341513e"

func validBlob(t *testing.T) []byte {
	t.Helper()
	blob, err := hex.DecodeString(validBlobHex)
	require.NoError(t, err)
	require.Len(t, blob, InputLen)
	return blob
}

func wordWith(last byte) []byte {
	out := make([]byte, OutputLen)
	out[OutputLen-1] = last
	return out
}

func TestRunValidBlob(t *testing.T) {
	out, err := (&P256Verify{}).Run(validBlob(t))
	require.NoError(t, err)
	require.Equal(t, wordWith(1), out)
}

func TestRunCorruptedBlob(t *testing.T) {
	for _, offset := range []int{0, 32, 64, 96, 128, InputLen - 1} {
		blob := validBlob(t)
		blob[offset] ^= 1
		out, err := (&P256Verify{}).Run(blob)
		require.NoError(t, err)
		require.Equal(t, wordWith(0), out, "flipped byte at %d", offset)
	}
}

// Any length other than exactly 160 bytes yields the zero word, never an
// error.
func TestRunBadLengths(t *testing.T) {
	for _, n := range []int{0, 1, 31, 159, 161, 320} {
		out, err := (&P256Verify{}).Run(bytes.Repeat([]byte{0xFF}, n))
		require.NoError(t, err)
		require.Equal(t, wordWith(0), out, "input length %d", n)
	}

	// truncating a valid blob by one byte drops it to the zero word
	out := Run(validBlob(t)[:InputLen-1])
	require.Equal(t, wordWith(0), out)
}

func TestRunFreshSignature(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("precompile input"))
	r, s, err := ecdsa.Sign(rand.Reader, key, digest[:])
	require.NoError(t, err)

	blob := make([]byte, InputLen)
	copy(blob[:32], digest[:])
	r.FillBytes(blob[32:64])
	s.FillBytes(blob[64:96])
	key.PublicKey.X.FillBytes(blob[96:128])
	key.PublicKey.Y.FillBytes(blob[128:])

	require.Equal(t, wordWith(1), Run(blob))
}

func TestRequiredGas(t *testing.T) {
	c := &P256Verify{}
	require.Equal(t, uint64(GasP256Verify), c.RequiredGas(nil))
	require.Equal(t, uint64(GasP256Verify), c.RequiredGas(make([]byte, InputLen)))
}
