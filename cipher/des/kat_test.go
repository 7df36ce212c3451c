package des_test

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitdes/des/bits"
	"github.com/bitdes/des/cipher/des"
)

// hexBlock decodes a 16-hex-digit string into a 64-bit bit-string,
// most-significant-bit first.
func hexBlock(t *testing.T, s string) bits.BitString {
	t.Helper()

	raw, err := hex.DecodeString(s)
	require.NoError(t, err)

	bs, err := bits.FromBytes(raw)
	require.NoError(t, err)

	return bs
}

// TestKnownAnswerVectors checks the three canonical FIPS 46-3 vectors
// named in spec.md §8.
func TestKnownAnswerVectors(t *testing.T) {
	testCases := []struct {
		name       string
		key        string
		plaintext  string
		ciphertext string
	}{
		{
			name:       "all zero",
			key:        "0000000000000000",
			plaintext:  "0000000000000000",
			ciphertext: "8CA64DE9C1B123A7",
		},
		{
			name:       "textbook vector",
			key:        "133457799BBCDFF1",
			plaintext:  "0123456789ABCDEF",
			ciphertext: "85E813540F0AB405",
		},
		{
			name:       "decrypts to zero",
			key:        "0E329232EA6D0D73",
			plaintext:  "8787878787878787",
			ciphertext: "0000000000000000",
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key := hexBlock(t, tc.key)
			plaintext := hexBlock(t, tc.plaintext)
			ciphertext := hexBlock(t, tc.ciphertext)

			engine := des.NewEngine(des.RejectOversizedKeys)
			require.NoError(t, engine.SetKey(ctx, key))

			got, err := engine.Encrypt(ctx, plaintext)
			require.NoError(t, err)
			require.Equal(t, ciphertext, got)

			back, err := engine.Decrypt(ctx, ciphertext)
			require.NoError(t, err)
			require.Equal(t, plaintext, back)
		})
	}
}
