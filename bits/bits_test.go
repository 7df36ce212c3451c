package bits_test

import (
	"testing"

	"github.com/bitdes/des/bits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLen(t *testing.T) {
	testCases := []struct {
		name string
		s    bits.BitString
		want int
	}{
		{name: "nil", s: nil, want: 0},
		{name: "empty", s: bits.BitString(""), want: 0},
		{name: "valid", s: bits.BitString("0101"), want: 4},
		{name: "invalid char", s: bits.BitString("012"), want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bits.Len(tc.s))
		})
	}
}

func TestFromBytesToBytesRoundTrip(t *testing.T) {
	src := []byte{0x00, 0xFF, 0x13, 0x80}

	bs, err := bits.FromBytes(src)
	require.NoError(t, err)
	require.Equal(t, 32, bits.Len(bs))
	assert.Equal(t, "00000000111111110001001110000000", bs.String())

	back, err := bs.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, src, back)
}

func TestFromBytesEmpty(t *testing.T) {
	_, err := bits.FromBytes(nil)
	require.Error(t, err)
}

func TestToBytesNotAligned(t *testing.T) {
	_, err := bits.BitString("0101010").ToBytes()
	require.Error(t, err)
}

func TestPad(t *testing.T) {
	testCases := []struct {
		name    string
		s       bits.BitString
		n       int
		want    bits.BitString
		wantErr require.ErrorAssertionFunc
	}{
		{
			name:    "grow",
			s:       bits.BitString("101"),
			n:       6,
			want:    bits.BitString("101000"),
			wantErr: require.NoError,
		},
		{
			name:    "truncate",
			s:       bits.BitString("101100"),
			n:       3,
			want:    bits.BitString("101"),
			wantErr: require.NoError,
		},
		{
			name:    "exact length is a clone",
			s:       bits.BitString("1010"),
			n:       4,
			want:    bits.BitString("1010"),
			wantErr: require.NoError,
		},
		{
			name:    "empty input fails",
			s:       bits.BitString(""),
			n:       4,
			wantErr: require.Error,
		},
		{
			name:    "zero n fails",
			s:       bits.BitString("1"),
			n:       0,
			wantErr: require.Error,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bits.Pad(tc.s, tc.n)
			tc.wantErr(t, err)
			if err == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestLRotRRotInverse(t *testing.T) {
	s := bits.BitString("110100100001")
	orig := s.Clone()

	require.NoError(t, s.LRot(5))
	assert.NotEqual(t, orig, s)

	require.NoError(t, s.RRot(5))
	assert.Equal(t, orig, s)
}

func TestLRotMultipleOfLength(t *testing.T) {
	s := bits.BitString("1101")
	orig := s.Clone()

	require.NoError(t, s.LRot(8)) // 2 * len(s)
	assert.Equal(t, orig, s)
}

func TestLRotInvalid(t *testing.T) {
	s := bits.BitString("")
	require.Error(t, s.LRot(1))
}

func TestXor(t *testing.T) {
	a := bits.BitString("1100")
	b := bits.BitString("1010")
	require.NoError(t, bits.Xor(a, b))
	assert.Equal(t, bits.BitString("0110"), a)
}

func TestXorSelfIsZero(t *testing.T) {
	a := bits.BitString("1101")
	require.NoError(t, bits.Xor(a, a))
	assert.Equal(t, bits.BitString("0000"), a)
}

func TestXorZerosIsNoop(t *testing.T) {
	a := bits.BitString("1101")
	zeros := bits.BitString("0000")
	orig := a.Clone()
	require.NoError(t, bits.Xor(a, zeros))
	assert.Equal(t, orig, a)
}

func TestXorLengthMismatch(t *testing.T) {
	a := bits.BitString("110")
	b := bits.BitString("11")
	orig := a.Clone()

	err := bits.Xor(a, b)
	require.Error(t, err)
	assert.Equal(t, orig, a)
}

func TestFlipIsInvolution(t *testing.T) {
	s := bits.BitString("1100110")
	orig := s.Clone()

	require.NoError(t, s.Flip())
	assert.Equal(t, bits.BitString("0011001"), s)

	require.NoError(t, s.Flip())
	assert.Equal(t, orig, s)
}

func TestSwapIsInvolution(t *testing.T) {
	s := bits.BitString("110000")
	orig := s.Clone()

	require.NoError(t, s.Swap())
	assert.Equal(t, bits.BitString("000110"), s)

	require.NoError(t, s.Swap())
	assert.Equal(t, orig, s)
}

func TestSwapOddLengthFails(t *testing.T) {
	s := bits.BitString("101")
	orig := s.Clone()

	err := s.Swap()
	require.Error(t, err)
	assert.Equal(t, orig, s)
}
