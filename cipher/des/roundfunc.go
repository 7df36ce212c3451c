package des

import (
	"context"

	bitdescipher "github.com/bitdes/des/cipher"

	"github.com/bitdes/des/bits"
	"github.com/bitdes/des/errors"
)

// roundFunction implements [github.com/bitdes/des/cipher.RoundFunction]:
// DES's f(R, subkey) — expansion, subkey XOR, eight S-boxes, P-permutation.
type roundFunction struct{}

// type check
var _ bitdescipher.RoundFunction = roundFunction{}

// Transform applies f to a 32-bit block with a 48-bit round subkey,
// returning a fresh 32-bit result.
func (roundFunction) Transform(ctx context.Context, block, roundKey bits.BitString) (bits.BitString, error) {
	expanded, err := bits.Permute(block, expansionTable, 48)
	if err != nil {
		return nil, errors.Annotate(err, "f: expansion: %w")
	}

	if err := bits.Xor(expanded, roundKey); err != nil {
		return nil, errors.Annotate(err, "f: subkey xor: %w")
	}

	substituted, err := substitute(expanded)
	if err != nil {
		return nil, errors.Annotate(err, "f: substitution: %w")
	}

	permuted, err := bits.Permute(substituted, pPermutation, 32)
	if err != nil {
		return nil, errors.Annotate(err, "f: P-permutation: %w")
	}

	return permuted, nil
}

// substitute runs the eight S-boxes over a 48-bit group, writing each
// box's 4-bit output into a fresh 32-bit result.
func substitute(expanded bits.BitString) (bits.BitString, error) {
	if bits.Len(expanded) != 48 {
		return nil, errInvalidRoundState
	}

	out := make(bits.BitString, 32)
	for box := 0; box < 8; box++ {
		group := expanded[box*6 : box*6+6]

		row := 2*bit(group[0]) + bit(group[5])
		col := 8*bit(group[1]) + 4*bit(group[2]) + 2*bit(group[3]) + bit(group[4])
		value := sBoxes[box][16*row+col]

		for i := 0; i < 4; i++ {
			shift := 3 - i
			out[box*4+i] = '0' + byte((value>>shift)&1)
		}
	}

	return out, nil
}

// bit converts an ASCII '0'/'1' byte to its numeric value.
func bit(b byte) int {
	return int(b - '0')
}
