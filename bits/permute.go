package bits

import "github.com/bitdes/des/errors"

// ErrTableOutOfRange is returned by [Permute] when a table entry indexes
// past the input string.
const ErrTableOutOfRange = errors.ConstError("bits: permutation table index out of range")

// Table is an immutable ordered sequence of 1-based indices used by
// [Permute]. Indices may repeat (DES's expansion table draws 48 positions
// from 32 input bits).
type Table []int

// Permute applies table to s, returning a fresh BitString of length m
// whose i-th bit equals s's (table[i]-1)-th bit. Permute fails if s is
// invalid, table is empty, m is not positive, or any table entry exceeds
// Len(s).
//
// The reference implementation this is grounded on rejects an index only
// when table[i]-1 > len(s), which admits an out-of-range index equal to
// len(s)+1; this implementation rejects whenever table[i] > len(s), per
// spec.md §9. All DES tables stay within bounds either way, so this only
// matters for caller-supplied tables.
func Permute(s BitString, table Table, m int) (BitString, error) {
	n := Len(s)
	if n == 0 || len(table) < m || m <= 0 {
		return nil, errors.Annotate(ErrInvalidLength, "permute: %w")
	}

	out := make(BitString, m)
	for i := 0; i < m; i++ {
		idx := table[i]
		if idx > n {
			return nil, errors.Annotate(ErrTableOutOfRange, "permute: %w")
		}
		out[i] = s[idx-1]
	}

	return out, nil
}
