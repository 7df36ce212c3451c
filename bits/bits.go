// Package bits implements a textual bit-string primitive: a sequence of
// ASCII '0'/'1' bytes together with length-preserving transforms (padding,
// rotation, XOR, negation, half-swap, byte conversion). The DES engine in
// [github.com/bitdes/des/cipher/des] is expressed entirely in terms of
// these operations.
package bits

import "github.com/bitdes/des/errors"

const byteSize = 8

const (
	// ErrInvalidBitString is returned when a value is nil, empty, or
	// contains a byte other than '0' or '1'.
	ErrInvalidBitString = errors.ConstError("bits: invalid bit string")

	// ErrInvalidLength is returned when a requested length is zero or
	// otherwise unusable for the operation.
	ErrInvalidLength = errors.ConstError("bits: invalid length")

	// ErrLengthMismatch is returned by operations that require their
	// operands to share a length.
	ErrLengthMismatch = errors.ConstError("bits: length mismatch")

	// ErrOddLength is returned by Swap when the receiver's length is odd.
	ErrOddLength = errors.ConstError("bits: odd length")

	// ErrNotByteAligned is returned by ToBytes when the length is not a
	// multiple of 8.
	ErrNotByteAligned = errors.ConstError("bits: length not a multiple of 8")
)

// BitString is a finite ordered sequence of binary symbols, stored as the
// ASCII bytes '0' and '1'. The zero value is not a valid bit string; use
// [FromBytes] or [Pad] to construct one.
//
// BitString is mutated in place by [BitString.LRot], [BitString.RRot],
// [Xor], [BitString.Flip] and [BitString.Swap]. Every other operation
// returns a freshly allocated BitString.
type BitString []byte

// Len returns the length of s, or 0 if s is nil, empty, or contains any
// byte other than '0' or '1'. Len doubles as the validity predicate for a
// BitString: callers check len(s) == 0 to detect an invalid string, since
// the zero length and the invalid length are indistinguishable by design
// (matching the reference bstr_len).
func Len(s BitString) int {
	if len(s) == 0 {
		return 0
	}

	for _, b := range s {
		if b != '0' && b != '1' {
			return 0
		}
	}

	return len(s)
}

// Clone returns a fresh copy of s with the same length and content.
func (s BitString) Clone() BitString {
	c := make(BitString, len(s))
	copy(c, s)
	return c
}

// String renders s as its underlying ASCII text.
func (s BitString) String() string {
	return string(s)
}

// FromBytes returns a fresh BitString of length 8*len(src), emitting each
// byte of src most-significant-bit first. FromBytes fails on empty input.
func FromBytes(src []byte) (BitString, error) {
	if len(src) == 0 {
		return nil, errors.Annotate(ErrInvalidBitString, "from bytes: %w")
	}

	out := make(BitString, byteSize*len(src))
	for i, b := range src {
		for bit := 0; bit < byteSize; bit++ {
			shift := byteSize - 1 - bit
			out[i*byteSize+bit] = '0' + ((b >> shift) & 1)
		}
	}

	return out, nil
}

// ToBytes returns a fresh byte slice of length Len(s)/8, reading each
// 8-bit group most-significant-bit first. ToBytes fails unless Len(s) is
// positive and a multiple of 8.
func (s BitString) ToBytes() ([]byte, error) {
	n := Len(s)
	if n == 0 {
		return nil, errors.Annotate(ErrInvalidBitString, "to bytes: %w")
	}
	if n%byteSize != 0 {
		return nil, errors.Annotate(ErrNotByteAligned, "to bytes: %w")
	}

	out := make([]byte, n/byteSize)
	for i := range out {
		var b byte
		for bit := 0; bit < byteSize; bit++ {
			b = (b << 1) | (s[i*byteSize+bit] - '0')
		}
		out[i] = b
	}

	return out, nil
}

// Pad returns a fresh BitString of length n. If n <= Len(s), the result is
// the first n bits of s (a truncating clone, preserved from the reference
// for interface compatibility — see DESIGN.md). Otherwise the result's
// first Len(s) bits equal s and the remaining n-Len(s) bits are '0'. Pad
// fails if s is invalid or n is 0.
func Pad(s BitString, n int) (BitString, error) {
	l := Len(s)
	if l == 0 || n == 0 {
		return nil, errors.Annotate(ErrInvalidLength, "pad: %w")
	}

	if n <= l {
		return s[:n].Clone(), nil
	}

	out := make(BitString, n)
	copy(out, s)
	for i := l; i < n; i++ {
		out[i] = '0'
	}

	return out, nil
}

// LRot rotates s left by n positions in place: bit i becomes bit
// (i+n) mod len. n is reduced modulo Len(s) first, so any multiple of the
// length is a no-op. LRot fails if s is invalid, leaving s unchanged.
func (s BitString) LRot(n int) error {
	l := Len(s)
	if l == 0 {
		return errors.Annotate(ErrInvalidBitString, "lrot: %w")
	}

	n %= l
	if n == 0 {
		return nil
	}

	rotated := append(s[n:].Clone(), s[:n]...)
	copy(s, rotated)
	return nil
}

// RRot rotates s right by n positions in place: bit i becomes bit
// (i-n+len) mod len. Symmetric to [BitString.LRot].
func (s BitString) RRot(n int) error {
	l := Len(s)
	if l == 0 {
		return errors.Annotate(ErrInvalidBitString, "rrot: %w")
	}

	n %= l
	if n == 0 {
		return nil
	}

	return s.LRot(l - n)
}

// Xor XORs b into a in place: a[i] ^= b[i] for all i. Xor fails if either
// operand is invalid or their lengths differ, leaving a unchanged.
func Xor(a, b BitString) error {
	la, lb := Len(a), Len(b)
	if la == 0 || lb == 0 || la != lb {
		return errors.Annotate(ErrLengthMismatch, "xor: %w")
	}

	for i := range a {
		a[i] = '0' + ((a[i] - '0') ^ (b[i] - '0'))
	}

	return nil
}

// Flip complements every bit of s in place. Flip fails on an invalid s,
// leaving s unchanged.
func (s BitString) Flip() error {
	if Len(s) == 0 {
		return errors.Annotate(ErrInvalidBitString, "flip: %w")
	}

	for i, b := range s {
		if b == '1' {
			s[i] = '0'
		} else {
			s[i] = '1'
		}
	}

	return nil
}

// Swap exchanges the first half of s with the second half in place. Swap
// fails unless Len(s) is positive and even, leaving s unchanged.
func (s BitString) Swap() error {
	l := Len(s)
	if l == 0 || l%2 != 0 {
		return errors.Annotate(ErrOddLength, "swap: %w")
	}

	half := l / 2
	for i := 0; i < half; i++ {
		s[i], s[i+half] = s[i+half], s[i]
	}

	return nil
}
