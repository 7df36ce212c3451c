package des

import (
	"context"

	bitdescipher "github.com/bitdes/des/cipher"

	"github.com/bitdes/des/bits"
	"github.com/bitdes/des/errors"
)

// KeyOversizePolicy controls how keyInit handles a key longer than 64
// bits. spec.md §9 leaves this as an open question; see SPEC_FULL.md §4.2
// for the rationale behind the default.
type KeyOversizePolicy int

const (
	// RejectOversizedKeys fails keyInit for any key longer than 64 bits.
	// This is the default policy.
	RejectOversizedKeys KeyOversizePolicy = iota

	// TruncateOversizedKeys reproduces the reference implementation's
	// behavior of silently using only the leading 64 bits of an oversized
	// key (a consequence of PC-1 indexing, not an explicit truncation
	// step there). Opt into this only for interop testing against that
	// reference.
	TruncateOversizedKeys
)

const keyBits = 64
const scheduleBits = 56
const halfBits = scheduleBits / 2

// ErrInvalidKey is returned when key_init receives a nil, empty, or (under
// [RejectOversizedKeys]) oversized key.
const ErrInvalidKey = errors.ConstError("des: invalid key")

// keyState is the 56-bit subkey schedule state, split at offset 28 into
// halves C ([0,28)) and D ([28,56)), evolving across the 16 rounds.
type keyState bits.BitString

// keyInit validates and reduces a key of length 1..N bits to the 56-bit
// PC-1 schedule state. Keys shorter than 64 bits are zero-padded on the
// right; keys longer than 64 bits are handled per policy.
func keyInit(key bits.BitString, policy KeyOversizePolicy) (keyState, error) {
	n := bits.Len(key)
	if n == 0 {
		return nil, errors.Annotate(ErrInvalidKey, "key init: %w")
	}

	padded := key
	if n < keyBits {
		var err error
		padded, err = bits.Pad(key, keyBits)
		if err != nil {
			return nil, errors.Annotate(err, "key init: pad: %w")
		}
	} else if n > keyBits {
		if policy == RejectOversizedKeys {
			return nil, errors.Annotate(ErrInvalidKey, "key init: key longer than 64 bits: %w")
		}
		// TruncateOversizedKeys: PC-1 only ever reads the first 64 bits,
		// so pc1Permute below already ignores anything past that; no
		// extra step is needed here.
	}

	schedule, err := bits.Permute(padded, pc1, scheduleBits)
	if err != nil {
		return nil, errors.Annotate(err, "key init: PC-1: %w")
	}

	return keyState(schedule), nil
}

// rotate applies round r's rotation amount to both halves of k in place,
// in the given direction. Decryption's round 1 is a documented no-op: the
// first decryption subkey is the final encryption subkey, already in
// place immediately after keyInit + PC-2.
func (k keyState) rotate(ctx context.Context, r int, decrypt bool) error {
	if decrypt && r == 1 {
		return nil
	}

	n := rotationSchedule[r-1]
	c, d := bits.BitString(k[:halfBits]), bits.BitString(k[halfBits:])

	if decrypt {
		if err := c.RRot(n); err != nil {
			return errors.Annotate(err, "key rotate: %w")
		}
		if err := d.RRot(n); err != nil {
			return errors.Annotate(err, "key rotate: %w")
		}
		return nil
	}

	if err := c.LRot(n); err != nil {
		return errors.Annotate(err, "key rotate: %w")
	}
	if err := d.LRot(n); err != nil {
		return errors.Annotate(err, "key rotate: %w")
	}
	return nil
}

// subkey extracts the current round's 48-bit subkey via PC-2.
func (k keyState) subkey(ctx context.Context) (bits.BitString, error) {
	subkey, err := bits.Permute(bits.BitString(k), pc2, 48)
	if err != nil {
		return nil, errors.Annotate(err, "PC-2: %w")
	}
	return subkey, nil
}

// scheduler implements [github.com/bitdes/des/cipher.KeyScheduler] for DES.
type scheduler struct {
	policy KeyOversizePolicy
}

// type check
var _ bitdescipher.KeyScheduler = (*scheduler)(nil)

// Schedule returns the 16 round subkeys for key, in the order Encrypt or
// Decrypt consumes them.
func (s *scheduler) Schedule(ctx context.Context, key bits.BitString, decrypt bool) ([]bits.BitString, error) {
	state, err := keyInit(key, s.policy)
	if err != nil {
		return nil, err
	}

	subkeys := make([]bits.BitString, numRounds)
	for r := 1; r <= numRounds; r++ {
		if err := state.rotate(ctx, r, decrypt); err != nil {
			return nil, err
		}

		sk, err := state.subkey(ctx)
		if err != nil {
			return nil, err
		}
		subkeys[r-1] = sk
	}

	return subkeys, nil
}
