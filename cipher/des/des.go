// Package des implements the single-block DES cipher (FIPS 46-3) over the
// ASCII bit-string representation in [github.com/bitdes/des/bits]: initial
// and final permutations, the 16-round Feistel network, the key schedule,
// and the round function f. Multi-block chaining modes, padding schemes
// and triple-DES composition are out of scope — see SPEC_FULL.md.
package des

import (
	"context"

	bitdescipher "github.com/bitdes/des/cipher"

	"github.com/bitdes/des/bits"
	"github.com/bitdes/des/errors"
)

const (
	blockBits = 64
	halfBlock = blockBits / 2
	numRounds = 16
)

// ErrInvalidBlock is returned when a message is not a valid 64-bit
// bit-string.
const ErrInvalidBlock = errors.ConstError("des: invalid 64-bit block")

// errInvalidRoundState is returned internally when a round function input
// is not the expected 48-bit group; it should be unreachable given a
// correctly-sized subkey and block.
const errInvalidRoundState = errors.ConstError("des: invalid round state")

// Engine is a single-block DES cipher. The zero value is not ready for
// use; construct one with [NewEngine] and call [Engine.SetKey] before
// encrypting or decrypting.
type Engine struct {
	policy KeyOversizePolicy
	f      bitdescipher.RoundFunction

	encryptKeys []bits.BitString
	decryptKeys []bits.BitString
}

// type check
var _ bitdescipher.BlockCipher = (*Engine)(nil)

// NewEngine returns a DES engine governed by policy (how keyInit handles
// keys longer than 64 bits).
func NewEngine(policy KeyOversizePolicy) *Engine {
	return &Engine{
		policy: policy,
		f:      roundFunction{},
	}
}

// BlockSize returns the DES block size in bits (64).
func (e *Engine) BlockSize() int {
	return blockBits
}

// SetKey derives and stores both the encryption and decryption round
// subkey schedules from key. key must be a non-empty bit-string; it is
// zero-padded or, depending on the engine's policy, truncated/rejected if
// it is not exactly 64 bits (spec.md §4.2.2).
func (e *Engine) SetKey(ctx context.Context, key bits.BitString) error {
	sched := &scheduler{policy: e.policy}

	encKeys, err := sched.Schedule(ctx, key, false)
	if err != nil {
		return errors.Annotate(err, "set key: %w")
	}

	decKeys, err := sched.Schedule(ctx, key, true)
	if err != nil {
		return errors.Annotate(err, "set key: %w")
	}

	e.encryptKeys = encKeys
	e.decryptKeys = decKeys
	return nil
}

// Encrypt encrypts a 64-bit plaintext block, returning a fresh 64-bit
// ciphertext block. Encrypt fails if msg is not a valid 64-bit bit-string
// or if [Engine.SetKey] has not been called.
func (e *Engine) Encrypt(ctx context.Context, msg bits.BitString) (bits.BitString, error) {
	return e.crypt(ctx, msg, e.encryptKeys)
}

// Decrypt decrypts a 64-bit ciphertext block, returning a fresh 64-bit
// plaintext block. Same contract as [Engine.Encrypt], inverse operation.
func (e *Engine) Decrypt(ctx context.Context, msg bits.BitString) (bits.BitString, error) {
	return e.crypt(ctx, msg, e.decryptKeys)
}

// crypt runs the 16-round Feistel network over msg using roundKeys, which
// must already be in the correct (encrypt or decrypt) order.
func (e *Engine) crypt(ctx context.Context, msg bits.BitString, roundKeys []bits.BitString) (bits.BitString, error) {
	if bits.Len(msg) != blockBits {
		return nil, errors.Annotate(ErrInvalidBlock, "crypt: %w")
	}
	if len(roundKeys) != numRounds {
		return nil, errors.Annotate(ErrInvalidKey, "crypt: key not set: %w")
	}

	state, err := bits.Permute(msg, initialPermutation, blockBits)
	if err != nil {
		return nil, errors.Annotate(err, "crypt: initial permutation: %w")
	}

	l, r := state[:halfBlock], state[halfBlock:]
	for round := 0; round < numRounds; round++ {
		t, err := e.f.Transform(ctx, r, roundKeys[round])
		if err != nil {
			return nil, errors.Annotate(err, "crypt: round %d: %w", round+1)
		}

		if err := bits.Xor(l, t); err != nil {
			return nil, errors.Annotate(err, "crypt: round %d: %w", round+1)
		}

		if err := state.Swap(); err != nil {
			return nil, errors.Annotate(err, "crypt: round %d swap: %w", round+1)
		}
	}

	// Final swap outside the loop, yielding the (R16, L16) ordering IP^-1
	// expects (spec.md §4.2.5 step 4).
	if err := state.Swap(); err != nil {
		return nil, errors.Annotate(err, "crypt: final swap: %w")
	}

	out, err := bits.Permute(state, finalPermutation, blockBits)
	if err != nil {
		return nil, errors.Annotate(err, "crypt: final permutation: %w")
	}

	return out, nil
}
