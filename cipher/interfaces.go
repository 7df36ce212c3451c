// Package cipher defines the generic seam a block-cipher engine is built
// against: a key scheduler that turns a main key into per-round subkeys, a
// round function that consumes one subkey, and a BlockCipher that ties the
// two together into a usable Encrypt/Decrypt surface. cipher/des is the
// only concrete implementation this module wires, but the seam stays
// generic so a second Feistel cipher could share it without reshaping
// cipher/des.
package cipher

import (
	"context"

	"github.com/bitdes/des/bits"
)

// KeyScheduler derives the sequence of round subkeys from a main key.
type KeyScheduler interface {
	// Schedule returns the round subkeys for key, encryption or decryption
	// order depending on decrypt.
	Schedule(ctx context.Context, key bits.BitString, decrypt bool) ([]bits.BitString, error)
}

// RoundFunction performs a single Feistel round transformation.
type RoundFunction interface {
	// Transform applies the round function to block using the given round
	// subkey.
	Transform(ctx context.Context, block, roundKey bits.BitString) (bits.BitString, error)
}

// BlockCipher provides single-block encryption and decryption over
// [bits.BitString].
type BlockCipher interface {
	// SetKey configures the cipher with round keys derived from key.
	SetKey(ctx context.Context, key bits.BitString) error
	// Encrypt encrypts a single block.
	Encrypt(ctx context.Context, block bits.BitString) (bits.BitString, error)
	// Decrypt decrypts a single block.
	Decrypt(ctx context.Context, block bits.BitString) (bits.BitString, error)
	// BlockSize returns the block size in bits.
	BlockSize() int
}
