package des

import (
	"context"

	v "github.com/asaskevich/govalidator"

	"github.com/bitdes/des/bits"
	"github.com/bitdes/des/errors"
)

// ErrInvalidRequest is returned when a [BlockRequest] fails struct
// validation (a required field is missing).
const ErrInvalidRequest = errors.ConstError("des: invalid request")

// BlockRequest bundles a single block operation's message and key as
// ASCII bit-string text, validated before any bit-string work happens.
// Both fields are required; see [EncryptRequest] and [DecryptRequest].
type BlockRequest struct {
	// Message is the 64-bit plaintext or ciphertext block, as '0'/'1'
	// ASCII text.
	Message string `valid:"required"`

	// Key is the DES key, as '0'/'1' ASCII text. Any length from 1 to 64
	// bits is accepted; shorter keys are zero-padded.
	Key string `valid:"required"`
}

// EncryptRequest validates req and encrypts req.Message with req.Key,
// using a fresh [Engine] governed by policy.
func EncryptRequest(ctx context.Context, req *BlockRequest, policy KeyOversizePolicy) (bits.BitString, error) {
	msg, key, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	engine := NewEngine(policy)
	if err := engine.SetKey(ctx, key); err != nil {
		return nil, errors.Annotate(err, "encrypt request: %w")
	}

	out, err := engine.Encrypt(ctx, msg)
	if err != nil {
		return nil, errors.Annotate(err, "encrypt request: %w")
	}

	return out, nil
}

// DecryptRequest validates req and decrypts req.Message with req.Key,
// using a fresh [Engine] governed by policy.
func DecryptRequest(ctx context.Context, req *BlockRequest, policy KeyOversizePolicy) (bits.BitString, error) {
	msg, key, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	engine := NewEngine(policy)
	if err := engine.SetKey(ctx, key); err != nil {
		return nil, errors.Annotate(err, "decrypt request: %w")
	}

	out, err := engine.Decrypt(ctx, msg)
	if err != nil {
		return nil, errors.Annotate(err, "decrypt request: %w")
	}

	return out, nil
}

// validateRequest runs govalidator's required-field check, then converts
// req's ASCII fields into [bits.BitString] values.
func validateRequest(req *BlockRequest) (msg, key bits.BitString, err error) {
	ok, err := v.ValidateStruct(req)
	if err != nil {
		return nil, nil, errors.Annotate(err, "validate request: %w")
	}
	if !ok {
		return nil, nil, errors.Annotate(ErrInvalidRequest, "validate request: %w")
	}

	return bits.BitString(req.Message), bits.BitString(req.Key), nil
}
