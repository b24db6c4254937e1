package service

import "context"

// FieldState distinguishes the three outcomes of decrypting a stored field.
// Collapsing "never set" and "failed authentication" into one null loses the
// data-integrity signal, so the state rides alongside the value.
type FieldState int

const (
	// FieldAbsent means the field was never provided (nil envelope).
	FieldAbsent FieldState = iota
	// FieldCorrupt means the envelope was present but failed to decrypt.
	// This is a data-integrity signal, not a fatal error.
	FieldCorrupt
	// FieldPresent means the field decrypted cleanly.
	FieldPresent
)

// Field is the tagged result of a field decryption.
type Field struct {
	State FieldState
	Value string // Valid only when State == FieldPresent.
}

// FieldCipher encrypts and decrypts individual scalar values for at-rest storage.
// Envelopes are self-describing and never reused: every encryption draws a
// fresh salt and IV, so equal plaintexts produce distinct envelopes.
type FieldCipher interface {
	// EncryptField encrypts one scalar value into an envelope string.
	// A nil value passes through as nil, preserving "field not provided".
	EncryptField(ctx context.Context, value *string) (*string, error)

	// DecryptField decrypts an envelope. Malformed or tampered envelopes
	// degrade to FieldCorrupt; they never produce a wrong value or an error.
	DecryptField(ctx context.Context, envelope *string) Field
}

// KeyDeriver runs the slow key-derivation function. Implementations bound the
// CPU work with a worker pool; a saturated pool blocks the caller until
// capacity frees or ctx is done. Requests are never dropped silently.
type KeyDeriver interface {
	Derive(ctx context.Context, salt []byte) ([]byte, error)
}
