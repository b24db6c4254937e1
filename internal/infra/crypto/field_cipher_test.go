package crypto

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"locheck/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T) service.FieldCipher {
	t.Helper()

	pool, err := NewKeyDerivationPool("test-field-secret", 2, 8)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewFieldCipher(pool, 10*time.Second, logger)
}

func strPtr(s string) *string {
	return &s
}

func TestFieldCipher_RoundTrip(t *testing.T) {
	cipher := newTestCipher(t)
	ctx := context.Background()

	for _, value := range []string{"37.7749", "-122.4194", "iPhone 15 Pro", "98"} {
		env, err := cipher.EncryptField(ctx, strPtr(value))
		require.NoError(t, err)
		require.NotNil(t, env)

		field := cipher.DecryptField(ctx, env)
		assert.Equal(t, service.FieldPresent, field.State)
		assert.Equal(t, value, field.Value)
	}
}

func TestFieldCipher_NilValuePassesThrough(t *testing.T) {
	cipher := newTestCipher(t)
	ctx := context.Background()

	env, err := cipher.EncryptField(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, env)

	env, err = cipher.EncryptField(ctx, strPtr(""))
	require.NoError(t, err)
	assert.Nil(t, env)

	field := cipher.DecryptField(ctx, nil)
	assert.Equal(t, service.FieldAbsent, field.State)
}

func TestFieldCipher_FreshEnvelopePerCall(t *testing.T) {
	cipher := newTestCipher(t)
	ctx := context.Background()

	first, err := cipher.EncryptField(ctx, strPtr("37.7749"))
	require.NoError(t, err)
	second, err := cipher.EncryptField(ctx, strPtr("37.7749"))
	require.NoError(t, err)

	// Fresh salt and IV per call: identical plaintexts never share envelopes.
	assert.NotEqual(t, *first, *second)
}

func TestFieldCipher_EnvelopeShape(t *testing.T) {
	cipher := newTestCipher(t)
	ctx := context.Background()

	env, err := cipher.EncryptField(ctx, strPtr("value"))
	require.NoError(t, err)

	var parsed envelope
	require.NoError(t, json.Unmarshal([]byte(*env), &parsed))
	assert.Len(t, parsed.Salt, saltLength*2) // hex-encoded
	assert.Len(t, parsed.IV, ivLength*2)
	assert.Len(t, parsed.Tag, tagLength*2)
	assert.NotEmpty(t, parsed.Encrypted)
}

func TestFieldCipher_TamperDetection(t *testing.T) {
	cipher := newTestCipher(t)
	ctx := context.Background()

	env, err := cipher.EncryptField(ctx, strPtr("37.7749"))
	require.NoError(t, err)

	var parsed envelope
	require.NoError(t, json.Unmarshal([]byte(*env), &parsed))

	tests := []struct {
		name   string
		mutate func(e *envelope)
	}{
		{name: "flipped ciphertext byte", mutate: func(e *envelope) { e.Encrypted = flipHexByte(e.Encrypted) }},
		{name: "flipped tag byte", mutate: func(e *envelope) { e.Tag = flipHexByte(e.Tag) }},
		{name: "flipped iv byte", mutate: func(e *envelope) { e.IV = flipHexByte(e.IV) }},
		{name: "flipped salt byte", mutate: func(e *envelope) { e.Salt = flipHexByte(e.Salt) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := parsed
			tt.mutate(&tampered)

			raw, err := json.Marshal(tampered)
			require.NoError(t, err)

			field := cipher.DecryptField(ctx, strPtr(string(raw)))
			assert.Equal(t, service.FieldCorrupt, field.State)
			assert.Empty(t, field.Value)
		})
	}
}

func TestFieldCipher_MalformedEnvelopeIsCorrupt(t *testing.T) {
	cipher := newTestCipher(t)
	ctx := context.Background()

	for _, raw := range []string{"not json", `{"encrypted":"zz","iv":"zz","salt":"zz","tag":"zz"}`, `{}`} {
		field := cipher.DecryptField(ctx, strPtr(raw))
		assert.Equal(t, service.FieldCorrupt, field.State, "input %q", raw)
	}
}

// flipHexByte flips the low bit of the first byte of a hex string.
func flipHexByte(hexStr string) string {
	b := []byte(hexStr)
	if b[0] == '0' {
		b[0] = '1'
	} else {
		b[0] = '0'
	}

	return string(b)
}
