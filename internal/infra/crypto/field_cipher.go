package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"locheck/internal/domain/service"
)

const (
	saltLength = 64
	ivLength   = 16
	tagLength  = 16
)

// envelope is the self-describing encrypted representation of one scalar
// field, serialized as JSON for column storage. It must round-trip exactly.
type envelope struct {
	Encrypted string `json:"encrypted"`
	IV        string `json:"iv"`
	Salt      string `json:"salt"`
	Tag       string `json:"tag"`
}

// fieldCipher implements service.FieldCipher with AES-256-GCM and
// PBKDF2-SHA512 key derivation through the worker pool.
type fieldCipher struct {
	deriver       service.KeyDeriver
	deriveTimeout time.Duration
	logger        *slog.Logger
}

// NewFieldCipher is the constructor for fieldCipher. The deriveTimeout bounds
// the total wait for the key-derivation pool, queue time included.
func NewFieldCipher(deriver service.KeyDeriver, deriveTimeout time.Duration, logger *slog.Logger) service.FieldCipher {
	return &fieldCipher{
		deriver:       deriver,
		deriveTimeout: deriveTimeout,
		logger:        logger,
	}
}

// EncryptField encrypts one scalar value into an envelope string.
// A nil or empty value passes through as nil.
func (c *fieldCipher) EncryptField(ctx context.Context, value *string) (*string, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}
	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return nil, errors.Wrap(err, "failed to generate iv")
	}

	key, err := c.deriveKey(ctx, salt)
	if err != nil {
		return nil, err
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := aead.Seal(nil, iv, []byte(*value), nil)
	ciphertext := sealed[:len(sealed)-tagLength]
	tag := sealed[len(sealed)-tagLength:]

	raw, err := json.Marshal(envelope{
		Encrypted: hex.EncodeToString(ciphertext),
		IV:        hex.EncodeToString(iv),
		Salt:      hex.EncodeToString(salt),
		Tag:       hex.EncodeToString(tag),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize envelope")
	}

	enc := string(raw)

	return &enc, nil
}

// DecryptField decrypts an envelope into a tagged Field. A nil envelope is
// FieldAbsent; anything that fails to parse, derive, or authenticate is
// FieldCorrupt. The two must stay distinguishable in logs even though both
// surface as null to clients.
func (c *fieldCipher) DecryptField(ctx context.Context, encrypted *string) service.Field {
	if encrypted == nil || *encrypted == "" {
		return service.Field{State: service.FieldAbsent}
	}

	var env envelope
	if err := json.Unmarshal([]byte(*encrypted), &env); err != nil {
		return c.corrupt(ctx, "malformed envelope", err)
	}

	ciphertext, err := hex.DecodeString(env.Encrypted)
	if err != nil {
		return c.corrupt(ctx, "malformed ciphertext hex", err)
	}
	iv, err := hex.DecodeString(env.IV)
	if err != nil {
		return c.corrupt(ctx, "malformed iv hex", err)
	}
	salt, err := hex.DecodeString(env.Salt)
	if err != nil {
		return c.corrupt(ctx, "malformed salt hex", err)
	}
	tag, err := hex.DecodeString(env.Tag)
	if err != nil {
		return c.corrupt(ctx, "malformed tag hex", err)
	}
	if len(iv) != ivLength || len(tag) != tagLength {
		return c.corrupt(ctx, "unexpected envelope dimensions", nil)
	}

	key, err := c.deriveKey(ctx, salt)
	if err != nil {
		return c.corrupt(ctx, "key derivation failed", err)
	}

	aead, err := newGCM(key)
	if err != nil {
		return c.corrupt(ctx, "cipher construction failed", err)
	}

	plaintext, err := aead.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		// Authentication tag mismatch: the stored envelope was altered.
		return c.corrupt(ctx, "envelope authentication failed", err)
	}

	return service.Field{State: service.FieldPresent, Value: string(plaintext)}
}

func (c *fieldCipher) deriveKey(ctx context.Context, salt []byte) ([]byte, error) {
	deriveCtx, cancel := context.WithTimeout(ctx, c.deriveTimeout)
	defer cancel()

	key, err := c.deriver.Derive(deriveCtx, salt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive field key")
	}

	return key, nil
}

func (c *fieldCipher) corrupt(ctx context.Context, reason string, err error) service.Field {
	attrs := []slog.Attr{slog.String("reason", reason)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	c.logger.LogAttrs(ctx, slog.LevelWarn, "Field decryption failed", attrs...)

	return service.Field{State: service.FieldCorrupt}
}

// newGCM builds an AES-256-GCM AEAD with the envelope's 16-byte IV size.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	aead, err := cipher.NewGCMWithNonceSize(block, ivLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gcm")
	}

	return aead, nil
}
