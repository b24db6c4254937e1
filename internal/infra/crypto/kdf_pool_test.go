package crypto

import (
	"context"
	"crypto/sha512"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

func TestNewKeyDerivationPool_Validation(t *testing.T) {
	_, err := NewKeyDerivationPool("", 1, 1)
	require.Error(t, err)

	_, err = NewKeyDerivationPool("secret", 0, 1)
	require.Error(t, err)

	_, err = NewKeyDerivationPool("secret", 1, 0)
	require.Error(t, err)
}

func TestKeyDerivationPool_DerivesExpectedKey(t *testing.T) {
	pool, err := NewKeyDerivationPool("secret", 2, 4)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	salt := []byte("0123456789abcdef")

	key, err := pool.Derive(context.Background(), salt)
	require.NoError(t, err)

	want := pbkdf2.Key([]byte("secret"), salt, pbkdf2Iterations, derivedKeyLength, sha512.New)
	assert.Equal(t, want, key)
}

func TestKeyDerivationPool_SaturationBlocksUntilTimeout(t *testing.T) {
	pool, err := NewKeyDerivationPool("secret", 1, 1)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	// Keep the single worker and the single queue slot busy.
	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = pool.Derive(context.Background(), []byte{byte(n)})
		}(i)
	}
	time.Sleep(10 * time.Millisecond)

	// A saturated pool must block the caller, bounded by the context, and
	// never drop the request silently.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err = pool.Derive(ctx, []byte("late"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	wg.Wait()
}

func TestKeyDerivationPool_CloseRejectsNewWork(t *testing.T) {
	pool, err := NewKeyDerivationPool("secret", 1, 1)
	require.NoError(t, err)
	pool.Close()

	_, err = pool.Derive(context.Background(), []byte("salt"))
	require.Error(t, err)
}
