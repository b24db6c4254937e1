// Package crypto provides field-level encryption for at-rest storage and the
// bounded worker pool that runs its slow key derivation.
package crypto

import (
	"context"
	"crypto/sha512"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// pbkdf2Iterations is the PRF iteration count for deriving one field key.
	// At ~100k SHA-512 iterations a derivation is CPU work in the tens of
	// milliseconds, which is why derivations go through the pool instead of
	// running inline on connection-serving goroutines.
	pbkdf2Iterations = 100_000

	// derivedKeyLength is the AES-256 key size in bytes.
	derivedKeyLength = 32
)

type derivationJob struct {
	salt   []byte
	result chan<- []byte
}

// KeyDerivationPool derives field keys on a fixed set of workers with a
// bounded queue. When the queue is full, Derive blocks the caller until
// capacity frees or the context is done; requests are never dropped.
type KeyDerivationPool struct {
	secret []byte
	jobs   chan derivationJob
	done   chan struct{}

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewKeyDerivationPool starts workers and returns the pool. The secret is the
// process-wide key material, passed in explicitly rather than read from
// ambient state.
func NewKeyDerivationPool(secret string, workers, queueSize int) (*KeyDerivationPool, error) {
	if secret == "" {
		return nil, errors.New("field encryption secret must be provided")
	}
	if workers <= 0 {
		return nil, errors.Errorf("invalid worker count: %d", workers)
	}
	if queueSize <= 0 {
		return nil, errors.Errorf("invalid queue size: %d", queueSize)
	}

	pool := &KeyDerivationPool{
		secret: []byte(secret),
		jobs:   make(chan derivationJob, queueSize),
		done:   make(chan struct{}),
	}

	pool.wg.Add(workers)
	for range workers {
		go pool.worker()
	}

	return pool, nil
}

// Derive computes the 256-bit field key for the given salt.
func (p *KeyDerivationPool) Derive(ctx context.Context, salt []byte) ([]byte, error) {
	result := make(chan []byte, 1)

	select {
	case p.jobs <- derivationJob{salt: salt, result: result}:
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "key derivation queue saturated")
	case <-p.done:
		return nil, errors.New("key derivation pool closed")
	}

	select {
	case key := <-result:
		return key, nil
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "key derivation timed out")
	case <-p.done:
		return nil, errors.New("key derivation pool closed")
	}
}

// Close stops the workers. In-flight derivations finish; queued ones whose
// callers are still waiting observe the pool as closed.
func (p *KeyDerivationPool) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
	p.wg.Wait()
}

func (p *KeyDerivationPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			return
		case job := <-p.jobs:
			job.result <- pbkdf2.Key(p.secret, job.salt, pbkdf2Iterations, derivedKeyLength, sha512.New)
		}
	}
}
