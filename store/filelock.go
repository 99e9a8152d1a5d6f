package store

import (
	"context"
	"time"

	"github.com/gofrs/flock"
)

// FileLock guards the persisted state file against concurrent processes
type FileLock interface {
	// TryLockContext attempts to acquire an exclusive lock with retries
	TryLockContext(ctx context.Context, retryInterval time.Duration) (bool, error)

	// Unlock releases the lock
	Unlock() error
}

// FileLockFactory creates FileLock instances for a given path
type FileLockFactory interface {
	New(path string) FileLock
}

// flockWrapper adapts github.com/gofrs/flock to the FileLock interface
type flockWrapper struct {
	flock *flock.Flock
}

func (f *flockWrapper) TryLockContext(ctx context.Context, retryInterval time.Duration) (bool, error) {
	return f.flock.TryLockContext(ctx, retryInterval)
}

func (f *flockWrapper) Unlock() error {
	return f.flock.Unlock()
}

// FlockFactory is the default factory using gofrs/flock
type FlockFactory struct{}

// New implements FileLockFactory.New
func (f *FlockFactory) New(path string) FileLock {
	return &flockWrapper{flock: flock.New(path)}
}
