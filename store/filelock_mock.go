package store

import (
	"context"
	"sync"
	"time"
)

// MockFileLock is an always-available FileLock for tests, tracking
// lock/unlock counts so tests can assert pairing
type MockFileLock struct {
	mu        sync.Mutex
	locked    bool
	lockError error

	LockAttempts   int
	UnlockAttempts int
}

// TryLockContext implements FileLock.TryLockContext
func (m *MockFileLock) TryLockContext(ctx context.Context, retryInterval time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LockAttempts++
	if m.lockError != nil {
		return false, m.lockError
	}
	if m.locked {
		return false, nil
	}
	m.locked = true
	return true, nil
}

// Unlock implements FileLock.Unlock
func (m *MockFileLock) Unlock() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UnlockAttempts++
	m.locked = false
	return nil
}

// SetLockError makes subsequent lock attempts fail with err
func (m *MockFileLock) SetLockError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lockError = err
}

// MockFileLockFactory hands out one MockFileLock per path
type MockFileLockFactory struct {
	mu    sync.Mutex
	locks map[string]*MockFileLock
}

// NewMockFileLockFactory creates an empty factory
func NewMockFileLockFactory() *MockFileLockFactory {
	return &MockFileLockFactory{locks: make(map[string]*MockFileLock)}
}

// New implements FileLockFactory.New
func (f *MockFileLockFactory) New(path string) FileLock {
	f.mu.Lock()
	defer f.mu.Unlock()
	if lock, ok := f.locks[path]; ok {
		return lock
	}
	lock := &MockFileLock{}
	f.locks[path] = lock
	return lock
}

// GetLock returns the lock created for path, if any
func (f *MockFileLockFactory) GetLock(path string) *MockFileLock {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locks[path]
}
