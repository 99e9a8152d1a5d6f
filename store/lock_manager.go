package store

import "sync"

// operationType distinguishes read from write operations so the lock
// manager can pick the matching lock mode.
type operationType int

const (
	readOperation operationType = iota
	writeOperation
)

// lockManager centralizes in-process locking for the store. Every store
// method funnels through Execute with the correct operation type, which
// keeps the lock/unlock pairing in one place instead of scattered across
// each method.
type lockManager struct {
	mu sync.RWMutex
}

func newLockManager() *lockManager {
	return &lockManager{}
}

// Execute runs fn under a read lock for read operations and an exclusive
// lock for write operations. The lock is released via defer, so fn may
// panic without leaking the lock.
func (lm *lockManager) Execute(opType operationType, fn func() error) error {
	switch opType {
	case readOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case writeOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}
