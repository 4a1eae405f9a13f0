package concurrency

import (
	"sync"
)

// Lock names shared by jobs that mutate the same engine state
const (
	LockEngineTick = "engine.tick"
)

// LockManager hands out one mutex per name, created on first use
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

func (lm *LockManager) mutex(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the named lock, waiting for it if needed
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.mutex(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// TryWithLock runs fn only if the named lock is free, reporting whether it ran.
// A skipped call returns (false, nil).
func (lm *LockManager) TryWithLock(key string, fn func() error) (bool, error) {
	mu := lm.mutex(key)
	if !mu.TryLock() {
		return false, nil
	}
	defer mu.Unlock()
	return true, fn()
}
