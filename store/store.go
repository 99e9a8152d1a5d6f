// Package store holds the working set of features and persists it to a
// single JSON document in the PersistedState shape. Mutations refresh
// updatedAt, save synchronously, and List always returns the set in
// ranking order, so callers see a current order after every change.
//
// Cross-process access is guarded by a lock file next to the state file;
// in-process access by a read/write lock manager.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/arthur-debert/riceboard/ids"
	"github.com/arthur-debert/riceboard/rice"
	"github.com/arthur-debert/riceboard/types"
)

const (
	lockTimeout    = 3 * time.Second
	lockMaxRetries = 3
	lockRetryDelay = 100 * time.Millisecond
)

// Store is a file-backed working set of features
type Store struct {
	path        string
	lockManager *lockManager
	fs          FileSystem
	lockFactory FileLockFactory
	fileLock    FileLock
	gen         ids.Generator

	// timeFunc supplies timestamps, overridable for tests
	timeFunc func() time.Time

	state types.PersistedState
}

// Option configures a Store at Open time
type Option func(*Store)

// WithFileSystem replaces the disk-backed filesystem
func WithFileSystem(fs FileSystem) Option {
	return func(s *Store) { s.fs = fs }
}

// WithLockFactory replaces the flock-based file lock factory
func WithLockFactory(factory FileLockFactory) Option {
	return func(s *Store) { s.lockFactory = factory }
}

// WithIDGenerator replaces the UUID identifier generator
func WithIDGenerator(gen ids.Generator) Option {
	return func(s *Store) { s.gen = gen }
}

// WithTimeFunc replaces the clock used for timestamps
func WithTimeFunc(fn func() time.Time) Option {
	return func(s *Store) { s.timeFunc = fn }
}

// Open loads (or initializes) the store at path.
//
// When the file holds a state written at a different schema version,
// Open returns the store together with ErrVersionMismatch: the loaded
// features are discarded and the caller chooses between Reset and
// aborting.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:        path,
		lockManager: newLockManager(),
		timeFunc:    time.Now,
		state:       types.NewPersistedState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = &OSFileSystem{}
	}
	if s.lockFactory == nil {
		s.lockFactory = &FlockFactory{}
	}
	if s.gen == nil {
		s.gen = ids.NewUUID()
	}
	s.fileLock = s.lockFactory.New(path + ".lock")

	if err := s.loadWithLock(); err != nil {
		if errors.Is(err, ErrVersionMismatch) {
			return s, err
		}
		return nil, fmt.Errorf("failed to load store: %w", err)
	}
	return s, nil
}

// List returns the working set sorted by descending priority
func (s *Store) List() []types.Feature {
	var result []types.Feature
	_ = s.lockManager.Execute(readOperation, func() error {
		result = rice.Sorted(s.state.Features)
		return nil
	})
	return result
}

// Get returns the feature with the given identifier
func (s *Store) Get(id string) (types.Feature, bool) {
	var (
		found   bool
		feature types.Feature
	)
	_ = s.lockManager.Execute(readOperation, func() error {
		for _, f := range s.state.Features {
			if f.ID == id {
				feature = f.Clone()
				found = true
				return nil
			}
		}
		return nil
	})
	return feature, found
}

// Add creates a feature with the given name and otherwise empty
// scorable fields, and persists the new set
func (s *Store) Add(name string) (types.Feature, error) {
	var feature types.Feature
	err := s.lockManager.Execute(writeOperation, func() error {
		now := s.timeFunc()
		feature = types.Feature{
			ID:        s.gen.NewID(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.state.Features = append(s.state.Features, feature)
		return s.saveWithLock()
	})
	if err != nil {
		return types.Feature{}, err
	}
	return feature, nil
}

// UpdateRequest names the fields to change; nil pointers leave a field
// untouched. A pointer to the zero Value clears that field, ClearReach
// clears reach.
type UpdateRequest struct {
	Name        *string
	Description *string
	Reach       *float64
	ClearReach  bool
	Impact      *types.Value
	Confidence  *types.Value
	Effort      *types.Value
}

// Update mutates a feature field-by-field, refreshes updatedAt and
// persists the set
func (s *Store) Update(id string, req UpdateRequest) (types.Feature, error) {
	var updated types.Feature
	err := s.lockManager.Execute(writeOperation, func() error {
		for i := range s.state.Features {
			f := &s.state.Features[i]
			if f.ID != id {
				continue
			}
			if req.Name != nil {
				f.Name = *req.Name
			}
			if req.Description != nil {
				f.Description = *req.Description
			}
			if req.ClearReach {
				f.Reach = nil
			} else if req.Reach != nil {
				r := *req.Reach
				f.Reach = &r
			}
			if req.Impact != nil {
				f.Impact = *req.Impact
			}
			if req.Confidence != nil {
				f.Confidence = *req.Confidence
			}
			if req.Effort != nil {
				f.Effort = *req.Effort
			}
			f.UpdatedAt = s.timeFunc()
			updated = f.Clone()
			return s.saveWithLock()
		}
		return ErrNotFound
	})
	if err != nil {
		return types.Feature{}, err
	}
	return updated, nil
}

// Delete removes a feature and persists the set
func (s *Store) Delete(id string) error {
	return s.lockManager.Execute(writeOperation, func() error {
		for i, f := range s.state.Features {
			if f.ID == id {
				s.state.Features = append(s.state.Features[:i], s.state.Features[i+1:]...)
				return s.saveWithLock()
			}
		}
		return ErrNotFound
	})
}

// ImportMode selects what happens to the existing working set when
// imported features are applied
type ImportMode int

const (
	// Merge appends imported features to the existing set
	Merge ImportMode = iota

	// Replace discards the existing set first
	Replace
)

// Apply merges or replaces the working set with imported features and
// persists the result
func (s *Store) Apply(features []types.Feature, mode ImportMode) error {
	return s.lockManager.Execute(writeOperation, func() error {
		incoming := types.CloneFeatures(features)
		if mode == Replace {
			s.state.Features = incoming
		} else {
			s.state.Features = append(s.state.Features, incoming...)
		}
		return s.saveWithLock()
	})
}

// Reset discards all features and writes a fresh state at the current
// schema version. This is the recovery path after ErrVersionMismatch.
func (s *Store) Reset() error {
	return s.lockManager.Execute(writeOperation, func() error {
		s.state = types.NewPersistedState()
		return s.saveWithLock()
	})
}

// Close releases the store. Present for symmetry with other stores;
// the JSON backend holds no open handles between operations.
func (s *Store) Close() error {
	return nil
}

func (s *Store) acquireLock(ctx context.Context) error {
	for i := 0; i < lockMaxRetries; i++ {
		locked, err := s.fileLock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}
		if locked {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
	return fmt.Errorf("failed to acquire lock after %d attempts", lockMaxRetries)
}

func (s *Store) releaseLock() error {
	return s.fileLock.Unlock()
}

func (s *Store) loadWithLock() error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	if err := s.acquireLock(ctx); err != nil {
		return err
	}
	defer func() { _ = s.releaseLock() }()

	return s.load()
}

// load reads the state file into memory. Caller must hold the file lock.
func (s *Store) load() error {
	if _, err := s.fs.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		// First run, nothing persisted yet
		return nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read state file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var state types.PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}
	if state.Version != types.CurrentStateVersion {
		return fmt.Errorf("%w: file has version %d, expected %d",
			ErrVersionMismatch, state.Version, types.CurrentStateVersion)
	}
	if state.Features == nil {
		state.Features = []types.Feature{}
	}

	s.state = state
	return nil
}

// saveWithLock persists the current state. Caller must hold the
// in-process write lock.
func (s *Store) saveWithLock() error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	if err := s.acquireLock(ctx); err != nil {
		return err
	}
	defer func() { _ = s.releaseLock() }()

	return s.save()
}

// save writes the state atomically: temp file first, then rename
func (s *Store) save() error {
	s.state.Version = types.CurrentStateVersion
	s.state.LastSavedAt = s.timeFunc()

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmpFile := s.path + ".tmp"
	if err := s.fs.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := s.fs.Rename(tmpFile, s.path); err != nil {
		_ = s.fs.Remove(tmpFile)
		return fmt.Errorf("failed to rename state file: %w", err)
	}
	return nil
}
