// Package ids provides the injected identifier generator used for new
// feature records. Production code uses random UUIDs; tests inject the
// sequential generator so fixtures stay deterministic without mocking
// the clock.
package ids

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces opaque unique identifiers
type Generator interface {
	// NewID returns a fresh identifier, unique within this process
	NewID() string
}

// UUIDGenerator issues random version-4 UUIDs
type UUIDGenerator struct{}

// NewUUID creates the default production generator
func NewUUID() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID implements Generator.NewID
func (g *UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SequenceGenerator issues "prefix-1", "prefix-2", ... in order.
// Safe for concurrent use.
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequence creates a deterministic generator with the given prefix
func NewSequence(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix, next: 1}
}

// NewID implements Generator.NewID
func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := fmt.Sprintf("%s-%d", g.prefix, g.next)
	g.next++
	return id
}
