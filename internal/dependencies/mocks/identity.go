package mocks

import (
	"fmt"

	"github.com/mlaroche/scoretally/internal/dependencies/identity"
)

// MockIDs is a mock implementation of identity.Generator for testing.
// Queued IDs are returned in order; once exhausted it falls back to a
// deterministic sequence so tests without explicit IDs still work.
type MockIDs struct {
	queue []string
	index int
	seq   int
}

// Ensure MockIDs implements Generator
var _ identity.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// NewID returns the next queued id, or "id-N" when the queue is empty
func (m *MockIDs) NewID() string {
	if m.index < len(m.queue) {
		id := m.queue[m.index]
		m.index++
		return id
	}
	m.seq++
	return fmt.Sprintf("id-%d", m.seq)
}

// Queue adds ids to the result queue
func (m *MockIDs) Queue(ids ...string) {
	m.queue = append(m.queue, ids...)
}

// Reset clears all queued ids and the fallback sequence
func (m *MockIDs) Reset() {
	m.queue = nil
	m.index = 0
	m.seq = 0
}
