package plot

import (
	"sync"

	"eisview/domain/eis"
)

// Store is the single-slot holder for the most recently plotted LongTable.
// Each query overwrites the slot and an export reads whatever was written
// last. Last write wins: a query racing an export is acceptable because the
// slot represents "current view", not a queue.
type Store struct {
	mu    sync.RWMutex
	table eis.LongTable
	set   bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the stored table.
func (s *Store) Set(table eis.LongTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	s.set = true
}

// Get returns the last stored table and whether anything has been stored.
func (s *Store) Get() (eis.LongTable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table, s.set
}
