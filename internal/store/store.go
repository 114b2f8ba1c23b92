// Package store holds the immutable in-memory collection of company records.
package store

import (
	"time"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
)

// Store is populated once and never mutated afterwards, so it is safe for
// any number of concurrent readers.
type Store struct {
	companies []domain.Company
	index     map[int]int
	loaded    bool
	loadedAt  time.Time
	source    string
}

// New builds a loaded store from records already in memory. Records with an
// id seen earlier are dropped.
func New(companies []domain.Company) *Store {
	s, _ := build(companies, "memory")
	return s
}

// empty returns the store used after a failed load.
func empty(source string) *Store {
	return &Store{
		companies: []domain.Company{},
		index:     map[int]int{},
		source:    source,
	}
}

// build indexes companies and returns the ids that were dropped as duplicates.
func build(companies []domain.Company, source string) (*Store, []int) {
	kept := make([]domain.Company, 0, len(companies))
	index := make(map[int]int, len(companies))
	var dropped []int

	for i := range companies {
		id := companies[i].ID
		if _, dup := index[id]; dup {
			dropped = append(dropped, id)
			continue
		}
		index[id] = len(kept)
		kept = append(kept, companies[i])
	}

	return &Store{
		companies: kept,
		index:     index,
		loaded:    true,
		loadedAt:  time.Now().UTC(),
		source:    source,
	}, dropped
}

// All returns every record in source order. The slice is shared; callers
// must not modify it.
func (s *Store) All() []domain.Company {
	return s.companies
}

// ByID returns the record with the given id.
func (s *Store) ByID(id int) (domain.Company, bool) {
	i, ok := s.index[id]
	if !ok {
		return domain.Company{}, false
	}
	return s.companies[i], true
}

// Count returns the number of records.
func (s *Store) Count() int {
	return len(s.companies)
}

// Loaded is false when the dataset could not be read.
func (s *Store) Loaded() bool {
	return s.loaded
}

// LoadedAt is the time the dataset was read. Zero when not loaded.
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}

// Source describes where the records came from.
func (s *Store) Source() string {
	return s.source
}
