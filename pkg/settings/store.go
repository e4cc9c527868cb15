package settings

import (
	"context"
	"log"
	"sync"
	"time"
)

// Revision is a single applied update of the record
type Revision struct {
	Revision  int64     `json:"revision"`
	Record    Record    `json:"record"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Journal records applied revisions. The store never restores its state from it.
type Journal interface {
	AddRevision(ctx context.Context, rev Revision) error
	ListRevisions(ctx context.Context, limit int) ([]Revision, error)
}

// Store owns the current record. Updates are serialized, reads see the last applied record.
type Store struct {
	mu      sync.RWMutex
	rec     Record
	rev     int64
	journal Journal
	now     func() time.Time
}

// NewStore makes a store initialized with the given record. journal may be nil.
func NewStore(initial Record, journal Journal) *Store {
	return &Store{rec: initial, journal: journal, now: time.Now}
}

// Get returns the current record
func (s *Store) Get() Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rec
}

// Update merges the patch into the current record, stores and returns the result.
// Journal failures are logged and don't affect the in-memory update.
func (s *Store) Update(ctx context.Context, p Patch) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rec = s.rec.Merge(p)
	s.rev++

	if s.journal != nil {
		rev := Revision{Revision: s.rev, Record: s.rec, UpdatedAt: s.now().UTC()}
		if err := s.journal.AddRevision(ctx, rev); err != nil {
			log.Printf("[WARN] failed to journal settings revision %d: %v", rev.Revision, err)
		}
	}
	return s.rec
}

// History returns up to limit most recent revisions, newest first
func (s *Store) History(ctx context.Context, limit int) ([]Revision, error) {
	if s.journal == nil {
		return []Revision{}, nil
	}
	return s.journal.ListRevisions(ctx, limit)
}
