package state

import (
	"sync"
)

// Attributes holds the metadata fields describing the currently selected
// rover. The zero value means no rover has been fetched yet.
type Attributes struct {
	Name        string
	LaunchDate  string
	LandingDate string
	EarthDate   string // date of the last photo transmission
	Status      string
}

// IsZero reports whether no attributes have been recorded.
func (a Attributes) IsZero() bool {
	return a == Attributes{}
}

// Snapshot is one immutable value of the dashboard state, replaced wholesale
// on each update.
type Snapshot struct {
	Active     string   // slug of the selected rover, empty when none
	Rovers     []string // fixed roster, set at construction, never mutated
	Images     []string // photo URLs from the latest successful fetch
	Attributes Attributes
}

// Patch is a typed partial update. Nil fields are carried over unchanged
// from the previous snapshot.
type Patch struct {
	Active     *string
	Images     *[]string
	Attributes *Attributes
}

// Store owns the single snapshot slot. Apply is the only mutation primitive.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore builds a Store seeded with the rover roster and no selection.
func NewStore(rovers []string) *Store {
	s := &Store{}
	s.snapshot.Rovers = cloneStrings(rovers)
	return s
}

// Apply merges the patch into the current snapshot and replaces it. Fields
// absent from the patch are carried over; the rover roster is never touched.
// The operation is total and returns the new snapshot.
func (s *Store) Apply(p Patch) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot
	if p.Active != nil {
		next.Active = *p.Active
	}
	if p.Images != nil {
		next.Images = cloneStrings(*p.Images)
	}
	if p.Attributes != nil {
		next.Attributes = *p.Attributes
	}
	s.snapshot = next
	return s.cloneLocked()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneLocked()
}

func (s *Store) cloneLocked() Snapshot {
	snap := s.snapshot
	snap.Rovers = cloneStrings(s.snapshot.Rovers)
	snap.Images = cloneStrings(s.snapshot.Images)
	return snap
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
