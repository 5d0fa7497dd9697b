// Package store holds the canonical in-memory collection of user records for
// the current session, plus the identifier of the record targeted by an open
// edit or delete dialog. The backing slice is never exposed for external
// mutation; all access goes through the methods below.
//
// Mutations are synchronous and local. Callers commit a mutation only after
// the corresponding remote call has succeeded, so no rollback is needed here.
package store

import "userdeck/internal/user"

// Store owns the ordered collection of user records. Order is arrival order
// from the remote fetch; create appends, delete removes in place.
type Store struct {
	records []user.User
	editing *int
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Load replaces the entire collection and clears any pending edit target.
// Used once after the initial fetch (and again on manual reload).
func (s *Store) Load(records []user.User) {
	s.records = make([]user.User, len(records))
	copy(s.records, records)
	s.editing = nil
}

// Add appends a record to the end of the collection. The caller is
// responsible for assigning a unique ID (see NextID).
func (s *Store) Add(u user.User) {
	s.records = append(s.records, u)
}

// Update merges the draft's editable fields into the record matching id,
// leaving ID and position untouched. Returns false if no record matches;
// a missing id is a silent no-op, not an error, because the target may have
// been deleted while the edit dialog was open.
func (s *Store) Update(id int, d user.Draft) bool {
	for i := range s.records {
		if s.records[i].ID == id {
			d.Apply(&s.records[i])
			return true
		}
	}
	return false
}

// Remove deletes the record matching id. Returns false if no record matches.
func (s *Store) Remove(id int) bool {
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the record matching id.
func (s *Store) Get(id int) (user.User, bool) {
	for _, u := range s.records {
		if u.ID == id {
			return u, true
		}
	}
	return user.User{}, false
}

// All returns a copy of the collection in order.
func (s *Store) All() []user.User {
	out := make([]user.User, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// NextID returns max existing ID + 1. The remote sandbox echoes a fixed
// placeholder ID on create, so new records are numbered locally to keep the
// uniqueness invariant.
func (s *Store) NextID() int {
	max := 0
	for _, u := range s.records {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// SetEditing marks id as the target of an open edit or delete dialog.
// At most one target exists at a time.
func (s *Store) SetEditing(id int) {
	s.editing = &id
}

// ClearEditing clears the dialog target. Called on close, cancel, and
// successful commit.
func (s *Store) ClearEditing() {
	s.editing = nil
}

// Editing returns the current dialog target, if any.
func (s *Store) Editing() (int, bool) {
	if s.editing == nil {
		return 0, false
	}
	return *s.editing, true
}
