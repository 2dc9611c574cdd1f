// Package roster holds the in-memory record collection and its flat-file
// persistence.
package roster

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dusk-indust/roster/internal/student"
)

var (
	ErrAlreadyExists = errors.New("student already exists")
	ErrNotFound      = errors.New("student not found")
)

// Roster is the collection of student records keyed by ID. Records are
// stored in a map with a separate slice maintaining insertion order, so
// listing, saving and topper selection are deterministic.
type Roster struct {
	mu       sync.RWMutex
	students map[string]*student.Student
	orderIDs []string
}

// New returns an empty Roster ready for use.
func New() *Roster {
	return &Roster{
		students: make(map[string]*student.Student),
		orderIDs: make([]string, 0),
	}
}

// Add stores a new record. It returns ErrAlreadyExists, leaving the roster
// untouched, if the ID is taken.
func (r *Roster) Add(s *student.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.students[s.ID]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyExists, s.ID)
	}
	r.students[s.ID] = s
	r.orderIDs = append(r.orderIDs, s.ID)
	return nil
}

// Put stores s, replacing any record with the same ID in place.
func (r *Roster) Put(s *student.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.students[s.ID]; !exists {
		r.orderIDs = append(r.orderIDs, s.ID)
	}
	r.students[s.ID] = s
}

// Get returns the stored record for id. The pointer is the live record;
// callers mutate it in place.
func (r *Roster) Get(id string) (*student.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.students[id]
	return s, ok
}

// Update applies fn to the record identified by id under the write lock.
func (r *Roster) Update(id string, fn func(*student.Student)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.students[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	fn(s)
	return nil
}

// Delete removes the record identified by id.
func (r *Roster) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.students[id]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	delete(r.students, id)
	for i, oid := range r.orderIDs {
		if oid == id {
			r.orderIDs = append(r.orderIDs[:i], r.orderIDs[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of records.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orderIDs)
}

// All returns deep copies of every record in insertion order.
func (r *Roster) All() []*student.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*student.Student, 0, len(r.orderIDs))
	for _, id := range r.orderIDs {
		out = append(out, r.students[id].Clone())
	}
	return out
}

// Standing pairs a record with its average.
type Standing struct {
	Student *student.Student
	Average float64
}

// Averages returns every record with its average, in insertion order.
func (r *Roster) Averages() []Standing {
	all := r.All()
	out := make([]Standing, len(all))
	for i, s := range all {
		out[i] = Standing{Student: s, Average: s.Average()}
	}
	return out
}

// Topper returns the record with the highest average. On ties the record
// inserted first wins. ok is false for an empty roster.
func (r *Roster) Topper() (top Standing, ok bool) {
	best := -1.0
	for _, st := range r.Averages() {
		if st.Average > best {
			best = st.Average
			top = st
			ok = true
		}
	}
	return top, ok
}
