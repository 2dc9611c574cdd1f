// Package student holds the student record model: identity, name, the ordered
// subject scores, the derived average and the one-line storage encoding.
package student

import (
	"fmt"
	"strings"
)

// Mark is a single subject score.
type Mark struct {
	Subject string `json:"subject"`
	Score   int    `json:"score"`
}

// Marks is an ordered subject -> score mapping. Subjects are unique and keep
// the position of their first insertion.
type Marks []Mark

// Set inserts or overwrites the score for subject. An existing subject keeps
// its position.
func (m *Marks) Set(subject string, score int) {
	for i := range *m {
		if (*m)[i].Subject == subject {
			(*m)[i].Score = score
			return
		}
	}
	*m = append(*m, Mark{Subject: subject, Score: score})
}

// Get returns the score recorded for subject.
func (m Marks) Get(subject string) (int, bool) {
	for _, mk := range m {
		if mk.Subject == subject {
			return mk.Score, true
		}
	}
	return 0, false
}

// Len returns the number of subjects.
func (m Marks) Len() int {
	return len(m)
}

// Clone returns an independent copy. A nil Marks clones to nil.
func (m Marks) Clone() Marks {
	if m == nil {
		return nil
	}
	out := make(Marks, len(m))
	copy(out, m)
	return out
}

// Student is one record, keyed by ID.
type Student struct {
	ID    string
	Name  string
	Marks Marks
}

// New returns a Student with a copy of marks.
func New(id, name string, marks Marks) *Student {
	return &Student{ID: id, Name: name, Marks: marks.Clone()}
}

// Average returns the mean of all scores, or 0 when there are none.
func (s *Student) Average() float64 {
	if len(s.Marks) == 0 {
		return 0
	}
	total := 0
	for _, mk := range s.Marks {
		total += mk.Score
	}
	return float64(total) / float64(len(s.Marks))
}

// Clone returns a deep copy of s.
func (s *Student) Clone() *Student {
	return New(s.ID, s.Name, s.Marks)
}

// String renders the record for display:
//
//	ID: S101, Name: Ada Lovelace, Marks: {Math: 90, Physics: 80}, Average: 85.00
func (s *Student) String() string {
	parts := make([]string, len(s.Marks))
	for i, mk := range s.Marks {
		parts[i] = fmt.Sprintf("%s: %d", mk.Subject, mk.Score)
	}
	return fmt.Sprintf("ID: %s, Name: %s, Marks: {%s}, Average: %.2f",
		s.ID, s.Name, strings.Join(parts, ", "), s.Average())
}
