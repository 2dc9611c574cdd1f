package export

import (
	"time"

	"github.com/dusk-indust/roster/internal/roster"
	"github.com/dusk-indust/roster/internal/student"
)

// RosterExport is the top-level JSON export structure.
type RosterExport struct {
	ExportedAt string          `json:"exportedAt"`
	DataFile   string          `json:"dataFile,omitempty"`
	Students   []StudentExport `json:"students"`
	Topper     *TopperExport   `json:"topper,omitempty"`
}

// StudentExport describes one record.
type StudentExport struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Marks   []student.Mark `json:"marks"`
	Average float64        `json:"average"`
}

// TopperExport names the record with the highest average.
type TopperExport struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Average float64 `json:"average"`
}

// ExportRoster builds a RosterExport from r in roster order.
func ExportRoster(r *roster.Roster, dataFile string) *RosterExport {
	export := &RosterExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		DataFile:   dataFile,
		Students:   make([]StudentExport, 0, r.Len()),
	}

	for _, st := range r.Averages() {
		marks := st.Student.Marks.Clone()
		if marks == nil {
			marks = student.Marks{}
		}
		export.Students = append(export.Students, StudentExport{
			ID:      st.Student.ID,
			Name:    st.Student.Name,
			Marks:   marks,
			Average: st.Average,
		})
	}

	if top, ok := r.Topper(); ok {
		export.Topper = &TopperExport{
			ID:      top.Student.ID,
			Name:    top.Student.Name,
			Average: top.Average,
		}
	}

	return export
}
