package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dusk-indust/roster/internal/roster"
	"github.com/dusk-indust/roster/internal/student"
)

// GenerateMermaid produces a Mermaid xychart-beta bar chart of every record's
// average, in roster order. An empty roster yields a chart with no bars.
func GenerateMermaid(r *roster.Roster) string {
	standings := r.Averages()

	labels := make([]string, len(standings))
	values := make([]string, len(standings))
	for i, st := range standings {
		labels[i] = strconv.Quote(label(st.Student))
		values[i] = strconv.FormatFloat(st.Average, 'f', 2, 64)
	}

	var sb strings.Builder
	sb.WriteString("xychart-beta\n")
	sb.WriteString("  title \"Student Averages\"\n")
	sb.WriteString(fmt.Sprintf("  x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("  y-axis \"Average\" %d --> %d\n", student.MinScore, student.MaxScore))
	sb.WriteString(fmt.Sprintf("  bar [%s]\n", strings.Join(values, ", ")))
	return sb.String()
}

// label is the x-axis label for a record: its ID, since names need not be
// unique.
func label(s *student.Student) string {
	return strings.ReplaceAll(s.ID, `"`, "'")
}
