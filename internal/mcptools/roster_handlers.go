package mcptools

import (
	"context"
	"fmt"

	"github.com/dusk-indust/roster/internal/export"
	"github.com/dusk-indust/roster/internal/roster"
	"github.com/dusk-indust/roster/internal/student"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Loader reads the current roster from storage.
type Loader interface {
	Load() (*roster.Roster, roster.LoadReport, error)
}

// RosterService handles MCP tool calls for the roster server mode. Every
// call reloads the storage file, so answers track edits made by an
// interactive session running alongside.
type RosterService struct {
	loader Loader
}

// NewRosterService creates a RosterService reading through loader.
func NewRosterService(loader Loader) *RosterService {
	return &RosterService{loader: loader}
}

func (s *RosterService) load() (*roster.Roster, roster.LoadReport, error) {
	r, report, err := s.loader.Load()
	if err != nil {
		return nil, report, fmt.Errorf("load roster: %w", err)
	}
	return r, report, nil
}

// ListStudents returns every record with its average, in storage order.
func (s *RosterService) ListStudents(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListStudentsInput,
) (*mcp.CallToolResult, ListStudentsOutput, error) {
	r, report, err := s.load()
	if err != nil {
		return nil, ListStudentsOutput{}, err
	}

	return nil, ListStudentsOutput{
		Students: export.ExportRoster(r, "").Students,
		Skipped:  len(report.Skipped),
	}, nil
}

// GetStudent looks up one record by identifier.
func (s *RosterService) GetStudent(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetStudentInput,
) (*mcp.CallToolResult, GetStudentOutput, error) {
	if input.ID == "" {
		return nil, GetStudentOutput{}, fmt.Errorf("id is required")
	}

	r, _, err := s.load()
	if err != nil {
		return nil, GetStudentOutput{}, err
	}

	for _, st := range export.ExportRoster(r, "").Students {
		if st.ID == input.ID {
			return nil, GetStudentOutput{Found: true, Student: st}, nil
		}
	}
	return nil, GetStudentOutput{Student: export.StudentExport{Marks: []student.Mark{}}}, nil
}

// GetTopper reports the record with the highest average; the earliest
// record wins ties.
func (s *RosterService) GetTopper(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ GetTopperInput,
) (*mcp.CallToolResult, GetTopperOutput, error) {
	r, _, err := s.load()
	if err != nil {
		return nil, GetTopperOutput{}, err
	}

	top, ok := r.Topper()
	if !ok {
		return nil, GetTopperOutput{}, nil
	}
	return nil, GetTopperOutput{
		Found:   true,
		ID:      top.Student.ID,
		Name:    top.Student.Name,
		Average: top.Average,
	}, nil
}
