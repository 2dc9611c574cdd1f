package mcptools

import "github.com/dusk-indust/roster/internal/export"

// --- MCP Tool Types for the read-only roster server mode (-serve-mcp) ---
// These tools let an assistant inspect the student records without touching
// the storage file.

// ListStudentsInput is the input for the list_students MCP tool.
type ListStudentsInput struct{}

// ListStudentsOutput is the result of the list_students MCP tool.
type ListStudentsOutput struct {
	Students []export.StudentExport `json:"students"`
	Skipped  int                    `json:"skipped"` // corrupt storage lines ignored by the load
}

// GetStudentInput is the input for the get_student MCP tool.
type GetStudentInput struct {
	ID string `json:"id" jsonschema:"student identifier, e.g. S101"`
}

// GetStudentOutput is the result of the get_student MCP tool.
type GetStudentOutput struct {
	Found   bool                 `json:"found"`
	Student export.StudentExport `json:"student"`
}

// GetTopperInput is the input for the get_topper MCP tool.
type GetTopperInput struct{}

// GetTopperOutput is the result of the get_topper MCP tool. Found is false
// when there are no records.
type GetTopperOutput struct {
	Found   bool    `json:"found"`
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Average float64 `json:"average"`
}
