package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewRosterMCPServer creates an MCP server with the 3 read-only roster tools
// registered: list_students, get_student and get_topper. version is reported
// to clients in the initialize handshake.
func NewRosterMCPServer(svc *RosterService, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "roster",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_students",
		Description: "List every student record with identifier, name, subject scores and average, in storage order.",
	}, svc.ListStudents)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_student",
		Description: "Look up one student record by identifier. Returns found=false when no record has that identifier.",
	}, svc.GetStudent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_topper",
		Description: "Return the student with the highest average score. On ties the student stored first wins.",
	}, svc.GetTopper)

	return server
}

// RunRosterMCPServer serves on transport, blocking until the client
// disconnects or the context is cancelled.
func RunRosterMCPServer(ctx context.Context, server *mcp.Server, transport mcp.Transport) error {
	return server.Run(ctx, transport)
}
