package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dusk-indust/roster/internal/mcptools"
	"github.com/dusk-indust/roster/internal/roster"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"
)

// runServeMCP serves the read-only roster tools on stdio until stdin closes
// or the process is interrupted.
func runServeMCP(ctx context.Context, store *roster.FileStore) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serveMCP(ctx, store, &mcp.StdioTransport{})
}

// serveMCP runs the tool server on transport and, alongside it, checks the
// storage file once so corrupt or unreadable data shows up in the log at
// start-up rather than on the first tool call.
func serveMCP(ctx context.Context, store *roster.FileStore, transport mcp.Transport) error {
	server := mcptools.NewRosterMCPServer(mcptools.NewRosterService(store), version)
	slog.Info("mcp server starting", "path", store.Path(), "version", version)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return mcptools.RunRosterMCPServer(gctx, server, transport)
	})
	g.Go(func() error {
		return checkStorage(store)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("mcp server stopped")
	return nil
}

// checkStorage loads the file once and logs what the tools will see. Skipped
// lines are logged by the load itself. An unreadable file is not fatal since
// every tool call reloads it.
func checkStorage(store *roster.FileStore) error {
	r, report, err := store.Load()
	if err != nil {
		slog.Warn("storage check failed", "path", store.Path(), "error", err)
		return nil
	}
	slog.Info("storage checked", "path", store.Path(), "records", r.Len(), "skipped", len(report.Skipped))
	return nil
}
