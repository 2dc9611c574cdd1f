package main

import (
	"fmt"
	"io"

	"github.com/dusk-indust/roster/internal/export"
	"github.com/dusk-indust/roster/internal/roster"
)

func runChart(w io.Writer, store *roster.FileStore) error {
	r, _, err := store.Load()
	if err != nil {
		return fmt.Errorf("chart failed: %w", err)
	}

	_, err = io.WriteString(w, export.GenerateMermaid(r))
	return err
}
