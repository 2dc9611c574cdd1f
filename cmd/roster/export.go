package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dusk-indust/roster/internal/export"
	"github.com/dusk-indust/roster/internal/roster"
)

func runExport(w io.Writer, store *roster.FileStore) error {
	r, _, err := store.Load()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	out, err := json.MarshalIndent(export.ExportRoster(r, store.Path()), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	_, err = w.Write(append(out, '\n'))
	return err
}
