package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dusk-indust/roster/internal/student"
)

// MaxLineBytes bounds one storage line. Longer lines are skipped by Load
// rather than read into memory.
const MaxLineBytes = 1 << 20

// ErrLineTooLong marks a storage line longer than MaxLineBytes.
var ErrLineTooLong = errors.New("line too long")

// LineError describes one storage line that could not be parsed.
type LineError struct {
	Line int    // 1-based line number
	Text string // raw line content
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// LoadReport summarizes a Load.
type LoadReport struct {
	Loaded  int
	Skipped []*LineError
}

// FileStore persists a Roster to a flat text file, one record per line.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (st *FileStore) Path() string {
	return st.path
}

// Load reads every record from the file. A missing file yields an empty
// roster and no error. If the file cannot be read, Load returns an empty
// roster together with the error. Lines that fail to parse or exceed
// MaxLineBytes are skipped, logged and listed in the report; they never abort
// the load.
func (st *FileStore) Load() (*Roster, LoadReport, error) {
	var report LoadReport

	f, err := os.Open(st.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), report, nil
		}
		return New(), report, fmt.Errorf("open %s: %w", st.path, err)
	}
	defer f.Close()

	r := New()
	br := bufio.NewReader(f)
	for lineNo := 1; ; lineNo++ {
		text, tooLong, err := readLine(br, MaxLineBytes)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return New(), LoadReport{}, fmt.Errorf("read %s: %w", st.path, err)
		}

		if tooLong {
			le := &LineError{Line: lineNo, Text: text + "...", Err: fmt.Errorf("%w: over %d bytes", ErrLineTooLong, MaxLineBytes)}
			report.Skipped = append(report.Skipped, le)
			slog.Warn("oversized data line skipped", "path", st.path, "line", lineNo, "limit", MaxLineBytes)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		s, err := student.ParseLine(text)
		if err != nil {
			le := &LineError{Line: lineNo, Text: strings.TrimSpace(text), Err: err}
			report.Skipped = append(report.Skipped, le)
			slog.Warn("corrupt data line skipped", "path", st.path, "line", lineNo, "error", err)
			continue
		}
		r.Put(s)
	}

	report.Loaded = r.Len()
	return r, report, nil
}

// Save overwrites the file with every record in roster order. The data is
// written to a temporary file in the same directory and renamed into place,
// so readers see either the old or the new content. The roster is not
// modified whether or not Save succeeds.
func (st *FileStore) Save(r *Roster) (err error) {
	dir := filepath.Dir(st.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(st.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, s := range r.All() {
		if _, err := w.WriteString(s.Line() + "\n"); err != nil {
			return fmt.Errorf("write %s: %w", tmp.Name(), err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), fileMode(st.path)); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), st.path); err != nil {
		return fmt.Errorf("replace %s: %w", st.path, err)
	}

	slog.Debug("roster saved", "path", st.path, "records", r.Len())
	return nil
}

// readLine returns the next line without its line ending. A line longer than
// limit is consumed to its end and reported with tooLong set; only a short
// prefix of it is returned. io.EOF is returned once no data is left.
func readLine(br *bufio.Reader, limit int) (line string, tooLong bool, err error) {
	var buf []byte
	read := false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				break
			}
			return "", false, err
		}
		read = true
		if !tooLong {
			if len(buf)+len(chunk) > limit {
				tooLong = true
				buf = append(buf[:0:0], buf[:min(len(buf), 32)]...)
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	return string(buf), tooLong, nil
}

// fileMode keeps the permissions of an existing file; new files get 0644.
func fileMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}
