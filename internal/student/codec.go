package student

import (
	"fmt"
	"strconv"
	"strings"
)

// Storage line layout: <id>,<name>,<subject>=<score>;<subject>=<score>;...
const (
	fieldSep = ","
	markSep  = ";"
	pairSep  = "="
)

// Line encodes s as one storage line without the trailing newline. A record
// without marks still carries the trailing field separator.
func (s *Student) Line() string {
	var sb strings.Builder
	sb.WriteString(s.ID)
	sb.WriteString(fieldSep)
	sb.WriteString(s.Name)
	sb.WriteString(fieldSep)
	for i, mk := range s.Marks {
		if i > 0 {
			sb.WriteString(markSep)
		}
		sb.WriteString(mk.Subject)
		sb.WriteString(pairSep)
		sb.WriteString(strconv.Itoa(mk.Score))
	}
	return sb.String()
}

// ParseLine decodes one storage line. Only the first two commas split fields,
// so the marks segment is taken verbatim. Mark items without "=" are ignored.
func ParseLine(line string) (*Student, error) {
	line = strings.TrimSpace(line)

	parts := strings.SplitN(line, fieldSep, 3)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: expected at least 2 comma-separated fields, got %d", ErrInvalidFormat, len(parts))
	}
	if parts[0] == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrInvalidFormat)
	}

	s := &Student{ID: parts[0], Name: parts[1]}
	if len(parts) < 3 || parts[2] == "" {
		return s, nil
	}

	for _, item := range strings.Split(parts[2], markSep) {
		if !strings.Contains(item, pairSep) {
			continue
		}
		kv := strings.Split(item, pairSep)
		if len(kv) != 2 {
			return nil, fmt.Errorf("%w: mark %q has more than one %q", ErrInvalidFormat, item, pairSep)
		}
		score, err := ParseScore(kv[1])
		if err != nil {
			return nil, fmt.Errorf("subject %q: %w", strings.TrimSpace(kv[0]), err)
		}
		s.Marks.Set(strings.TrimSpace(kv[0]), score)
	}
	return s, nil
}
