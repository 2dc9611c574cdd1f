package student

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Score bounds, inclusive.
const (
	MinScore = 0
	MaxScore = 100
)

var (
	ErrInvalidFormat   = errors.New("invalid format")
	ErrNotANumber      = errors.New("score is not a whole number")
	ErrScoreOutOfRange = fmt.Errorf("score must be between %d and %d", MinScore, MaxScore)
	ErrEmpty           = errors.New("value cannot be empty")
	ErrReservedChar    = errors.New("value contains a reserved character")
)

// ParseScore parses a whole-number score in [MinScore, MaxScore].
func ParseScore(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, strings.TrimSpace(text))
	}
	if n < MinScore || n > MaxScore {
		return 0, fmt.Errorf("%w: got %d", ErrScoreOutOfRange, n)
	}
	return n, nil
}

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest, the normalization applied to names and subjects on input. Words are
// split by Unicode word boundaries, so an apostrophe stays inside a word:
// "o'brien" becomes "O'brien".
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// ValidateID rejects identifiers the storage line cannot hold.
func ValidateID(id string) error {
	return validateField("identifier", id, fieldSep)
}

// ValidateName rejects names the storage line cannot hold. Empty names are
// allowed.
func ValidateName(name string) error {
	if strings.Contains(name, fieldSep) {
		return fmt.Errorf("name: %w %q", ErrReservedChar, fieldSep)
	}
	return nil
}

// ValidateSubject rejects subject names that would break the marks segment.
func ValidateSubject(subject string) error {
	return validateField("subject", subject, fieldSep+markSep+pairSep)
}

func validateField(field, value, reserved string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s: %w", field, ErrEmpty)
	}
	if i := strings.IndexAny(value, reserved); i >= 0 {
		return fmt.Errorf("%s: %w %q", field, ErrReservedChar, value[i:i+1])
	}
	return nil
}
