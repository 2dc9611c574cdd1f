package console

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dusk-indust/roster/internal/roster"
	"github.com/dusk-indust/roster/internal/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is a test double for Store that counts saves.
type fakeStore struct {
	saves int
	err   error
	lines []string // lines written by the last successful save
}

func (f *fakeStore) Save(r *roster.Roster) error {
	if f.err != nil {
		return f.err
	}
	f.saves++
	f.lines = f.lines[:0]
	for _, s := range r.All() {
		f.lines = append(f.lines, s.Line())
	}
	return nil
}

func (f *fakeStore) Path() string { return "students.txt" }

// runScript feeds one answer per line to a fresh Console and returns its
// output.
func runScript(t *testing.T, r *roster.Roster, store Store, answers ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	require.NoError(t, New(in, &out, r, store).Run(context.Background()))
	return out.String()
}

func seeded(t *testing.T, records ...*student.Student) *roster.Roster {
	t.Helper()
	r := roster.New()
	for _, s := range records {
		require.NoError(t, r.Add(s))
	}
	return r
}

func ada() *student.Student {
	return student.New("S1", "Ada Lovelace", student.Marks{{Subject: "Math", Score: 90}, {Subject: "Physics", Score: 80}})
}

func TestConsole_ExitChoice(t *testing.T) {
	out := runScript(t, roster.New(), &fakeStore{}, "6")
	assert.Contains(t, out, "--- Main Menu ---")
	assert.Contains(t, out, "6. Exit")
	assert.Contains(t, out, "Goodbye!")
}

func TestConsole_EndOfInputExits(t *testing.T) {
	var out bytes.Buffer
	err := New(strings.NewReader(""), &out, roster.New(), &fakeStore{}).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestConsole_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(strings.NewReader("6\n"), &bytes.Buffer{}, roster.New(), &fakeStore{}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsole_InvalidMenuChoice(t *testing.T) {
	out := runScript(t, roster.New(), &fakeStore{}, "9", "abc", "", "6")
	assert.Equal(t, 3, strings.Count(out, "Invalid choice. Please enter a number between 1 and 6."))
	assert.Equal(t, 4, strings.Count(out, "--- Main Menu ---"))
}

func TestConsole_LongAnswerLineIsOrdinaryInput(t *testing.T) {
	long := strings.Repeat("S", 70*1024)
	out := runScript(t, seeded(t, ada()), &fakeStore{}, "3", long, "6")

	assert.Contains(t, out, "Error: Student with ID "+long+" not found.")
	assert.Contains(t, out, "Goodbye!")
}

func TestConsole_LastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	err := New(strings.NewReader("3\nS1\n6"), &out, seeded(t, ada()), &fakeStore{}).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "**Student Found**")
	assert.Contains(t, out.String(), "Exiting Student Management System. Goodbye!")
}

func TestConsole_AddStudent(t *testing.T) {
	r := roster.New()
	store := &fakeStore{}

	out := runScript(t, r, store,
		"1", "S1", "ada lovelace", "math", "90", "PHYSICS", "80", "DONE", "6")

	assert.Contains(t, out, "Student Ada Lovelace added successfully.")
	assert.Contains(t, out, "Data saved successfully to students.txt.")
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, []string{"S1,Ada Lovelace,Math=90;Physics=80"}, store.lines)

	got, ok := r.Get("S1")
	require.True(t, ok)
	assert.Equal(t, student.Marks{{Subject: "Math", Score: 90}, {Subject: "Physics", Score: 80}}, got.Marks)
}

func TestConsole_AddWithoutMarks(t *testing.T) {
	r := roster.New()
	store := &fakeStore{}

	runScript(t, r, store, "1", "S1", "grace", "done", "6")

	got, ok := r.Get("S1")
	require.True(t, ok)
	assert.Equal(t, "Grace", got.Name)
	assert.Equal(t, 0, got.Marks.Len())
	assert.Equal(t, []string{"S1,Grace,"}, store.lines)
}

func TestConsole_AddDuplicateIDReprompts(t *testing.T) {
	r := seeded(t, ada())
	store := &fakeStore{}

	out := runScript(t, r, store, "1", "S1", "S2", "alan", "done", "6")

	assert.Contains(t, out, "Error: Student ID S1 already exists. Please use a unique ID.")
	assert.Equal(t, 2, r.Len())
	got, _ := r.Get("S1")
	assert.Equal(t, ada(), got, "existing record must be untouched")
	_, ok := r.Get("S2")
	assert.True(t, ok)
}

func TestConsole_AddRejectsReservedCharacters(t *testing.T) {
	r := roster.New()
	out := runScript(t, r, &fakeStore{},
		"1", "", "S,1", "S1", "Lovelace, Ada", "Ada", "math;physics", "math", "50", "done", "6")

	assert.Equal(t, 4, strings.Count(out, "Error: "))
	got, ok := r.Get("S1")
	require.True(t, ok)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, student.Marks{{Subject: "Math", Score: 50}}, got.Marks)
}

func TestConsole_AddInvalidScoreReprompts(t *testing.T) {
	r := roster.New()
	out := runScript(t, r, &fakeStore{},
		"1", "S1", "Ada", "Math", "abc", "150", "-1", "75", "done", "6")

	assert.Equal(t, 1, strings.Count(out, "Invalid input. Please enter a number for the score."))
	assert.Equal(t, 2, strings.Count(out, "Score must be between 0 and 100."))
	got, _ := r.Get("S1")
	assert.Equal(t, student.Marks{{Subject: "Math", Score: 75}}, got.Marks)
}

func TestConsole_AddAbortedByEndOfInput(t *testing.T) {
	r := roster.New()
	store := &fakeStore{}

	var out bytes.Buffer
	err := New(strings.NewReader("1\nS1\nAda\nMath\n"), &out, r, store).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, store.saves)
}

func TestConsole_ViewAll(t *testing.T) {
	out := runScript(t, roster.New(), &fakeStore{}, "2", "6")
	assert.Contains(t, out, "No students registered yet.")

	r := seeded(t, ada(), student.New("S2", "Alan", nil))
	out = runScript(t, r, &fakeStore{}, "2", "6")
	first := strings.Index(out, "ID: S1, Name: Ada Lovelace, Marks: {Math: 90, Physics: 80}, Average: 85.00")
	second := strings.Index(out, "ID: S2, Name: Alan, Marks: {}, Average: 0.00")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestConsole_Search(t *testing.T) {
	store := &fakeStore{}
	r := seeded(t, ada())

	out := runScript(t, r, store, "3", "S1", "3", "S9", "6")
	assert.Contains(t, out, "**Student Found**")
	assert.Contains(t, out, "ID: S1, Name: Ada Lovelace")
	assert.Contains(t, out, "Error: Student with ID S9 not found.")
	assert.Equal(t, 0, store.saves)
}

func TestConsole_UpdateNotFoundDoesNotWrite(t *testing.T) {
	store := &fakeStore{}
	out := runScript(t, seeded(t, ada()), store, "4", "S9", "6")

	assert.Contains(t, out, "Error: Student with ID S9 not found.")
	assert.Equal(t, 0, store.saves)
}

func TestConsole_UpdateMarks(t *testing.T) {
	r := seeded(t, ada())
	store := &fakeStore{}

	out := runScript(t, r, store, "4", "S1", "1", "physics", "99", "4", "S1", "1", "chemistry", "70", "6")

	assert.Contains(t, out, "Marks for Physics updated/added successfully.")
	assert.Contains(t, out, "Marks for Chemistry updated/added successfully.")
	assert.Equal(t, 2, store.saves)
	got, _ := r.Get("S1")
	assert.Equal(t, student.Marks{
		{Subject: "Math", Score: 90},
		{Subject: "Physics", Score: 99},
		{Subject: "Chemistry", Score: 70},
	}, got.Marks)
}

func TestConsole_UpdateInvalidScoreNoMutation(t *testing.T) {
	r := seeded(t, ada())
	store := &fakeStore{}

	out := runScript(t, r, store, "4", "S1", "1", "Math", "101", "4", "S1", "1", "Math", "x", "6")

	assert.Contains(t, out, "Score must be between 0 and 100.")
	assert.Contains(t, out, "Invalid input. Please enter a number for the score.")
	assert.Equal(t, 0, store.saves)
	got, _ := r.Get("S1")
	assert.Equal(t, ada().Marks, got.Marks)
}

func TestConsole_UpdateInvalidSubChoice(t *testing.T) {
	store := &fakeStore{}
	r := seeded(t, ada())
	out := runScript(t, r, store, "4", "S1", "3", "6")

	assert.Contains(t, out, "Invalid choice.\n")
	assert.Equal(t, 0, store.saves)
	assert.Equal(t, 1, r.Len())
}

func TestConsole_DeleteCancelled(t *testing.T) {
	store := &fakeStore{}
	r := seeded(t, ada())

	out := runScript(t, r, store, "4", "S1", "2", "no", "6")

	assert.Contains(t, out, "Are you sure you want to DELETE Ada Lovelace? (yes/no): ")
	assert.Contains(t, out, "Deletion cancelled.")
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 0, store.saves)
}

func TestConsole_DeleteConfirmedRewritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.txt")
	store := roster.NewFileStore(path)
	r := seeded(t, ada(), student.New("S2", "Alan", student.Marks{{Subject: "Math", Score: 60}}))
	require.NoError(t, store.Save(r))

	out := runScript(t, r, store, "4", "S1", "2", " YES ", "6")

	assert.Contains(t, out, "Student S1 deleted successfully.")
	assert.Equal(t, 1, r.Len())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "S2,Alan,Math=60\n", string(data))
}

func TestConsole_DeleteCancelledLeavesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.txt")
	store := roster.NewFileStore(path)
	r := seeded(t, ada())
	require.NoError(t, store.Save(r))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	runScript(t, r, store, "4", "S1", "2", "no", "6")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestConsole_ReportTopperFirstMaxWins(t *testing.T) {
	r := seeded(t,
		student.New("S1", "Seventy", student.Marks{{Subject: "Math", Score: 70}}),
		student.New("S2", "First Ninety", student.Marks{{Subject: "Math", Score: 90}}),
		student.New("S3", "Second Ninety", student.Marks{{Subject: "Math", Score: 80}, {Subject: "Art", Score: 100}}),
		student.New("S4", "Eighty Five", student.Marks{{Subject: "Math", Score: 85}}),
	)
	store := &fakeStore{}

	out := runScript(t, r, store, "5", "6")

	assert.Contains(t, out, "ID: S1, Name: Seventy, Average: 70.00")
	assert.Contains(t, out, "ID: S3, Name: Second Ninety, Average: 90.00")
	assert.Contains(t, out, "Name: First Ninety, Highest Average: 90.00")
	assert.Equal(t, 0, store.saves)
}

func TestConsole_ReportEmpty(t *testing.T) {
	out := runScript(t, roster.New(), &fakeStore{}, "5", "6")
	assert.Contains(t, out, "No students registered to calculate averages.")
	assert.NotContains(t, out, "Class Topper")
}

func TestConsole_SaveFailureKeepsMutation(t *testing.T) {
	r := roster.New()
	store := &fakeStore{err: errors.New("disk full")}

	out := runScript(t, r, store, "1", "S1", "Ada", "done", "6")

	assert.Contains(t, out, "**Error**: Could not write to file students.txt: disk full")
	assert.NotContains(t, out, "Data saved successfully")
	assert.Equal(t, 1, r.Len())
}
