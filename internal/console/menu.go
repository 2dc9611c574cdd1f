package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
)

/* ----------------------------------------
	MENU
---------------------------------------- */

// MenuItem is one numbered entry. Action returns a non-nil error only to end
// the session.
type MenuItem struct {
	Label  string
	Action func(ctx context.Context) error
}

// Menu is a numbered list of items; item i is selected by typing i+1.
type Menu struct {
	Title string
	Items []MenuItem
}

func (m *Menu) render(w io.Writer) {
	fmt.Fprintf(w, "\n--- %s ---\n", m.Title)
	for i, item := range m.Items {
		fmt.Fprintf(w, "%d. %s\n", i+1, item.Label)
	}
}

// pick resolves the typed choice to an item.
func (m *Menu) pick(choice string) (MenuItem, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[n-1], true
}

func (m *Menu) invalidChoice() string {
	return fmt.Sprintf("Invalid choice. Please enter a number between 1 and %d.", len(m.Items))
}

/* ----------------------------------------
	MENU DEFINITION
---------------------------------------- */

func buildMainMenu(c *Console) *Menu {
	return &Menu{
		Title: "Main Menu",
		Items: []MenuItem{
			{Label: "New Student - Add", Action: c.addStudent},
			{Label: "View All Students", Action: c.viewAll},
			{Label: "Students Search", Action: c.search},
			{Label: "Update and Delete Student", Action: c.updateOrDelete},
			{Label: "Calculate Avg & Find Topper", Action: c.report},
			{Label: "Exit", Action: func(context.Context) error { return errExit }},
		},
	}
}
