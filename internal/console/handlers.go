package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dusk-indust/roster/internal/student"
)

// doneSentinel ends subject entry in addStudent.
const doneSentinel = "done"

/* ----------------------------------------
	ADD
---------------------------------------- */

func (c *Console) addStudent(_ context.Context) error {
	c.heading("Add New Student")

	var id string
	for {
		v, err := c.prompt("Enter Student ID (e.g., S101): ")
		if err != nil {
			return err
		}
		if err := student.ValidateID(v); err != nil {
			c.printf("Error: %v.\n", err)
			continue
		}
		if _, exists := c.roster.Get(v); exists {
			c.printf("Error: Student ID %s already exists. Please use a unique ID.\n", v)
			continue
		}
		id = v
		break
	}

	var name string
	for {
		v, err := c.prompt("Enter Student Name: ")
		if err != nil {
			return err
		}
		v = student.TitleCase(v)
		if err := student.ValidateName(v); err != nil {
			c.printf("Error: %v.\n", err)
			continue
		}
		name = v
		break
	}

	var marks student.Marks
	c.println("Enter marks (Subject Name and Score). Type 'done' to finish.")
	for {
		subject, err := c.prompt("Enter Subject Name (or 'done'): ")
		if err != nil {
			return err
		}
		subject = student.TitleCase(subject)
		if strings.EqualFold(subject, doneSentinel) {
			break
		}
		if err := student.ValidateSubject(subject); err != nil {
			c.printf("Error: %v.\n", err)
			continue
		}

		score, err := c.promptScore(fmt.Sprintf("Enter Score for %s: ", subject))
		if err != nil {
			return err
		}
		marks.Set(subject, score)
	}

	if err := c.roster.Add(student.New(id, name, marks)); err != nil {
		c.printf("Error: %v.\n", err)
		return nil
	}
	c.printf("Student %s added successfully.\n", name)
	c.persist()
	return nil
}

// promptScore asks until a valid score is entered.
func (c *Console) promptScore(label string) (int, error) {
	for {
		v, err := c.prompt(label)
		if err != nil {
			return 0, err
		}
		score, err := student.ParseScore(v)
		if err != nil {
			c.println(scoreMessage(err))
			continue
		}
		return score, nil
	}
}

func scoreMessage(err error) string {
	if errors.Is(err, student.ErrScoreOutOfRange) {
		return fmt.Sprintf("Score must be between %d and %d.", student.MinScore, student.MaxScore)
	}
	return "Invalid input. Please enter a number for the score."
}

/* ----------------------------------------
	VIEW / SEARCH
---------------------------------------- */

func (c *Console) viewAll(_ context.Context) error {
	c.heading("All Registered Students")
	if c.roster.Len() == 0 {
		c.println("No students registered yet.")
		return nil
	}
	for _, s := range c.roster.All() {
		c.println(s.String())
	}
	return nil
}

func (c *Console) search(_ context.Context) error {
	c.heading("Student Search")
	id, err := c.prompt("Enter Student ID to search: ")
	if err != nil {
		return err
	}

	s, ok := c.roster.Get(id)
	if !ok {
		c.printf("Error: Student with ID %s not found.\n", id)
		return nil
	}
	c.println("\n**Student Found**")
	c.println(s.String())
	return nil
}

/* ----------------------------------------
	UPDATE / DELETE
---------------------------------------- */

func (c *Console) updateOrDelete(_ context.Context) error {
	c.heading("Update or Delete Student")
	id, err := c.prompt("Enter Student ID to update or delete: ")
	if err != nil {
		return err
	}

	s, ok := c.roster.Get(id)
	if !ok {
		c.printf("Error: Student with ID %s not found.\n", id)
		return nil
	}

	c.printf("\nCurrently viewing: %s\n", s.Name)
	c.println("What do you want to do?")
	c.println("1. Update Marks")
	c.println("2. Delete Student")
	choice, err := c.prompt("Enter choice (1/2): ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return c.updateMarks(id)
	case "2":
		return c.deleteStudent(id, s.Name)
	default:
		c.println("Invalid choice.")
		return nil
	}
}

func (c *Console) updateMarks(id string) error {
	c.heading("Update Marks")
	subject, err := c.prompt("Enter Subject Name to update/add: ")
	if err != nil {
		return err
	}
	subject = student.TitleCase(subject)
	if err := student.ValidateSubject(subject); err != nil {
		c.printf("Error: %v.\n", err)
		return nil
	}

	v, err := c.prompt(fmt.Sprintf("Enter new score for %s: ", subject))
	if err != nil {
		return err
	}
	score, err := student.ParseScore(v)
	if err != nil {
		c.println(scoreMessage(err))
		return nil
	}

	if err := c.roster.Update(id, func(s *student.Student) { s.Marks.Set(subject, score) }); err != nil {
		c.printf("Error: %v.\n", err)
		return nil
	}
	c.printf("Marks for %s updated/added successfully.\n", subject)
	c.persist()
	return nil
}

func (c *Console) deleteStudent(id, name string) error {
	confirm, err := c.prompt(fmt.Sprintf("Are you sure you want to DELETE %s? (yes/no): ", name))
	if err != nil {
		return err
	}
	if strings.ToLower(confirm) != "yes" {
		c.println("Deletion cancelled.")
		return nil
	}

	if err := c.roster.Delete(id); err != nil {
		c.printf("Error: %v.\n", err)
		return nil
	}
	c.printf("Student %s deleted successfully.\n", id)
	c.persist()
	return nil
}

/* ----------------------------------------
	REPORT
---------------------------------------- */

func (c *Console) report(_ context.Context) error {
	c.heading("Calculate Averages and Find Topper")
	if c.roster.Len() == 0 {
		c.println("No students registered to calculate averages.")
		return nil
	}

	c.println("\n**Student Averages**")
	for _, st := range c.roster.Averages() {
		c.printf("ID: %s, Name: %s, Average: %.2f\n", st.Student.ID, st.Student.Name, st.Average)
	}

	if top, ok := c.roster.Topper(); ok {
		c.println("\n**Class Topper**")
		c.printf("Name: %s, Highest Average: %.2f\n", top.Student.Name, top.Average)
	}
	return nil
}
