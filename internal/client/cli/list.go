package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/iudanet/studentdesk/internal/client/views"
	"github.com/iudanet/studentdesk/internal/models"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	filter := fs.String("filter", "", "filter loaded students by name, email or grade")
	limit := fs.Int("limit", 0, "maximum number of students to fetch")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}
	if *limit < 0 {
		return fmt.Errorf("%w: --limit must not be negative", ErrUsage)
	}
	if err := c.requireAuth(); err != nil {
		return err
	}

	list := views.NewStudentList(ctx, c.students, c.logger)
	defer list.Close()

	if err := list.LoadLimit(ctx, *limit); err != nil {
		return fail(err, "Failed to fetch students")
	}

	c.io.Println("=== Students ===")
	c.io.Println()

	// Фильтр применяется к уже загруженным данным без запроса к серверу
	return c.printStudents(list.Filter(*filter), len(list.Students()), *filter)
}

func (c *Cli) runSearch(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	term := strings.TrimSpace(strings.Join(args, " "))

	list := views.NewStudentList(ctx, c.students, c.logger)
	defer list.Close()

	// Пустой запрос показывает полный список
	if err := list.Search(ctx, term); err != nil {
		return fail(err, "Failed to search students")
	}

	if term == "" {
		c.io.Println("=== Students ===")
	} else {
		c.io.Printf("=== Search results for %q ===\n", term)
	}
	c.io.Println()

	students := list.Students()
	return c.printStudents(students, len(students), "")
}

func (c *Cli) printStudents(students []models.Student, loaded int, filter string) error {
	if len(students) == 0 {
		if filter != "" && loaded > 0 {
			c.io.Printf("No students match %q.\n", filter)
		} else {
			c.io.Println("No students found.")
		}
		return nil
	}

	if err := renderStudentTable(c.io, students); err != nil {
		return fmt.Errorf("failed to render students: %w", err)
	}

	c.io.Println()
	if filter != "" {
		c.io.Printf("Showing %d of %d students.\n", len(students), loaded)
	} else {
		c.io.Printf("Total: %d\n", len(students))
	}
	return nil
}
