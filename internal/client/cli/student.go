package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/iudanet/studentdesk/internal/client/views"
	"github.com/iudanet/studentdesk/internal/models"
	"github.com/iudanet/studentdesk/internal/validation"
)

// maxFormRetries сколько раз переспрашиваем поле, не прошедшее проверку
const maxFormRetries = 3

// formField поле формы ученика в порядке ввода
type formField struct {
	value func(*validation.StudentForm) *string
	key   string // совпадает с ValidationError.Field
	label string
}

var formFields = []formField{
	{key: "name", label: "Name", value: func(f *validation.StudentForm) *string { return &f.Name }},
	{key: "email", label: "Email", value: func(f *validation.StudentForm) *string { return &f.Email }},
	{key: "age", label: "Age", value: func(f *validation.StudentForm) *string { return &f.Age }},
	{key: "grade", label: "Grade", value: func(f *validation.StudentForm) *string { return &f.Grade }},
	{key: "phone", label: "Phone", value: func(f *validation.StudentForm) *string { return &f.Phone }},
	{key: "address", label: "Address (optional)", value: func(f *validation.StudentForm) *string { return &f.Address }},
}

func lookupField(key string) (formField, bool) {
	for _, f := range formFields {
		if f.key == key {
			return f, true
		}
	}
	return formField{}, false
}

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing student ID. Usage: studentdesk get <id>", ErrUsage)
	}
	if err := c.requireAuth(); err != nil {
		return err
	}

	resp, err := c.students.GetStudent(ctx, args[0])
	if err != nil {
		return fail(err, "Failed to fetch student data")
	}

	return renderStudent(c.io, resp.Student)
}

func (c *Cli) runAdd(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	form := views.NewStudentForm(ctx, c.students, "", c.logger)
	defer form.Close()

	c.io.Println("=== Add Student ===")
	c.io.Println()

	values, err := c.promptForm(validation.StudentForm{}, false)
	if err != nil {
		return err
	}

	saved, err := c.submitForm(ctx, form, values)
	if err != nil {
		return fail(err, "Failed to save student")
	}

	c.io.Println()
	c.io.Println("✓ Student added successfully!")
	if saved != nil && saved.ID != "" {
		c.io.Printf("ID: %s\n", saved.ID)
	}
	return nil
}

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing student ID. Usage: studentdesk edit <id>", ErrUsage)
	}
	if err := c.requireAuth(); err != nil {
		return err
	}

	form := views.NewStudentForm(ctx, c.students, args[0], c.logger)
	defer form.Close()

	current, err := form.Load(ctx)
	if err != nil {
		return fail(err, "Failed to fetch student data")
	}

	c.io.Println("=== Edit Student ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	values, err := c.promptForm(current, true)
	if err != nil {
		return err
	}

	if _, err := c.submitForm(ctx, form, values); err != nil {
		return fail(err, "Failed to save student")
	}

	c.io.Println()
	c.io.Println("✓ Student updated successfully!")
	return nil
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	positional, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	switch len(positional) {
	case 0:
		return fmt.Errorf("%w: missing student ID. Usage: studentdesk delete [--yes] <id>", ErrUsage)
	case 1:
	default:
		return fmt.Errorf("%w: unexpected arguments %q. Usage: studentdesk delete [--yes] <id>", ErrUsage, positional[1:])
	}
	if err := c.requireAuth(); err != nil {
		return err
	}
	id := positional[0]

	c.io.Println("=== Delete Student ===")
	c.io.Println()

	if !*yes {
		// Показываем запись, которая будет удалена
		resp, err := c.students.GetStudent(ctx, id)
		if err != nil {
			return fail(err, "Failed to fetch student data")
		}
		c.io.Println("About to delete:")
		c.io.Printf("  Name:  %s\n", resp.Student.Name)
		c.io.Printf("  Email: %s\n", resp.Student.Email)
		c.io.Printf("  Grade: %s\n", resp.Student.Grade)
		c.io.Println()

		confirm, err := c.io.ReadInput("Are you sure you want to delete this student? (yes/no): ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if confirm = strings.ToLower(confirm); confirm != "yes" && confirm != "y" {
			c.io.Println()
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	list := views.NewStudentList(ctx, c.students, c.logger)
	defer list.Close()

	if err := list.Delete(ctx, id); err != nil {
		return fail(err, "Failed to delete student")
	}

	c.io.Println()
	c.io.Println("✓ Student deleted successfully!")
	return nil
}

// promptForm спрашивает все поля формы. В режиме редактирования пустой ввод
// оставляет текущее значение.
func (c *Cli) promptForm(current validation.StudentForm, keepCurrent bool) (validation.StudentForm, error) {
	form := current
	for _, field := range formFields {
		if field.key == "grade" {
			c.io.Printf("Grades: %s\n", gradeList())
		}
		if err := c.promptField(&form, field, keepCurrent); err != nil {
			return validation.StudentForm{}, err
		}
	}
	return form, nil
}

func (c *Cli) promptField(form *validation.StudentForm, field formField, keepCurrent bool) error {
	ptr := field.value(form)

	prompt := field.label + ": "
	if keepCurrent && *ptr != "" {
		prompt = fmt.Sprintf("%s [%s]: ", field.label, *ptr)
	}

	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", field.key, err)
	}
	if input != "" || !keepCurrent {
		*ptr = input
	}
	return nil
}

// submitForm отправляет форму. Если проверка не прошла, показывает сообщение
// и переспрашивает только ошибочное поле.
func (c *Cli) submitForm(ctx context.Context, form *views.StudentForm, values validation.StudentForm) (*models.Student, error) {
	for retry := 0; ; retry++ {
		saved, err := form.Submit(ctx, values)

		var vErr *validation.ValidationError
		if !errors.As(err, &vErr) {
			return saved, err
		}
		field, ok := lookupField(vErr.Field)
		if !ok || retry >= maxFormRetries {
			return nil, err
		}

		c.io.Printf("✗ %s\n", vErr.Message)
		if err := c.promptField(&values, field, false); err != nil {
			return nil, err
		}
	}
}
