package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/iudanet/studentdesk/internal/client/views"
	"github.com/iudanet/studentdesk/internal/validation"
	pkgapi "github.com/iudanet/studentdesk/pkg/api"
)

// runImport создает учеников из JSON файла одним batch запросом.
// Каждая запись проверяется так же, как форма; при первой ошибке ничего не отправляется.
func (c *Cli) runImport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing file. Usage: studentdesk import <file.json>", ErrUsage)
	}
	if err := c.requireAuth(); err != nil {
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	var records []pkgapi.StudentPayload
	if err := json.Unmarshal(content, &records); err != nil {
		return fmt.Errorf("failed to parse import file: expected a JSON array of students: %w", err)
	}
	if len(records) == 0 {
		c.io.Println("Nothing to import.")
		return nil
	}

	payloads := make([]pkgapi.StudentPayload, 0, len(records))
	for i, r := range records {
		payload, err := views.FormPayload(formFromPayload(r))
		if err != nil {
			return &CommandError{
				Message: fmt.Sprintf("record %d (%s): %v", i+1, r.Name, err),
				Err:     err,
			}
		}
		payloads = append(payloads, payload)
	}

	c.io.Printf("Importing %d students...\n", len(payloads))

	resp, err := c.students.CreateStudentsBatch(ctx, payloads)
	if err != nil {
		return fail(err, "Failed to import students")
	}

	created := len(payloads)
	if resp != nil && len(resp.Students) > 0 {
		created = len(resp.Students)
	}
	c.io.Printf("✓ Imported %d students.\n", created)
	return nil
}

func formFromPayload(p pkgapi.StudentPayload) validation.StudentForm {
	age := ""
	if p.Age != 0 {
		age = strconv.Itoa(p.Age)
	}
	return validation.StudentForm{
		Name:    p.Name,
		Email:   p.Email,
		Age:     age,
		Grade:   string(p.Grade),
		Phone:   p.Phone,
		Address: p.Address,
	}
}
