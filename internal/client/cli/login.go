package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/iudanet/studentdesk/internal/client/auth"
	"github.com/iudanet/studentdesk/internal/models"
	"github.com/iudanet/studentdesk/internal/validation"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	email := fs.String("email", "", "account email")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	c.io.Println("=== Login ===")
	c.io.Println()

	if *email == "" {
		var err error
		if *email, err = c.io.ReadInput("Email: "); err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}

	password, err := c.getPassword("Password: ")
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.auth.Login(ctx, *email, password); err != nil {
		return authFailure(err, "Login failed")
	}

	user := c.auth.User()
	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Signed in as: %s <%s>\n", user.Name, user.Email)
	c.io.Println()
	c.io.Println("Your session has been saved.")
	return nil
}

func (c *Cli) runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	role := fs.String("role", models.DefaultRole, "account role")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	c.io.Println("=== Registration ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	password, err := c.getPassword("Password: ")
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Creating account...")

	if err := c.auth.Register(ctx, name, email, password, *role); err != nil {
		return authFailure(err, "Registration failed")
	}

	user := c.auth.User()
	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Signed in as: %s <%s> (%s)\n", user.Name, user.Email, user.Role)
	return nil
}

// authFailure показывает ошибку ввода как есть, а любой отказ сервера одной фразой
func authFailure(err error, message string) error {
	var vErr *validation.ValidationError
	if errors.As(err, &vErr) {
		return &CommandError{Message: vErr.Message, Err: err}
	}
	if errors.Is(err, auth.ErrAuthentication) {
		return &CommandError{Message: message, Err: err}
	}
	return fail(err, message)
}
