package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logged out. Local session removed.")
	return nil
}

func (c *Cli) runStatus() error {
	c.io.Println("=== Status ===")
	c.io.Println()

	if !c.auth.IsAuthenticated() {
		c.io.Println("Status: not authenticated")
		c.io.Println("Run 'studentdesk login' to sign in.")
		return nil
	}

	user := c.auth.User()
	c.io.Println("Status: authenticated")
	c.io.Printf("Name:   %s\n", user.Name)
	c.io.Printf("Email:  %s\n", user.Email)
	if user.Role != "" {
		c.io.Printf("Role:   %s\n", user.Role)
	}
	return nil
}
