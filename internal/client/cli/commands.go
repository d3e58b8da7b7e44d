package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду. Ошибку печатает вызывающий.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx, args)
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus()
	case "dashboard":
		return c.runDashboard(ctx)
	case "list":
		return c.runList(ctx, args)
	case "search":
		return c.runSearch(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "add":
		return c.runAdd(ctx)
	case "edit":
		return c.runEdit(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "import":
		return c.runImport(ctx, args)
	case "help", "":
		return PrintUsage(c.io)
	default:
		_ = PrintUsage(c.io)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}
