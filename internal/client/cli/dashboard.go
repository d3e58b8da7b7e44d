package cli

import (
	"context"

	"github.com/iudanet/studentdesk/internal/client/views"
)

func (c *Cli) runDashboard(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	dashboard := views.NewDashboard(ctx, c.students, c.logger)
	defer dashboard.Close()

	// Dashboard не возвращает ошибок запросов, только отмену
	summary, err := dashboard.Load(ctx)
	if err != nil {
		return fail(err, "Failed to load dashboard")
	}

	return renderDashboard(c.io, summary)
}
