package views

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/iudanet/studentdesk/internal/client/api"
	"github.com/iudanet/studentdesk/internal/models"
)

// RecentLimit сколько последних учеников показывает dashboard
const RecentLimit = 5

// Summary данные dashboard
type Summary struct {
	Recent   []models.Student      // последние добавленные ученики
	Stats    models.DashboardStats // сводная статистика
	Degraded bool                  // данные недоступны, показаны значения по умолчанию
}

// Dashboard модель главного экрана.
// У backend нет эндпоинта статистики, поэтому она считается на клиенте по
// полному списку учеников.
type Dashboard struct {
	api    api.StudentsAPI
	logger *slog.Logger
	now    func() time.Time
	lifetime
}

// DashboardOption настраивает Dashboard
type DashboardOption func(*Dashboard)

// WithClock задает источник текущего времени для подсчета новых учеников
func WithClock(now func() time.Time) DashboardOption {
	return func(d *Dashboard) {
		d.now = now
	}
}

// NewDashboard создает модель главного экрана
func NewDashboard(parent context.Context, studentsAPI api.StudentsAPI, logger *slog.Logger, opts ...DashboardOption) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dashboard{
		api:      studentsAPI,
		logger:   logger,
		now:      time.Now,
		lifetime: newLifetime(parent),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load получает статистику и последних учеников.
// Ошибки запросов не возвращаются: dashboard переходит на значения по
// умолчанию и помечается Degraded. Единственная ошибка - ErrViewClosed.
func (d *Dashboard) Load(ctx context.Context) (Summary, error) {
	reqCtx, done, err := d.begin(ctx)
	if err != nil {
		return Summary{}, err
	}
	defer done()

	all, err := d.api.ListStudents(reqCtx, api.ListOptions{})
	if d.Closed() {
		return Summary{}, ErrViewClosed
	}
	if err != nil {
		d.logger.Warn("failed to fetch dashboard data", "error", err)
		return degradedSummary(), nil
	}

	recent, err := d.api.ListStudents(reqCtx, api.ListOptions{Limit: RecentLimit})
	if d.Closed() {
		return Summary{}, ErrViewClosed
	}
	if err != nil {
		d.logger.Warn("failed to fetch recent students", "error", err)
		return degradedSummary(), nil
	}

	students := recent.Students
	// Сервер может проигнорировать limit
	if len(students) > RecentLimit {
		students = students[:RecentLimit]
	}

	return Summary{
		Stats:  ComputeStats(all.Students, d.now()),
		Recent: students,
	}, nil
}

func degradedSummary() Summary {
	return Summary{
		Stats:    models.PlaceholderStats,
		Recent:   slices.Clone(models.PlaceholderRecent),
		Degraded: true,
	}
}

// ComputeStats считает статистику по списку учеников.
// Активными считаются все записи: у ученика нет поля статуса.
// Средний возраст округляется до одного знака.
func ComputeStats(students []models.Student, now time.Time) models.DashboardStats {
	stats := models.DashboardStats{
		TotalStudents:  len(students),
		ActiveStudents: len(students),
	}
	if len(students) == 0 {
		return stats
	}

	year, month, _ := now.Date()
	totalAge := 0
	for _, s := range students {
		totalAge += s.Age
		if s.CreatedAt.IsZero() {
			continue
		}
		y, m, _ := s.CreatedAt.In(now.Location()).Date()
		if y == year && m == month {
			stats.NewStudentsThisMonth++
		}
	}

	avg := float64(totalAge) / float64(len(students))
	stats.AverageAge = math.Round(avg*10) / 10
	return stats
}
