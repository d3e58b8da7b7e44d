package views

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/iudanet/studentdesk/internal/client/api"
	"github.com/iudanet/studentdesk/internal/models"
)

// StudentList модель экрана списка учеников.
// Поиск выполняет сервер, фильтр применяется к уже загруженным данным.
type StudentList struct {
	api    api.StudentsAPI
	logger *slog.Logger
	lifetime

	mu       sync.RWMutex
	students []models.Student
	filter   string
}

// NewStudentList создает экран, который живет, пока не отменен parent или не вызван Close
func NewStudentList(parent context.Context, studentsAPI api.StudentsAPI, logger *slog.Logger) *StudentList {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudentList{
		api:      studentsAPI,
		logger:   logger,
		lifetime: newLifetime(parent),
		students: []models.Student{},
	}
}

// Load загружает полный список учеников
func (v *StudentList) Load(ctx context.Context) error {
	return v.LoadLimit(ctx, 0)
}

// LoadLimit загружает не больше limit учеников, 0 - без ограничения
func (v *StudentList) LoadLimit(ctx context.Context, limit int) error {
	return v.fetch(ctx, func(ctx context.Context) ([]models.Student, error) {
		resp, err := v.api.ListStudents(ctx, api.ListOptions{Limit: limit})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch students: %w", err)
		}
		return resp.Students, nil
	})
}

// Search заменяет список результатами серверного поиска.
// Пустой запрос перезагружает полный список.
func (v *StudentList) Search(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return v.Load(ctx)
	}

	return v.fetch(ctx, func(ctx context.Context) ([]models.Student, error) {
		resp, err := v.api.SearchStudents(ctx, term)
		if err != nil {
			return nil, fmt.Errorf("failed to search students: %w", err)
		}
		return resp.Students, nil
	})
}

func (v *StudentList) fetch(ctx context.Context, call func(context.Context) ([]models.Student, error)) error {
	reqCtx, done, err := v.begin(ctx)
	if err != nil {
		return err
	}
	defer done()

	students, err := call(reqCtx)
	if err = v.finish(err); err != nil {
		return err
	}
	if students == nil {
		students = []models.Student{}
	}

	v.mu.Lock()
	v.students = students
	v.mu.Unlock()

	v.logger.Debug("students loaded", "count", len(students))
	return nil
}

// Filter задает локальный фильтр и возвращает видимые записи
func (v *StudentList) Filter(term string) []models.Student {
	v.mu.Lock()
	v.filter = term
	v.mu.Unlock()

	return v.Visible()
}

// Visible возвращает загруженные записи с учетом текущего фильтра
func (v *StudentList) Visible() []models.Student {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return FilterStudents(v.students, v.filter)
}

// Students возвращает копию последнего загруженного набора без фильтра
func (v *StudentList) Students() []models.Student {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]models.Student(nil), v.students...)
}

// Delete удаляет ученика на сервере и затем из локального набора.
// При ошибке локальный набор не меняется.
func (v *StudentList) Delete(ctx context.Context, id string) error {
	reqCtx, done, err := v.begin(ctx)
	if err != nil {
		return err
	}
	defer done()

	_, err = v.api.DeleteStudent(reqCtx, id)
	if v.Closed() {
		return ErrViewClosed
	}
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	v.mu.Lock()
	v.students = RemoveStudent(v.students, id)
	v.mu.Unlock()

	v.logger.Info("student deleted", "id", id)
	return nil
}
