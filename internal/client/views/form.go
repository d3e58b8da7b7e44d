package views

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/iudanet/studentdesk/internal/client/api"
	"github.com/iudanet/studentdesk/internal/models"
	"github.com/iudanet/studentdesk/internal/validation"
	pkgapi "github.com/iudanet/studentdesk/pkg/api"
)

// StudentForm модель формы создания или редактирования ученика.
// Режим редактирования задается непустым id.
type StudentForm struct {
	api    api.StudentsAPI
	logger *slog.Logger
	lifetime
	id string

	mu     sync.RWMutex
	values validation.StudentForm
}

// NewStudentForm создает форму. Пустой id означает создание нового ученика.
func NewStudentForm(parent context.Context, studentsAPI api.StudentsAPI, id string, logger *slog.Logger) *StudentForm {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudentForm{
		api:      studentsAPI,
		logger:   logger,
		lifetime: newLifetime(parent),
		id:       id,
	}
}

// IsEdit сообщает, редактирует ли форма существующую запись
func (f *StudentForm) IsEdit() bool {
	return f.id != ""
}

// ID возвращает id редактируемой записи
func (f *StudentForm) ID() string {
	return f.id
}

// Values возвращает текущие значения формы
func (f *StudentForm) Values() validation.StudentForm {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values
}

// Load заполняет форму данными записи в режиме редактирования.
// В режиме создания форма остается пустой и запрос не выполняется.
func (f *StudentForm) Load(ctx context.Context) (validation.StudentForm, error) {
	if !f.IsEdit() {
		if f.Closed() {
			return validation.StudentForm{}, ErrViewClosed
		}
		return f.Values(), nil
	}

	reqCtx, done, err := f.begin(ctx)
	if err != nil {
		return validation.StudentForm{}, err
	}
	defer done()

	resp, err := f.api.GetStudent(reqCtx, f.id)
	if f.Closed() {
		return validation.StudentForm{}, ErrViewClosed
	}
	if err != nil {
		return validation.StudentForm{}, fmt.Errorf("failed to fetch student data: %w", err)
	}

	values := FormFromStudent(resp.Student)
	f.mu.Lock()
	f.values = values
	f.mu.Unlock()

	return values, nil
}

// Submit проверяет форму и отправляет create или update.
// При ошибке проверки запрос не выполняется, ошибка - *validation.ValidationError.
// Возвращает запись из ответа сервера, если сервер ее прислал.
func (f *StudentForm) Submit(ctx context.Context, form validation.StudentForm) (*models.Student, error) {
	if f.Closed() {
		return nil, ErrViewClosed
	}

	f.mu.Lock()
	f.values = form
	f.mu.Unlock()

	payload, err := FormPayload(form)
	if err != nil {
		return nil, err
	}

	reqCtx, done, err := f.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer done()

	var resp *pkgapi.MutationResponse
	if f.IsEdit() {
		resp, err = f.api.UpdateStudent(reqCtx, f.id, payload)
	} else {
		resp, err = f.api.CreateStudent(reqCtx, payload)
	}
	if f.Closed() {
		return nil, ErrViewClosed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save student: %w", err)
	}

	f.logger.Info("student saved", "id", f.id, "edit", f.IsEdit())
	if resp == nil {
		return nil, nil
	}
	return resp.Student, nil
}

// FormPayload проверяет форму и собирает тело запроса
func FormPayload(form validation.StudentForm) (pkgapi.StudentPayload, error) {
	if err := validation.ValidateStudentForm(form); err != nil {
		return pkgapi.StudentPayload{}, err
	}

	f := form.Trimmed()
	age, err := validation.ParseAge(f.Age)
	if err != nil {
		return pkgapi.StudentPayload{}, err
	}

	return pkgapi.StudentPayload{
		Name:    f.Name,
		Email:   f.Email,
		Age:     age,
		Grade:   models.Grade(f.Grade),
		Phone:   f.Phone,
		Address: f.Address,
	}, nil
}

// FormFromStudent заполняет форму значениями записи
func FormFromStudent(s models.Student) validation.StudentForm {
	age := ""
	if s.Age != 0 {
		age = strconv.Itoa(s.Age)
	}
	return validation.StudentForm{
		Name:    s.Name,
		Email:   s.Email,
		Age:     age,
		Grade:   string(s.Grade),
		Phone:   s.Phone,
		Address: s.Address,
	}
}
