package views

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/iudanet/studentdesk/internal/client/api"
	"github.com/iudanet/studentdesk/internal/models"
	pkgapi "github.com/iudanet/studentdesk/pkg/api"
)

var errNotImplemented = errors.New("not implemented")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStudentsAPI implements api.StudentsAPI for testing.
// Незаданные функции возвращают errNotImplemented.
type fakeStudentsAPI struct {
	listFunc   func(ctx context.Context, opts api.ListOptions) (*pkgapi.StudentsResponse, error)
	getFunc    func(ctx context.Context, id string) (*pkgapi.StudentResponse, error)
	createFunc func(ctx context.Context, payload pkgapi.StudentPayload) (*pkgapi.MutationResponse, error)
	updateFunc func(ctx context.Context, id string, payload pkgapi.StudentPayload) (*pkgapi.MutationResponse, error)
	deleteFunc func(ctx context.Context, id string) (*pkgapi.MutationResponse, error)
	searchFunc func(ctx context.Context, query string) (*pkgapi.StudentsResponse, error)

	mu    sync.Mutex
	calls []string
}

var _ api.StudentsAPI = (*fakeStudentsAPI)(nil)

func (f *fakeStudentsAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeStudentsAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeStudentsAPI) ListStudents(ctx context.Context, opts api.ListOptions) (*pkgapi.StudentsResponse, error) {
	f.record("list")
	if f.listFunc == nil {
		return nil, errNotImplemented
	}
	return f.listFunc(ctx, opts)
}

func (f *fakeStudentsAPI) GetStudent(ctx context.Context, id string) (*pkgapi.StudentResponse, error) {
	f.record("get")
	if f.getFunc == nil {
		return nil, errNotImplemented
	}
	return f.getFunc(ctx, id)
}

func (f *fakeStudentsAPI) CreateStudent(ctx context.Context, payload pkgapi.StudentPayload) (*pkgapi.MutationResponse, error) {
	f.record("create")
	if f.createFunc == nil {
		return nil, errNotImplemented
	}
	return f.createFunc(ctx, payload)
}

func (f *fakeStudentsAPI) UpdateStudent(ctx context.Context, id string, payload pkgapi.StudentPayload) (*pkgapi.MutationResponse, error) {
	f.record("update")
	if f.updateFunc == nil {
		return nil, errNotImplemented
	}
	return f.updateFunc(ctx, id, payload)
}

func (f *fakeStudentsAPI) DeleteStudent(ctx context.Context, id string) (*pkgapi.MutationResponse, error) {
	f.record("delete")
	if f.deleteFunc == nil {
		return nil, errNotImplemented
	}
	return f.deleteFunc(ctx, id)
}

func (f *fakeStudentsAPI) SearchStudents(ctx context.Context, query string) (*pkgapi.StudentsResponse, error) {
	f.record("search")
	if f.searchFunc == nil {
		return nil, errNotImplemented
	}
	return f.searchFunc(ctx, query)
}

func (f *fakeStudentsAPI) CreateStudentsBatch(context.Context, []pkgapi.StudentPayload) (*pkgapi.MutationResponse, error) {
	f.record("batch")
	return nil, errNotImplemented
}

func listOf(students ...models.Student) func(context.Context, api.ListOptions) (*pkgapi.StudentsResponse, error) {
	return func(context.Context, api.ListOptions) (*pkgapi.StudentsResponse, error) {
		return &pkgapi.StudentsResponse{Students: students}, nil
	}
}

// blockUntilCancelled имитирует долгий запрос, который завершается только отменой
func blockUntilCancelled(started chan<- struct{}) func(ctx context.Context, _ api.ListOptions) (*pkgapi.StudentsResponse, error) {
	return func(ctx context.Context, _ api.ListOptions) (*pkgapi.StudentsResponse, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}
}

var (
	johnDoe = models.Student{
		ID: "1", Name: "John Doe", Email: "john.doe@email.com", Age: 16,
		Grade: models.Grade10, Phone: "+1234567890", Address: "123 Main St",
	}
	janeSmith = models.Student{
		ID: "2", Name: "Jane Smith", Email: "jane.smith@email.com", Age: 17,
		Grade: models.Grade11, Phone: "+1234567891", Address: "456 Oak Ave",
	}
)
