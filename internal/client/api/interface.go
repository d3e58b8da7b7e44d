package api

import (
	"context"

	"github.com/iudanet/studentdesk/pkg/api"
)

// AuthAPI вызовы входа и регистрации
type AuthAPI interface {
	// SignIn POST /signin
	SignIn(ctx context.Context, req api.SignInRequest) (*api.TokenResponse, error)

	// SignUp POST /signup
	SignUp(ctx context.Context, req api.SignUpRequest) (*api.TokenResponse, error)
}

// StudentsAPI вызовы ресурса students
type StudentsAPI interface {
	// ListStudents GET /students с опциональными query параметрами
	ListStudents(ctx context.Context, opts ListOptions) (*api.StudentsResponse, error)

	// GetStudent GET /students/:id
	GetStudent(ctx context.Context, id string) (*api.StudentResponse, error)

	// CreateStudent POST /students
	CreateStudent(ctx context.Context, payload api.StudentPayload) (*api.MutationResponse, error)

	// UpdateStudent PUT /students/:id
	UpdateStudent(ctx context.Context, id string, payload api.StudentPayload) (*api.MutationResponse, error)

	// DeleteStudent DELETE /students/:id
	DeleteStudent(ctx context.Context, id string) (*api.MutationResponse, error)

	// SearchStudents GET /students/search?q=
	SearchStudents(ctx context.Context, query string) (*api.StudentsResponse, error)

	// CreateStudentsBatch POST /students/batch
	CreateStudentsBatch(ctx context.Context, payloads []api.StudentPayload) (*api.MutationResponse, error)
}

// ClientAPI полный набор вызовов backend
type ClientAPI interface {
	AuthAPI
	StudentsAPI
}
