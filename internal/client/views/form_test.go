package views

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/studentdesk/internal/client/api"
	"github.com/iudanet/studentdesk/internal/models"
	"github.com/iudanet/studentdesk/internal/validation"
	pkgapi "github.com/iudanet/studentdesk/pkg/api"
)

func validForm() validation.StudentForm {
	return validation.StudentForm{
		Name:    "Jane Smith",
		Email:   "jane.smith@email.com",
		Age:     "17",
		Grade:   "11th Grade",
		Phone:   "+1234567891",
		Address: "456 Oak Ave",
	}
}

func TestStudentForm_CreateMode(t *testing.T) {
	var got pkgapi.StudentPayload
	fake := &fakeStudentsAPI{
		createFunc: func(_ context.Context, p pkgapi.StudentPayload) (*pkgapi.MutationResponse, error) {
			got = p
			return &pkgapi.MutationResponse{Student: &models.Student{ID: "9", Name: p.Name}}, nil
		},
	}
	f := NewStudentForm(context.Background(), fake, "", discardLogger())
	defer f.Close()

	assert.False(t, f.IsEdit())

	values, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, validation.StudentForm{}, values)
	assert.Empty(t, fake.Calls(), "create mode loads nothing")

	student, err := f.Submit(context.Background(), validForm())
	require.NoError(t, err)
	require.NotNil(t, student)
	assert.Equal(t, "9", student.ID)

	assert.Equal(t, pkgapi.StudentPayload{
		Name: "Jane Smith", Email: "jane.smith@email.com", Age: 17,
		Grade: models.Grade11, Phone: "+1234567891", Address: "456 Oak Ave",
	}, got)
}

func TestStudentForm_EditMode(t *testing.T) {
	var updatedID string
	fake := &fakeStudentsAPI{
		getFunc: func(_ context.Context, id string) (*pkgapi.StudentResponse, error) {
			assert.Equal(t, "2", id)
			return &pkgapi.StudentResponse{Student: janeSmith}, nil
		},
		updateFunc: func(_ context.Context, id string, p pkgapi.StudentPayload) (*pkgapi.MutationResponse, error) {
			updatedID = id
			assert.Equal(t, 18, p.Age)
			return &pkgapi.MutationResponse{}, nil
		},
	}
	f := NewStudentForm(context.Background(), fake, "2", discardLogger())
	assert.True(t, f.IsEdit())

	values, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", values.Name)
	assert.Equal(t, "17", values.Age)
	assert.Equal(t, "11th Grade", values.Grade)
	assert.Equal(t, values, f.Values())

	values.Age = "18"
	student, err := f.Submit(context.Background(), values)
	require.NoError(t, err)
	assert.Nil(t, student)
	assert.Equal(t, "2", updatedID)
	assert.Equal(t, []string{"get", "update"}, fake.Calls())
}

func TestStudentForm_Load_Error(t *testing.T) {
	fake := &fakeStudentsAPI{
		getFunc: func(context.Context, string) (*pkgapi.StudentResponse, error) {
			return nil, api.ErrNetwork
		},
	}
	f := NewStudentForm(context.Background(), fake, "2", discardLogger())

	_, err := f.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrNetwork)
	assert.Contains(t, err.Error(), "failed to fetch student data")
}

// Ошибка проверки возвращается до запроса к серверу
func TestStudentForm_ValidationBlocksSubmit(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*validation.StudentForm)
		field   string
		message string
	}{
		{"empty name", func(f *validation.StudentForm) { f.Name = " " }, "name", "Name is required"},
		{"email without at", func(f *validation.StudentForm) { f.Email = "jane.email.com" }, "email", "Please enter a valid email address"},
		{"age below range", func(f *validation.StudentForm) { f.Age = "4" }, "age", "Age must be between 5 and 25"},
		{"age not a number", func(f *validation.StudentForm) { f.Age = "ten" }, "age", "Age must be between 5 and 25"},
		{"unknown grade", func(f *validation.StudentForm) { f.Grade = "13th Grade" }, "grade", "Grade must be one of Kindergarten, 1st Grade ... 12th Grade"},
		{"empty phone", func(f *validation.StudentForm) { f.Phone = "" }, "phone", "Phone number is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeStudentsAPI{}
			f := NewStudentForm(context.Background(), fake, "", discardLogger())

			form := validForm()
			tt.mutate(&form)

			_, err := f.Submit(context.Background(), form)

			var vErr *validation.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.message, vErr.Message)
			assert.Empty(t, fake.Calls())
		})
	}
}

func TestStudentForm_Submit_ServerMessage(t *testing.T) {
	fake := &fakeStudentsAPI{
		createFunc: func(context.Context, pkgapi.StudentPayload) (*pkgapi.MutationResponse, error) {
			return nil, &api.StatusError{StatusCode: 400, Message: "Email already exists"}
		},
	}
	f := NewStudentForm(context.Background(), fake, "", discardLogger())

	_, err := f.Submit(context.Background(), validForm())
	require.Error(t, err)
	assert.Equal(t, "Email already exists", api.UserMessage(err, "Failed to save student"))
}

func TestStudentForm_Closed(t *testing.T) {
	fake := &fakeStudentsAPI{}
	f := NewStudentForm(context.Background(), fake, "2", discardLogger())
	f.Close()

	_, err := f.Load(context.Background())
	assert.ErrorIs(t, err, ErrViewClosed)
	_, err = f.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrViewClosed)
	assert.Empty(t, fake.Calls())
}

func TestFormPayload_AddressOptional(t *testing.T) {
	form := validForm()
	form.Address = ""
	form.Age = " 5 "

	payload, err := FormPayload(form)
	require.NoError(t, err)
	assert.Empty(t, payload.Address)
	assert.Equal(t, 5, payload.Age)
}

func TestFormFromStudent(t *testing.T) {
	form := FormFromStudent(johnDoe)
	assert.Equal(t, "16", form.Age)
	assert.Equal(t, "10th Grade", form.Grade)

	assert.Empty(t, FormFromStudent(models.Student{}).Age)
}
