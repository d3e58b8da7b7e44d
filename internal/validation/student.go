package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StudentForm сырые значения формы ученика в том виде, как их ввел пользователь
type StudentForm struct {
	Name    string
	Email   string
	Age     string
	Grade   string
	Phone   string
	Address string
}

// Trimmed возвращает копию формы без пробелов по краям значений
func (f StudentForm) Trimmed() StudentForm {
	return StudentForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Age:     strings.TrimSpace(f.Age),
		Grade:   strings.TrimSpace(f.Grade),
		Phone:   strings.TrimSpace(f.Phone),
		Address: strings.TrimSpace(f.Address),
	}
}

// studentInput порядок полей задает порядок проверок
type studentInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required,contains=@"`
	Age   string `validate:"required,student_age"`
	Grade string `validate:"required,grade"`
	Phone string `validate:"required"`
}

// studentMessages сообщения для пары поле/правило
var studentMessages = map[string]map[string]string{
	"Name": {
		"required": "Name is required",
	},
	"Email": {
		"required": "Email is required",
		"contains": "Please enter a valid email address",
	},
	"Age": {
		"required":    "Age is required",
		tagStudentAge: ageRangeError().Message,
	},
	"Grade": {
		"required": "Grade is required",
		tagGrade:   "Grade must be one of Kindergarten, 1st Grade ... 12th Grade",
	},
	"Phone": {
		"required": "Phone number is required",
	},
}

// ValidateStudentForm проверяет форму ученика и возвращает первое нарушение
// как *ValidationError. Адрес не обязателен.
func ValidateStudentForm(form StudentForm) error {
	f := form.Trimmed()
	input := studentInput{
		Name:  f.Name,
		Email: f.Email,
		Age:   f.Age,
		Grade: f.Grade,
		Phone: f.Phone,
	}

	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return newError("", "invalid student form: %v", err)
	}

	// validator возвращает ошибки в порядке объявления полей
	first := fieldErrs[0]
	msg, ok := studentMessages[first.Field()][first.Tag()]
	if !ok {
		msg = first.Error()
	}
	return &ValidationError{Field: strings.ToLower(first.Field()), Message: msg}
}
