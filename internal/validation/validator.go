package validation

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/studentdesk/internal/models"
)

// Теги кастомных правил
const (
	tagStudentAge = "student_age"
	tagGrade      = "grade"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Ошибки регистрации возможны только при пустом теге или nil функции
	_ = v.RegisterValidation(tagStudentAge, func(fl validator.FieldLevel) bool {
		_, err := ParseAge(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation(tagGrade, func(fl validator.FieldLevel) bool {
		return models.Grade(fl.Field().String()).Valid()
	})

	return v
}

// ParseAge разбирает возраст из строки формы и проверяет диапазон [5, 25] включительно
func ParseAge(raw string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ageRangeError()
	}
	if age < models.MinStudentAge || age > models.MaxStudentAge {
		return 0, ageRangeError()
	}
	return age, nil
}

func ageRangeError() *ValidationError {
	return newError("age", "Age must be between %d and %d", models.MinStudentAge, models.MaxStudentAge)
}
