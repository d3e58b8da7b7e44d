package validation

import (
	"strings"
)

// ValidateEmail проверяет email: не пустой и содержит '@'.
// Более строгую проверку формата делает сервер.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if err := validate.Var(email, "required"); err != nil {
		return newError("email", "Email is required")
	}
	if err := validate.Var(email, "contains=@"); err != nil {
		return newError("email", "Please enter a valid email address")
	}
	return nil
}

// ValidatePassword проверяет, что пароль введен.
// Требования к сложности задает backend.
func ValidatePassword(password string) error {
	if err := validate.Var(password, "required"); err != nil {
		return newError("password", "Password is required")
	}
	return nil
}

// ValidateName проверяет отображаемое имя при регистрации
func ValidateName(name string) error {
	if err := validate.Var(strings.TrimSpace(name), "required"); err != nil {
		return newError("name", "Name is required")
	}
	return nil
}
