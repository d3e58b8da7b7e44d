package models

// User клиентская проекция текущего пользователя.
// Не авторитетна: собирается из введенных при входе данных и claims токена,
// сам токен на клиенте не проверяется.
type User struct {
	ID    string `json:"id"`    // ID идентификатор пользователя, если известен
	Email string `json:"email"` // Email email, под которым выполнен вход
	Name  string `json:"name"`  // Name отображаемое имя
	Role  string `json:"role"`  // Role роль пользователя (teacher, admin)
}

// DefaultRole роль, с которой регистрируется пользователь, если не указано иное
const DefaultRole = "teacher"
