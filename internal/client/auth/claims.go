package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/studentdesk/internal/models"
)

// Значения для пользователя, если токен ничего о нем не говорит
const (
	placeholderRestoredID    = "1"
	placeholderRestoredEmail = "user@example.com"
	placeholderRestoredName  = "User"
	placeholderLoginID       = "2"
	placeholderLoginName     = "Teacher"
	placeholderRegisterID    = "1"
)

// userClaims поля проекции пользователя, которые удалось прочитать из токена
type userClaims struct {
	ID    string
	Email string
	Name  string
	Role  string
}

// parseUserClaims читает claims JWT без проверки подписи.
// Клиент не знает ключ сервера, поэтому результат используется только для
// отображения и никогда для решений о доступе.
// Возвращает false, если токен не является JWT.
func parseUserClaims(token string) (userClaims, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return userClaims{}, false
	}

	uc := userClaims{
		ID:    claimString(claims, "sub", "id", "userId", "user_id"),
		Email: claimString(claims, "email"),
		Name:  claimString(claims, "name"),
		Role:  claimString(claims, "role"),
	}
	return uc, true
}

// claimString возвращает первое непустое строковое значение из перечисленных claims
func claimString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// apply дополняет пользователя значениями из claims
func (c userClaims) apply(user *models.User) {
	if c.ID != "" {
		user.ID = c.ID
	}
	if c.Email != "" {
		user.Email = c.Email
	}
	if c.Name != "" {
		user.Name = c.Name
	}
	if c.Role != "" {
		user.Role = c.Role
	}
}

// projectUser собирает пользователя из базовых значений и claims токена
func projectUser(token string, base models.User) *models.User {
	user := base
	if claims, ok := parseUserClaims(token); ok {
		claims.apply(&user)
	}
	return &user
}
