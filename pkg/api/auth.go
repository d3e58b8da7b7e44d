package api

// SignInRequest представляет запрос на вход (POST /signin)
type SignInRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде, защищается TLS
}

// SignUpRequest представляет запрос на регистрацию (POST /signup)
type SignUpRequest struct {
	Name     string `json:"name"`     // отображаемое имя
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль
	Role     string `json:"role"`     // роль, по умолчанию "teacher"
}

// TokenData вложенный payload с токеном
type TokenData struct {
	Token string `json:"token"` // bearer token
}

// TokenResponse представляет ответ сервера на signin/signup: {"data": {"token": "..."}}
type TokenResponse struct {
	Data TokenData `json:"data"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // сообщение для пользователя
}
