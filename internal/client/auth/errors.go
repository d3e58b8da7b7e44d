package auth

import "errors"

// ErrAuthentication вход или регистрация не удались: неверные учетные данные,
// ошибка сети или ответ без токена
var ErrAuthentication = errors.New("authentication failed")
