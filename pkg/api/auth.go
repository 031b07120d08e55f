package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email"`    // email пользователя, уникальный
	Name     string `json:"name"`     // отображаемое имя
	Password string `json:"password"` // пароль в открытом виде, передается только в теле запроса
}

// UserResponse представляет пользователя в ответах API (без хеша пароля)
type UserResponse struct {
	ID    string `json:"id"`    // UUID пользователя
	Email string `json:"email"` // email
	Name  string `json:"name"`  // отображаемое имя
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	User    UserResponse `json:"user"`    // созданный пользователь
	Message string       `json:"message"` // сообщение об успешной регистрации
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде
}

// TokenResponse представляет ответ с парой токенов
type TokenResponse struct {
	AccessToken  string `json:"access_token"`  // короткоживущий JWT access token
	RefreshToken string `json:"refresh_token"` // долгоживущий JWT refresh token
	ExpiresIn    int64  `json:"expires_in"`    // время жизни access token в секундах
}

// FieldError описывает нарушение ограничения для конкретного поля
type FieldError struct {
	Field   string `json:"field"`   // имя поля
	Message string `json:"message"` // описание нарушения
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string       `json:"error"`            // краткое описание класса ошибки
	Message string       `json:"message"`          // дополнительное сообщение
	Fields  []FieldError `json:"fields,omitempty"` // нарушения по полям для ошибок валидации
}
