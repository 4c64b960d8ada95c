package model

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SanitizedUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type RegisterResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	User    SanitizedUser `json:"user"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    SanitizedUser `json:"user"`
}
