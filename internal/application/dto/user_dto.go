package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UserResponse usuario autenticado.
type UserResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email,omitempty"`
}

// LoginResponse token de la sesión de UI + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
	View  string       `json:"view"`
}

// SessionResponse estado de la sesión: view "login" o "home".
type SessionResponse struct {
	View string        `json:"view"`
	User *UserResponse `json:"user,omitempty"`
}
