package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Phone    string `json:"phone"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Phone     string    `json:"phone"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type CheckResponse struct {
	Authenticated bool      `json:"authenticated"`
	UserID        uuid.UUID `json:"user_id"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

type HealthResponse struct {
	Status     string     `json:"status"`
	Timestamp  string     `json:"timestamp"`
	DB         string     `json:"db"`
	APIVersion string     `json:"api_version"`
	Endpoints  []Endpoint `json:"endpoints"`
}

type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}
