package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterCredentials struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

const (
	ErrPasswordMismatch  ValidationError = "passwords do not match"
	ErrPasswordTooShort  ValidationError = "password must be at least 6 characters long"
	ErrEmailTaken        ValidationError = "email already registered"
	ErrUserNotFound      ValidationError = "user not found"
	ErrInvalidPassword   ValidationError = "invalid password"
	ErrSessionNotFound   ValidationError = "no active session"
	ErrMissingCredential ValidationError = "email and password are required"
)
