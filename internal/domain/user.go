package domain

import (
	"time"
	"unicode/utf8"
)

// Length limits are in characters, not bytes.
const (
	MaxUserIDLength = 64
	MaxNameLength   = 255
)

// User is the only persisted entity. Clients choose the ID.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest is the inbound payload for POST /users.
type CreateUserRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *CreateUserRequest) Validate() error {
	if err := ValidateUserID(r.ID); err != nil {
		return err
	}
	return validateName(r.Name)
}

// UpdateUserRequest is the inbound payload for PUT /users/{id}.
type UpdateUserRequest struct {
	Name string `json:"name"`
}

func (r *UpdateUserRequest) Validate() error {
	return validateName(r.Name)
}

func ValidateUserID(id string) error {
	if id == "" || utf8.RuneCountInString(id) > MaxUserIDLength {
		return ErrInvalidUserID
	}
	return nil
}

func validateName(name string) error {
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return ErrInvalidName
	}
	return nil
}
