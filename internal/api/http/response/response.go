// Package response holds the JSON bodies written by the HTTP API.
package response

import (
	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionkeeper/internal/model"
)

// Message is the body of every error and of acknowledgements.
type Message struct {
	Message string `json:"message"`
	Expired bool   `json:"expired,omitempty"`
}

// User is the public view of a subject.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is returned when a token pair is issued.
type Session struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

func NewUser(subject model.Subject) User {
	return User{ID: subject.ID, Email: subject.Email, Role: subject.Role.String()}
}

// Error writes a {"message": ...} body with the given status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, Message{Message: message})
}

// Expired writes the 401 body that tells clients to refresh.
func Expired(c echo.Context, status int) error {
	return c.JSON(status, Message{Message: model.ErrTokenExpired.Error(), Expired: true})
}
