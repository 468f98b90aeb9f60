package serverutils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError carries an HTTP status alongside a message that is safe to show users.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return NewAppError(fiber.StatusUnauthorized, message, nil)
}

func NotFound(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return NewAppError(fiber.StatusConflict, message, nil)
}

func Internal(message string, err error) *AppError {
	return NewAppError(fiber.StatusInternalServerError, message, err)
}

// StatusOf returns the HTTP status an error maps to.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
