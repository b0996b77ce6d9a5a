package errors

import (
	"net/http"

	"github.com/kelvinwijaya/kopitiam/pkg/status"
)

type AppError struct {
	HTTPStatusCode int
	Status         string
	Message        string
}

func (e *AppError) Error() string {
	return e.Message
}

func New(httpStatusCode int, appStatus string, message string) error {
	return &AppError{
		HTTPStatusCode: httpStatusCode,
		Status:         appStatus,
		Message:        message,
	}
}

// Destruct maps any error onto an AppError. Errors that are not
// application errors are treated as internal server errors.
func Destruct(err error) *AppError {
	if ae, ok := err.(*AppError); ok {
		return ae
	}

	return &AppError{
		HTTPStatusCode: http.StatusInternalServerError,
		Status:         status.INTERNAL_SERVER_ERROR,
		Message:        err.Error(),
	}
}
