package errors

import (
	"fmt"
	"net/http"

	"food-delivery-backend/common/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error kinds returned in response bodies so clients can branch on them
// without parsing message text.
const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
	KindConflict   = "conflict"
	KindForbidden  = "forbidden"
	KindInternal   = "internal"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"-"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, kind, message string, err error) *Error {
	return &Error{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func Validation(message string) *Error {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func Validationf(format string, args ...interface{}) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, KindConflict, message, nil)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

// Internal wraps an unexpected error. The cause is kept for logging but the
// client only ever sees the opaque message.
func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, KindInternal, message, err)
}

// Respond writes an Error to the response as {kind, message}. The client
// never sees the wrapped cause; internal ones are logged here instead.
func Respond(c *gin.Context, err *Error) {
	if err.Kind == KindInternal || err.Err != nil {
		logger.Log.Error(err.Message,
			zap.String("kind", err.Kind),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err.Err),
		)
	}
	c.JSON(err.Code, err)
}
