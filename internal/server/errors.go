package server

import (
	"errors"
	"net/http"

	clientdomain "github.com/StarickDosSantos/FactBP/internal/client/domain"
	invoicedomain "github.com/StarickDosSantos/FactBP/internal/invoice/domain"
	productdomain "github.com/StarickDosSantos/FactBP/internal/product/domain"
	"github.com/StarickDosSantos/FactBP/internal/storage"
	"github.com/gin-gonic/gin"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware maps errors attached to the gin context onto
// one JSON error payload after the handler chain runs.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	var decodeErr *storage.DecodeError
	var writeErr *storage.WriteFailure

	switch {
	case errors.Is(err, invoicedomain.ErrNotFound):
		return http.StatusNotFound, errorPayload{Type: "not_found", Message: "resource not found"}
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{Type: "validation_error", Message: err.Error()}
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{Type: "invalid_request", Message: "request body could not be parsed"}
	case errors.As(err, &decodeErr):
		return http.StatusInternalServerError, errorPayload{Type: "decode_error", Message: "stored data is corrupt; reset the collection"}
	case errors.As(err, &writeErr):
		return http.StatusInternalServerError, errorPayload{Type: "write_failure", Message: "storage rejected the write"}
	default:
		return http.StatusInternalServerError, errorPayload{Type: "internal_error", Message: "unexpected error"}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, clientdomain.ErrInvalidName),
		errors.Is(err, clientdomain.ErrInvalidID),
		errors.Is(err, productdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidPrice),
		errors.Is(err, productdomain.ErrInvalidID),
		errors.Is(err, invoicedomain.ErrInvalidCustomer),
		errors.Is(err, invoicedomain.ErrNoItems),
		errors.Is(err, invoicedomain.ErrInvalidItem),
		errors.Is(err, invoicedomain.ErrInvalidID):
		return true
	default:
		return false
	}
}
