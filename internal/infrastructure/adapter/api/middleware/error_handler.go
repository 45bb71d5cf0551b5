package middleware

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// StatusForError maps a domain error to its HTTP status
func StatusForError(err error) int {
	switch {
	case domainerr.IsValidationError(err),
		errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidMatchState):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsTransactionLockedError(err):
		return http.StatusLocked
	case errors.Is(err, domainerr.ErrConcurrentModification),
		domainerr.IsDuplicateTransactionError(err):
		return http.StatusConflict
	case domainerr.IsStoreUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the response body for err. Server-side failures
// are not described to the client
func NewErrorResponse(err error) dto.ErrorResponse {
	status := StatusForError(err)
	message := err.Error()
	switch status {
	case http.StatusServiceUnavailable:
		message = "Storage is temporarily unavailable"
	case http.StatusInternalServerError:
		message = "Internal server error"
	}
	return dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	}
}

// ErrorHandler recovers from panics and renders errors attached by handlers
// with c.Error as a JSON ErrorResponse
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetHeader("X-Request-ID"),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := StatusForError(err)

		fields := map[string]any{
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"status":     status,
			"error_code": domainerr.ErrorCode(err),
		}
		if lf, ok := err.(interface{ LogFields() map[string]any }); ok {
			for k, v := range lf.LogFields() {
				fields[k] = v
			}
		} else {
			fields["error"] = err.Error()
		}

		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", fields)
		} else {
			logger.Debug("Request rejected", fields)
		}

		c.AbortWithStatusJSON(status, NewErrorResponse(err))
	}
}
