package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/bank-reconciler/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusForError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", errs.NewValidationError(3, "amount", "abc", "not a number", errs.ErrInvalidAmount), http.StatusBadRequest},
		{"Invalid request", errs.ErrInvalidRequest, http.StatusBadRequest},
		{"Invalid match state", errs.ErrInvalidMatchState, http.StatusBadRequest},
		{"Transaction not found", errs.NewTransactionNotFoundError("tx-1"), http.StatusNotFound},
		{"Profile not found", errs.NewProfileNotFoundError("P1"), http.StatusNotFound},
		{"Locked", errs.ErrTransactionLocked, http.StatusLocked},
		{"Concurrent modification", fmt.Errorf("%w: tx-1", errs.ErrConcurrentModification), http.StatusConflict},
		{"Duplicate", errs.ErrDuplicateTransaction, http.StatusConflict},
		{"Store unavailable", errs.NewStoreUnavailableError("insert", errors.New("dial tcp")), http.StatusServiceUnavailable},
		{"Store failure", errs.NewStoreError("insert", false, errors.New("boom")), http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StatusForError(tc.err))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Run("Client errors keep their message", func(t *testing.T) {
		resp := NewErrorResponse(errs.NewTransactionNotFoundError("tx-1"))

		assert.Equal(t, errs.CodeTransactionNotFound, resp.Code)
		assert.Contains(t, resp.Message, "tx-1")
	})

	t.Run("Server errors are not described", func(t *testing.T) {
		resp := NewErrorResponse(errs.NewStoreError("insert", false, errors.New("pq: relation missing")))

		assert.Equal(t, errs.CodeStore, resp.Code)
		assert.Equal(t, "Internal server error", resp.Message)
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("Renders the last attached error", func(t *testing.T) {
		// Arrange
		router := gin.New()
		router.Use(ErrorHandler(logger.NewNoopLogger()))
		router.GET("/fail", func(c *gin.Context) {
			_ = c.Error(errs.ErrTransactionLocked)
		})

		// Act
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

		// Assert
		require.Equal(t, http.StatusLocked, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeTransactionLocked, resp.Code)
	})

	t.Run("Written responses are left alone", func(t *testing.T) {
		router := gin.New()
		router.Use(ErrorHandler(logger.NewNoopLogger()))
		router.GET("/partial", func(c *gin.Context) {
			_ = c.Error(errs.ErrStoreUnavailable)
			c.JSON(http.StatusAccepted, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/partial", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("Recovers from panics", func(t *testing.T) {
		// Arrange
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Error("Panic recovered in API request", mock.Anything).Once()

		router := gin.New()
		router.Use(ErrorHandler(mockLogger))
		router.GET("/panic", func(c *gin.Context) {
			panic("nil map")
		})

		// Act
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		// Assert
		require.Equal(t, http.StatusInternalServerError, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeInternalServer, resp.Code)
	})
}

func TestLogger(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		status    int
		requestID string
		level     string
	}{
		{"Success logs at info", http.StatusOK, "req-1", "Info"},
		{"Client error logs at warn", http.StatusNotFound, "", "Warn"},
		{"Server error logs at error", http.StatusInternalServerError, "req-3", "Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockLogger := coremocks.NewMockLogger(t)
			mockTime := coremocks.NewMockTimeProvider(t)
			mockTime.EXPECT().Now().Return(start).Once()
			mockTime.EXPECT().Since(start).Return(coreport.Duration(15 * time.Millisecond)).Once()

			var logged map[string]any
			capture := func(_ string, fields map[string]any) { logged = fields }
			switch tc.level {
			case "Info":
				mockLogger.EXPECT().Info("Request processed", mock.Anything).Run(capture).Once()
			case "Warn":
				mockLogger.EXPECT().Warn("Request processed", mock.Anything).Run(capture).Once()
			default:
				mockLogger.EXPECT().Error("Request processed", mock.Anything).Run(capture).Once()
			}

			router := gin.New()
			router.Use(Logger(mockLogger, mockTime))
			router.GET("/x", func(c *gin.Context) { c.Status(tc.status) })

			req := httptest.NewRequest(http.MethodGet, "/x?limit=5", nil)
			if tc.requestID != "" {
				req.Header.Set(RequestIDHeader, tc.requestID)
			}

			// Act
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tc.status, w.Code)
			echoed := w.Header().Get(RequestIDHeader)
			require.NotEmpty(t, echoed)
			if tc.requestID != "" {
				assert.Equal(t, tc.requestID, echoed)
			}
			assert.Equal(t, tc.status, logged["status"])
			assert.Equal(t, "limit=5", logged["query"])
			assert.Equal(t, int64(15), logged["latency_ms"])
			assert.Equal(t, echoed, logged["request_id"])
		})
	}
}

func TestCORS(t *testing.T) {
	testCases := []struct {
		name     string
		allowed  []string
		origin   string
		expected string
	}{
		{"Wildcard allows any origin", []string{"*"}, "https://books.example.org", "*"},
		{"Listed origin is echoed", []string{"https://books.example.org"}, "https://books.example.org", "https://books.example.org"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tc.allowed))
			router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set("Origin", tc.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expected, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}

	t.Run("Unlisted origin is refused", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS([]string{"https://books.example.org"}))
		router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
