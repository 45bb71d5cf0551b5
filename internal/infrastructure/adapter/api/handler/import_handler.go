package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/statement"
)

// DefaultMaxUploadBytes bounds statement uploads when no limit is configured
const DefaultMaxUploadBytes = 10 << 20

// ImportHandler handles statement imports and re-match passes
type ImportHandler struct {
	reconciler     usecase.ReconciliationUseCase
	readers        *statement.Registry
	maxUploadBytes int64
	logger         coreport.Logger
}

// NewImportHandler creates a new import handler instance
func NewImportHandler(
	reconciler usecase.ReconciliationUseCase,
	readers *statement.Registry,
	maxUploadBytes int64,
	logger coreport.Logger,
) *ImportHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &ImportHandler{
		reconciler:     reconciler,
		readers:        readers,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// ImportRows handles POST /api/v1/imports
func (h *ImportHandler) ImportRows(c *gin.Context) {
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	h.runImport(c, req.ToRaw())
}

// ImportStatement handles POST /api/v1/imports/statement. The format comes
// from the format query parameter or the uploaded file's extension
func (h *ImportHandler) ImportStatement(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	format := c.Query("format")
	if format == "" {
		format = statement.FormatFromFilename(fileHeader.Filename)
	}
	reader := h.readers.Get(format)
	if reader == nil {
		_ = c.Error(domainerr.NewValidationError(0, "format", format, "unsupported statement format", domainerr.ErrInvalidRequest))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}
	defer func() { _ = file.Close() }()

	rows, err := reader.Read(file)
	if err != nil {
		h.logger.Warn("Failed to read statement", map[string]any{
			"file":   fileHeader.Filename,
			"format": reader.Format(),
			"error":  err.Error(),
		})
		if !domainerr.IsValidationError(err) {
			err = domainerr.NewValidationError(0, "file", fileHeader.Filename, err.Error(), domainerr.ErrInvalidRequest)
		}
		_ = c.Error(err)
		return
	}

	h.logger.Info("Statement read", map[string]any{
		"file":   fileHeader.Filename,
		"format": reader.Format(),
		"rows":   len(rows),
	})
	h.runImport(c, rows)
}

// runImport answers with the counters even when the batch stopped early
func (h *ImportHandler) runImport(c *gin.Context, rows []entity.RawTransaction) {
	result, err := h.reconciler.ImportBatch(c.Request.Context(), rows)
	if result == nil {
		if err == nil {
			err = domainerr.ErrInternalServer
		}
		_ = c.Error(err)
		return
	}

	resp := dto.NewImportResponse(result)
	if err != nil {
		h.logger.Error("Import batch stopped early", map[string]any{
			"inserted": result.Inserted,
			"failed":   result.Failed,
			"error":    err.Error(),
		})
		errResp := middleware.NewErrorResponse(err)
		resp.Error = &errResp
		c.JSON(middleware.StatusForError(err), resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Rerun handles POST /api/v1/rerun
func (h *ImportHandler) Rerun(c *gin.Context) {
	var req dto.RerunRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(invalidRequest(err))
			return
		}
	}

	result, err := h.reconciler.RerunAutoMatch(c.Request.Context(), req.TransactionIDs)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRerunResponse(result))
}

// invalidRequest wraps binding errors so they map to 400
func invalidRequest(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return domainerr.NewValidationError(0, "file", "", "upload too large", domainerr.ErrInvalidRequest)
	}
	return domainerr.NewValidationError(0, "body", "", err.Error(), domainerr.ErrInvalidRequest)
}
