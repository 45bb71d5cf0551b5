package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/dto"
)

// ActorHeader names the human performing a manual action
const ActorHeader = "X-Actor-ID"

// TransactionHandler handles transaction queries and manual match actions
type TransactionHandler struct {
	reconciler usecase.ReconciliationUseCase
	logger     coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(reconciler usecase.ReconciliationUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		reconciler: reconciler,
		logger:     logger,
	}
}

// List handles GET /api/v1/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	var query dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		_ = c.Error(err)
		return
	}

	views, err := h.reconciler.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(views))
	for _, view := range views {
		items = append(items, dto.NewTransactionViewResponse(view))
	}
	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Items:  items,
		Count:  len(items),
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// Get handles GET /api/v1/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	view, err := h.reconciler.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionViewResponse(*view))
}

// SetMatch handles PUT /api/v1/transactions/:id/match
func (h *TransactionHandler) SetMatch(c *gin.Context) {
	var req dto.ManualMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	tx, err := h.reconciler.SetManualMatch(c.Request.Context(), c.Param("id"), req.UserID, c.GetHeader(ActorHeader))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx, ""))
}

// ClearMatch handles DELETE /api/v1/transactions/:id/match
func (h *TransactionHandler) ClearMatch(c *gin.Context) {
	tx, err := h.reconciler.ClearMatch(c.Request.Context(), c.Param("id"), c.GetHeader(ActorHeader))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx, ""))
}

// Provenance handles GET /api/v1/transactions/:id/provenance
func (h *TransactionHandler) Provenance(c *gin.Context) {
	provenance, err := h.reconciler.GetMatchProvenance(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProvenanceResponse(provenance))
}

// Delete handles DELETE /api/v1/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.reconciler.DeleteTransaction(c.Request.Context(), c.Param("id"), c.GetHeader(ActorHeader)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
