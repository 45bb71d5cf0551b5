package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/usecase"
)

// ListTransactionsQuery holds the query string of GET /transactions
type ListTransactionsQuery struct {
	Confidence []string `form:"confidence"`
	UserID     string   `form:"userId"`
	IDs        []string `form:"id"`
	From       string   `form:"from"`
	To         string   `form:"to"`
	Search     string   `form:"q" binding:"max=255"`
	OrderBy    string   `form:"orderBy" binding:"omitempty,oneof=date amount created"`
	Desc       bool     `form:"desc"`
	Limit      int      `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset     int      `form:"offset" binding:"omitempty,min=0"`
}

// DefaultListLimit applies when the query sets no limit
const DefaultListLimit = 100

// ToFilter converts the query into a store filter. Confidences may be given
// repeated or comma-separated
func (q ListTransactionsQuery) ToFilter() (entity.TransactionFilter, error) {
	filter := entity.TransactionFilter{
		IDs:           q.IDs,
		MatchedUserID: strings.TrimSpace(q.UserID),
		Search:        strings.TrimSpace(q.Search),
		OrderBy:       entity.TransactionOrder(q.OrderBy),
		Descending:    q.Desc,
		Limit:         q.Limit,
		Offset:        q.Offset,
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}

	for _, value := range q.Confidence {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			confidence, err := entity.ParseMatchConfidence(part)
			if err != nil {
				return filter, errs.NewValidationError(0, "confidence", part, "must be auto, manual or unmatched", errs.ErrInvalidRequest)
			}
			filter.Confidences = append(filter.Confidences, confidence)
		}
	}

	var err error
	if filter.DateFrom, err = parseQueryDate("from", q.From); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parseQueryDate("to", q.To); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseQueryDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(entity.DateLayout, value)
	if err != nil {
		return nil, errs.NewValidationError(0, field, value, fmt.Sprintf("expected %s", entity.DateLayout), errs.ErrInvalidDate)
	}
	return &t, nil
}

// ManualMatchRequest represents the API request for a manual match
type ManualMatchRequest struct {
	UserID string `json:"userId" binding:"required,max=64"`
}

// CandidateResponse is one ambiguous candidate kept for manual review
type CandidateResponse struct {
	ProfileID string  `json:"profileId"`
	Score     float64 `json:"score"`
	Signal    string  `json:"signal"`
	Fragment  string  `json:"fragment,omitempty"`
}

// TransactionResponse represents a transaction with its match state
type TransactionResponse struct {
	ID                 string              `json:"id"`
	Date               string              `json:"date"`
	Description        string              `json:"description"`
	Reference          *string             `json:"reference,omitempty"`
	Amount             string              `json:"amount"`
	CreatedAt          time.Time           `json:"createdAt"`
	MatchConfidence    string              `json:"matchConfidence"`
	MatchedUserID      *string             `json:"matchedUserId,omitempty"`
	MatchedDisplayName string              `json:"matchedDisplayName,omitempty"`
	MatchSignal        string              `json:"matchSignal,omitempty"`
	MatchedBy          string              `json:"matchedBy,omitempty"`
	MatchedAt          *time.Time          `json:"matchedAt,omitempty"`
	Candidates         []CandidateResponse `json:"candidates,omitempty"`
	Version            int64               `json:"version"`
}

// NewTransactionResponse maps a transaction and the matched display name
func NewTransactionResponse(tx *entity.Transaction, displayName string) TransactionResponse {
	resp := TransactionResponse{
		ID:                 tx.ID,
		Date:               tx.TransactionDate.Format(entity.DateLayout),
		Description:        tx.Description,
		Reference:          tx.Reference,
		Amount:             tx.Amount.String(),
		CreatedAt:          tx.CreatedAt,
		MatchConfidence:    string(tx.MatchConfidence),
		MatchedUserID:      tx.MatchedUserID,
		MatchedDisplayName: displayName,
		MatchSignal:        string(tx.MatchSignal),
		MatchedAt:          tx.MatchedAt,
		Version:            tx.Version,
	}
	if !tx.MatchedBy.IsZero() {
		resp.MatchedBy = tx.MatchedBy.String()
	}
	for _, c := range tx.Candidates {
		resp.Candidates = append(resp.Candidates, CandidateResponse{
			ProfileID: c.ProfileID,
			Score:     c.Score,
			Signal:    string(c.Signal),
			Fragment:  c.Fragment,
		})
	}
	return resp
}

// NewTransactionViewResponse maps a joined transaction view
func NewTransactionViewResponse(view usecase.TransactionView) TransactionResponse {
	return NewTransactionResponse(view.Transaction, view.MatchedDisplayName)
}

// TransactionListResponse wraps a page of transactions
type TransactionListResponse struct {
	Items  []TransactionResponse `json:"items"`
	Count  int                   `json:"count"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// MatchEventResponse is one entry of the match history
type MatchEventResponse struct {
	Version    int64     `json:"version"`
	Confidence string    `json:"confidence"`
	UserID     *string   `json:"userId,omitempty"`
	Signal     string    `json:"signal,omitempty"`
	Source     string    `json:"source"`
	At         time.Time `json:"at"`
}

// ProvenanceResponse answers who set the current match and when
type ProvenanceResponse struct {
	TransactionID string               `json:"transactionId"`
	Confidence    string               `json:"confidence"`
	MatchedUserID *string              `json:"matchedUserId,omitempty"`
	Source        string               `json:"source"`
	Actor         string               `json:"actor,omitempty"`
	MatchedAt     *time.Time           `json:"matchedAt,omitempty"`
	History       []MatchEventResponse `json:"history"`
}

// NewProvenanceResponse maps match provenance
func NewProvenanceResponse(p *usecase.MatchProvenance) ProvenanceResponse {
	resp := ProvenanceResponse{
		TransactionID: p.TransactionID,
		Confidence:    string(p.Confidence),
		MatchedUserID: p.MatchedUserID,
		Source:        string(p.Source.Kind()),
		MatchedAt:     p.MatchedAt,
		History:       make([]MatchEventResponse, 0, len(p.History)),
	}
	if resp.Source == "" {
		resp.Source = "none"
	}
	if actor, ok := p.Source.ActorID(); ok {
		resp.Actor = actor
	}
	for _, event := range p.History {
		resp.History = append(resp.History, MatchEventResponse{
			Version:    event.Version,
			Confidence: string(event.Confidence),
			UserID:     event.UserID,
			Signal:     string(event.Signal),
			Source:     event.Source.String(),
			At:         event.At,
		})
	}
	return resp
}
