package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/usecase"
)

// ImportRowRequest is one statement line in a JSON import
type ImportRowRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Reference   string `json:"reference"`
	Amount      Amount `json:"amount"`
}

// Amount accepts a statement amount as a JSON string or a JSON number. A
// number keeps its literal text so that no precision is lost to float64
type Amount string

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or a number, got %s", data)
	}
	*a = Amount(n.String())
	return nil
}

// ImportRequest represents the API request for importing statement rows
type ImportRequest struct {
	Rows []ImportRowRequest `json:"rows" binding:"required,min=1,max=10000"`
}

// ToRaw converts the request into raw rows numbered from 1
func (r ImportRequest) ToRaw() []entity.RawTransaction {
	rows := make([]entity.RawTransaction, 0, len(r.Rows))
	for i, row := range r.Rows {
		rows = append(rows, entity.RawTransaction{
			Row:         i + 1,
			Date:        row.Date,
			Description: row.Description,
			Reference:   row.Reference,
			Amount:      string(row.Amount),
		})
	}
	return rows
}

// RowErrorResponse describes why a row was not imported
type RowErrorResponse struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ImportResponse represents the counters of an import batch. Error is set when
// the batch stopped early; the counters then cover the rows already handled
type ImportResponse struct {
	Total             int                `json:"total"`
	Inserted          int                `json:"inserted"`
	SkippedDuplicates int                `json:"skippedDuplicates"`
	AutoMatched       int                `json:"autoMatched"`
	Unmatched         int                `json:"unmatched"`
	Ambiguous         int                `json:"ambiguous"`
	Failed            int                `json:"failed"`
	Aborted           bool               `json:"aborted"`
	RowErrors         []RowErrorResponse `json:"rowErrors,omitempty"`
	Error             *ErrorResponse     `json:"error,omitempty"`
}

// NewImportResponse maps an import result
func NewImportResponse(result *usecase.ImportResult) ImportResponse {
	resp := ImportResponse{
		Total:             result.Total,
		Inserted:          result.Inserted,
		SkippedDuplicates: result.SkippedDuplicates,
		AutoMatched:       result.AutoMatched,
		Unmatched:         result.Unmatched,
		Ambiguous:         result.Ambiguous,
		Failed:            result.Failed,
		Aborted:           result.Aborted,
	}

	for _, rowErr := range result.RowErrors {
		item := RowErrorResponse{
			Row:     rowErr.Row,
			Code:    errs.ErrorCode(rowErr.Err),
			Message: rowErr.Err.Error(),
		}
		var validationErr *errs.ValidationError
		if errors.As(rowErr.Err, &validationErr) {
			item.Field = validationErr.Field
		}
		resp.RowErrors = append(resp.RowErrors, item)
	}
	return resp
}

// RerunRequest represents the API request for an automatic re-match pass
// An empty list re-matches every unmatched and auto row
type RerunRequest struct {
	TransactionIDs []string `json:"transactionIds" binding:"omitempty,max=10000,dive,required"`
}

// RerunResponse represents the counters of a re-match pass
type RerunResponse struct {
	Examined          int `json:"examined"`
	Matched           int `json:"matched"`
	Upgraded          int `json:"upgraded"`
	Reassigned        int `json:"reassigned"`
	CandidatesCleared int `json:"candidatesCleared"`
	Unchanged         int `json:"unchanged"`
	Ambiguous         int `json:"ambiguous"`
	SkippedManual     int `json:"skippedManual"`
	Conflicts         int `json:"conflicts"`
	Failed            int `json:"failed"`
}

// NewRerunResponse maps a rerun result
func NewRerunResponse(result *usecase.RerunResult) RerunResponse {
	return RerunResponse{
		Examined:          result.Examined,
		Matched:           result.Matched,
		Upgraded:          result.Upgraded,
		Reassigned:        result.Reassigned,
		CandidatesCleared: result.CandidatesCleared,
		Unchanged:         result.Unchanged,
		Ambiguous:         result.Ambiguous,
		SkippedManual:     result.SkippedManual,
		Conflicts:         result.Conflicts,
		Failed:            result.Failed,
	}
}
