package entity

import "time"

// RawTransaction is an unvalidated statement line as handed over by a reader
// or the API. Row is its 1-based position in the batch
type RawTransaction struct {
	Row         int    `json:"row"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description" validate:"required,max=1024"`
	Reference   string `json:"reference" validate:"max=255"`
	Amount      string `json:"amount" validate:"required,max=64"`
}

// TransactionOrder names the sortable columns
type TransactionOrder string

// Sortable columns
const (
	OrderByDate    TransactionOrder = "date"
	OrderByAmount  TransactionOrder = "amount"
	OrderByCreated TransactionOrder = "created"
)

// TransactionFilter selects transactions for list queries. Zero fields do not filter
type TransactionFilter struct {
	IDs           []string
	Confidences   []MatchConfidence
	MatchedUserID string
	DateFrom      *time.Time
	DateTo        *time.Time
	Search        string
	OrderBy       TransactionOrder
	Descending    bool
	Limit         int
	Offset        int
}
