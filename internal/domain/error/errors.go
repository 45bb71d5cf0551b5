package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation           = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidDate          = 4003
	CodeDuplicateTransaction = 4004
	CodeInvalidMatchState    = 4005
	CodeConcurrentUpdate     = 4090
	CodeTransactionNotFound  = 4040
	CodeProfileNotFound      = 4041
	CodeTransactionLocked    = 4230

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeStore            = 5001
	CodeStoreUnavailable = 5030
)

// Base error types
var (
	// ErrValidation is returned when an input row or request is malformed
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when an amount cannot be parsed as an exact decimal
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidDate is returned when a transaction date cannot be parsed
	ErrInvalidDate = errors.New("invalid transaction date")

	// ErrMissingDescription is returned when a row has an empty description
	ErrMissingDescription = errors.New("description is required")

	// ErrInvalidActor is returned when a manual action has no actor
	ErrInvalidActor = errors.New("actor ID cannot be empty")

	// ErrInvalidUserID is returned when a manual match names no profile
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidTransactionID is returned when the transaction ID is empty
	ErrInvalidTransactionID = errors.New("transaction ID cannot be empty")

	// ErrInvalidMatchState is returned when match fields break the unmatched/no-user invariant
	ErrInvalidMatchState = errors.New("invalid match state")

	// ErrDuplicateTransaction is returned when a transaction with the same natural key already exists
	ErrDuplicateTransaction = errors.New("transaction with this natural key already exists")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrProfileNotFound is returned when the requested profile doesn't exist
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrTransactionLocked is returned when another operation holds the transaction lock
	ErrTransactionLocked = errors.New("transaction is locked by another operation")

	// ErrConcurrentModification is returned when a compare-and-swap update keeps losing
	ErrConcurrentModification = errors.New("transaction was modified concurrently")

	// ErrStore is the base error for every persistence failure
	ErrStore = errors.New("store error")

	// ErrStoreUnavailable is returned when the store cannot be reached at all
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidDate):
		return CodeInvalidDate
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidRequest):
		return CodeValidation
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrInvalidMatchState):
		return CodeInvalidMatchState
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrProfileNotFound):
		return CodeProfileNotFound
	case errors.Is(err, ErrTransactionLocked):
		return CodeTransactionLocked
	case errors.Is(err, ErrConcurrentModification):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	case errors.Is(err, ErrStore):
		return CodeStore
	default:
		return CodeInternalServer
	}
}

// ValidationError describes a malformed input row. Row is the 1-based position
// in the batch, or 0 when the error is not tied to a batch
type ValidationError struct {
	Row    int
	Field  string
	Value  string
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: invalid %s %q: %s", e.Row, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidation for every validation error
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "validation_error",
		"row":        e.Row,
		"field":      e.Field,
		"value":      e.Value,
		"reason":     e.Reason,
		"error_code": ErrorCode(e),
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewValidationError creates a validation error for a single field
func NewValidationError(row int, field, value, reason string, err error) error {
	return &ValidationError{
		Row:    row,
		Field:  field,
		Value:  value,
		Reason: reason,
		Err:    err,
	}
}

// ResourceKind names the kind of entity a NotFoundError refers to
type ResourceKind string

// Resource kinds
const (
	KindTransaction ResourceKind = "transaction"
	KindProfile     ResourceKind = "profile"
)

// NotFoundError is returned when an operation references an unknown entity
type NotFoundError struct {
	Kind ResourceKind
	ID   string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// Is matches the generic and the kind-specific not-found sentinels
func (e *NotFoundError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return true
	case ErrTransactionNotFound:
		return e.Kind == KindTransaction
	case ErrProfileNotFound:
		return e.Kind == KindProfile
	}
	return false
}

// LogFields returns a map of fields for structured logging
func (e *NotFoundError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "not_found",
		"kind":       string(e.Kind),
		"id":         e.ID,
		"error_code": ErrorCode(e),
	}
}

// NewTransactionNotFoundError creates a not-found error for a transaction ID
func NewTransactionNotFoundError(id string) error {
	return &NotFoundError{Kind: KindTransaction, ID: id}
}

// NewProfileNotFoundError creates a not-found error for a profile ID
func NewProfileNotFoundError(id string) error {
	return &NotFoundError{Kind: KindProfile, ID: id}
}

// StoreError wraps a persistence failure. Transient errors (lock conflicts,
// serialization failures, dropped connections) may be retried once
type StoreError struct {
	Op          string
	Transient   bool
	Unavailable bool
	Err         error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is matches ErrStore for every store error and ErrStoreUnavailable when the store is down
func (e *StoreError) Is(target error) bool {
	if target == ErrStore {
		return true
	}
	return target == ErrStoreUnavailable && e.Unavailable
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "store_error",
		"operation":   e.Op,
		"transient":   e.Transient,
		"unavailable": e.Unavailable,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e),
	}
}

// NewStoreError creates a store error for the given operation
func NewStoreError(op string, transient bool, err error) error {
	return &StoreError{Op: op, Transient: transient, Err: err}
}

// NewStoreUnavailableError creates a store error for an unreachable store
// Unavailability is treated as transient so that a single retry is attempted
func NewStoreUnavailableError(op string, err error) error {
	return &StoreError{Op: op, Transient: true, Unavailable: true, Err: err}
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrProfileNotFound)
}

// IsDuplicateTransactionError checks if the error is a duplicate natural key error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}

// IsStoreError checks if the error originates from the store
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStore)
}

// IsTransientStoreError checks if the error may succeed on retry
func IsTransientStoreError(err error) bool {
	if errors.Is(err, ErrTransactionLocked) {
		return true
	}
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Transient
	}
	return false
}

// IsStoreUnavailable checks if the store could not be reached
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsTransactionLockedError checks if the error is related to a held transaction lock
func IsTransactionLockedError(err error) bool {
	return errors.Is(err, ErrTransactionLocked)
}
