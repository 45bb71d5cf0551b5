package reconcile

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
)

// DateLayouts are the statement date formats accepted on import, tried in order
var DateLayouts = []string{
	entity.DateLayout,
	"02/01/2006",
	time.RFC3339,
}

// RowValidator turns raw statement rows into transactions
type RowValidator struct {
	validate *validator.Validate
}

// NewRowValidator creates a new RowValidator
func NewRowValidator() *RowValidator {
	return &RowValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Build validates raw and creates an unmatched transaction with the given ID
// Every failure is a *errs.ValidationError carrying the row number
func (v *RowValidator) Build(
	raw entity.RawTransaction,
	row int,
	id string,
	timeProvider coreport.TimeProvider,
) (*entity.Transaction, error) {
	if err := v.validateStruct(raw, row); err != nil {
		return nil, err
	}

	date, err := ParseDate(raw.Date)
	if err != nil {
		return nil, errs.NewValidationError(row, "date", raw.Date, "unrecognised date format", err)
	}

	amount, err := entity.ParseAmount(raw.Amount)
	if err != nil {
		return nil, errs.NewValidationError(row, "amount", raw.Amount, "not an exact decimal amount", err)
	}

	var reference *string
	if raw.Reference != "" {
		reference = &raw.Reference
	}

	tx, err := entity.NewTransaction(id, date, raw.Description, reference, amount, timeProvider)
	if err != nil {
		field := "transaction"
		if errors.Is(err, errs.ErrMissingDescription) {
			field = "description"
		}
		return nil, errs.NewValidationError(row, field, raw.Description, err.Error(), err)
	}

	return tx, nil
}

func (v *RowValidator) validateStruct(raw entity.RawTransaction, row int) error {
	err := v.validate.Struct(raw)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewValidationError(row, "row", "", err.Error(), errs.ErrValidation)
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	value := fmt.Sprint(fe.Value())

	var reason string
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "max":
		reason = fmt.Sprintf("exceeds maximum length %s", fe.Param())
	default:
		reason = fmt.Sprintf("failed %s check", fe.Tag())
	}

	return errs.NewValidationError(row, field, value, reason, fieldSentinel(field))
}

func fieldSentinel(field string) error {
	switch field {
	case "date":
		return errs.ErrInvalidDate
	case "amount":
		return errs.ErrInvalidAmount
	case "description":
		return errs.ErrMissingDescription
	default:
		return errs.ErrValidation
	}
}

// ParseDate parses a statement date in one of DateLayouts and truncates it to a UTC calendar date
func ParseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return entity.NormalizeDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errs.ErrInvalidDate, raw)
}
