package statement

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Reader converts a bank statement export into raw rows for ImportBatch
// Readers only locate columns; values are validated by the reconciler
type Reader interface {
	Read(r io.Reader) ([]entity.RawTransaction, error)
	Format() string
}

// Registry holds named statement readers
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format
func (r *Registry) Register(reader Reader) {
	key := strings.ToLower(reader.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate statement format: " + key)
	}
	r.readers[key] = reader
}

// Get returns the reader for format, or nil
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(strings.TrimSpace(format))]
}

// Formats lists the registered formats in sorted order
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.readers))
	for format := range r.readers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

// DefaultRegistry returns a registry with all built-in readers
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVReader{})
	r.Register(&XLSXReader{})
	return r
}

// FormatFromFilename guesses the format from a file extension
func FormatFromFilename(name string) string {
	name = strings.ToLower(name)
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return ""
}

var headerAliases = map[string][]string{
	"date":        {"date", "transaction date", "posting date", "value date", "booking date"},
	"description": {"description", "narrative", "details", "memo", "payee"},
	"reference":   {"reference", "ref", "payment reference", "bank reference"},
	"amount":      {"amount", "value"},
	"credit":      {"credit", "paid in", "money in"},
	"debit":       {"debit", "paid out", "money out"},
}

// columnMap records the position of each known column, -1 when absent
type columnMap struct {
	date, description, reference, amount, credit, debit int
}

func mapHeader(header []string) (columnMap, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		key := entity.NormalizeText(strings.TrimPrefix(name, "\ufeff"))
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}

	find := func(column string) int {
		for _, alias := range headerAliases[column] {
			if i, ok := positions[alias]; ok {
				return i
			}
		}
		return -1
	}

	cols := columnMap{
		date:        find("date"),
		description: find("description"),
		reference:   find("reference"),
		amount:      find("amount"),
		credit:      find("credit"),
		debit:       find("debit"),
	}

	switch {
	case cols.date < 0:
		return cols, missingColumn("date", header)
	case cols.description < 0:
		return cols, missingColumn("description", header)
	case cols.amount < 0 && cols.credit < 0 && cols.debit < 0:
		return cols, missingColumn("amount", header)
	}
	return cols, nil
}

func missingColumn(column string, header []string) error {
	return errs.NewValidationError(0, "header", strings.Join(header, ","),
		fmt.Sprintf("no %s column", column), errs.ErrValidation)
}

// toRaw builds the raw row for record, the row-th data line of the statement
// Blank records yield ok == false
func (c columnMap) toRaw(row int, record []string) (entity.RawTransaction, bool) {
	cell := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	blank := true
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			blank = false
			break
		}
	}
	if blank {
		return entity.RawTransaction{}, false
	}

	amount := cell(c.amount)
	if amount == "" {
		amount = signedAmount(cell(c.credit), cell(c.debit))
	}

	return entity.RawTransaction{
		Row:         row,
		Date:        cell(c.date),
		Description: cell(c.description),
		Reference:   cell(c.reference),
		Amount:      amount,
	}, true
}

// signedAmount folds split credit/debit columns into one signed value. Blank
// and zero cells count as empty and a debit is always an outflow. Bad cells
// or rows with both sides set come back as a value the reconciler rejects
func signedAmount(credit, debit string) string {
	in, inSet, ok := splitCell(credit)
	if !ok {
		return credit
	}
	out, outSet, ok := splitCell(debit)
	if !ok {
		return debit
	}

	switch {
	case inSet && outSet:
		return fmt.Sprintf("credit %s and debit %s", credit, debit)
	case inSet:
		return entity.FormatAmount(in)
	case outSet:
		return entity.FormatAmount(out.Abs().Neg())
	case credit == "" && debit == "":
		return ""
	default:
		return entity.FormatAmount(decimal.Zero)
	}
}

// splitCell parses one side of a split amount; set is false for blank and zero cells
func splitCell(raw string) (value decimal.Decimal, set bool, ok bool) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, false, true
	}
	value, err := entity.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, false, false
	}
	return value, !value.IsZero(), true
}
