package statement

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
)

// CSVReader reads comma-separated statement exports with a header line
type CSVReader struct{}

// Format returns the reader name
func (r *CSVReader) Format() string { return "csv" }

// Read parses the CSV and returns one raw row per non-blank data line
func (r *CSVReader) Read(in io.Reader) ([]entity.RawTransaction, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols, err := mapHeader(records[0])
	if err != nil {
		return nil, err
	}

	var rows []entity.RawTransaction
	for _, record := range records[1:] {
		raw, ok := cols.toRaw(len(rows)+1, record)
		if !ok {
			continue
		}
		rows = append(rows, raw)
	}
	return rows, nil
}
