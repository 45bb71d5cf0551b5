package statement

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
)

// XLSXReader reads the first worksheet of an Excel statement export
type XLSXReader struct{}

// Format returns the reader name
func (r *XLSXReader) Format() string { return "xlsx" }

// Read parses the workbook and returns one raw row per non-blank data line
// Cells are read raw so that amounts keep their exact digits; date serials
// are rendered in the canonical date layout
func (r *XLSXReader) Read(in io.Reader) ([]entity.RawTransaction, error) {
	f, err := excelize.OpenReader(in)
	if err != nil {
		return nil, fmt.Errorf("opening statement workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	records, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %q: %w", sheets[0], err)
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
		raw.Date = excelDate(raw.Date)
		rows = append(rows, raw)
	}
	return rows, nil
}

// maxExcelSerial is 9999-12-31, the last date Excel can represent
const maxExcelSerial = 2958465

// excelDate converts a date serial to the canonical layout and leaves text alone
func excelDate(value string) string {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || serial < 1 || serial > maxExcelSerial {
		return value
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return value
	}
	return t.Format(entity.DateLayout)
}
