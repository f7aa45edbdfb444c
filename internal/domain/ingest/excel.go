package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/order-insights/internal/domain/record"
)

// ReadExcel tokenizes the first sheet of an XLSX export. The first row
// is treated as the header row; cells beyond the header width are
// dropped, missing trailing cells read as empty.
func ReadExcel(r io.Reader) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]record.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := make(record.RawRecord, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(row) {
				m[h] = row[i]
			} else {
				m[h] = ""
			}
		}
		if rowIsEmpty(m) {
			continue
		}
		records = append(records, m)
	}

	return &Dataset{Headers: headers, Records: records}, nil
}
