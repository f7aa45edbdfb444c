// Package ingest tokenizes purchase-history exports (CSV or XLSX) into
// raw records plus the header list actually present in the file. It
// performs no normalization; rows come out exactly as exported.
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gocarina/gocsv"

	"github.com/FACorreiaa/order-insights/internal/domain/record"
)

// Dataset is a tokenized export: the headers as they appear in the file
// and one RawRecord per non-empty data row.
type Dataset struct {
	Headers []string
	Records []record.RawRecord
}

// ErrEmptyFile means the input had no content to tokenize.
var ErrEmptyFile = errors.New("file is empty")

// ReadCSV tokenizes a CSV export. The delimiter is detected from the
// header line; UTF-8 BOMs are stripped and non-UTF-8 input is treated
// as Latin-1, matching what exporters actually emit.
func ReadCSV(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	data = normalizeCSVBytes(data)

	headerLine, ok := firstNonEmptyLine(data)
	if !ok {
		return nil, ErrEmptyFile
	}
	delimiter := detectDelimiter(headerLine)

	headers, err := parseHeaderLine(headerLine, delimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse headers: %w", err)
	}

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		cr := csv.NewReader(in)
		cr.Comma = delimiter
		cr.LazyQuotes = true
		cr.TrimLeadingSpace = true
		return cr
	})

	maps, err := gocsv.CSVToMaps(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize CSV: %w", err)
	}

	records := make([]record.RawRecord, 0, len(maps))
	for _, m := range maps {
		if rowIsEmpty(m) {
			continue
		}
		records = append(records, record.RawRecord(m))
	}

	return &Dataset{Headers: headers, Records: records}, nil
}

func firstNonEmptyLine(data []byte) (string, bool) {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			return line, true
		}
	}
	return "", false
}

func parseHeaderLine(line string, delimiter rune) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.Comma = delimiter
	cr.LazyQuotes = true
	headers, err := cr.Read()
	if err != nil {
		return nil, err
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}
	return headers, nil
}

func detectDelimiter(line string) rune {
	delimiters := []rune{',', ';', '\t', '|'}
	best := ','
	bestCount := 0
	for _, d := range delimiters {
		if count := strings.Count(line, string(d)); count > bestCount {
			bestCount = count
			best = d
		}
	}
	return best
}

func rowIsEmpty(m map[string]string) bool {
	for _, v := range m {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func normalizeCSVBytes(data []byte) []byte {
	data = stripUTF8BOM(data)
	if utf8.Valid(data) {
		return data
	}
	return decodeLatin1(data)
}

func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}

func decodeLatin1(data []byte) []byte {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return []byte(string(runes))
}
