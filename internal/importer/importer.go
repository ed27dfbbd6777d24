// Package importer parses CSV files exported from other finance tools into
// record create params. The column layout is discovered from the header row,
// so exports with extra columns or different ordering still import.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/rpfonseca/finboard/internal/encoding"
	"github.com/rpfonseca/finboard/internal/money"
	"github.com/rpfonseca/finboard/internal/record"
)

// Result reports what the parser managed to read. Rows that fail to parse
// are skipped and counted rather than failing the whole file.
type Result struct {
	Params  []record.CreateParams
	Skipped int
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Recognized header names, lowercased. First match wins per column.
var headerAliases = map[string][]string{
	"date":           {"date", "data", "transaction date"},
	"description":    {"description", "descrição", "label", "memo"},
	"amount":         {"amount", "montante", "value", "total"},
	"category":       {"category", "categoria"},
	"status":         {"status", "state"},
	"client":         {"client", "customer", "cliente"},
	"payment_method": {"payment method", "payment_method", "method"},
	"invoice":        {"invoice", "invoice number", "fatura"},
	"notes":          {"notes", "note", "observações"},
}

var dateLayouts = []string{time.DateOnly, "02-01-2006", "02/01/2006", "01/02/2006"}

// Parse reads one CSV file into create params for the given kind.
// The input may be in any encoding the encoding package can detect.
func (s *Service) Parse(r io.Reader, kind record.Kind) (*Result, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown record kind: %s", kind)
	}

	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no header row found: expected at least date and amount columns")
	}

	result := &Result{}

	for _, row := range rows[headerIdx+1:] {
		params, ok := parseRow(row, cols, kind)
		if !ok {
			result.Skipped++
			continue
		}

		result.Params = append(result.Params, params)
	}

	return result, nil
}

// sniffDelimiter picks between comma and semicolon based on the first line.
// Spreadsheet exports from comma-decimal locales use semicolons.
func sniffDelimiter(data []byte) rune {
	line, _, _ := bytes.Cut(data, []byte("\n"))

	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}

	return ','
}

// colIndex maps canonical field names to their column position.
type colIndex map[string]int

// findHeader scans for the first row containing at least a date and an
// amount column under any recognized alias.
func findHeader(rows [][]string) (colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))

			for field, aliases := range headerAliases {
				if _, taken := cols[field]; taken {
					continue
				}

				for _, alias := range aliases {
					if name == alias {
						cols[field] = i
						break
					}
				}
			}
		}

		if _, ok := cols["date"]; !ok {
			continue
		}

		if _, ok := cols["amount"]; ok {
			return cols, rowIdx
		}
	}

	return nil, 0
}

func field(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func parseRow(row []string, cols colIndex, kind record.Kind) (record.CreateParams, bool) {
	dateStr := field(row, cols, "date")
	if dateStr == "" {
		return record.CreateParams{}, false
	}

	var date time.Time

	var err error

	for _, layout := range dateLayouts {
		if date, err = time.Parse(layout, dateStr); err == nil {
			break
		}
	}

	if err != nil {
		return record.CreateParams{}, false
	}

	amount, err := money.ParseCents(field(row, cols, "amount"))
	if err != nil {
		return record.CreateParams{}, false
	}

	status := record.Status(strings.ToLower(field(row, cols, "status")))
	if status == "" {
		status = record.StatusCompleted
	}

	if !status.Valid() {
		return record.CreateParams{}, false
	}

	return record.CreateParams{
		Kind:          kind,
		Date:          date,
		Description:   field(row, cols, "description"),
		Amount:        amount,
		Category:      field(row, cols, "category"),
		Status:        status,
		Client:        field(row, cols, "client"),
		PaymentMethod: field(row, cols, "payment_method"),
		Invoice:       field(row, cols, "invoice"),
		Notes:         field(row, cols, "notes"),
	}, true
}
