package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser handles CSV files. Each data row is flattened into one
// "header: value" line so downstream text processing sees labeled cells.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*Result, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	meta := map[string]any{
		"Content-Type": "text/csv",
	}

	if len(records) == 0 {
		return &Result{Metadata: meta}, nil
	}

	// First row is headers.
	headers := records[0]
	dataRows := records[1:]
	meta["Row-Count"] = len(dataRows)

	var text strings.Builder
	for _, row := range dataRows {
		for j, cell := range row {
			if j > 0 {
				text.WriteString(", ")
			}
			if j < len(headers) {
				text.WriteString(headers[j] + ": " + cell)
			} else {
				text.WriteString(cell)
			}
		}
		text.WriteString("\n")
	}

	return &Result{
		Text:     strings.TrimRight(text.String(), "\n"),
		Metadata: meta,
	}, nil
}
