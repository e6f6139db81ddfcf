package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// csvColumns maps the expected header names to RawRow fields. Header
// matching is case-insensitive and ignores surrounding whitespace.
var csvColumns = []string{
	"company", "year", "total_revenue", "net_income",
	"total_assets", "total_liabilities", "cash_flow",
}

// LoadCSV reads the metrics CSV at path and builds the dataset from it.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range csvColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("csv missing required column %q", col)
		}
	}

	var rows []RawRow
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		rows = append(rows, RawRow{
			Company:          fields[colIdx["company"]],
			Year:             fields[colIdx["year"]],
			TotalRevenue:     fields[colIdx["total_revenue"]],
			NetIncome:        fields[colIdx["net_income"]],
			TotalAssets:      fields[colIdx["total_assets"]],
			TotalLiabilities: fields[colIdx["total_liabilities"]],
			CashFlow:         fields[colIdx["cash_flow"]],
		})
	}

	return Build(rows)
}
