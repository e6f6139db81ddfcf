package dataset

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	cerrors "finbot/internal/common/errors"
	"finbot/internal/common/validation"
)

// numericNoise matches the characters stripped from numeric columns before
// parsing: thousands separators and embedded whitespace.
var numericNoise = regexp.MustCompile(`[,\s]`)

// Build validates and cleans raw rows, orders them by company then year,
// computes per-company year-over-year growth, and returns an indexed
// Dataset. Any invalid row makes the whole build fail.
func Build(rows []RawRow) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, cerrors.NewMalformedInputDataError("no rows in source data")
	}

	records := make([]FinancialRecord, 0, len(rows))
	for i, raw := range rows {
		if err := validation.ValidateRawRow(raw.asMap()); err != nil {
			return nil, cerrors.NewMalformedInputDataError(
				fmt.Sprintf("row %d (%s): %s", i+1, raw.Company, err.Error()))
		}

		rec, err := cleanRow(raw)
		if err != nil {
			return nil, cerrors.NewMalformedInputDataError(
				fmt.Sprintf("row %d (%s): %s", i+1, raw.Company, err.Error()))
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(a, b int) bool {
		if records[a].Company != records[b].Company {
			return records[a].Company < records[b].Company
		}
		return records[a].Year < records[b].Year
	})

	for i := 1; i < len(records); i++ {
		if records[i].Company == records[i-1].Company && records[i].Year == records[i-1].Year {
			return nil, cerrors.NewMalformedInputDataError(
				fmt.Sprintf("duplicate row for %s %d", records[i].Company, records[i].Year))
		}
	}

	computeGrowth(records)

	return newDataset(records), nil
}

func (r RawRow) asMap() map[string]interface{} {
	return map[string]interface{}{
		"company":           r.Company,
		"year":              r.Year,
		"total_revenue":     r.TotalRevenue,
		"net_income":        r.NetIncome,
		"total_assets":      r.TotalAssets,
		"total_liabilities": r.TotalLiabilities,
		"cash_flow":         r.CashFlow,
	}
}

func cleanRow(raw RawRow) (FinancialRecord, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw.Year))
	if err != nil {
		return FinancialRecord{}, fmt.Errorf("invalid year %q", raw.Year)
	}

	rec := FinancialRecord{
		Company: strings.TrimSpace(raw.Company),
		Year:    year,
	}

	for _, col := range []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"total_revenue", raw.TotalRevenue, &rec.TotalRevenue},
		{"net_income", raw.NetIncome, &rec.NetIncome},
		{"total_assets", raw.TotalAssets, &rec.TotalAssets},
		{"total_liabilities", raw.TotalLiabilities, &rec.TotalLiabilities},
		{"cash_flow", raw.CashFlow, &rec.CashFlow},
	} {
		v, err := cleanNumber(col.raw)
		if err != nil {
			return FinancialRecord{}, fmt.Errorf("column %s: %w", col.name, err)
		}
		*col.dst = v
	}

	return rec, nil
}

// cleanNumber strips separator noise and parses the remainder as a float.
func cleanNumber(s string) (float64, error) {
	cleaned := numericNoise.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty numeric value %q", s)
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q", s)
	}
	return v, nil
}

// computeGrowth fills in year-over-year growth percentages. Records must
// already be sorted by company then year. The first year of each company
// keeps nil growth, as does any year whose predecessor value is zero.
func computeGrowth(records []FinancialRecord) {
	for i := 1; i < len(records); i++ {
		prev := &records[i-1]
		cur := &records[i]
		if cur.Company != prev.Company {
			continue
		}
		cur.RevenueGrowth = growthPct(prev.TotalRevenue, cur.TotalRevenue)
		cur.IncomeGrowth = growthPct(prev.NetIncome, cur.NetIncome)
	}
}

func growthPct(prev, cur float64) *float64 {
	if prev == 0 {
		return nil
	}
	pct := ((cur - prev) / prev) * 100
	return &pct
}
