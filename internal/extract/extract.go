// Package extract pulls query parameters (companies, years, metric names)
// out of tokenized user input.
package extract

import (
	"strconv"
	"strings"
	"unicode"

	"finbot/internal/dataset"
)

// Tokenize lowercases the query and splits it on whitespace.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Capitalize upper-cases the first rune and lower-cases the rest, matching
// how canonical company names are written in the data.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Company returns the first token that names a known company.
func Company(ds *dataset.Dataset, tokens []string) (string, bool) {
	for _, tok := range tokens {
		name := Capitalize(tok)
		if ds.HasCompany(name) {
			return name, true
		}
	}
	return "", false
}

// Companies returns every company mention in query order. Repeated mentions
// are kept; a company compared against itself is a valid query.
func Companies(ds *dataset.Dataset, tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		name := Capitalize(tok)
		if ds.HasCompany(name) {
			out = append(out, name)
		}
	}
	return out
}

// Year returns the first token that parses as a year present in the data.
func Year(ds *dataset.Dataset, tokens []string) (int, bool) {
	for _, tok := range tokens {
		if y, ok := parseYear(ds, tok); ok {
			return y, true
		}
	}
	return 0, false
}

// Years returns all distinct data years mentioned, in query order.
func Years(ds *dataset.Dataset, tokens []string) []int {
	var out []int
	seen := make(map[int]struct{})
	for _, tok := range tokens {
		y, ok := parseYear(ds, tok)
		if !ok {
			continue
		}
		if _, dup := seen[y]; dup {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	return out
}

// MetricName returns the metric referenced by a literal "revenue" or
// "income" token.
func MetricName(tokens []string) (dataset.Metric, bool) {
	for _, tok := range tokens {
		switch tok {
		case "revenue":
			return dataset.MetricRevenue, true
		case "income":
			return dataset.MetricIncome, true
		}
	}
	return "", false
}

func parseYear(ds *dataset.Dataset, tok string) (int, bool) {
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return 0, false
		}
	}
	y, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	if !ds.HasYear(y) {
		return 0, false
	}
	return y, true
}
