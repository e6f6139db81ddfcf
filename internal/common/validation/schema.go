// internal/common/validation/schema.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// rawRowSchema describes one source row before numeric cleaning. Values are
// kept as strings at this stage because real exports carry thousands
// separators and stray whitespace inside the numeric columns.
var rawRowSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"company": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"year": map[string]interface{}{
			"type":    "string",
			"pattern": `^\s*\d{4}\s*$`,
		},
		"total_revenue": map[string]interface{}{
			"type":    "string",
			"pattern": `^-?[\d,.\s]+$`,
		},
		"net_income": map[string]interface{}{
			"type":    "string",
			"pattern": `^-?[\d,.\s]+$`,
		},
		"total_assets": map[string]interface{}{
			"type":    "string",
			"pattern": `^-?[\d,.\s]+$`,
		},
		"total_liabilities": map[string]interface{}{
			"type":    "string",
			"pattern": `^-?[\d,.\s]+$`,
		},
		"cash_flow": map[string]interface{}{
			"type":    "string",
			"pattern": `^-?[\d,.\s]+$`,
		},
	},
	"required": []interface{}{
		"company", "year", "total_revenue", "net_income",
		"total_assets", "total_liabilities", "cash_flow",
	},
}

// ValidateRawRow checks one source row against the row schema and returns a
// descriptive error listing every violation.
func ValidateRawRow(row map[string]interface{}) error {
	schemaLoader := gojsonschema.NewGoLoader(rawRowSchema)
	documentLoader := gojsonschema.NewGoLoader(row)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return fmt.Errorf("row validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
