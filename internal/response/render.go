package response

import (
	"fmt"
	"math"
	"strings"

	cerrors "finbot/internal/common/errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// Render substitutes data into the named template. Every placeholder in the
// template must be covered by data; leftovers are a programming error.
func Render(templateID string, data map[string]string) (string, error) {
	tmpl, ok := templates[templateID]
	if !ok {
		return "", cerrors.NewTemplateNotFoundError(templateID)
	}

	result := tmpl
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}

	if i := strings.Index(result, "{{"); i >= 0 {
		end := strings.Index(result[i:], "}}")
		placeholder := result[i:]
		if end >= 0 {
			placeholder = result[i : i+end+2]
		}
		return "", cerrors.NewTemplateValidationFailedError(
			fmt.Sprintf("template %s: unresolved placeholder %s", templateID, placeholder))
	}

	return result, nil
}

// Money formats a value in millions as a thousands-grouped integer, e.g.
// 245122.0 -> "245,122". Half-way values round to even.
func Money(v float64) string {
	return moneyPrinter.Sprintf("%d", int64(math.RoundToEven(v)))
}

// SignedPercent formats a growth delta with one decimal and explicit sign.
func SignedPercent(v float64) string {
	return fmt.Sprintf("%+.1f", v)
}

// Percent formats a percentage with one decimal place.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// Unknown returns the fallback reply for unrecognized queries.
func Unknown() string {
	return templates[TemplateUnknown]
}

// Farewell returns the exit reply.
func Farewell() string {
	return templates[TemplateExit]
}
