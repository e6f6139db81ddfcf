// internal/handlers/profit-margin/handler.go
package profitmargin

import (
	"context"
	"fmt"

	cerrors "finbot/internal/common/errors"
	"finbot/internal/common/logger"
	"finbot/internal/dataset"
	"finbot/internal/extract"
)

const HandlerName = "profit-margin"

type Handler struct {
	config *Config
	data   *dataset.Dataset
	logger logger.Logger
}

func NewHandler(config *Config, data *dataset.Dataset, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		data:   data,
		logger: log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

// Execute answers "what is <company>'s profit margin". Year defaults to the
// latest in the data when the query does not name one.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	company, okCompany := extract.Company(h.data, input.Tokens)
	if !okCompany {
		return nil, fmt.Errorf("%w: company is required", cerrors.ErrMissingParameters)
	}

	year, okYear := extract.Year(h.data, input.Tokens)
	if !okYear {
		year = h.data.MaxYear()
	}

	rec, found := h.data.Lookup(company, year)
	if !found {
		return nil, fmt.Errorf("%w: no record for %s in %d", cerrors.ErrRecordNotFound, company, year)
	}

	// Zero revenue yields 0% rather than a division error.
	margin := 0.0
	if rec.TotalRevenue != 0 {
		margin = (rec.NetIncome / rec.TotalRevenue) * 100
	}

	h.logger.Debug("margin computed", map[string]interface{}{
		"company": company,
		"year":    year,
	})

	return &Output{
		Company:   company,
		Year:      year,
		NetIncome: rec.NetIncome,
		Revenue:   rec.TotalRevenue,
		MarginPct: margin,
	}, nil
}
