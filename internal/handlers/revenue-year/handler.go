// internal/handlers/revenue-year/handler.go
package revenueyear

import (
	"context"
	"fmt"

	cerrors "finbot/internal/common/errors"
	"finbot/internal/common/logger"
	"finbot/internal/dataset"
	"finbot/internal/extract"
)

const HandlerName = "revenue-year"

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

// Execute answers "show <company> revenue for <year>". Both parameters are
// required; there is no defaulting on this path.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	company, okCompany := extract.Company(h.data, input.Tokens)
	year, okYear := extract.Year(h.data, input.Tokens)

	if !okCompany || !okYear {
		return nil, fmt.Errorf("%w: company and year are both required", cerrors.ErrMissingParameters)
	}

	rec, found := h.data.Lookup(company, year)
	if !found {
		return nil, fmt.Errorf("%w: no record for %s in %d", cerrors.ErrRecordNotFound, company, year)
	}

	h.logger.Debug("revenue lookup complete", map[string]interface{}{
		"company": company,
		"year":    year,
	})

	return &Output{
		Company: company,
		Year:    year,
		Revenue: rec.TotalRevenue,
	}, nil
}
