// internal/handlers/avg-revenue/handler.go
package avgrevenue

import (
	"context"
	"fmt"

	cerrors "finbot/internal/common/errors"
	"finbot/internal/common/logger"
	"finbot/internal/dataset"
	"finbot/internal/extract"
)

const HandlerName = "avg-revenue"

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

// Execute averages Total Revenue across all companies for a year, defaulting
// to the latest. Off by default; enable the handler in config to route
// "average" queries to it.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	year, okYear := extract.Year(h.data, input.Tokens)
	if !okYear {
		year = h.data.MaxYear()
	}

	records := h.data.ForYear(year)
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records for %d", cerrors.ErrRecordNotFound, year)
	}

	var sum float64
	for _, rec := range records {
		sum += rec.TotalRevenue
	}

	return &Output{
		Year:    year,
		Average: sum / float64(len(records)),
	}, nil
}
