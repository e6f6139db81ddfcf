// internal/handlers/compare-metric/handler.go
package comparemetric

import (
	"context"
	"fmt"

	cerrors "finbot/internal/common/errors"
	"finbot/internal/common/logger"
	"finbot/internal/dataset"
	"finbot/internal/extract"
)

const HandlerName = "compare-metric"

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

// Execute answers "compare <metric> between <company1> and <company2>".
// Needs a metric and at least two companies; extras beyond the first two
// mentions are ignored. Year defaults to the latest in the data.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	metric, okMetric := extract.MetricName(input.Tokens)
	companies := extract.Companies(h.data, input.Tokens)

	if !okMetric || len(companies) < 2 {
		return nil, fmt.Errorf("%w: metric and two companies are required", cerrors.ErrMissingParameters)
	}

	company1, company2 := companies[0], companies[1]

	year, okYear := extract.Year(h.data, input.Tokens)
	if !okYear {
		year = h.data.MaxYear()
	}

	value1, found := h.data.Metric(company1, year, metric)
	if !found {
		return nil, fmt.Errorf("%w: no record for %s in %d", cerrors.ErrRecordNotFound, company1, year)
	}
	value2, found := h.data.Metric(company2, year, metric)
	if !found {
		return nil, fmt.Errorf("%w: no record for %s in %d", cerrors.ErrRecordNotFound, company2, year)
	}

	h.logger.Debug("comparison complete", map[string]interface{}{
		"company1": company1,
		"company2": company2,
		"metric":   string(metric),
		"year":     year,
	})

	return &Output{
		Company1: company1,
		Company2: company2,
		Metric:   metric,
		Year:     year,
		Value1:   value1,
		Value2:   value2,
	}, nil
}
