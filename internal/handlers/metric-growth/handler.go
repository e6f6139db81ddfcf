// internal/handlers/metric-growth/handler.go
package metricgrowth

import (
	"context"
	"fmt"

	cerrors "finbot/internal/common/errors"
	"finbot/internal/common/logger"
	"finbot/internal/dataset"
	"finbot/internal/extract"
)

const HandlerName = "metric-growth"

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

// Execute answers "what was the <metric> growth for <company> from <year1>
// to <year2>". Needs a company, a metric and exactly two distinct years.
// Years are reported in ascending order regardless of query order.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	company, okCompany := extract.Company(h.data, input.Tokens)
	metric, okMetric := extract.MetricName(input.Tokens)
	years := extract.Years(h.data, input.Tokens)

	if !okCompany || !okMetric || len(years) != 2 {
		return nil, fmt.Errorf("%w: company, metric and two years are required", cerrors.ErrMissingParameters)
	}

	year1, year2 := years[0], years[1]
	if year1 > year2 {
		year1, year2 = year2, year1
	}

	value1, found := h.data.Metric(company, year1, metric)
	if !found {
		return nil, fmt.Errorf("%w: no record for %s in %d", cerrors.ErrRecordNotFound, company, year1)
	}
	value2, found := h.data.Metric(company, year2, metric)
	if !found {
		return nil, fmt.Errorf("%w: no record for %s in %d", cerrors.ErrRecordNotFound, company, year2)
	}

	// Zero baseline yields 0% rather than a division error.
	change := 0.0
	if value1 != 0 {
		change = ((value2 - value1) / value1) * 100
	}

	h.logger.Debug("growth computed", map[string]interface{}{
		"company": company,
		"metric":  string(metric),
		"year1":   year1,
		"year2":   year2,
	})

	return &Output{
		Company:   company,
		Metric:    metric,
		Year1:     year1,
		Year2:     year2,
		Value1:    value1,
		Value2:    value2,
		ChangePct: change,
	}, nil
}
