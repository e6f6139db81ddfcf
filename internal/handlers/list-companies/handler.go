// internal/handlers/list-companies/handler.go
package listcompanies

import (
	"context"

	"finbot/internal/common/logger"
	"finbot/internal/dataset"
)

const HandlerName = "list-companies"

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

// Execute answers "list all companies". Takes no parameters and cannot fail.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(_ context.Context, _ *Input) (*Output, error) {
	return &Output{
		Companies: h.data.Companies(),
	}, nil
}
