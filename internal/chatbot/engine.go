package chatbot

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"finbot/internal/common/database"
	cerrors "finbot/internal/common/errors"
	"finbot/internal/common/logger"
	"finbot/internal/common/metrics"
	"finbot/internal/common/observability"
	"finbot/internal/dataset"
	"finbot/internal/extract"
	avgrevenue "finbot/internal/handlers/avg-revenue"
	comparemetric "finbot/internal/handlers/compare-metric"
	listcompanies "finbot/internal/handlers/list-companies"
	metricgrowth "finbot/internal/handlers/metric-growth"
	profitmargin "finbot/internal/handlers/profit-margin"
	revenueyear "finbot/internal/handlers/revenue-year"
	"finbot/internal/response"
)

// Config holds engine-level settings.
type Config struct {
	CacheEnabled   bool
	CacheTTL       time.Duration
	AverageRevenue bool
}

// Reply is one rendered answer. Exit tells the driver loop to stop.
type Reply struct {
	Text string `json:"text"`
	Exit bool   `json:"exit"`
}

// Engine owns the router, the intent handlers and the optional Redis answer
// cache. One engine serves all queries for the process lifetime.
type Engine struct {
	config *Config
	data   *dataset.Dataset
	router *Router

	revenue *revenueyear.Handler
	compare *comparemetric.Handler
	growth  *metricgrowth.Handler
	margin  *profitmargin.Handler
	list    *listcompanies.Handler
	average *avgrevenue.Handler

	cache *database.RedisClient
	obs   *observability.Observability
	log   logger.Logger
}

// NewEngine wires the handlers against the dataset. cache and obs may be nil.
func NewEngine(cfg *Config, data *dataset.Dataset, cache *database.RedisClient, obs *observability.Observability, log logger.Logger) *Engine {
	e := &Engine{
		config:  cfg,
		data:    data,
		router:  NewRouter(cfg.AverageRevenue),
		revenue: revenueyear.NewHandler(revenueyear.LoadConfig(), data, log),
		compare: comparemetric.NewHandler(comparemetric.LoadConfig(), data, log),
		growth:  metricgrowth.NewHandler(metricgrowth.LoadConfig(), data, log),
		margin:  profitmargin.NewHandler(profitmargin.LoadConfig(), data, log),
		list:    listcompanies.NewHandler(listcompanies.LoadConfig(), data, log),
		obs:     obs,
		log:     log,
	}
	if cfg.AverageRevenue {
		e.average = avgrevenue.NewHandler(avgrevenue.LoadConfig(), data, log)
	}
	if cfg.CacheEnabled {
		e.cache = cache
	}
	return e
}

// Respond handles one user input line and returns the rendered reply.
func (e *Engine) Respond(ctx context.Context, line string) Reply {
	started := time.Now()
	requestID := uuid.NewString()

	normalized := strings.ToLower(strings.TrimSpace(line))
	intent := e.router.Route(normalized)

	log := e.log.WithFields(map[string]interface{}{
		"requestId": requestID,
		"intent":    string(intent),
	})
	log.Info("query received", map[string]interface{}{"query": normalized})

	metrics.QueriesTotal.WithLabelValues(string(intent)).Inc()
	defer func() {
		elapsed := time.Since(started)
		metrics.QueryDuration.WithLabelValues(string(intent)).Observe(elapsed.Seconds())
		if e.obs != nil {
			e.obs.RecordQueryProcessed(ctx, string(intent))
			e.obs.RecordQueryDuration(ctx, elapsed, string(intent))
		}
	}()

	switch intent {
	case IntentExit:
		return Reply{Text: response.Farewell(), Exit: true}
	case IntentUnknown:
		return Reply{Text: response.Unknown()}
	}

	cacheKey := "answer:" + normalized
	if e.cache != nil {
		if cached, err := e.cache.Get(ctx, cacheKey); err == nil {
			metrics.CacheHits.Inc()
			log.Debug("answer served from cache", nil)
			return Reply{Text: cached}
		}
	}

	tokens := extract.Tokenize(normalized)
	text, err := e.dispatch(ctx, intent, tokens)
	if err != nil {
		code := cerrors.CodeOf(err)
		metrics.QueriesFailed.WithLabelValues(string(intent), string(code)).Inc()
		log.WithError(err).Warn("handler could not answer", nil)
		return Reply{Text: e.errorText(intent, err)}
	}

	if e.cache != nil {
		if err := e.cache.Set(ctx, cacheKey, text, e.config.CacheTTL); err != nil {
			log.WithError(err).Warn("failed to cache answer", nil)
		}
	}

	return Reply{Text: text}
}

func (e *Engine) dispatch(ctx context.Context, intent Intent, tokens []string) (string, error) {
	switch intent {
	case IntentRevenueForYear:
		out, err := e.revenue.Execute(ctx, &revenueyear.Input{Tokens: tokens})
		if err != nil {
			return "", err
		}
		return response.Render(response.TemplateRevenueYear, map[string]string{
			"company": out.Company,
			"year":    strconv.Itoa(out.Year),
			"value":   response.Money(out.Revenue),
		})

	case IntentCompareMetric:
		out, err := e.compare.Execute(ctx, &comparemetric.Input{Tokens: tokens})
		if err != nil {
			return "", err
		}
		return response.Render(response.TemplateCompareMetric, map[string]string{
			"company1": out.Company1,
			"company2": out.Company2,
			"metric":   string(out.Metric),
			"value1":   response.Money(out.Value1),
			"value2":   response.Money(out.Value2),
		})

	case IntentGrowthBetweenYears:
		out, err := e.growth.Execute(ctx, &metricgrowth.Input{Tokens: tokens})
		if err != nil {
			return "", err
		}
		return response.Render(response.TemplateMetricGrowth, map[string]string{
			"company": out.Company,
			"metric":  string(out.Metric),
			"year1":   strconv.Itoa(out.Year1),
			"year2":   strconv.Itoa(out.Year2),
			"value1":  response.Money(out.Value1),
			"value2":  response.Money(out.Value2),
			"change":  response.SignedPercent(out.ChangePct),
		})

	case IntentProfitMargin:
		out, err := e.margin.Execute(ctx, &profitmargin.Input{Tokens: tokens})
		if err != nil {
			return "", err
		}
		return response.Render(response.TemplateProfitMargin, map[string]string{
			"company":    out.Company,
			"year":       strconv.Itoa(out.Year),
			"net_income": response.Money(out.NetIncome),
			"revenue":    response.Money(out.Revenue),
			"margin":     response.Percent(out.MarginPct),
		})

	case IntentListCompanies:
		out, err := e.list.Execute(ctx, &listcompanies.Input{Tokens: tokens})
		if err != nil {
			return "", err
		}
		return response.Render(response.TemplateListCompanies, map[string]string{
			"companies": strings.Join(out.Companies, ", "),
		})

	case IntentAverageRevenue:
		if e.average == nil {
			return response.Unknown(), nil
		}
		out, err := e.average.Execute(ctx, &avgrevenue.Input{Tokens: tokens})
		if err != nil {
			return "", err
		}
		return response.Render(response.TemplateAvgRevenue, map[string]string{
			"year":  strconv.Itoa(out.Year),
			"value": response.Money(out.Average),
		})
	}

	return response.Unknown(), nil
}

// errorText maps handler failures onto user-visible text. RevenueForYear and
// CompareMetric fall back to the generic unknown reply on a failed lookup;
// GrowthBetweenYears, ProfitMargin and AverageRevenue surface an explicit
// error string.
func (e *Engine) errorText(intent Intent, err error) string {
	if errors.Is(err, cerrors.ErrMissingParameters) {
		return response.Unknown()
	}

	if errors.Is(err, cerrors.ErrRecordNotFound) {
		switch intent {
		case IntentGrowthBetweenYears, IntentProfitMargin, IntentAverageRevenue:
			return "Error: " + err.Error()
		}
		return response.Unknown()
	}

	return response.Unknown()
}
