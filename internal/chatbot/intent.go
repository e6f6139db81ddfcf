// Package chatbot routes user queries to intent handlers and renders the
// replies.
package chatbot

// Intent identifies what a query is asking for.
type Intent string

const (
	IntentRevenueForYear     Intent = "revenue-year"
	IntentCompareMetric      Intent = "compare-metric"
	IntentGrowthBetweenYears Intent = "metric-growth"
	IntentProfitMargin       Intent = "profit-margin"
	IntentListCompanies      Intent = "list-companies"
	IntentAverageRevenue     Intent = "avg-revenue"
	IntentExit               Intent = "exit"
	IntentUnknown            Intent = "unknown"
)
