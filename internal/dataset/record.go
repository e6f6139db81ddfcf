// Package dataset loads and indexes the yearly financial metrics the
// chatbot answers questions about.
package dataset

// Metric identifies one of the two queryable income-statement columns.
type Metric string

const (
	MetricRevenue Metric = "Revenue"
	MetricIncome  Metric = "Income"
)

// RawRow is one source row exactly as it arrives from CSV or Postgres,
// numeric columns still as strings so cleaning happens in one place.
type RawRow struct {
	Company          string
	Year             string
	TotalRevenue     string
	NetIncome        string
	TotalAssets      string
	TotalLiabilities string
	CashFlow         string
}

// FinancialRecord is one cleaned (company, year) row. Growth fields are nil
// for a company's first recorded year.
type FinancialRecord struct {
	Company          string   `json:"company"`
	Year             int      `json:"year"`
	TotalRevenue     float64  `json:"totalRevenue"`
	NetIncome        float64  `json:"netIncome"`
	TotalAssets      float64  `json:"totalAssets"`
	TotalLiabilities float64  `json:"totalLiabilities"`
	CashFlow         float64  `json:"cashFlow"`
	RevenueGrowth    *float64 `json:"revenueGrowthPct,omitempty"`
	IncomeGrowth     *float64 `json:"incomeGrowthPct,omitempty"`
}

// Value returns the record's value for the given metric.
func (r *FinancialRecord) Value(m Metric) float64 {
	if m == MetricIncome {
		return r.NetIncome
	}
	return r.TotalRevenue
}
