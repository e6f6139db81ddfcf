// internal/handlers/profit-margin/models.go
package profitmargin

type Input struct {
	Tokens []string `json:"tokens"`
}

type Output struct {
	Company   string  `json:"company"`
	Year      int     `json:"year"`
	NetIncome float64 `json:"netIncome"`
	Revenue   float64 `json:"revenue"`
	MarginPct float64 `json:"marginPct"`
}
