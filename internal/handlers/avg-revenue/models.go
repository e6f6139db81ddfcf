// internal/handlers/avg-revenue/models.go
package avgrevenue

type Input struct {
	Tokens []string `json:"tokens"`
}

type Output struct {
	Year    int     `json:"year"`
	Average float64 `json:"average"`
}
