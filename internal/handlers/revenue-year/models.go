// internal/handlers/revenue-year/models.go
package revenueyear

type Input struct {
	Tokens []string `json:"tokens"`
}

type Output struct {
	Company string  `json:"company"`
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
}
