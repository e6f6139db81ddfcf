// internal/handlers/list-companies/models.go
package listcompanies

type Input struct {
	Tokens []string `json:"tokens"`
}

type Output struct {
	Companies []string `json:"companies"`
}
