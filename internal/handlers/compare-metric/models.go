// internal/handlers/compare-metric/models.go
package comparemetric

import "finbot/internal/dataset"

type Input struct {
	Tokens []string `json:"tokens"`
}

type Output struct {
	Company1 string         `json:"company1"`
	Company2 string         `json:"company2"`
	Metric   dataset.Metric `json:"metric"`
	Year     int            `json:"year"`
	Value1   float64        `json:"value1"`
	Value2   float64        `json:"value2"`
}
