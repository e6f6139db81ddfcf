// internal/handlers/metric-growth/models.go
package metricgrowth

import "finbot/internal/dataset"

type Input struct {
	Tokens []string `json:"tokens"`
}

type Output struct {
	Company   string         `json:"company"`
	Metric    dataset.Metric `json:"metric"`
	Year1     int            `json:"year1"`
	Year2     int            `json:"year2"`
	Value1    float64        `json:"value1"`
	Value2    float64        `json:"value2"`
	ChangePct float64        `json:"changePct"`
}
