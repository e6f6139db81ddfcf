// Package response renders intent results into the fixed reply templates.
package response

// Template IDs, one per renderable intent.
const (
	TemplateRevenueYear       = "revenue_year"
	TemplateCompareMetric     = "compare_metric"
	TemplateCompareMetricYear = "compare_metric_year"
	TemplateMetricGrowth      = "metric_growth"
	TemplateListCompanies     = "list_companies"
	TemplateProfitMargin      = "profit_margin"
	TemplateAvgRevenue        = "avg_revenue"
	TemplateExit              = "exit"
	TemplateUnknown           = "unknown"
)

// templates holds the reply patterns. Placeholders use {{key}} syntax and
// every money value arrives pre-formatted, so rendering is pure string
// substitution.
var templates = map[string]string{
	TemplateRevenueYear: "{{company}}'s {{year}} revenue: ${{value}} million",

	TemplateCompareMetric: "{{company1}} vs {{company2}} ({{metric}}):\n" +
		"-{{company1}}: ${{value1}} million\n" +
		"-{{company2}}: ${{value2}} million",

	TemplateCompareMetricYear: "{{company1}} vs {{company2}} ({{metric}}, {{year}}):\n" +
		"-{{company1}}: ${{value1}} million\n" +
		"-{{company2}}: ${{value2}} million",

	TemplateMetricGrowth: "{{company}}'s {{metric}} growth ({{year1}}-{{year2}}):\n" +
		"-{{year1}}: ${{value1}} million\n" +
		"-{{year2}}: ${{value2}} million\n" +
		"Growth: {{change}}%",

	TemplateListCompanies: "Available companies: {{companies}}",

	TemplateProfitMargin: "{{company}}'s {{year}} net profit margin:\n" +
		"-Net Income: ${{net_income}} million\n" +
		"-Total Revenue: ${{revenue}} million\n" +
		"Margin: {{margin}}%",

	TemplateAvgRevenue: "Average revenue ({{year}}): ${{value}} million",

	TemplateExit: "Thank you for using FinancialBot!",

	TemplateUnknown: "I didn't understand that. Try:\n" +
		"- 'Show Microsoft revenue for 2024'\n" +
		"- 'Compare revenue between Tesla and Apple'\n" +
		"- 'List all companies'",
}
