package chatbot

import "strings"

type route struct {
	keyword string
	intent  Intent
}

// Router maps a lowercased query to an intent by scanning an ordered
// keyword list; the first substring match wins. A query containing both
// "show" and "compare" resolves to RevenueForYear because "show" is tested
// first. Keep the ordering fixed.
type Router struct {
	routes []route
}

// NewRouter builds the router. averageRevenue appends the optional
// "average" keyword after the standard six.
func NewRouter(averageRevenue bool) *Router {
	r := &Router{
		routes: []route{
			{"exit", IntentExit},
			{"list", IntentListCompanies},
			{"show", IntentRevenueForYear},
			{"compare", IntentCompareMetric},
			{"growth", IntentGrowthBetweenYears},
			{"profit margin", IntentProfitMargin},
		},
	}
	if averageRevenue {
		r.routes = append(r.routes, route{"average", IntentAverageRevenue})
	}
	return r
}

// Route returns the intent for a lowercased query, or IntentUnknown when no
// keyword matches.
func (r *Router) Route(query string) Intent {
	for _, rt := range r.routes {
		if strings.Contains(query, rt.keyword) {
			return rt.intent
		}
	}
	return IntentUnknown
}
