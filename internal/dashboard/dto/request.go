package dto

// PositionQueryRequest is the body of the positions query.
type PositionQueryRequest struct {
	Page    LooseInt               `json:"page" swaggertype:"integer"`
	Limit   LooseInt               `json:"limit" swaggertype:"integer"`
	Status  string                 `json:"status" example:"CLOSED"`
	Filters map[string]interface{} `json:"filters"`
}

// AnalysisQueryRequest is the body of the analysis archive query.
type AnalysisQueryRequest struct {
	Page       LooseInt               `json:"page" swaggertype:"integer"`
	Limit      LooseInt               `json:"limit" swaggertype:"integer"`
	SearchTerm string                 `json:"searchTerm"`
	Filters    map[string]interface{} `json:"filters"`
}

// DashboardRequest selects the closed-positions page and its filters for a
// fetch-all. Open positions, stats and the account are never filtered.
type DashboardRequest struct {
	ClosedPage LooseInt               `json:"closedPage" swaggertype:"integer"`
	Filters    map[string]interface{} `json:"filters"`
}
