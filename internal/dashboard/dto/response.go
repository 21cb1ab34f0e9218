package dto

import (
	"time"

	"golang-trading-dashboard/internal/dashboard/query"
	"golang-trading-dashboard/internal/entity"
)

// ErrorResponse represents a failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// PositionUniqueValues lists the values available for the position filters.
type PositionUniqueValues struct {
	Symbols       []string `json:"symbols"`
	PositionTypes []string `json:"positionTypes"`
}

// PositionPage is one page of positions plus its metadata.
type PositionPage struct {
	Positions    []entity.Position    `json:"positions"`
	Pagination   query.Pagination     `json:"pagination"`
	UniqueValues PositionUniqueValues `json:"uniqueValues"`
}

// PositionsResponse is returned by the positions query.
type PositionsResponse struct {
	Success bool `json:"success"`
	PositionPage
}

// Stats holds the realized P&L extremes and signed sums over closed positions.
type Stats struct {
	MaxProfit        float64 `json:"maxProfit"`
	MaxLoss          float64 `json:"maxLoss"`
	TotalPositivePnl float64 `json:"totalPositivePnl"`
	TotalNegativePnl float64 `json:"totalNegativePnl"`
}

// StatsResponse is returned by the stats endpoint.
type StatsResponse struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}

// AccountResponse carries the singleton account, null when none exists.
type AccountResponse struct {
	Success bool            `json:"success"`
	Account *entity.Account `json:"account"`
}

// AccountSnapshot is the composed account view.
type AccountSnapshot struct {
	Account       *entity.Account `json:"account"`
	AccountGrowth *float64        `json:"accountGrowth"`
	UnrealizedPnl float64         `json:"unrealizedPnl"`
	RealizedPnl   float64         `json:"realizedPnl"`
	OpenPositions int64           `json:"openPositions"`
	TotalTrades   *int            `json:"totalTrades"`
	MaxProfit     float64         `json:"maxProfit"`
	MaxLoss       float64         `json:"maxLoss"`
}

// SnapshotResponse is returned by the account snapshot endpoint.
type SnapshotResponse struct {
	Success  bool            `json:"success"`
	Snapshot AccountSnapshot `json:"snapshot"`
}

// AnalysisUniqueValues lists the values available for the analysis filters.
type AnalysisUniqueValues struct {
	Symbols         []string `json:"symbols"`
	Signals         []string `json:"signals"`
	Trends          []string `json:"trends"`
	Recommendations []string `json:"recommendations"`
}

// AnalysisPage is one page of archived analyses plus its metadata.
type AnalysisPage struct {
	Data         []entity.AnalysisResult `json:"data"`
	TotalCount   int64                   `json:"totalCount"`
	TotalPages   int                     `json:"totalPages"`
	CurrentPage  int                     `json:"currentPage"`
	HasNextPage  bool                    `json:"hasNextPage"`
	HasPrevPage  bool                    `json:"hasPrevPage"`
	UniqueValues AnalysisUniqueValues    `json:"uniqueValues"`
}

// AnalysisResponse is returned by the analysis query.
type AnalysisResponse struct {
	Success bool `json:"success"`
	AnalysisPage
}

// AnalysisHealth reports the reachability of the analysis archive.
type AnalysisHealth struct {
	Status         string    `json:"status"`
	Collection     string    `json:"collection"`
	TotalDocuments int64     `json:"totalDocuments"`
	Timestamp      time.Time `json:"timestamp"`
}

// DashboardSnapshot is the result of one fetch-all. A section that failed is
// null and its error field says why; the others are still populated.
type DashboardSnapshot struct {
	Account              *AccountSnapshot `json:"account"`
	AccountError         string           `json:"accountError,omitempty"`
	OpenPositions        *PositionPage    `json:"openPositions"`
	OpenPositionsError   string           `json:"openPositionsError,omitempty"`
	ClosedPositions      *PositionPage    `json:"closedPositions"`
	ClosedPositionsError string           `json:"closedPositionsError,omitempty"`
	Stats                *Stats           `json:"stats"`
	StatsError           string           `json:"statsError,omitempty"`
	RefreshedAt          time.Time        `json:"refreshedAt"`
}

// Failed reports whether any section failed.
func (s DashboardSnapshot) Failed() bool {
	return s.AccountError != "" || s.OpenPositionsError != "" || s.ClosedPositionsError != "" || s.StatsError != ""
}

// DashboardResponse is returned by the fetch-all and latest-snapshot endpoints.
type DashboardResponse struct {
	Success bool `json:"success"`
	DashboardSnapshot
}
