package dto

import "route-roster-service/internal/services"

// HistoryResponse carries the denormalized newest-first route report.
// Partial is true when a reference collection failed to load and derived
// fields degraded to empty values for this render.
type HistoryResponse struct {
	Reports []services.RouteReport `json:"reports"`
	Partial bool                   `json:"partial,omitempty"`
}
