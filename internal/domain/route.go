package domain

// A single itinerary entry: the join between a route and a recipient.
// Address and demand are snapshotted at route-creation time and may differ
// from the recipient master record.
type Stop struct {
	RecipientID int     `json:"id"`
	Address     Address `json:"address"`
	Demand      int     `json:"demand"`
}

// A planned delivery run produced by the upstream optimizer.
//
// CreatedOn is kept as the raw upstream timestamp string
// (YYYY-MM-DDTHH:MM:SS...); display formatting is a fixed-offset transform,
// not a parse. AssignedTo is nil when no driver has been assigned.
// Itinerary order is delivery order. Total metrics are pre-computed upstream
// and passed through as-is.
type Route struct {
	ID            int     `json:"id"`
	CreatedOn     string  `json:"created_on"`
	AssignedTo    *int    `json:"assigned_to"`
	Itinerary     []Stop  `json:"itinerary"`
	TotalDistance float64 `json:"total_distance"`
	TotalDuration float64 `json:"total_duration"`
	TotalQuantity int     `json:"total_quantity"`
}
