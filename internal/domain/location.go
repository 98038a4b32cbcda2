package domain

// A known departure point. Only locations flagged is_center are valid
// departure options for a new route.
type Location struct {
	ID       int    `json:"id"`
	IsCenter bool   `json:"is_center"`
	Address  string `json:"address"`
}
