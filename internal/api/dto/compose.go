package dto

import "route-roster-service/internal/domain"

type CreateSessionResponse struct {
	SessionID        string   `json:"session_id"`
	DepartureOptions []string `json:"departure_options"`
}

// ToggleRequest mirrors the selection callback of the construction form:
// one id plus the deselect flag.
type ToggleRequest struct {
	ID       int  `json:"id"`
	Deselect bool `json:"deselect"`
}

type SessionResponse struct {
	SessionID  string `json:"session_id"`
	Drivers    []int  `json:"drivers"`
	Recipients []int  `json:"recipients"`
}

type SubmitRequest struct {
	DeliveryLimit     int    `json:"delivery_limit"`
	DurationLimit     int    `json:"duration_limit"`
	DepartureLocation string `json:"departure_location"`
}

type SubmitResponse struct {
	Route domain.Route `json:"route"`
}
