package ports

import (
	"context"
	"fmt"

	"route-roster-service/internal/domain"
)

// RejectedError reports that the route-creation collaborator refused a
// draft (invalid departure location, bad limits, empty selections). The
// collaborator owns validation; this side only relays its verdict.
type RejectedError struct {
	Code    int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("route creation rejected (%d): %s", e.Code, e.Message)
}

// Participant reference inside a route-creation request.
type IDRef struct {
	ID int `json:"id"`
}

// RouteCreateRequest is the payload submitted to the external
// route-creation collaborator. The builder performs no validation;
// limits and departure location are passed through as provided and
// rejected, if at all, by the collaborator.
type RouteCreateRequest struct {
	DeliveryLimit     int     `json:"delivery_limit"`
	DurationLimit     int     `json:"duration_limit"`
	DepartureLocation string  `json:"departure_location"`
	Drivers           []IDRef `json:"drivers"`
	Recipients        []IDRef `json:"recipients"`
}

// Port: boundary for the external route optimizer that turns a draft
// into a persisted Route.
type RouteCreator interface {
	CreateRoute(ctx context.Context, req RouteCreateRequest) (*domain.Route, error)
}
