package ports

import (
	"context"
	"errors"

	"route-roster-service/internal/domain"
)

// ErrNotFound is returned by single-entity lookups when the backing
// collection has no entry for the requested id.
var ErrNotFound = errors.New("entity not found")

// Port: boundary for retrieving Driver entities from a data source.
type DriverSource interface {
	// Retrieve all drivers in fetch order.
	Drivers(ctx context.Context) ([]domain.Driver, error)
	// Retrieve a single driver by id.
	Driver(ctx context.Context, id int) (*domain.Driver, error)
}

// Port: boundary for retrieving Recipient entities from a data source.
type RecipientSource interface {
	Recipients(ctx context.Context) ([]domain.Recipient, error)
}

// Port: boundary for retrieving Route entities from a data source.
// Routes returns fetch order (ascending by creation); history presentation
// reverses a copy, never the source collection.
type RouteSource interface {
	Routes(ctx context.Context) ([]domain.Route, error)
	Route(ctx context.Context, id int) (*domain.Route, error)
}

// Port: boundary for retrieving departure Location entities.
type LocationSource interface {
	Locations(ctx context.Context) ([]domain.Location, error)
}

// RosterSource bundles the four fetch boundaries a roster view depends on.
type RosterSource interface {
	DriverSource
	RecipientSource
	RouteSource
	LocationSource
}
