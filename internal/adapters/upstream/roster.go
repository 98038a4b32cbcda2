package upstream

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"route-roster-service/internal/domain"
	"route-roster-service/internal/platform/obs"
	"route-roster-service/internal/ports"
)

// Drivers fetches the full driver roster.
func (c *Client) Drivers(ctx context.Context) (_ []domain.Driver, err error) {
	defer obs.Time(ctx, "upstream.Drivers")(&err)

	var out []domain.Driver
	if err := c.getJSON(ctx, "/drivers", &out); err != nil {
		return nil, fmt.Errorf("fetch drivers: %w", err)
	}
	return out, nil
}

// Driver fetches a single driver by id.
func (c *Client) Driver(ctx context.Context, id int) (_ *domain.Driver, err error) {
	defer obs.Time(ctx, "upstream.Driver")(&err)

	var out domain.Driver
	if err := c.getJSON(ctx, "/drivers/"+strconv.Itoa(id), &out); err != nil {
		if isStatus(err, 404) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("fetch driver %d: %w", id, err)
	}
	return &out, nil
}

// Recipients fetches the full recipient roster.
func (c *Client) Recipients(ctx context.Context) (_ []domain.Recipient, err error) {
	defer obs.Time(ctx, "upstream.Recipients")(&err)

	var out []domain.Recipient
	if err := c.getJSON(ctx, "/recipients", &out); err != nil {
		return nil, fmt.Errorf("fetch recipients: %w", err)
	}
	return out, nil
}

// Routes fetches all routes in upstream order (ascending by creation).
func (c *Client) Routes(ctx context.Context) (_ []domain.Route, err error) {
	defer obs.Time(ctx, "upstream.Routes")(&err)

	var out []domain.Route
	if err := c.getJSON(ctx, "/routes", &out); err != nil {
		return nil, fmt.Errorf("fetch routes: %w", err)
	}
	return out, nil
}

// Route fetches a single route by id.
func (c *Client) Route(ctx context.Context, id int) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "upstream.Route")(&err)

	var out domain.Route
	if err := c.getJSON(ctx, "/routes/"+strconv.Itoa(id), &out); err != nil {
		if isStatus(err, 404) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("fetch route %d: %w", id, err)
	}
	return &out, nil
}

// Locations fetches the departure location candidates.
func (c *Client) Locations(ctx context.Context) (_ []domain.Location, err error) {
	defer obs.Time(ctx, "upstream.Locations")(&err)

	var out []domain.Location
	if err := c.getJSON(ctx, "/locations", &out); err != nil {
		return nil, fmt.Errorf("fetch locations: %w", err)
	}
	return out, nil
}

func isStatus(err error, code int) bool {
	var he *httpStatusError
	return errors.As(err, &he) && he.Code == code
}
