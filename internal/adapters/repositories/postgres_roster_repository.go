package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"route-roster-service/internal/domain"
	"route-roster-service/internal/platform/obs"
	"route-roster-service/internal/ports"
)

// Postgres-backed implementation of the roster source ports. Used when the
// service serves a local mirror of the roster instead of proxying the
// upstream API.
type PostgresRosterRepository struct{ DB *sql.DB }

func NewPostgresRosterRepository(db *sql.DB) *PostgresRosterRepository {
	return &PostgresRosterRepository{DB: db}
}

func (p *PostgresRosterRepository) Drivers(ctx context.Context) (_ []domain.Driver, err error) {
	defer obs.Time(ctx, "repo.Drivers")(&err)

	query := `
	SELECT
		id,
		first_name,
		last_name,
		capacity,
		employee_status
	FROM drivers
	ORDER BY id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drivers: query drivers table: %w", err)
	}
	defer rows.Close()

	drivers := make([]domain.Driver, 0, 32)
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Capacity, &d.EmployeeStatus); err != nil {
			return nil, fmt.Errorf("list drivers: scan row: %w", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drivers: row iteration: %w", err)
	}

	return drivers, nil
}

func (p *PostgresRosterRepository) Driver(ctx context.Context, id int) (*domain.Driver, error) {
	query := `
	SELECT
		id,
		first_name,
		last_name,
		capacity,
		employee_status
	FROM drivers
	WHERE id = $1;
	`
	var d domain.Driver
	err := p.DB.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.FirstName, &d.LastName, &d.Capacity, &d.EmployeeStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}

	return &d, nil
}

func (p *PostgresRosterRepository) Recipients(ctx context.Context) (_ []domain.Recipient, err error) {
	defer obs.Time(ctx, "repo.Recipients")(&err)

	query := `
	SELECT
		id,
		first_name,
		last_name,
		phone,
		COALESCE(comments, ''),
		street,
		city,
		state,
		zipcode,
		COALESCE(room_number, ''),
		demand
	FROM recipients
	ORDER BY id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list recipients: query recipients table: %w", err)
	}
	defer rows.Close()

	recipients := make([]domain.Recipient, 0, 64)
	for rows.Next() {
		var r domain.Recipient
		err := rows.Scan(
			&r.ID, &r.FirstName, &r.LastName, &r.Phone, &r.Comments,
			&r.Location.Street, &r.Location.City, &r.Location.State,
			&r.Location.Zipcode, &r.Location.RoomNumber, &r.Demand,
		)
		if err != nil {
			return nil, fmt.Errorf("list recipients: scan row: %w", err)
		}
		recipients = append(recipients, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recipients: row iteration: %w", err)
	}

	return recipients, nil
}

func (p *PostgresRosterRepository) Locations(ctx context.Context) (_ []domain.Location, err error) {
	defer obs.Time(ctx, "repo.Locations")(&err)

	query := `
	SELECT
		id,
		is_center,
		address
	FROM locations
	ORDER BY id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0, 8)
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.IsCenter, &l.Address); err != nil {
			return nil, fmt.Errorf("list locations: scan row: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return locations, nil
}

// Routes returns all routes with their itineraries in stop order. Route
// order is ascending by id, matching upstream fetch order; the history
// layer reverses its own copy for display.
func (p *PostgresRosterRepository) Routes(ctx context.Context) (_ []domain.Route, err error) {
	defer obs.Time(ctx, "repo.Routes")(&err)

	query := `
	SELECT
		id,
		created_on,
		assigned_to,
		total_distance,
		total_duration,
		total_quantity
	FROM routes
	ORDER BY id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0, 32)
	byID := make(map[int]int)
	for rows.Next() {
		var r domain.Route
		var assignedTo sql.NullInt64
		err := rows.Scan(
			&r.ID, &r.CreatedOn, &assignedTo,
			&r.TotalDistance, &r.TotalDuration, &r.TotalQuantity,
		)
		if err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		if assignedTo.Valid {
			v := int(assignedTo.Int64)
			r.AssignedTo = &v
		}
		r.Itinerary = []domain.Stop{}
		byID[r.ID] = len(routes)
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	if err := p.attachStops(ctx, routes, byID); err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}

	return routes, nil
}

func (p *PostgresRosterRepository) Route(ctx context.Context, id int) (*domain.Route, error) {
	query := `
	SELECT
		id,
		created_on,
		assigned_to,
		total_distance,
		total_duration,
		total_quantity
	FROM routes
	WHERE id = $1;
	`
	var r domain.Route
	var assignedTo sql.NullInt64
	err := p.DB.QueryRowContext(ctx, query, id).Scan(
		&r.ID, &r.CreatedOn, &assignedTo,
		&r.TotalDistance, &r.TotalDuration, &r.TotalQuantity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get route %d: %w", id, err)
	}
	if assignedTo.Valid {
		v := int(assignedTo.Int64)
		r.AssignedTo = &v
	}

	routes := []domain.Route{r}
	routes[0].Itinerary = []domain.Stop{}
	if err := p.attachStops(ctx, routes, map[int]int{r.ID: 0}); err != nil {
		return nil, fmt.Errorf("get route %d: %w", id, err)
	}

	return &routes[0], nil
}

// attachStops loads the itinerary rows for the given routes, preserving
// per-route stop order.
func (p *PostgresRosterRepository) attachStops(ctx context.Context, routes []domain.Route, byID map[int]int) error {
	if len(routes) == 0 {
		return nil
	}

	query := `
	SELECT
		route_id,
		recipient_id,
		street,
		city,
		state,
		zipcode,
		demand
	FROM route_stops
	ORDER BY route_id, position;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("query route_stops table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var routeID int
		var s domain.Stop
		err := rows.Scan(
			&routeID, &s.RecipientID,
			&s.Address.Street, &s.Address.City, &s.Address.State,
			&s.Address.Zipcode, &s.Demand,
		)
		if err != nil {
			return fmt.Errorf("scan stop row: %w", err)
		}

		i, ok := byID[routeID]
		if !ok {
			continue
		}
		routes[i].Itinerary = append(routes[i].Itinerary, s)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("stop row iteration: %w", err)
	}

	return nil
}
