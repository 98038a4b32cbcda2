package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"route-roster-service/internal/domain"
)

// Initialize the roster mirror schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDriversQuery := `
	CREATE TABLE IF NOT EXISTS drivers (
		id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		capacity INTEGER NOT NULL,
		employee_status TEXT NOT NULL
	);
	`

	createRecipientsQuery := `
	CREATE TABLE IF NOT EXISTS recipients (
		id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		phone TEXT NOT NULL,
		comments TEXT,
		street TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		zipcode TEXT NOT NULL,
		room_number TEXT,
		demand INTEGER NOT NULL DEFAULT 0
	);
	`

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		id INTEGER PRIMARY KEY,
		is_center BOOLEAN NOT NULL,
		address TEXT NOT NULL
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		id INTEGER PRIMARY KEY,
		created_on TEXT NOT NULL,
		assigned_to INTEGER,
		total_distance DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_duration DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_quantity INTEGER NOT NULL DEFAULT 0
	);
	`

	createRouteStopsQuery := `
	CREATE TABLE IF NOT EXISTS route_stops (
		route_id INTEGER NOT NULL REFERENCES routes(id),
		position INTEGER NOT NULL,
		recipient_id INTEGER NOT NULL,
		street TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		zipcode TEXT NOT NULL,
		demand INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (route_id, position)
	);
	`

	statements := []string{
		createDriversQuery,
		createRecipientsQuery,
		createLocationsQuery,
		createRoutesQuery,
		createRouteStopsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// RosterSeed matches the JSON seed file layout: the same wire shapes the
// upstream API serves, grouped by collection.
type RosterSeed struct {
	Drivers    []domain.Driver    `json:"drivers"`
	Recipients []domain.Recipient `json:"recipients"`
	Locations  []domain.Location  `json:"locations"`
	Routes     []domain.Route     `json:"routes"`
}

// Populate the roster mirror from a JSON seed file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed roster: read %q: %w", jsonPath, err)
	}

	var seed RosterSeed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return fmt.Errorf("seed roster: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed roster: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := seedDrivers(tx, seed.Drivers); err != nil {
		return fmt.Errorf("seed roster: %w", err)
	}
	if err := seedRecipients(tx, seed.Recipients); err != nil {
		return fmt.Errorf("seed roster: %w", err)
	}
	if err := seedLocations(tx, seed.Locations); err != nil {
		return fmt.Errorf("seed roster: %w", err)
	}
	if err := seedRoutes(tx, seed.Routes); err != nil {
		return fmt.Errorf("seed roster: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed roster: commit tx: %w", err)
	}

	return nil
}

func seedDrivers(tx *sql.Tx, drivers []domain.Driver) error {
	query := `
	INSERT INTO drivers (id, first_name, last_name, capacity, employee_status)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE SET
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		capacity = EXCLUDED.capacity,
		employee_status = EXCLUDED.employee_status;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("prepare driver insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range drivers {
		if d.ID <= 0 {
			return fmt.Errorf("invalid driver id: %d", d.ID)
		}
		if _, err := stmt.Exec(d.ID, d.FirstName, d.LastName, d.Capacity, d.EmployeeStatus); err != nil {
			return fmt.Errorf("insert driver id=%d: %w", d.ID, err)
		}
	}
	return nil
}

func seedRecipients(tx *sql.Tx, recipients []domain.Recipient) error {
	query := `
	INSERT INTO recipients (
		id, first_name, last_name, phone, comments,
		street, city, state, zipcode, room_number, demand
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (id) DO UPDATE SET
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		phone = EXCLUDED.phone,
		comments = EXCLUDED.comments,
		street = EXCLUDED.street,
		city = EXCLUDED.city,
		state = EXCLUDED.state,
		zipcode = EXCLUDED.zipcode,
		room_number = EXCLUDED.room_number,
		demand = EXCLUDED.demand;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("prepare recipient insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range recipients {
		if r.ID <= 0 {
			return fmt.Errorf("invalid recipient id: %d", r.ID)
		}
		_, err := stmt.Exec(
			r.ID, r.FirstName, r.LastName, r.Phone, r.Comments,
			r.Location.Street, r.Location.City, r.Location.State,
			r.Location.Zipcode, r.Location.RoomNumber, r.Demand,
		)
		if err != nil {
			return fmt.Errorf("insert recipient id=%d: %w", r.ID, err)
		}
	}
	return nil
}

func seedLocations(tx *sql.Tx, locations []domain.Location) error {
	query := `
	INSERT INTO locations (id, is_center, address)
	VALUES ($1, $2, $3)
	ON CONFLICT (id) DO UPDATE SET
		is_center = EXCLUDED.is_center,
		address = EXCLUDED.address;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("prepare location insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range locations {
		if l.ID <= 0 {
			return fmt.Errorf("invalid location id: %d", l.ID)
		}
		if _, err := stmt.Exec(l.ID, l.IsCenter, l.Address); err != nil {
			return fmt.Errorf("insert location id=%d: %w", l.ID, err)
		}
	}
	return nil
}

func seedRoutes(tx *sql.Tx, routes []domain.Route) error {
	routeQuery := `
	INSERT INTO routes (
		id, created_on, assigned_to,
		total_distance, total_duration, total_quantity
	)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		created_on = EXCLUDED.created_on,
		assigned_to = EXCLUDED.assigned_to,
		total_distance = EXCLUDED.total_distance,
		total_duration = EXCLUDED.total_duration,
		total_quantity = EXCLUDED.total_quantity;
	`
	routeStmt, err := tx.Prepare(routeQuery)
	if err != nil {
		return fmt.Errorf("prepare route insert: %w", err)
	}
	defer routeStmt.Close()

	stopQuery := `
	INSERT INTO route_stops (
		route_id, position, recipient_id,
		street, city, state, zipcode, demand
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (route_id, position) DO UPDATE SET
		recipient_id = EXCLUDED.recipient_id,
		street = EXCLUDED.street,
		city = EXCLUDED.city,
		state = EXCLUDED.state,
		zipcode = EXCLUDED.zipcode,
		demand = EXCLUDED.demand;
	`
	stopStmt, err := tx.Prepare(stopQuery)
	if err != nil {
		return fmt.Errorf("prepare stop insert: %w", err)
	}
	defer stopStmt.Close()

	for _, r := range routes {
		if r.ID <= 0 {
			return fmt.Errorf("invalid route id: %d", r.ID)
		}

		var assignedTo any
		if r.AssignedTo != nil {
			assignedTo = *r.AssignedTo
		}

		_, err := routeStmt.Exec(
			r.ID, r.CreatedOn, assignedTo,
			r.TotalDistance, r.TotalDuration, r.TotalQuantity,
		)
		if err != nil {
			return fmt.Errorf("insert route id=%d: %w", r.ID, err)
		}

		for pos, s := range r.Itinerary {
			_, err := stopStmt.Exec(
				r.ID, pos, s.RecipientID,
				s.Address.Street, s.Address.City, s.Address.State,
				s.Address.Zipcode, s.Demand,
			)
			if err != nil {
				return fmt.Errorf("insert stop route_id=%d position=%d: %w", r.ID, pos, err)
			}
		}
	}
	return nil
}
