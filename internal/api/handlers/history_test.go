package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"route-roster-service/internal/api/dto"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/ports"
)

// fakeSource is an in-memory RosterSource for handler tests. Any errs entry
// makes the matching fetch fail.
type fakeSource struct {
	drivers    []domain.Driver
	recipients []domain.Recipient
	routes     []domain.Route
	locations  []domain.Location

	driversErr error
	routesErr  error
}

func (f *fakeSource) Drivers(ctx context.Context) ([]domain.Driver, error) {
	return f.drivers, f.driversErr
}

func (f *fakeSource) Driver(ctx context.Context, id int) (*domain.Driver, error) {
	for _, d := range f.drivers {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (f *fakeSource) Recipients(ctx context.Context) ([]domain.Recipient, error) {
	return f.recipients, nil
}

func (f *fakeSource) Routes(ctx context.Context) ([]domain.Route, error) {
	return f.routes, f.routesErr
}

func (f *fakeSource) Route(ctx context.Context, id int) (*domain.Route, error) {
	for _, r := range f.routes {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (f *fakeSource) Locations(ctx context.Context) ([]domain.Location, error) {
	return f.locations, nil
}

func historySource() *fakeSource {
	assigned := 10
	return &fakeSource{
		routes: []domain.Route{
			{
				ID:         1,
				CreatedOn:  "2023-01-02T00:00:00",
				AssignedTo: &assigned,
				Itinerary: []domain.Stop{
					{RecipientID: 100, Address: domain.Address{Street: "1 Elm"}, Demand: 5},
				},
				TotalQuantity: 5,
			},
			{ID: 2, CreatedOn: "2023-03-04T00:00:00"},
		},
		drivers: []domain.Driver{
			{ID: 10, FirstName: "Ann", LastName: "Lee", Capacity: 20, EmployeeStatus: domain.EmployeeStatusEmployee},
		},
		recipients: []domain.Recipient{
			{ID: 100, FirstName: "Bob", LastName: "Ray", Phone: "555-1111"},
		},
	}
}

func TestHistoryHandlerGet(t *testing.T) {
	h := &HistoryHandler{Source: historySource()}

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.HistoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.Partial {
		t.Fatal("report should not be partial")
	}
	if len(res.Reports) != 2 {
		t.Fatalf("reports = %d, want 2", len(res.Reports))
	}
	// newest-first
	if res.Reports[0].RouteID != 2 || res.Reports[1].RouteID != 1 {
		t.Fatalf("order = [%d %d], want [2 1]", res.Reports[0].RouteID, res.Reports[1].RouteID)
	}
	if res.Reports[1].Header.DriverName != "Ann Lee" {
		t.Fatalf("driver = %q, want %q", res.Reports[1].Header.DriverName, "Ann Lee")
	}
	if res.Reports[1].Rows[0].Phone != "555-1111" {
		t.Fatalf("phone = %q, want disclosed on employee route", res.Reports[1].Rows[0].Phone)
	}
}

func TestHistoryHandlerDegradesOnReferenceFetchFailure(t *testing.T) {
	src := historySource()
	src.driversErr = errors.New("upstream down")
	h := &HistoryHandler{Source: src}

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (degraded, not failed)", rec.Code)
	}

	var res dto.HistoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !res.Partial {
		t.Fatal("expected partial report")
	}
	if res.Reports[1].Header.DriverName != "" {
		t.Fatalf("driver = %q, want empty without driver data", res.Reports[1].Header.DriverName)
	}
	if res.Reports[1].Rows[0].Phone != "" {
		t.Fatal("phone must be withheld when the driver cannot be resolved")
	}
}

func TestHistoryHandlerFailsWithoutRoutes(t *testing.T) {
	src := historySource()
	src.routesErr = errors.New("upstream down")
	h := &HistoryHandler{Source: src}

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
