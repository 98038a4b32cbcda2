package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"route-roster-service/internal/ports"
)

func TestClientFetchesRoster(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/drivers":
			w.Write([]byte(`[{"id":10,"first_name":"Ann","last_name":"Lee","capacity":20,"employee_status":"Employee"}]`))
		case "/recipients":
			w.Write([]byte(`[{"id":100,"first_name":"Bob","last_name":"Ray","phone":"555-1111","location":{"room_number":"N/A"}}]`))
		case "/routes":
			w.Write([]byte(`[{"id":1,"created_on":"2023-01-02T00:00:00","assigned_to":10,"total_distance":12.6,"total_duration":45.4,"total_quantity":5,"itinerary":[{"id":100,"address":{"address":"1 Elm","city":"X","state":"Y","zipcode":"1"},"demand":5}]}]`))
		case "/locations":
			w.Write([]byte(`[{"id":1,"is_center":true,"address":"221 Center St"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	drivers, err := c.Drivers(ctx)
	if err != nil {
		t.Fatalf("drivers: %v", err)
	}
	if len(drivers) != 1 || drivers[0].FullName() != "Ann Lee" {
		t.Fatalf("drivers = %+v", drivers)
	}

	recipients, err := c.Recipients(ctx)
	if err != nil {
		t.Fatalf("recipients: %v", err)
	}
	if len(recipients) != 1 || recipients[0].Location.RoomNumber != "N/A" {
		t.Fatalf("recipients = %+v", recipients)
	}

	routes, err := c.Routes(ctx)
	if err != nil {
		t.Fatalf("routes: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("routes = %+v", routes)
	}
	r := routes[0]
	if r.AssignedTo == nil || *r.AssignedTo != 10 {
		t.Fatalf("assigned_to = %v, want 10", r.AssignedTo)
	}
	if len(r.Itinerary) != 1 || r.Itinerary[0].RecipientID != 100 || r.Itinerary[0].Address.Street != "1 Elm" {
		t.Fatalf("itinerary = %+v", r.Itinerary)
	}

	locations, err := c.Locations(ctx)
	if err != nil {
		t.Fatalf("locations: %v", err)
	}
	if len(locations) != 1 || !locations[0].IsCenter {
		t.Fatalf("locations = %+v", locations)
	}
}

func TestClientDriverNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)

	if _, err := c.Driver(context.Background(), 42); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestClientRetriesTransientFailures(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)

	if _, err := c.Routes(context.Background()); err != nil {
		t.Fatalf("unexpected error after retries: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}

func TestClientCreateRoute(t *testing.T) {
	var got ports.RouteCreateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/routes" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"id":7,"created_on":"2023-05-01T08:00:00","itinerary":[]}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)

	draft := ports.RouteCreateRequest{
		DeliveryLimit:     5,
		DurationLimit:     2,
		DepartureLocation: "221 Center St",
		Drivers:           []ports.IDRef{{ID: 10}},
		Recipients:        []ports.IDRef{{ID: 100}, {ID: 101}},
	}

	created, err := c.CreateRoute(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("created id = %d, want 7", created.ID)
	}

	if got.DepartureLocation != "221 Center St" || len(got.Recipients) != 2 {
		t.Fatalf("upstream received %+v", got)
	}
}

func TestClientCreateRouteRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid departure location", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)

	_, err := c.CreateRoute(context.Background(), ports.RouteCreateRequest{})
	var rej *ports.RejectedError
	if !errors.As(err, &rej) {
		t.Fatalf("err = %v, want ports.RejectedError", err)
	}
	if rej.Code != http.StatusUnprocessableEntity {
		t.Fatalf("code = %d, want 422", rej.Code)
	}
}
