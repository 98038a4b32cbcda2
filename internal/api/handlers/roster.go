package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"route-roster-service/internal/api/dto"
	"route-roster-service/internal/ports"
	"route-roster-service/internal/services"
)

// RosterHandler exposes the raw roster collections the aggregation views
// are built from.
type RosterHandler struct {
	Source ports.RosterSource
}

func (h *RosterHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.Source.Drivers(r.Context())
	if err != nil {
		log.Printf("list drivers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListDriversResponse{Drivers: drivers})
}

func (h *RosterHandler) GetDriver(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid driver id")
		return
	}

	driver, err := h.Source.Driver(r.Context(), id)
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "driver not found")
		return
	}
	if err != nil {
		log.Printf("get driver failed: id=%d err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, driver)
}

func (h *RosterHandler) ListRecipients(w http.ResponseWriter, r *http.Request) {
	recipients, err := h.Source.Recipients(r.Context())
	if err != nil {
		log.Printf("list recipients failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListRecipientsResponse{Recipients: recipients})
}

func (h *RosterHandler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.Source.Routes(r.Context())
	if err != nil {
		log.Printf("list routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListRoutesResponse{Routes: routes})
}

func (h *RosterHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid route id")
		return
	}

	route, err := h.Source.Route(r.Context(), id)
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "route not found")
		return
	}
	if err != nil {
		log.Printf("get route failed: id=%d err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, route)
}

func (h *RosterHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.Source.Locations(r.Context())
	if err != nil {
		log.Printf("list locations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListLocationsResponse{Locations: locations})
}

// ListCenters returns the departure options for a new route: addresses of
// locations flagged as centers.
func (h *RosterHandler) ListCenters(w http.ResponseWriter, r *http.Request) {
	locations, err := h.Source.Locations(r.Context())
	if err != nil {
		log.Printf("list centers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.DepartureOptionsResponse{Options: services.DepartureOptions(locations)}
	writeJSON(w, r, http.StatusOK, res)
}
