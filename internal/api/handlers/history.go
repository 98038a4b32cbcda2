package handlers

import (
	"log"
	"net/http"
	"sync"

	"route-roster-service/internal/api/dto"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/ports"
	"route-roster-service/internal/services"
)

// HistoryHandler serves the denormalized route history report.
type HistoryHandler struct {
	Source ports.RosterSource
}

// Get fetches routes, drivers, and recipients concurrently and composes
// the newest-first report.
//
// The three fetches are independent; there is no ordering guarantee between
// them. A failed reference-collection fetch (drivers or recipients) is not
// fatal: the report renders with empty derived fields for that slice, the
// same degradation the aggregation applies to individual lookup misses.
// Only a failed route fetch aborts the request, since there is nothing to
// report without routes.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		routes     []domain.Route
		drivers    []domain.Driver
		recipients []domain.Recipient

		routesErr  error
		partialErr error
	)

	var wg sync.WaitGroup
	var mu sync.Mutex

	wg.Add(3)
	go func() {
		defer wg.Done()
		routes, routesErr = h.Source.Routes(ctx)
	}()
	go func() {
		defer wg.Done()
		ds, err := h.Source.Drivers(ctx)
		if err != nil {
			mu.Lock()
			partialErr = err
			mu.Unlock()
			return
		}
		drivers = ds
	}()
	go func() {
		defer wg.Done()
		rs, err := h.Source.Recipients(ctx)
		if err != nil {
			mu.Lock()
			partialErr = err
			mu.Unlock()
			return
		}
		recipients = rs
	}()
	wg.Wait()

	if routesErr != nil {
		log.Printf("history: fetch routes failed: %v", routesErr)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if partialErr != nil {
		log.Printf("history: reference fetch failed, rendering degraded report: %v", partialErr)
	}

	res := dto.HistoryResponse{
		Reports: services.BuildHistory(routes, drivers, recipients),
		Partial: partialErr != nil,
	}

	writeJSON(w, r, http.StatusOK, res)
}
