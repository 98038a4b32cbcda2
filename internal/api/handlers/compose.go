package handlers

import (
	"errors"
	"log"
	"net/http"

	"route-roster-service/internal/api/dto"
	"route-roster-service/internal/ports"
	"route-roster-service/internal/services"
)

// ComposeHandler hosts route-composition sessions: two independent
// selection sets (drivers, recipients) driven by toggle calls, finalized
// into a draft submitted to the external route optimizer.
type ComposeHandler struct {
	Store     ports.SelectionStore
	Locations ports.LocationSource
	Creator   ports.RouteCreator
}

// Create starts a new composition session and returns it together with the
// valid departure options. A failed location fetch degrades to an empty
// option list; the session itself is still usable.
func (h *ComposeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := h.Store.Create(ctx)
	if err != nil {
		log.Printf("create composition session failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	var options []string
	if locations, err := h.Locations.Locations(ctx); err != nil {
		log.Printf("fetch departure options failed: %v", err)
		options = []string{}
	} else {
		options = services.DepartureOptions(locations)
	}

	res := dto.CreateSessionResponse{SessionID: id, DepartureOptions: options}
	writeJSON(w, r, http.StatusCreated, res)
}

// Get returns the current selections of both sets in insertion order.
func (h *ComposeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := r.PathValue("id")

	drivers, err := h.Store.Selections(ctx, sessionID, ports.SelectionDrivers)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	recipients, err := h.Store.Selections(ctx, sessionID, ports.SelectionRecipients)
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	res := dto.SessionResponse{
		SessionID:  sessionID,
		Drivers:    drivers,
		Recipients: recipients,
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *ComposeHandler) ToggleDriver(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, ports.SelectionDrivers)
}

func (h *ComposeHandler) ToggleRecipient(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, ports.SelectionRecipients)
}

func (h *ComposeHandler) toggle(w http.ResponseWriter, r *http.Request, kind ports.SelectionKind) {
	var req dto.ToggleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	err := h.Store.Toggle(r.Context(), r.PathValue("id"), kind, req.ID, req.Deselect)
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Submit builds the draft from the current selections and the provided
// constraints, hands it to the route optimizer, and clears the session on
// success. Constraints are passed through as-is: validation (limits,
// departure location, empty selections) is the optimizer's responsibility
// and its rejection is relayed to the caller.
func (h *ComposeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := r.PathValue("id")

	var req dto.SubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	driverIDs, err := h.Store.Selections(ctx, sessionID, ports.SelectionDrivers)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	recipientIDs, err := h.Store.Selections(ctx, sessionID, ports.SelectionRecipients)
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	drivers := replaySelection(driverIDs)
	recipients := replaySelection(recipientIDs)

	draft := services.BuildRouteDraft(
		req.DeliveryLimit,
		req.DurationLimit,
		req.DepartureLocation,
		drivers,
		recipients,
	)

	created, err := h.Creator.CreateRoute(ctx, draft)
	if err != nil {
		var rej *ports.RejectedError
		if errors.As(err, &rej) {
			writeError(w, r, http.StatusUnprocessableEntity, rej.Message)
			return
		}
		log.Printf("create route failed: session=%s err=%v", sessionID, err)
		writeError(w, r, http.StatusBadGateway, "route creation failed")
		return
	}

	// The construction workflow owns the selection state only until a
	// successful submit.
	if err := h.Store.Clear(ctx, sessionID); err != nil {
		log.Printf("clear session failed: session=%s err=%v", sessionID, err)
	}

	writeJSON(w, r, http.StatusCreated, dto.SubmitResponse{Route: *created})
}

func (h *ComposeHandler) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ports.ErrSessionNotFound) {
		writeError(w, r, http.StatusNotFound, "session not found")
		return
	}
	log.Printf("selection store failed: %v", err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

// replaySelection rebuilds a SelectionSet from its persisted insertion
// order.
func replaySelection(ids []int) *services.SelectionSet {
	s := services.NewSelectionSet()
	for _, id := range ids {
		s.Toggle(id, false)
	}
	return s
}
