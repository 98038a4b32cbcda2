package ports

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when a composition session id does not
// resolve (expired, cleared, or never created).
var ErrSessionNotFound = errors.New("composition session not found")

// The two independent selection sets held by a composition session.
type SelectionKind string

const (
	SelectionDrivers    SelectionKind = "drivers"
	SelectionRecipients SelectionKind = "recipients"
)

// Port: boundary for server-side route-composition sessions.
//
// Toggle semantics match the selection core: deselect removes every entry
// matching id, select appends unconditionally. Selections returns insertion
// order. Sessions live for one construction workflow; the submit path calls
// Clear after a successful create.
type SelectionStore interface {
	Create(ctx context.Context) (string, error)
	Toggle(ctx context.Context, sessionID string, kind SelectionKind, id int, deselect bool) error
	Selections(ctx context.Context, sessionID string, kind SelectionKind) ([]int, error)
	Clear(ctx context.Context, sessionID string) error
}
