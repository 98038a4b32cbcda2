package services

import "route-roster-service/internal/domain"

// Id-keyed lookup over a flat driver collection, built once per render pass.
// Replaces the per-field linear scans the roster views would otherwise
// repeat for every derived value.
type DriverIndex struct {
	byID map[int]domain.Driver
}

// NewDriverIndex builds the index. On duplicate ids the first occurrence
// wins; source collections are assumed duplicate-free.
func NewDriverIndex(drivers []domain.Driver) DriverIndex {
	byID := make(map[int]domain.Driver, len(drivers))
	for _, d := range drivers {
		if _, ok := byID[d.ID]; ok {
			continue
		}
		byID[d.ID] = d
	}
	return DriverIndex{byID: byID}
}

// Lookup returns the driver for id. A miss is not an error: callers degrade
// every derived field to its empty value.
func (ix DriverIndex) Lookup(id int) (domain.Driver, bool) {
	d, ok := ix.byID[id]
	return d, ok
}

// Id-keyed lookup over a flat recipient collection.
type RecipientIndex struct {
	byID map[int]domain.Recipient
}

func NewRecipientIndex(recipients []domain.Recipient) RecipientIndex {
	byID := make(map[int]domain.Recipient, len(recipients))
	for _, r := range recipients {
		if _, ok := byID[r.ID]; ok {
			continue
		}
		byID[r.ID] = r
	}
	return RecipientIndex{byID: byID}
}

func (ix RecipientIndex) Lookup(id int) (domain.Recipient, bool) {
	r, ok := ix.byID[id]
	return r, ok
}
