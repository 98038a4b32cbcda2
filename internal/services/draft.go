package services

import (
	"route-roster-service/internal/domain"
	"route-roster-service/internal/ports"
)

// BuildRouteDraft assembles the payload for the external route-creation
// collaborator from the current selection state and the scalar constraints.
//
// No validation happens here: limits and departure location are passed
// through exactly as provided (including zero values), and rejection is the
// collaborator's responsibility. Participant order follows selection order.
func BuildRouteDraft(
	deliveryLimit int,
	durationLimit int,
	departureLocation string,
	drivers *SelectionSet,
	recipients *SelectionSet,
) ports.RouteCreateRequest {
	return ports.RouteCreateRequest{
		DeliveryLimit:     deliveryLimit,
		DurationLimit:     durationLimit,
		DepartureLocation: departureLocation,
		Drivers:           toIDRefs(drivers.Current()),
		Recipients:        toIDRefs(recipients.Current()),
	}
}

func toIDRefs(ids []int) []ports.IDRef {
	refs := make([]ports.IDRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, ports.IDRef{ID: id})
	}
	return refs
}

// DepartureOptions returns the addresses a new route may depart from:
// only locations flagged as centers qualify.
func DepartureOptions(locations []domain.Location) []string {
	opts := make([]string, 0, len(locations))
	for _, l := range locations {
		if l.IsCenter {
			opts = append(opts, l.Address)
		}
	}
	return opts
}
