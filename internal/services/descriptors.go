package services

import (
	"math"
	"strconv"

	"route-roster-service/internal/domain"
)

// RouteDescriptor projects a raw route plus its resolved driver into
// display-ready values. Every derivation degrades to an empty value when
// the assigned driver is missing from the index (partial fetches are
// normal while reference collections load).
type RouteDescriptor struct {
	Drivers DriverIndex
}

func (rd RouteDescriptor) driver(r domain.Route) (domain.Driver, bool) {
	if r.AssignedTo == nil {
		return domain.Driver{}, false
	}
	return rd.Drivers.Lookup(*r.AssignedTo)
}

// DriverFullName returns "first last" for the assigned driver, or "".
func (rd RouteDescriptor) DriverFullName(r domain.Route) string {
	d, ok := rd.driver(r)
	if !ok {
		return ""
	}
	return d.FullName()
}

// DriverCapacity returns the driver's load limit as a display string, or "".
func (rd RouteDescriptor) DriverCapacity(r domain.Route) string {
	d, ok := rd.driver(r)
	if !ok {
		return ""
	}
	return strconv.Itoa(d.Capacity)
}

// DriverEmployeeStatus returns the driver's employment classification, or "".
func (rd RouteDescriptor) DriverEmployeeStatus(r domain.Route) string {
	d, ok := rd.driver(r)
	if !ok {
		return ""
	}
	return d.EmployeeStatus
}

// IsEmployee reports whether the route's driver is a direct employee.
// An unassigned or unresolved driver is never an employee.
func (rd RouteDescriptor) IsEmployee(r domain.Route) bool {
	return rd.DriverEmployeeStatus(r) == domain.EmployeeStatusEmployee
}

// CanShowPhone is the visibility policy for recipient phone numbers:
// they are disclosed only on routes driven by a direct employee. The rule
// attaches to the route's driver, not the recipient.
func (rd RouteDescriptor) CanShowPhone(r domain.Route) bool {
	return rd.IsEmployee(r)
}

// FormatRouteDate renders an upstream created_on timestamp as MM/DD/YYYY.
//
// This is a fixed-offset substring transform (month [5,7), day [8,10),
// year [0,4)), not a date parser: it assumes input starting with
// YYYY-MM-DD. Malformed input yields garbled but non-crashing output.
func FormatRouteDate(createdOn string) string {
	month := substring(createdOn, 5, 7)
	day := substring(createdOn, 8, 10)
	year := substring(createdOn, 0, 4)
	return month + "/" + day + "/" + year
}

// substring clamps out-of-range bounds instead of panicking.
func substring(s string, start, end int) string {
	if start > len(s) {
		start = len(s)
	}
	if end > len(s) {
		end = len(s)
	}
	if start > end {
		return ""
	}
	return s[start:end]
}

// RoundMetric rounds an aggregate distance/duration metric to the nearest
// integer for display. Quantities are already integral and never rounded.
func RoundMetric(v float64) int {
	return int(math.Round(v))
}

// StopDescriptor resolves per-stop recipient fields. Address and demand
// are read from the stop itself (the route snapshots delivery-time data);
// only identity fields come from the recipient master record.
type StopDescriptor struct {
	Recipients RecipientIndex
}

// RecipientFullName returns "first last" for the stop's recipient, or "".
func (sd StopDescriptor) RecipientFullName(s domain.Stop) string {
	r, ok := sd.Recipients.Lookup(s.RecipientID)
	if !ok {
		return ""
	}
	return r.FullName()
}

// Phone returns the recipient's phone number, or "". Callers apply the
// route-level visibility policy before exposing it.
func (sd StopDescriptor) Phone(s domain.Stop) string {
	r, ok := sd.Recipients.Lookup(s.RecipientID)
	if !ok {
		return ""
	}
	return r.Phone
}

// Comment returns the recipient's comment, defaulting to "".
func (sd StopDescriptor) Comment(s domain.Stop) string {
	r, ok := sd.Recipients.Lookup(s.RecipientID)
	if !ok {
		return ""
	}
	return r.Comments
}

// RoomNumber returns the recipient's room number, suppressing both the
// absent value and the upstream "N/A" sentinel.
func (sd StopDescriptor) RoomNumber(s domain.Stop) string {
	r, ok := sd.Recipients.Lookup(s.RecipientID)
	if !ok {
		return ""
	}
	if r.Location.RoomNumber == domain.NoRoomNumber {
		return ""
	}
	return r.Location.RoomNumber
}
