package services

import "route-roster-service/internal/domain"

// Per-route summary line of the history report.
type RouteHeader struct {
	Date            string `json:"date"`
	DriverName      string `json:"driver_name"`
	Capacity        string `json:"capacity"`
	TotalQuantity   int    `json:"total_quantity"`
	RoundedDistance int    `json:"rounded_distance"`
	RoundedDuration int    `json:"rounded_duration"`
	EmployeeStatus  string `json:"employee_status"`
}

// One itinerary row of the history report. Phone is "" on routes whose
// driver is not a direct employee.
type StopReport struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	AptNumber string `json:"apt_number"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
	Quantity  int    `json:"quantity"`
	Comment   string `json:"comment"`
}

// A fully denormalized route for display: header rollups plus itinerary
// rows in delivery order. ShowsPhone tells renderers whether the phone
// column carries values for this route (the values themselves are already
// withheld when it is false, so no renderer can leak them).
type RouteReport struct {
	RouteID    int          `json:"route_id"`
	Header     RouteHeader  `json:"header"`
	ShowsPhone bool         `json:"shows_phone"`
	Rows       []StopReport `json:"rows"`
}

// BuildHistory composes the newest-first history report from the three
// independently fetched collections.
//
// The input slices are never mutated: reversal happens on a copy, so
// calling BuildHistory twice on the same fetched collection yields the
// same order both times. Partial reference collections (drivers or
// recipients still loading) degrade every derived field to its empty
// value rather than failing.
func BuildHistory(routes []domain.Route, drivers []domain.Driver, recipients []domain.Recipient) []RouteReport {
	rd := RouteDescriptor{Drivers: NewDriverIndex(drivers)}
	sd := StopDescriptor{Recipients: NewRecipientIndex(recipients)}

	reports := make([]RouteReport, 0, len(routes))
	for i := len(routes) - 1; i >= 0; i-- {
		reports = append(reports, buildRouteReport(routes[i], rd, sd))
	}
	return reports
}

func buildRouteReport(r domain.Route, rd RouteDescriptor, sd StopDescriptor) RouteReport {
	showPhone := rd.CanShowPhone(r)

	rows := make([]StopReport, 0, len(r.Itinerary))
	for _, s := range r.Itinerary {
		row := StopReport{
			Name:      sd.RecipientFullName(s),
			Address:   s.Address.Street,
			AptNumber: sd.RoomNumber(s),
			City:      s.Address.City,
			State:     s.Address.State,
			Zip:       s.Address.Zipcode,
			Quantity:  s.Demand,
			Comment:   sd.Comment(s),
		}
		if showPhone {
			row.Phone = sd.Phone(s)
		}
		rows = append(rows, row)
	}

	return RouteReport{
		RouteID: r.ID,
		Header: RouteHeader{
			Date:            FormatRouteDate(r.CreatedOn),
			DriverName:      rd.DriverFullName(r),
			Capacity:        rd.DriverCapacity(r),
			TotalQuantity:   r.TotalQuantity,
			RoundedDistance: RoundMetric(r.TotalDistance),
			RoundedDuration: RoundMetric(r.TotalDuration),
			EmployeeStatus:  rd.DriverEmployeeStatus(r),
		},
		ShowsPhone: showPhone,
		Rows:       rows,
	}
}
