package dto

import "route-roster-service/internal/domain"

type ListDriversResponse struct {
	Drivers []domain.Driver `json:"drivers"`
}

type ListRecipientsResponse struct {
	Recipients []domain.Recipient `json:"recipients"`
}

type ListRoutesResponse struct {
	Routes []domain.Route `json:"routes"`
}

type ListLocationsResponse struct {
	Locations []domain.Location `json:"locations"`
}

type DepartureOptionsResponse struct {
	Options []string `json:"options"`
}
