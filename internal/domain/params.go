package domain

import "time"

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// ListParams is limit/offset pagination shared by every list endpoint.
type ListParams struct {
	Limit  int
	Offset int
}

func (p ListParams) Normalize() ListParams {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

type AirplaneFilter struct {
	TypeName      string
	MinTotalSeats int
}

type AirportFilter struct {
	Code string
	City string
}

type RouteFilter struct {
	SourceCode      string
	DestinationCode string
}

type FlightFilter struct {
	RouteID       int64
	AirplaneID    int64
	DepartureDate time.Time // zero value means no date filter
}
