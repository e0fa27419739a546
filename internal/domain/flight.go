package domain

import "time"

type Flight struct {
	ID            int64
	RouteID       int64
	AirplaneID    int64
	DepartureTime time.Time
	ArrivalTime   time.Time
	CrewIDs       []int64
	// FreeSeats is total airplane seats minus sold tickets, filled by list queries.
	FreeSeats int
}
