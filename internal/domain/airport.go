package domain

type Airport struct {
	ID             int64
	Name           string
	Code           string
	ClosestBigCity string
	Country        string
	Lat            float64
	Lon            float64
}

type Route struct {
	ID            int64
	SourceID      int64
	DestinationID int64
	DistanceKM    int
	// Source and Destination are filled by detail queries.
	Source      *Airport
	Destination *Airport
}
