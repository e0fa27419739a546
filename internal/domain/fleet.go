package domain

type AirplaneType struct {
	ID   int64
	Name string
}

type Airplane struct {
	ID             int64
	Name           string
	Code           string
	Rows           int
	SeatsInRow     int
	AirplaneTypeID int64
	// TypeName is filled by list queries that join the type table.
	TypeName string
}

func (a Airplane) TotalSeats() int {
	return a.Rows * a.SeatsInRow
}

type CrewTitle string

const (
	CrewTitleCaptain         CrewTitle = "Captain"
	CrewTitleCoPilot         CrewTitle = "Co-Pilot"
	CrewTitleFlightAttendant CrewTitle = "Flight Attendant"
	CrewTitleFlightEngineer  CrewTitle = "Flight Engineer"
	CrewTitleFlightMedic     CrewTitle = "Flight Medic"
)

func (t CrewTitle) Valid() bool {
	switch t {
	case CrewTitleCaptain, CrewTitleCoPilot, CrewTitleFlightAttendant,
		CrewTitleFlightEngineer, CrewTitleFlightMedic:
		return true
	}
	return false
}

type Crew struct {
	ID        int64
	FirstName string
	LastName  string
	Title     CrewTitle
}

func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}
