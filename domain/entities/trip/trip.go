package trip

import (
	"fmt"
	"time"
)

// RouteSeparator joins start and end station in a route
const RouteSeparator = " → "

// TripRecord struct that contains the data of one trip
// + StartTime: date and time in which the trip begins
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: kind of user (Subscriber, Customer...). Empty if unknown
// + Gender: gender of the user. Empty if unknown or if the city does not provide it
// + BirthYear: birth year of the user. Zero if unknown or if the city does not provide it
type TripRecord struct {
	StartTime    time.Time `json:"start_time"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	Duration     float64   `json:"duration"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender"`
	BirthYear    int       `json:"birth_year"`
}

// Month returns the month of the start time, 1 to 12
func (tr TripRecord) Month() int {
	return int(tr.StartTime.Month())
}

func (tr TripRecord) Weekday() time.Weekday {
	return tr.StartTime.Weekday()
}

// Hour returns the hour of the start time, 0 to 23
func (tr TripRecord) Hour() int {
	return tr.StartTime.Hour()
}

// Route returns start and end stations joined, e.g. "Canal St → Clark St"
func (tr TripRecord) Route() string {
	return fmt.Sprintf("%s%s%s", tr.StartStation, RouteSeparator, tr.EndStation)
}

func (tr TripRecord) HasBirthYear() bool {
	return tr.BirthYear != 0
}
