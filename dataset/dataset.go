package dataset

import (
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
)

// Dataset trips of one city that match a selection. It lives for one session iteration only
// + Selection: filters applied to the trips
// + Records: trips that match the selection, in file order
// + TotalRows: amount of trips in the file before filtering
// + HasUserType, HasGender, HasBirthYear: whether the city file has the optional column
type Dataset struct {
	Selection    selection.Selection
	Records      []trip.TripRecord
	TotalRows    int
	HasUserType  bool
	HasGender    bool
	HasBirthYear bool
}

func (d *Dataset) City() string {
	return d.Selection.City()
}

func (d *Dataset) Len() int {
	return len(d.Records)
}

func (d *Dataset) IsEmpty() bool {
	return len(d.Records) == 0
}

// filterRecords keeps the records whose month and weekday match the selection
func filterRecords(records []trip.TripRecord, s selection.Selection) []trip.TripRecord {
	if s.AllMonths() && s.AllDays() {
		return records
	}

	weekday, filterByDay := s.Weekday()
	filtered := make([]trip.TripRecord, 0, len(records))
	for _, record := range records {
		if !s.AllMonths() && record.Month() != s.MonthNumber() {
			continue
		}
		if filterByDay && record.Weekday() != weekday {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}
