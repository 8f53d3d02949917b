package reports

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/modecounter"
)

// StationStats most popular start station, end station and route
type StationStats struct {
	Start Popular[string]
	End   Popular[string]
	Route Popular[string]
}

// ComputeStationStats returns false if the dataset is empty
func ComputeStationStats(d *dataset.Dataset) (StationStats, bool) {
	if d.IsEmpty() {
		return StationStats{}, false
	}

	starts := modecounter.NewModeCounter[string]()
	ends := modecounter.NewModeCounter[string]()
	routes := modecounter.NewModeCounter[string]()
	for _, record := range d.Records {
		starts.UpdateCounter(record.StartStation)
		ends.UpdateCounter(record.EndStation)
		routes.UpdateCounter(record.Route())
	}

	return StationStats{
		Start: *popularOf(starts),
		End:   *popularOf(ends),
		Route: *popularOf(routes),
	}, true
}

func (r *Reporter) Stations(d *dataset.Dataset) {
	stats, ok := ComputeStationStats(d)
	if !ok {
		r.console.Println(noDataMessage)
		return
	}

	r.console.Printf("Most popular starting station: %s (%s)\n", stats.Start.Value, r.trips(stats.Start.Count))
	r.console.Printf("Most popular ending station: %s (%s)\n", stats.End.Value, r.trips(stats.End.Count))
	r.console.Printf("Most popular route: %s (%s)\n", stats.Route.Value, r.trips(stats.Route.Count))
}
