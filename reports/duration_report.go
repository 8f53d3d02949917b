package reports

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/statsaccumulator"
	"math"
)

// DurationStats trip duration aggregates, in seconds
type DurationStats struct {
	Total    float64
	Mean     float64
	Median   float64
	Shortest float64
	Longest  float64
}

// TotalHoursAndMinutes splits the total travel time in whole hours and the remaining whole minutes
func (ds DurationStats) TotalHoursAndMinutes() (int64, int64) {
	seconds := int64(math.Floor(ds.Total))
	return seconds / 3600, (seconds % 3600) / 60
}

// ComputeDurationStats returns false if the dataset is empty
func ComputeDurationStats(d *dataset.Dataset) (DurationStats, bool) {
	if d.IsEmpty() {
		return DurationStats{}, false
	}

	accumulator := statsaccumulator.NewStatsAccumulator()
	for _, record := range d.Records {
		accumulator.UpdateAccumulator(record.Duration)
	}

	return DurationStats{
		Total:    accumulator.Total,
		Mean:     accumulator.GetAverage(),
		Median:   accumulator.GetMedian(),
		Shortest: accumulator.Min,
		Longest:  accumulator.Max,
	}, true
}

func (r *Reporter) Durations(d *dataset.Dataset) {
	stats, ok := ComputeDurationStats(d)
	if !ok {
		r.console.Println(noDataMessage)
		return
	}

	hours, minutesLeft := stats.TotalHoursAndMinutes()
	r.console.Printf("Total travel time: %s hours and %d minutes\n", r.number(int(hours)), minutesLeft)
	r.console.Printf("Average trip duration: %s\n", minutes(stats.Mean))
	r.console.Printf("Median trip duration: %s\n", minutes(stats.Median))
	r.console.Printf("Shortest trip: %s\n", minutes(stats.Shortest))
	r.console.Printf("Longest trip: %s\n", minutes(stats.Longest))
}
