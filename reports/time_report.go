package reports

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/modecounter"
	"bikeshare/utils"
	"cmp"
	"time"
)

// TimeStats most popular month, day and hour of the trips. Month and Day are nil when the
// dataset is already filtered by that field
type TimeStats struct {
	Month *Popular[int]
	Day   *Popular[time.Weekday]
	Hour  Popular[int]
}

// ComputeTimeStats returns false if the dataset is empty
func ComputeTimeStats(d *dataset.Dataset) (TimeStats, bool) {
	if d.IsEmpty() {
		return TimeStats{}, false
	}

	months := modecounter.NewModeCounter[int]()
	days := modecounter.NewModeCounter[time.Weekday]()
	hours := modecounter.NewModeCounter[int]()
	for _, record := range d.Records {
		months.UpdateCounter(record.Month())
		days.UpdateCounter(record.Weekday())
		hours.UpdateCounter(record.Hour())
	}

	var stats TimeStats
	if d.Selection.AllMonths() {
		stats.Month = popularOf(months)
	}
	if d.Selection.AllDays() {
		stats.Day = popularOf(days)
	}
	stats.Hour = *popularOf(hours)

	return stats, true
}

// TimePatterns prints the most popular month and day (only when they were not filtered) and hour
func (r *Reporter) TimePatterns(d *dataset.Dataset) {
	stats, ok := ComputeTimeStats(d)
	if !ok {
		r.console.Println(noDataMessage)
		return
	}

	if stats.Month != nil {
		r.console.Printf("Most popular month: %s (%s)\n", r.monthName(stats.Month.Value), r.trips(stats.Month.Count))
	}

	if stats.Day != nil {
		r.console.Printf("Most popular day: %s (%s)\n", stats.Day.Value, r.trips(stats.Day.Count))
	}

	r.console.Printf("Most popular hour: %d:00 (%s)\n", stats.Hour.Value, r.trips(stats.Hour.Count))
}

func (r *Reporter) monthName(month int) string {
	if month >= 1 && month <= len(r.months) {
		return utils.Title(r.months[month-1])
	}
	return time.Month(month).String()
}

func popularOf[T cmp.Ordered](counter *modecounter.ModeCounter[T]) *Popular[T] {
	value, count, _ := counter.Mode()
	return &Popular[T]{Value: value, Count: count}
}
