package reports

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/business/statsaccumulator"
)

// Distribution frequencies of a category column. Percentages are computed over the trips that have
// a value, Missing counts the trips without one
type Distribution struct {
	Frequencies []modecounter.Frequency[string]
	Missing     int
}

// BirthYearStats birth year statistics of the trips that have a birth year
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
	AverageAge float64
	Missing    int
}

// UserStats nil fields mean that the city file does not have that column
type UserStats struct {
	UserTypes  *Distribution
	Genders    *Distribution
	BirthYears *BirthYearStats
}

// ComputeUserStats returns false if the dataset is empty. currentYear is used to get the average age
func ComputeUserStats(d *dataset.Dataset, currentYear int) (UserStats, bool) {
	if d.IsEmpty() {
		return UserStats{}, false
	}

	userTypes := modecounter.NewModeCounter[string]()
	genders := modecounter.NewModeCounter[string]()
	birthYearsMode := modecounter.NewModeCounter[int]()
	birthYears := statsaccumulator.NewStatsAccumulator()
	for _, record := range d.Records {
		if record.UserType != "" {
			userTypes.UpdateCounter(record.UserType)
		}
		if record.Gender != "" {
			genders.UpdateCounter(record.Gender)
		}
		if record.HasBirthYear() {
			birthYearsMode.UpdateCounter(record.BirthYear)
			birthYears.UpdateAccumulator(float64(record.BirthYear))
		}
	}

	var stats UserStats
	if d.HasUserType {
		stats.UserTypes = distributionOf(userTypes, d.Len())
	}

	if d.HasGender {
		stats.Genders = distributionOf(genders, d.Len())
	}

	if d.HasBirthYear {
		stats.BirthYears = &BirthYearStats{Missing: d.Len() - birthYears.Counter}
		if !birthYears.IsEmpty() {
			mostCommon, _, _ := birthYearsMode.Mode()
			stats.BirthYears.Earliest = int(birthYears.Min)
			stats.BirthYears.MostRecent = int(birthYears.Max)
			stats.BirthYears.MostCommon = mostCommon
			stats.BirthYears.AverageAge = float64(currentYear) - birthYears.GetAverage()
		}
	}

	return stats, true
}

func distributionOf(counter *modecounter.ModeCounter[string], trips int) *Distribution {
	return &Distribution{
		Frequencies: counter.Distribution(),
		Missing:     trips - counter.GetTotal(),
	}
}

// Users prints the user type, gender and birth year statistics. Columns that the city does not
// have get a "not available" notice
func (r *Reporter) Users(d *dataset.Dataset) {
	stats, ok := ComputeUserStats(d, r.now().Year())
	if !ok {
		r.console.Println(noDataMessage)
		return
	}

	if stats.UserTypes != nil {
		r.printDistribution("User type distribution:", "user type", stats.UserTypes)
	} else {
		r.console.Println("User type data not available for this city")
	}

	if stats.Genders != nil {
		r.printDistribution("\nGender distribution:", "gender", stats.Genders)
	} else {
		r.console.Println("\nGender data not available for this city")
	}

	if stats.BirthYears == nil {
		r.console.Println("\nBirth year data not available for this city")
		return
	}

	r.console.Println("\nBirth year statistics:")
	birthYears := stats.BirthYears
	if birthYears.Missing == d.Len() {
		r.console.Println("- No birth year data for this selection")
		return
	}

	r.console.Printf("- Earliest birth year: %d\n", birthYears.Earliest)
	r.console.Printf("- Most recent birth year: %d\n", birthYears.MostRecent)
	r.console.Printf("- Most common birth year: %d\n", birthYears.MostCommon)
	r.console.Printf("- Average user age: %.1f years\n", birthYears.AverageAge)
	if birthYears.Missing > 0 {
		r.console.Printf("- %s without birth year\n", r.trips(birthYears.Missing))
	}
}

func (r *Reporter) printDistribution(title string, column string, distribution *Distribution) {
	r.console.Println(title)
	if len(distribution.Frequencies) == 0 {
		r.console.Printf("- No %s data for this selection\n", column)
		return
	}

	for _, frequency := range distribution.Frequencies {
		r.console.Printf("- %s: %s (%.1f%%)\n", frequency.Value, r.users(frequency.Count), frequency.Percentage)
	}

	if distribution.Missing > 0 {
		r.console.Printf("- %s without %s\n", r.trips(distribution.Missing), column)
	}
}
