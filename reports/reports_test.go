package reports

import (
	"bikeshare/console"
	"bikeshare/dataset"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/selection"
	"bikeshare/testutil"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time {
	return time.Date(2020, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func loadDataset(t *testing.T, city string, month string, day string) *dataset.Dataset {
	t.Helper()
	explorerConfig := testutil.Config(t)
	loader := dataset.NewLoader(explorerConfig.CityTable(), explorerConfig.Columns, testutil.WriteCityFiles(t))
	d, err := loader.Load(context.Background(), testutil.Selection(t, city, month, day))
	require.NoError(t, err)
	return d
}

func newTestReporter(t *testing.T) (*Reporter, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	c := console.NewConsole(strings.NewReader(""), out, false)
	return NewReporter(c, testutil.Config(t).Months, fixedNow), out
}

func TestComputeTimeStats_AllMonthsAllDays(t *testing.T) {
	d := loadDataset(t, "chicago", selection.All, selection.All)

	stats, ok := ComputeTimeStats(d)

	require.True(t, ok)
	expected := TimeStats{
		Month: &Popular[int]{Value: 6, Count: 3},
		Day:   &Popular[time.Weekday]{Value: time.Friday, Count: 3},
		Hour:  Popular[int]{Value: 8, Count: 3},
	}
	if diff := cmp.Diff(expected, stats); diff != "" {
		t.Errorf("unexpected time stats (-want +got):\n%s", diff)
	}
	require.LessOrEqual(t, stats.Month.Count, d.Len())
	require.LessOrEqual(t, stats.Day.Count, d.Len())
	require.LessOrEqual(t, stats.Hour.Count, d.Len())
}

func TestComputeTimeStats_FilteredMonthSkipsMonth(t *testing.T) {
	d := loadDataset(t, "chicago", "june", selection.All)

	stats, ok := ComputeTimeStats(d)

	require.True(t, ok)
	require.Nil(t, stats.Month)
	require.Equal(t, &Popular[time.Weekday]{Value: time.Friday, Count: 2}, stats.Day)
	// 8, 12 and 17 appear once, the smallest hour wins
	require.Equal(t, Popular[int]{Value: 8, Count: 1}, stats.Hour)
}

func TestComputeStationStats(t *testing.T) {
	d := loadDataset(t, "chicago", selection.All, selection.All)

	stats, ok := ComputeStationStats(d)

	require.True(t, ok)
	expected := StationStats{
		Start: Popular[string]{Value: "A St", Count: 3},
		End:   Popular[string]{Value: "B St", Count: 3},
		Route: Popular[string]{Value: "A St → B St", Count: 2},
	}
	if diff := cmp.Diff(expected, stats); diff != "" {
		t.Errorf("unexpected station stats (-want +got):\n%s", diff)
	}
}

func TestComputeDurationStats(t *testing.T) {
	d := loadDataset(t, "chicago", selection.All, selection.All)

	stats, ok := ComputeDurationStats(d)

	require.True(t, ok)
	require.Equal(t, DurationStats{Total: 4560, Mean: 760, Median: 750, Shortest: 60, Longest: 1500}, stats)

	hours, minutes := stats.TotalHoursAndMinutes()
	require.Equal(t, int64(1), hours)
	require.Equal(t, int64(16), minutes)
}

func TestComputeUserStats(t *testing.T) {
	d := loadDataset(t, "chicago", selection.All, selection.All)

	stats, ok := ComputeUserStats(d, 2020)

	require.True(t, ok)
	expected := UserStats{
		UserTypes: &Distribution{
			Frequencies: []modecounter.Frequency[string]{
				{Value: "Subscriber", Count: 4, Percentage: 100 * 4.0 / 6.0},
				{Value: "Customer", Count: 2, Percentage: 100 * 2.0 / 6.0},
			},
		},
		Genders: &Distribution{
			Frequencies: []modecounter.Frequency[string]{
				{Value: "Male", Count: 3, Percentage: 60},
				{Value: "Female", Count: 2, Percentage: 40},
			},
			Missing: 1,
		},
		BirthYears: &BirthYearStats{
			Earliest:   1980,
			MostRecent: 1990,
			MostCommon: 1990,
			AverageAge: 33,
			Missing:    1,
		},
	}
	if diff := cmp.Diff(expected, stats, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("unexpected user stats (-want +got):\n%s", diff)
	}
}

func TestComputeUserStats_PercentagesAddUpTo100(t *testing.T) {
	for _, city := range []string{"chicago", "new york city", "washington"} {
		d := loadDataset(t, city, selection.All, selection.All)

		stats, ok := ComputeUserStats(d, 2020)
		require.True(t, ok)

		for _, distribution := range []*Distribution{stats.UserTypes, stats.Genders} {
			if distribution == nil {
				continue
			}
			total := 0.0
			for _, frequency := range distribution.Frequencies {
				total += frequency.Percentage
			}
			require.InDelta(t, 100.0, total, 0.01, "city %s", city)
		}
	}
}

func TestComputeUserStats_CityWithoutGenderAndBirthYear(t *testing.T) {
	d := loadDataset(t, "washington", selection.All, selection.All)

	stats, ok := ComputeUserStats(d, 2020)

	require.True(t, ok)
	require.NotNil(t, stats.UserTypes)
	require.Nil(t, stats.Genders)
	require.Nil(t, stats.BirthYears)
}

func TestRun_ChicagoAllMonthsAllDays(t *testing.T) {
	// --- Arrange ---
	reporter, out := newTestReporter(t)
	d := loadDataset(t, "chicago", selection.All, selection.All)

	// --- Act ---
	err := reporter.Run(context.Background(), d)

	// --- Assert ---
	require.NoError(t, err)
	output := out.String()
	expectedLines := []string{
		"=== Time Analysis ===",
		"Most popular month: June (3 trips)",
		"Most popular day: Friday (3 trips)",
		"Most popular hour: 8:00 (3 trips)",
		"=== Station Analysis ===",
		"Most popular starting station: A St (3 trips)",
		"Most popular ending station: B St (3 trips)",
		"Most popular route: A St → B St (2 trips)",
		"=== Trip Duration Analysis ===",
		"Total travel time: 1 hours and 16 minutes",
		"Average trip duration: 12.7 minutes",
		"Median trip duration: 12.5 minutes",
		"Shortest trip: 1.0 minutes",
		"Longest trip: 25.0 minutes",
		"=== User Analysis ===",
		"- Subscriber: 4 users (66.7%)",
		"- Customer: 2 users (33.3%)",
		"- Male: 3 users (60.0%)",
		"- Female: 2 users (40.0%)",
		"- 1 trip without gender",
		"- Earliest birth year: 1980",
		"- Most recent birth year: 1990",
		"- Most common birth year: 1990",
		"- Average user age: 33.0 years",
		"- 1 trip without birth year",
	}
	for _, line := range expectedLines {
		require.Contains(t, output, line)
	}
	require.Equal(t, 4, strings.Count(output, "Analysis completed in"))
	require.NotContains(t, output, "not available")
}

func TestRun_WashingtonJuneFriday(t *testing.T) {
	reporter, out := newTestReporter(t)
	d := loadDataset(t, "washington", "june", "friday")

	err := reporter.Run(context.Background(), d)

	require.NoError(t, err)
	output := out.String()
	require.NotContains(t, output, "Most popular month")
	require.NotContains(t, output, "Most popular day")
	require.Contains(t, output, "Most popular hour: 9:00 (1 trip)")
	require.Contains(t, output, "- Subscriber: 1 user (100.0%)")
	require.Contains(t, output, "Gender data not available for this city")
	require.Contains(t, output, "Birth year data not available for this city")
}

func TestRun_EmptyDataset(t *testing.T) {
	reporter, out := newTestReporter(t)
	d := loadDataset(t, "washington", "january", "friday")
	require.True(t, d.IsEmpty())

	err := reporter.Run(context.Background(), d)

	require.NoError(t, err)
	output := out.String()
	require.Equal(t, 4, strings.Count(output, noDataMessage))
	require.Equal(t, 4, strings.Count(output, "Analysis completed in"))
	require.NotContains(t, output, "Most popular")
}

func TestRun_EmptyDatasetWithoutLoader(t *testing.T) {
	reporter, out := newTestReporter(t)
	vocabulary := testutil.Vocabulary(t)
	s, err := vocabulary.NewSelection("chicago", "may", "sunday")
	require.NoError(t, err)

	require.NotPanics(t, func() {
		reporter.TimePatterns(&dataset.Dataset{Selection: s})
		reporter.Stations(&dataset.Dataset{Selection: s})
		reporter.Durations(&dataset.Dataset{Selection: s})
		reporter.Users(&dataset.Dataset{Selection: s, HasGender: true, HasBirthYear: true})
	})
	require.Equal(t, 4, strings.Count(out.String(), noDataMessage))
}

func TestRun_CanceledContext(t *testing.T) {
	reporter, out := newTestReporter(t)
	d := loadDataset(t, "chicago", selection.All, selection.All)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := reporter.Run(ctx, d)

	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

func TestMonthName(t *testing.T) {
	reporter := NewReporter(console.NewConsole(strings.NewReader(""), &bytes.Buffer{}, false), []string{"january"}, nil)

	require.Equal(t, "January", reporter.monthName(1))
	require.Equal(t, "August", reporter.monthName(8))
}
