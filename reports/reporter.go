package reports

import (
	"bikeshare/console"
	"bikeshare/dataset"
	"cmp"
	"context"
	"fmt"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"time"
)

const (
	separatorWidth = 40
	noDataMessage  = "No trip data matches this selection."
)

// Popular modal value of a column and the amount of trips that have it
type Popular[T cmp.Ordered] struct {
	Value T
	Count int
}

// Reporter prints the statistics of a dataset. Reports never modify the dataset
// + months: month vocabulary, used to print month names
// + now: clock used to compute the age of the users
type Reporter struct {
	console *console.Console
	months  []string
	now     func() time.Time
	printer *message.Printer
}

func NewReporter(c *console.Console, months []string, now func() time.Time) *Reporter {
	if now == nil {
		now = time.Now
	}

	return &Reporter{
		console: c,
		months:  months,
		now:     now,
		printer: message.NewPrinter(language.English),
	}
}

// Run prints every report in order: time patterns, stations, trip duration and users
func (r *Reporter) Run(ctx context.Context, d *dataset.Dataset) error {
	reports := []struct {
		title  string
		report func(d *dataset.Dataset)
	}{
		{title: "Time Analysis", report: r.TimePatterns},
		{title: "Station Analysis", report: r.Stations},
		{title: "Trip Duration Analysis", report: r.Durations},
		{title: "User Analysis", report: r.Users},
	}

	for _, report := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.run(report.title, d, report.report)
	}

	return nil
}

// run prints the title, the report and the time it took. Each report prints its own notice for empty datasets
func (r *Reporter) run(title string, d *dataset.Dataset, report func(d *dataset.Dataset)) {
	r.console.Title(title)
	startTime := time.Now()
	report(d)

	elapsed := time.Since(startTime)
	log.Debugf("[city: %s][report: %s] completed in %s", d.City(), title, elapsed)
	r.console.Printf("\nAnalysis completed in %.2f seconds\n", elapsed.Seconds())
	r.console.Separator("-", separatorWidth)
}

// trips formats an amount of trips with thousands separators, e.g. 1,234 trips
func (r *Reporter) trips(count int) string {
	if count == 1 {
		return "1 trip"
	}
	return r.printer.Sprintf("%d trips", count)
}

func (r *Reporter) users(count int) string {
	if count == 1 {
		return "1 user"
	}
	return r.printer.Sprintf("%d users", count)
}

func (r *Reporter) number(n int) string {
	return r.printer.Sprintf("%d", n)
}

func minutes(seconds float64) string {
	return fmt.Sprintf("%.1f minutes", seconds/60)
}
