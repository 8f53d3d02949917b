package dataset

import (
	"bikeshare/config"
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// gota keeps NaN as the textual value of a missing cell
const missingValue = "NaN"

// startTimeLayouts accepted formats of the start time column
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Loader reads the trips file of a city and keeps the trips that match a selection
type Loader struct {
	cityTable config.CityTable
	columns   config.Columns
	dataDir   string
}

func NewLoader(cityTable config.CityTable, columns config.Columns, dataDir string) *Loader {
	return &Loader{
		cityTable: cityTable,
		columns:   columns,
		dataDir:   dataDir,
	}
}

func getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[city: %s][method: %s][status: ERROR] %s: %s", city, method, message, err.Error())
	}
	return fmt.Sprintf("[city: %s][method: %s][status: OK] %s", city, method, message)
}

// FilePath returns the path to the .csv file of the city
func (l *Loader) FilePath(city string) (string, error) {
	file, ok := l.cityTable.File(city)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}
	return filepath.Join(l.dataDir, file), nil
}

// Load reads every trip of the selected city and applies the month and day filters.
// Any invalid row makes the whole load fail, there is no partial dataset
func (l *Loader) Load(ctx context.Context, s selection.Selection) (*Dataset, error) {
	city := s.City()
	dataset, err := l.load(ctx, s)
	if err != nil {
		log.Error(getLogMessage(city, "Load", "error loading trips", err))
		return nil, err
	}

	log.Info(getLogMessage(city, "Load", fmt.Sprintf("%v of %v trips match %s", dataset.Len(), dataset.TotalRows, s), nil))
	return dataset, nil
}

func (l *Loader) load(ctx context.Context, s selection.Selection) (*Dataset, error) {
	city := s.City()
	filePath, err := l.FilePath(city)
	if err != nil {
		return nil, err
	}

	log.Info(getLogMessage(city, "Load", fmt.Sprintf("loading trips from %s", filePath), nil))

	dataFile, err := utils.OpenFile(filePath)
	if err != nil {
		if errors.Is(err, utils.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMissingDataFile, filePath)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnreadableFile, err.Error())
	}
	defer utils.CloseFile(dataFile)

	rows, err := csv.NewReader(dataFile).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrUnreadableFile, filePath, err.Error())
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: empty file", ErrUnreadableFile, filePath)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	optionalColumns, err := l.checkColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var records []trip.TripRecord
	if len(rows) > 1 {
		records, err = l.parseRecords(rows)
		if err != nil {
			return nil, err
		}
	}

	return &Dataset{
		Selection:    s,
		Records:      filterRecords(records, s),
		TotalRows:    len(records),
		HasUserType:  optionalColumns[l.columns.UserType],
		HasGender:    optionalColumns[l.columns.Gender],
		HasBirthYear: optionalColumns[l.columns.BirthYear],
	}, nil
}

// checkColumns fails if a required column is not in the header. It returns which of the optional
// columns are present, a file with only the header is still a valid file without trips
func (l *Loader) checkColumns(header []string) (map[string]bool, error) {
	present := make(map[string]bool)
	for _, name := range header {
		present[name] = true
	}

	required := []string{l.columns.StartTime, l.columns.StartStation, l.columns.EndStation, l.columns.TripDuration}
	for _, column := range required {
		if !present[column] {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
		}
	}

	return map[string]bool{
		l.columns.UserType:  l.columns.UserType != "" && present[l.columns.UserType],
		l.columns.Gender:    l.columns.Gender != "" && present[l.columns.Gender],
		l.columns.BirthYear: l.columns.BirthYear != "" && present[l.columns.BirthYear],
	}, nil
}

// parseRecords converts every row after the header into a TripRecord. Every value is read as text
func (l *Loader) parseRecords(rows [][]string) ([]trip.TripRecord, error) {
	df := dataframe.LoadRecords(
		rows,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreadableFile, df.Err.Error())
	}

	optionalColumns, err := l.checkColumns(df.Names())
	if err != nil {
		return nil, err
	}

	startTimes := df.Col(l.columns.StartTime).Records()
	startStations := df.Col(l.columns.StartStation).Records()
	endStations := df.Col(l.columns.EndStation).Records()
	durations := df.Col(l.columns.TripDuration).Records()
	userTypes := optionalRecords(df, l.columns.UserType, optionalColumns)
	genders := optionalRecords(df, l.columns.Gender, optionalColumns)
	birthYears := optionalRecords(df, l.columns.BirthYear, optionalColumns)

	records := make([]trip.TripRecord, 0, df.Nrow())
	for idx := 0; idx < df.Nrow(); idx++ {
		line := idx + 2 // header is line 1

		startTime, err := parseStartTime(startTimes[idx])
		if err != nil {
			return nil, fmt.Errorf("line %v: %w: %w", line, ErrInvalidTripData, err)
		}

		duration, err := parseDuration(durations[idx])
		if err != nil {
			return nil, fmt.Errorf("line %v: %w: %w", line, ErrInvalidTripData, err)
		}

		record := trip.TripRecord{
			StartTime:    startTime,
			StartStation: cleanValue(startStations[idx]),
			EndStation:   cleanValue(endStations[idx]),
			Duration:     duration,
		}

		if userTypes != nil {
			record.UserType = cleanValue(userTypes[idx])
		}

		if genders != nil {
			record.Gender = cleanValue(genders[idx])
		}

		if birthYears != nil {
			record.BirthYear, err = parseBirthYear(birthYears[idx])
			if err != nil {
				return nil, fmt.Errorf("line %v: %w: %w", line, ErrInvalidTripData, err)
			}
		}

		records = append(records, record)
	}

	return records, nil
}

func optionalRecords(df dataframe.DataFrame, column string, optionalColumns map[string]bool) []string {
	if !optionalColumns[column] {
		return nil
	}
	return df.Col(column).Records()
}

func cleanValue(value string) string {
	value = strings.TrimSpace(value)
	if value == missingValue {
		return ""
	}
	return value
}

func parseStartTime(value string) (time.Time, error) {
	value = cleanValue(value)
	for _, layout := range startTimeLayouts {
		startTime, err := time.Parse(layout, value)
		if err == nil {
			return startTime, nil
		}
	}

	log.Debugf("Invalid start time: %q", value)
	return time.Time{}, fmt.Errorf("%w %q", ErrInvalidStartTime, value)
}

func parseDuration(value string) (float64, error) {
	duration, err := strconv.ParseFloat(cleanValue(value), 64)
	if err != nil || duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		log.Debugf("Invalid trip duration: %q", value)
		return 0, fmt.Errorf("%w %q", ErrInvalidDuration, value)
	}
	return duration, nil
}

// parseBirthYear birth years may come as floats, e.g. 1989.0. An empty value means unknown and returns 0
func parseBirthYear(value string) (int, error) {
	value = cleanValue(value)
	if value == "" {
		return 0, nil
	}

	birthYear, err := strconv.ParseFloat(value, 64)
	if err != nil || birthYear <= 0 || math.IsNaN(birthYear) || math.IsInf(birthYear, 0) {
		log.Debugf("Invalid birth year: %q", value)
		return 0, fmt.Errorf("%w %q", ErrInvalidBirthYear, value)
	}
	return int(math.Trunc(birthYear)), nil
}
