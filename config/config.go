package config

import (
	"bikeshare/domain/entities/selection"
	_ "embed"
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"strings"
)

//go:embed config.yaml
var defaultConfigFile []byte

var (
	ErrNoCities         = errors.New("no cities configured")
	ErrDuplicatedCity   = errors.New("duplicated city")
	ErrEmptyCityFile    = errors.New("city without data file")
	ErrNoMonths         = errors.New("no months configured")
	ErrInvalidChunkSize = errors.New("raw chunk size must be greater than 0")
	ErrEmptyColumnName  = errors.New("required column without name")
)

// City one row of the city table as written in config.yaml
type City struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// Columns contains the header name of each column of the trip files
type Columns struct {
	StartTime    string `yaml:"start_time"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	TripDuration string `yaml:"trip_duration"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// ExplorerConfig static configuration of the explorer.
// + Cities: city name and the CSV file that contains its trips
// + Months: month vocabulary, in calendar order. The position of a month is its number
// + Columns: header names used to read the trip files
// + RawChunkSize: amount of rows printed at once by the raw data viewer
// + LogFile: default name of the log file
type ExplorerConfig struct {
	Cities       []City   `yaml:"cities"`
	Months       []string `yaml:"months"`
	Columns      Columns  `yaml:"columns"`
	RawChunkSize int      `yaml:"raw_chunk_size"`
	LogFile      string   `yaml:"log_file"`
}

// LoadConfig parses the configuration embedded in the binary
func LoadConfig() (*ExplorerConfig, error) {
	return ParseConfig(defaultConfigFile)
}

// ParseConfig parses and validates a YAML document with the explorer configuration
func ParseConfig(configFile []byte) (*ExplorerConfig, error) {
	var explorerConfig ExplorerConfig
	err := yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %s", err)
	}

	for idx := range explorerConfig.Cities {
		explorerConfig.Cities[idx].Name = strings.ToLower(strings.TrimSpace(explorerConfig.Cities[idx].Name))
	}
	for idx := range explorerConfig.Months {
		explorerConfig.Months[idx] = strings.ToLower(strings.TrimSpace(explorerConfig.Months[idx]))
	}

	if err = explorerConfig.validate(); err != nil {
		return nil, err
	}

	return &explorerConfig, nil
}

func (ec *ExplorerConfig) validate() error {
	if len(ec.Cities) == 0 {
		return ErrNoCities
	}

	seen := make(map[string]bool, len(ec.Cities))
	for _, city := range ec.Cities {
		if seen[city.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicatedCity, city.Name)
		}
		if city.File == "" {
			return fmt.Errorf("%w: %s", ErrEmptyCityFile, city.Name)
		}
		seen[city.Name] = true
	}

	if len(ec.Months) == 0 {
		return ErrNoMonths
	}

	required := map[string]string{
		"start_time":    ec.Columns.StartTime,
		"start_station": ec.Columns.StartStation,
		"end_station":   ec.Columns.EndStation,
		"trip_duration": ec.Columns.TripDuration,
	}
	for key, name := range required {
		if name == "" {
			return fmt.Errorf("%w: %s", ErrEmptyColumnName, key)
		}
	}

	if ec.RawChunkSize <= 0 {
		return ErrInvalidChunkSize
	}

	return nil
}

// CityTable returns the immutable city -> file table described by the config
func (ec *ExplorerConfig) CityTable() CityTable {
	names := make([]string, 0, len(ec.Cities))
	files := make(map[string]string, len(ec.Cities))
	for _, city := range ec.Cities {
		names = append(names, city.Name)
		files[city.Name] = city.File
	}

	return CityTable{
		names: names,
		files: files,
	}
}

// Vocabulary returns the cities and months a user can choose
func (ec *ExplorerConfig) Vocabulary() selection.Vocabulary {
	return selection.Vocabulary{
		Cities: ec.CityTable().Names(),
		Months: append([]string(nil), ec.Months...),
	}
}
