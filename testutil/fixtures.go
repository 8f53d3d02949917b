// Package testutil contains small trip files and helpers shared by the package tests.
package testutil

import (
	"bikeshare/config"
	"bikeshare/domain/entities/selection"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ChicagoCSV has every optional column. Row 3 has no gender and no birth year.
//
//	months: january 2, march 1, june 3
//	days: monday 2, friday 3, saturday 1
//	hours: 8 -> 3, 17 -> 2, 12 -> 1
//	durations: 4560s total, 760s mean, 750s median
const ChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-01-02 08:10:00,2017-01-02 08:20:00,600,A St,B St,Subscriber,Male,1980.0
2,2017-01-02 08:30:00,2017-01-02 08:35:00,300,A St,B St,Subscriber,Female,1990.0
3,2017-03-03 17:05:00,2017-03-03 17:25:00,1200,C St,A St,Customer,,
4,2017-06-02 08:45:00,2017-06-02 09:00:00,900,A St,C St,Subscriber,Male,1990.0
5,2017-06-09 17:15:00,2017-06-09 17:40:00,1500,B St,A St,Subscriber,Male,1985.0
6,2017-06-10 12:00:00,2017-06-10 12:01:00,60,C St,B St,Customer,Female,1990.0
`

// NewYorkCityCSV has every optional column
const NewYorkCityCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-06-11 14:55:05,2017-06-11 15:08:21,795,Suffolk St & Stanton St,W Broadway & Spring St,Subscriber,Male,1998.0
2,2017-05-11 15:30:11,2017-05-11 15:41:43,692,Lexington Ave & E 63 St,1 Ave & E 78 St,Subscriber,Male,1981.0
`

// WashingtonCSV has user types but neither gender nor birth year
//
//	june + friday: row 1 only
//	january + friday: no rows
const WashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1,2017-06-02 09:00:00,2017-06-02 09:08:09,489.066,X St,Y St,Subscriber
2,2017-06-05 10:00:00,2017-06-05 10:16:40,1000,Y St,X St,Customer
3,2017-05-05 09:30:00,2017-05-05 09:35:00,300,X St,Y St,Subscriber
`

// WriteCityFiles writes the three city files in a temporary directory and returns its path
func WriteCityFiles(t *testing.T) string {
	t.Helper()
	return WriteFiles(t, map[string]string{
		"chicago.csv":       ChicagoCSV,
		"new_york_city.csv": NewYorkCityCSV,
		"washington.csv":    WashingtonCSV,
	})
}

// WriteFiles writes every file name -> content pair in a temporary directory and returns its path
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600)
		require.NoError(t, err, "failed to write fixture %s", name)
	}
	return dir
}

// Config returns the configuration embedded in the binary
func Config(t *testing.T) *config.ExplorerConfig {
	t.Helper()
	explorerConfig, err := config.LoadConfig()
	require.NoError(t, err)
	return explorerConfig
}

// Vocabulary returns the values a user can choose with the embedded configuration
func Vocabulary(t *testing.T) selection.Vocabulary {
	t.Helper()
	return Config(t).Vocabulary()
}

// Selection builds a valid selection or fails the test
func Selection(t *testing.T, city string, month string, day string) selection.Selection {
	t.Helper()
	s, err := Vocabulary(t).NewSelection(city, month, day)
	require.NoError(t, err)
	return s
}
