package selection

import (
	"bikeshare/utils"
	"errors"
	"fmt"
	"time"
)

// All is the answer that disables the month or the day filter
const All = "all"

var (
	ErrInvalidCity  = errors.New("invalid city")
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidDay   = errors.New("invalid day")
)

// Weekdays valid day names, Monday first
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var weekdaysByName = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Vocabulary contains the values that a user can choose
// + Cities: supported cities
// + Months: month names in calendar order, without "all"
type Vocabulary struct {
	Cities []string
	Months []string
}

func (v Vocabulary) ValidCity(city string) bool {
	return utils.ContainsString(city, v.Cities)
}

func (v Vocabulary) ValidMonth(month string) bool {
	return month == All || utils.ContainsString(month, v.Months)
}

func (v Vocabulary) ValidDay(day string) bool {
	_, ok := weekdaysByName[day]
	return day == All || ok
}

// Selection the (city, month, day) triple chosen by the user. It can only be built through
// Vocabulary.NewSelection, so a Selection value is always valid
type Selection struct {
	city        string
	month       string
	monthNumber int
	day         string
}

// NewSelection validates the triple. Values are expected in lower case
func (v Vocabulary) NewSelection(city string, month string, day string) (Selection, error) {
	if !v.ValidCity(city) {
		return Selection{}, fmt.Errorf("%w: %q", ErrInvalidCity, city)
	}

	if !v.ValidMonth(month) {
		return Selection{}, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}

	if !v.ValidDay(day) {
		return Selection{}, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	return Selection{
		city:        city,
		month:       month,
		monthNumber: utils.IndexOfString(month, v.Months) + 1,
		day:         day,
	}, nil
}

func (s Selection) City() string {
	return s.city
}

func (s Selection) Month() string {
	return s.month
}

func (s Selection) Day() string {
	return s.day
}

// AllMonths returns true if the month filter is disabled
func (s Selection) AllMonths() bool {
	return s.month == All
}

// AllDays returns true if the day filter is disabled
func (s Selection) AllDays() bool {
	return s.day == All
}

// MonthNumber returns the 1-based position of the month in the vocabulary, 0 when every month is selected
func (s Selection) MonthNumber() int {
	return s.monthNumber
}

// Weekday returns the selected day of week. The boolean is false when every day is selected
func (s Selection) Weekday() (time.Weekday, bool) {
	weekday, ok := weekdaysByName[s.day]
	return weekday, ok
}

func (s Selection) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", s.city, s.month, s.day)
}
