package dataset

import "errors"

var (
	ErrUnknownCity      = errors.New("unknown city")
	ErrMissingDataFile  = errors.New("missing data file")
	ErrUnreadableFile   = errors.New("unreadable data file")
	ErrMissingColumn    = errors.New("missing column")
	ErrInvalidTripData  = errors.New("invalid trip data")
	ErrInvalidStartTime = errors.New("invalid start time")
	ErrInvalidDuration  = errors.New("invalid trip duration")
	ErrInvalidBirthYear = errors.New("invalid birth year")
)
