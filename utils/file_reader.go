package utils

import (
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io/fs"
	"os"
)

var ErrFileNotFound = errors.New("file not found")

// OpenFile opens the file in read only mode. If the file does not exist the returned error wraps ErrFileNotFound
func OpenFile(filepath string) (*os.File, error) {
	file, err := os.Open(filepath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filepath)
		}
		return nil, fmt.Errorf("error opening %s: %w", filepath, err)
	}

	return file, nil
}

// CloseFile closes the file and logs the error if any. Meant to be deferred
func CloseFile(file *os.File) {
	err := file.Close()
	if err != nil {
		log.Errorf("error closing %s: %s", file.Name(), err.Error())
	}
}
