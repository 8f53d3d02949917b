package utils

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"os"
	"os/signal"
	"syscall"
)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	return IndexOfString(targetString, sliceOfStrings) >= 0
}

// IndexOfString returns the position of targetString in sliceOfStrings or -1 if it is not there
func IndexOfString(targetString string, sliceOfStrings []string) int {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return i
		}
	}
	return -1
}

// Title returns s with the first letter of every word in upper case, e.g. new york city -> New York City
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
