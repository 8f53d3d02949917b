package main

import (
	"bikeshare/config"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

const usage = `
BikeShare Data Explorer - explore bike share trips of Chicago, New York City and Washington.

Usage:
  explorer [options]

Every option can also be set with an environment variable:
  BIKESHARE_DATA_DIR, BIKESHARE_LOG_LEVEL, BIKESHARE_LOG_FILE, BIKESHARE_COLOR

Options:
`

// parseFlags overrides the settings with the command line options. The boolean is true when the
// program must exit without errors, e.g. -help
func parseFlags(args []string, output io.Writer, settings config.Settings) (config.Settings, bool, error) {
	flagSet := flag.NewFlagSet("explorer", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	dataDir := flagSet.String("data-dir", settings.DataDir, "Directory with the city .csv files.")
	logLevel := flagSet.String("log-level", settings.LogLevel, "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFile := flagSet.String("log-file", settings.LogFile, "File where logs are appended. Empty disables the log file.")
	noColor := flagSet.Bool("no-color", !settings.Color, "Disable colored output.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return settings, true, nil
		}
		return settings, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() > 0 {
		return settings, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	level := strings.ToLower(*logLevel)
	switch level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return settings, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	settings.DataDir = *dataDir
	settings.LogLevel = level
	settings.LogFile = *logFile
	settings.Color = !*noColor

	return settings, false, nil
}
