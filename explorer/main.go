package main

import (
	"bikeshare/config"
	"bikeshare/console"
	"bikeshare/dataset"
	"bikeshare/preferences"
	"bikeshare/rawviewer"
	"bikeshare/reports"
	"bikeshare/session"
	"bikeshare/utils"
	"context"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"time"
)

const interruptMessage = "\n\nExploration interrupted. Goodbye!"

// interruptGracePeriod time that a canceled session has to finish before the process exits on its own.
// A session waiting for an answer cannot see the cancellation
const interruptGracePeriod = 2 * time.Second

// ExitError error with the exit code that the process must return
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string, output io.Writer) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		DisableColors:   true,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	log.SetOutput(output)
	return nil
}

// watchSignals cancels the session when SIGINT or SIGTERM arrives. If the session does not finish
// within interruptGracePeriod the process exits with code 0
func watchSignals(signals <-chan os.Signal, cancel context.CancelFunc, done <-chan struct{}) {
	select {
	case <-done:
		return
	case sig := <-signals:
		log.Infof("[method: watchSignals] signal received: %s", sig)
		cancel()
	}

	select {
	case <-done:
	case <-time.After(interruptGracePeriod):
		fmt.Fprintln(os.Stdout, interruptMessage)
		os.Exit(0)
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go watchSignals(utils.GetSignalChannel(), cancel, done)

	err := run(ctx, os.Stdin, os.Stdout, os.Args[1:])
	close(done)
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds every component and runs the session. A nil error means exit code 0, a canceled ctx
// is an interruption
func run(ctx context.Context, in io.Reader, out io.Writer, args []string) error {
	explorerConfig, err := config.LoadConfig()
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	settings, err := config.LoadSettings(explorerConfig.LogFile)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	settings, shouldExit, err := parseFlags(args, out, settings)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logOutput, closeLog, err := openLogOutput(out, settings.LogFile)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	defer closeLog()

	if err = InitLogger(settings.LogLevel, logOutput); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	log.Debugf("[method: run] settings: %+v", settings)

	c := console.NewConsole(in, out, settings.Color)
	loader := dataset.NewLoader(explorerConfig.CityTable(), explorerConfig.Columns, settings.DataDir)
	explorerSession := session.NewSession(
		c,
		preferences.NewCollector(c, explorerConfig.Vocabulary()),
		loader,
		reports.NewReporter(c, explorerConfig.Months, time.Now),
		rawviewer.NewRawViewer(c, loader, explorerConfig.RawChunkSize),
	)

	err = explorerSession.Run(ctx)
	if errors.Is(err, console.ErrInputClosed) || errors.Is(err, context.Canceled) {
		log.Infof("[method: run] exploration interrupted: %s", err.Error())
		fmt.Fprintln(out, interruptMessage)
		return nil
	}

	if err != nil {
		log.Errorf("[method: run][status: ERROR] %s", err.Error())
		return &ExitError{Code: 1, Message: err.Error()}
	}

	log.Debug("[method: run] finish main.go")
	return nil
}

// openLogOutput returns a writer that appends to logFile and mirrors every line to out.
// An empty logFile only writes to out
func openLogOutput(out io.Writer, logFile string) (io.Writer, func(), error) {
	if logFile == "" {
		return out, func() {}, nil
	}

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file %s: %w", logFile, err)
	}

	return io.MultiWriter(out, file), func() { utils.CloseFile(file) }, nil
}
