package session

import (
	"bikeshare/console"
	"bikeshare/dataset"
	"bikeshare/domain/entities/selection"
	"context"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
)

type (
	// PreferenceCollector returns the selection of the user
	PreferenceCollector interface {
		Collect() (selection.Selection, error)
	}

	// DatasetLoader loads the trips that match a selection
	DatasetLoader interface {
		Load(ctx context.Context, s selection.Selection) (*dataset.Dataset, error)
	}

	// ReportRunner prints the statistics of a dataset
	ReportRunner interface {
		Run(ctx context.Context, d *dataset.Dataset) error
	}

	// RawDataViewer shows the raw rows of a city
	RawDataViewer interface {
		Show(ctx context.Context, city string) error
	}
)

// Session runs the explorer loop: collect -> load -> report -> raw view -> ask repeat.
// Nothing is kept between iterations
type Session struct {
	console   *console.Console
	collector PreferenceCollector
	loader    DatasetLoader
	reporter  ReportRunner
	viewer    RawDataViewer
}

func NewSession(c *console.Console, collector PreferenceCollector, loader DatasetLoader, reporter ReportRunner, viewer RawDataViewer) *Session {
	return &Session{
		console:   c,
		collector: collector,
		loader:    loader,
		reporter:  reporter,
		viewer:    viewer,
	}
}

// Run loops until the user does not want to analyze another dataset. Errors are returned as they are,
// a console.ErrInputClosed error means that the user left
func (s *Session) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("session panicked: %v", r)
		}
	}()

	for iteration := 1; ; iteration++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		log.Debugf("[method: Run] starting iteration %v", iteration)
		if err = s.iterate(ctx); err != nil {
			return err
		}

		var again bool
		again, err = s.console.Confirm("\nWould you like to analyze another dataset? (yes/no): ")
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	s.console.Success("\nThank you for using the BikeShare Data Explorer!")
	return nil
}

func (s *Session) iterate(ctx context.Context) error {
	chosen, err := s.collector.Collect()
	if err != nil {
		return err
	}

	d, err := s.loader.Load(ctx, chosen)
	if errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		s.console.Error(fmt.Sprintf("\nUnable to load data for %s: %s", chosen.City(), err.Error()))
		return err
	}

	if err = s.reporter.Run(ctx, d); err != nil {
		return err
	}

	return s.viewer.Show(ctx, chosen.City())
}
