package session

import (
	"bikeshare/console"
	"bikeshare/dataset"
	"bikeshare/domain/entities/selection"
	"bikeshare/preferences"
	"bikeshare/rawviewer"
	"bikeshare/reports"
	"bikeshare/testutil"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, input string, dataDir string) (*Session, *bytes.Buffer) {
	t.Helper()
	explorerConfig := testutil.Config(t)
	out := &bytes.Buffer{}
	c := console.NewConsole(strings.NewReader(input), out, false)
	loader := dataset.NewLoader(explorerConfig.CityTable(), explorerConfig.Columns, dataDir)

	return NewSession(
		c,
		preferences.NewCollector(c, explorerConfig.Vocabulary()),
		loader,
		reports.NewReporter(c, explorerConfig.Months, time.Now),
		rawviewer.NewRawViewer(c, loader, explorerConfig.RawChunkSize),
	), out
}

func TestRun_TwoIterations(t *testing.T) {
	// --- Arrange ---
	input := strings.Join([]string{
		"chicago", "all", "all", // first selection
		"no",  // raw data
		"yes", // analyze another dataset
		"washington", "june", "friday",
		"yes", "no", // one chunk of raw data
		"no", // exit
	}, "\n") + "\n"
	session, out := newTestSession(t, input, testutil.WriteCityFiles(t))

	// --- Act ---
	err := session.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	output := out.String()
	require.Equal(t, 2, strings.Count(output, "Welcome to the BikeShare Data Explorer!"))
	require.Equal(t, 2, strings.Count(output, "=== Time Analysis ==="))
	require.Equal(t, 1, strings.Count(output, "Most popular month: June (3 trips)"))
	require.Equal(t, 1, strings.Count(output, "Sample data (rows 1-3):"))
	require.Contains(t, output, "Gender data not available for this city")
	require.True(t, strings.HasSuffix(output, "Thank you for using the BikeShare Data Explorer!\n"))
}

func TestRun_ReportsRunInOrder(t *testing.T) {
	input := "chicago\nall\nall\nno\nno\n"
	session, out := newTestSession(t, input, testutil.WriteCityFiles(t))

	err := session.Run(context.Background())

	require.NoError(t, err)
	output := out.String()
	titles := []string{"Time Analysis", "Station Analysis", "Trip Duration Analysis", "User Analysis", "Raw Data Viewer"}
	last := -1
	for _, title := range titles {
		idx := strings.Index(output, "=== "+title+" ===")
		require.Greater(t, idx, last, "%s is out of order", title)
		last = idx
	}
}

func TestRun_MissingDataFileIsFatal(t *testing.T) {
	dataDir := testutil.WriteFiles(t, map[string]string{"chicago.csv": testutil.ChicagoCSV})
	session, out := newTestSession(t, "washington\nall\nall\nyes\n", dataDir)

	err := session.Run(context.Background())

	require.True(t, errors.Is(err, dataset.ErrMissingDataFile), "got %v", err)
	require.Contains(t, out.String(), "Unable to load data for washington")
	require.NotContains(t, out.String(), "=== Time Analysis ===")
}

func TestRun_InputClosed(t *testing.T) {
	session, _ := newTestSession(t, "chicago\nall\n", testutil.WriteCityFiles(t))

	err := session.Run(context.Background())

	require.True(t, errors.Is(err, console.ErrInputClosed))
}

type panicReporter struct{}

func (panicReporter) Run(context.Context, *dataset.Dataset) error {
	panic("boom")
}

type stubCollector struct {
	s selection.Selection
}

func (sc stubCollector) Collect() (selection.Selection, error) {
	return sc.s, nil
}

func TestRun_PanicIsReturnedAsError(t *testing.T) {
	explorerConfig := testutil.Config(t)
	c := console.NewConsole(strings.NewReader(""), &bytes.Buffer{}, false)
	loader := dataset.NewLoader(explorerConfig.CityTable(), explorerConfig.Columns, testutil.WriteCityFiles(t))
	session := NewSession(
		c,
		stubCollector{s: testutil.Selection(t, "chicago", selection.All, selection.All)},
		loader,
		panicReporter{},
		rawviewer.NewRawViewer(c, loader, 5),
	)

	err := session.Run(context.Background())

	require.Error(t, err)
	require.Contains(t, err.Error(), "session panicked: boom")
}

type cancelingLoader struct {
	cancel context.CancelFunc
}

func (cl cancelingLoader) Load(ctx context.Context, _ selection.Selection) (*dataset.Dataset, error) {
	cl.cancel()
	return nil, ctx.Err()
}

func TestRun_CanceledWhileLoading(t *testing.T) {
	// --- Arrange ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &bytes.Buffer{}
	c := console.NewConsole(strings.NewReader(""), out, false)
	session := NewSession(
		c,
		stubCollector{s: testutil.Selection(t, "chicago", selection.All, selection.All)},
		cancelingLoader{cancel: cancel},
		panicReporter{},
		rawviewer.NewRawViewer(c, nil, 5),
	)

	// --- Act ---
	err := session.Run(ctx)

	// --- Assert ---
	require.ErrorIs(t, err, context.Canceled)
	require.NotContains(t, out.String(), "Unable to load data")
}
