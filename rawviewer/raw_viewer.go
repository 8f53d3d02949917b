package rawviewer

import (
	"bikeshare/console"
	"bikeshare/utils"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// FileLocator returns the path of the file that backs a city
type FileLocator interface {
	FilePath(city string) (string, error)
}

// RawViewer prints the rows of a city file exactly as they are, in chunks of chunkSize rows.
// It does not apply any filter
type RawViewer struct {
	console   *console.Console
	locator   FileLocator
	chunkSize int
}

func NewRawViewer(c *console.Console, locator FileLocator, chunkSize int) *RawViewer {
	return &RawViewer{
		console:   c,
		locator:   locator,
		chunkSize: chunkSize,
	}
}

// Show asks before every chunk if the user wants to see it. Any answer other than "yes" stops the viewer
func (rv *RawViewer) Show(ctx context.Context, city string) error {
	rv.console.Title("Raw Data Viewer")

	var chunks *chunkReader
	defer func() {
		if chunks != nil {
			utils.CloseFile(chunks.file)
		}
	}()

	question := fmt.Sprintf("Would you like to view %v rows of raw data? (yes/no): ", rv.chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		confirmed, err := rv.console.Confirm(question)
		if err != nil {
			return err
		}
		if !confirmed {
			break
		}

		if chunks == nil {
			chunks, err = rv.open(city)
			if err != nil {
				return err
			}
		}

		rows, err := chunks.next(rv.chunkSize)
		if err != nil {
			log.Errorf("[city: %s][method: Show][status: ERROR] error reading raw data: %s", city, err.Error())
			return err
		}

		if len(rows) > 0 {
			first := chunks.shown - len(rows) + 1
			rv.console.Printf("\nSample data (rows %v-%v):\n", first, chunks.shown)
			rv.console.Println(render(chunks.header, rows))
		}

		if len(rows) < rv.chunkSize {
			rv.console.Println("No more raw data to display.")
			break
		}

		question = "\nView more data? (yes/no): "
	}

	rv.console.Println("\nThank you for using the data viewer!")
	return nil
}

func (rv *RawViewer) open(city string) (*chunkReader, error) {
	filePath, err := rv.locator.FilePath(city)
	if err != nil {
		return nil, err
	}

	log.Debugf("[city: %s][method: Show] reading raw data from %s", city, filePath)
	dataFile, err := utils.OpenFile(filePath)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(dataFile)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		utils.CloseFile(dataFile)
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file %s", filePath)
		}
		return nil, fmt.Errorf("error reading header of %s: %w", filePath, err)
	}

	return &chunkReader{
		file:   dataFile,
		reader: reader,
		header: header,
	}, nil
}

// chunkReader streams the rows of a CSV file, so the file is never loaded in memory at once
type chunkReader struct {
	file   *os.File
	reader *csv.Reader
	header []string
	shown  int
}

// next returns up to size rows. Fewer rows means that the end of the file was reached
func (cr *chunkReader) next(size int) ([][]string, error) {
	rows := make([][]string, 0, size)
	for len(rows) < size {
		row, err := cr.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	cr.shown += len(rows)
	return rows, nil
}

// render prints the rows as a table with every column of the header. Values are kept as they are,
// long station names are not wrapped
func render(header []string, rows [][]string) string {
	var buffer strings.Builder
	table := tablewriter.NewWriter(&buffer)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, row := range rows {
		table.Append(fitRow(row, len(header)))
	}
	table.Render()
	return strings.TrimRight(buffer.String(), "\n")
}

// fitRow pads or cuts the row to the amount of columns of the header
func fitRow(row []string, columns int) []string {
	fitted := make([]string, columns)
	copy(fitted, row)
	return fitted
}
