package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/igget/ig2mp3/internal/model"
)

// Default filenames inside the output directory
const (
	CSVName      = "report.csv"
	ErrorLogName = "errors.log"
)

// CSV column header, written only when the file is created
var csvHeader = []string{"url", "status", "note"}

// Writer appends run outcomes to a CSV report file.
type Writer struct {
	path string
}

// NewWriter creates a report writer for the given CSV path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the report file location.
func (w *Writer) Path() string {
	return w.path
}

// Append writes the outcomes as CSV rows, emitting the header first if
// the file did not exist yet. Failure here must never abort a batch; the
// caller surfaces the returned error as a warning only.
func (w *Writer) Append(outcomes []model.Outcome) error {
	_, statErr := os.Stat(w.path)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if newFile {
		if err := cw.Write(csvHeader); err != nil {
			return fmt.Errorf("write report header: %w", err)
		}
	}
	for _, o := range outcomes {
		if err := cw.Write([]string{o.URL, o.Status.String(), o.Note}); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
