package report

import (
	"fmt"
	"os"
)

// ErrorLog is the append-only log of URLs that exhausted their retries,
// one "url<TAB>error" line each.
type ErrorLog struct {
	path string
}

// NewErrorLog creates an error log bound to the given path.
func NewErrorLog(path string) *ErrorLog {
	return &ErrorLog{path: path}
}

// Path returns the log file location.
func (l *ErrorLog) Path() string {
	return l.path
}

// Append records one failed URL with its last captured error text.
func (l *ErrorLog) Append(url, note string) error {
	if note == "" {
		note = "unknown error"
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open error log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s\t%s\n", url, note); err != nil {
		return fmt.Errorf("write error log: %w", err)
	}
	return nil
}
