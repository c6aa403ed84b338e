package model

// Status represents the final state of a single URL within a run
type Status string

const (
	// StatusOK means the URL was downloaded and transcoded successfully
	StatusOK Status = "ok"

	// StatusFail means every attempt for the URL failed
	StatusFail Status = "fail"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsOK returns true if the status marks a successful download
func (s Status) IsOK() bool {
	return s == StatusOK
}
