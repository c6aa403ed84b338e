package model

// Outcome records the result of processing a single URL. It is created
// once per URL per run and never mutated afterwards.
type Outcome struct {
	URL    string
	Status Status
	Note   string // last error text when Status is StatusFail, empty otherwise
}

// Summary aggregates the outcomes of one batch run.
type Summary struct {
	OK     int
	Failed int
}

// Total returns the number of URLs the run attempted.
func (s Summary) Total() int {
	return s.OK + s.Failed
}

// Summarize counts successes and failures over a list of outcomes.
func Summarize(outcomes []Outcome) Summary {
	var sum Summary
	for _, o := range outcomes {
		if o.Status.IsOK() {
			sum.OK++
		} else {
			sum.Failed++
		}
	}
	return sum
}
