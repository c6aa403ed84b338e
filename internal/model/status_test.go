package model

import "testing"

func TestStatus_IsOK(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusOK, true},
		{StatusFail, false},
	}

	for _, test := range tests {
		result := test.status.IsOK()
		if result != test.expected {
			t.Errorf("Status(%s).IsOK() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_String(t *testing.T) {
	if StatusOK.String() != "ok" {
		t.Errorf("StatusOK.String() = %s, expected ok", StatusOK.String())
	}
	if StatusFail.String() != "fail" {
		t.Errorf("StatusFail.String() = %s, expected fail", StatusFail.String())
	}
}

func TestSummarize(t *testing.T) {
	outcomes := []Outcome{
		{URL: "https://a", Status: StatusOK},
		{URL: "https://b", Status: StatusFail, Note: "timeout"},
		{URL: "https://c", Status: StatusOK},
	}

	sum := Summarize(outcomes)
	if sum.OK != 2 {
		t.Errorf("Summarize().OK = %d, expected 2", sum.OK)
	}
	if sum.Failed != 1 {
		t.Errorf("Summarize().Failed = %d, expected 1", sum.Failed)
	}
	if sum.Total() != 3 {
		t.Errorf("Summarize().Total() = %d, expected 3", sum.Total())
	}
}
