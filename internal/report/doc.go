package report

// Package report persists per-URL run outcomes: a CSV report for the
// whole batch and an append-only error log for exhausted URLs. Both are
// best-effort sinks; their failures warn and never fail a run.
