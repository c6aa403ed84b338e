package model

// Package model holds the value types shared between the front ends,
// the download orchestrator and the report writer.
