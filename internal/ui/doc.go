package ui

// Package ui provides the graphical front end: a paste box for URLs,
// an output folder picker and a convert button that drives the batch
// orchestrator off the UI thread.
