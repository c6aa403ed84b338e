package platform

// Package platform wraps the OS-specific bits: directory creation,
// ffmpeg discovery, terminal interactivity probes and opening the
// output folder in the system file manager.
