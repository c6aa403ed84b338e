package config

import "time"

// Defaults for RunConfig fields
const (
	DefaultOutputDir   = "output_mp3"
	DefaultQuality     = "320"
	DefaultSleep       = 1.0
	DefaultRetries     = 3
	DefaultArchivePath = "downloaded.txt"
)

// RunConfig is the immutable set of options for one batch run. It is
// built once per invocation, from CLI flags or from GUI settings, and
// passed by value everywhere after that.
type RunConfig struct {
	// OutputDir is where MP3 files, errors.log and report.csv land.
	OutputDir string

	// Quality is the target MP3 bitrate in kbps (128/192/256/320).
	Quality string

	// SleepSeconds is the fixed pause after each successful download.
	SleepSeconds float64

	// Retries is the number of attempts per URL before giving up.
	Retries int

	// CookiesPath optionally points at a Netscape-format cookies file.
	CookiesPath string

	// RateLimit optionally caps download speed, e.g. "1M".
	RateLimit string

	// ArchivePath is the download-archive file used by the engine to
	// skip URLs already processed in earlier runs. Empty disables it.
	ArchivePath string

	// ConcurrentFragments enables parallel fragment fetching inside the
	// engine when greater than one.
	ConcurrentFragments int

	// EmbedThumbnail embeds the media thumbnail into the MP3 when set.
	EmbedThumbnail bool
}

// Default returns a RunConfig carrying the documented defaults.
func Default() RunConfig {
	return RunConfig{
		OutputDir:    DefaultOutputDir,
		Quality:      DefaultQuality,
		SleepSeconds: DefaultSleep,
		Retries:      DefaultRetries,
		ArchivePath:  DefaultArchivePath,
	}
}

// SleepBetween returns the inter-download pause as a duration, never
// negative.
func (c RunConfig) SleepBetween() time.Duration {
	if c.SleepSeconds <= 0 {
		return 0
	}
	return time.Duration(c.SleepSeconds * float64(time.Second))
}

// Normalize clamps nonsense values back to usable ones.
func (c RunConfig) Normalize() RunConfig {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Quality == "" {
		c.Quality = DefaultQuality
	}
	if c.Retries < 1 {
		c.Retries = 1
	}
	if c.SleepSeconds < 0 {
		c.SleepSeconds = 0
	}
	return c
}
