package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir      = "output_directory"
	KeyQuality        = "mp3_quality"
	KeyEmbedThumbnail = "embed_thumbnail"
)

// QualityOptions lists the MP3 bitrates offered in the GUI.
var QualityOptions = []string{"128", "192", "256", "320"}

// Settings manages GUI configuration persisted via Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured output directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		dir = defaultOutputDirAbs()
		s.SetOutputDirectory(dir)
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetQuality returns the configured MP3 bitrate
func (s *Settings) GetQuality() string {
	quality := s.app.Preferences().String(KeyQuality)
	if quality == "" {
		s.SetQuality(DefaultQuality)
		return DefaultQuality
	}
	return quality
}

// SetQuality sets the MP3 bitrate, falling back to the default for
// values outside QualityOptions
func (s *Settings) SetQuality(quality string) {
	valid := false
	for _, option := range QualityOptions {
		if option == quality {
			valid = true
			break
		}
	}
	if !valid {
		quality = DefaultQuality
	}
	s.app.Preferences().SetString(KeyQuality, quality)
}

// GetEmbedThumbnail returns whether thumbnails are embedded into MP3s
func (s *Settings) GetEmbedThumbnail() bool {
	return s.app.Preferences().BoolWithFallback(KeyEmbedThumbnail, false)
}

// SetEmbedThumbnail sets thumbnail embedding
func (s *Settings) SetEmbedThumbnail(embed bool) {
	s.app.Preferences().SetBool(KeyEmbedThumbnail, embed)
}

// RunConfig builds the batch configuration from the persisted settings.
func (s *Settings) RunConfig() RunConfig {
	cfg := Default()
	cfg.OutputDir = s.GetOutputDirectory()
	cfg.Quality = s.GetQuality()
	cfg.EmbedThumbnail = s.GetEmbedThumbnail()
	return cfg
}

func defaultOutputDirAbs() string {
	abs, err := filepath.Abs(DefaultOutputDir)
	if err != nil {
		return DefaultOutputDir
	}
	return abs
}
