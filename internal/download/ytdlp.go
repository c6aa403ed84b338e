package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/igget/ig2mp3/internal/config"
	"github.com/igget/ig2mp3/internal/platform"
)

// Output filename template passed to yt-dlp.
const outputTemplate = "%(uploader|unknown)s-%(title|unknown)s-%(id)s.%(ext)s"

// Progress callback frequency for the GUI.
const progressInterval = 500 * time.Millisecond

// Engine-internal retry settings, independent of the orchestrator's
// per-URL retry loop.
const (
	engineRetries         = "5"
	engineFragmentRetries = "5"
)

// EnsureEngine makes sure the yt-dlp binary is present, downloading it
// when missing. Failure here is an environment fault that aborts the
// run before any work starts.
func EnsureEngine(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("download engine unavailable: %w", err)
	}
	return nil
}

// YTDLPEngine is the production Engine. It builds one yt-dlp command
// per URL from the run configuration: best-audio selection, MP3
// extraction at the configured bitrate, metadata embedding and safe
// filenames, plus the optional cookie/rate-limit/archive/fragment and
// thumbnail settings.
type YTDLPEngine struct {
	cfg        config.RunConfig
	progressFn func(update ytdlp.ProgressUpdate)
}

// NewYTDLPEngine creates the engine for a run configuration.
func NewYTDLPEngine(cfg config.RunConfig) *YTDLPEngine {
	return &YTDLPEngine{cfg: cfg.Normalize()}
}

// SetProgressFunc registers a progress callback, used by the GUI.
func (e *YTDLPEngine) SetProgressFunc(fn func(update ytdlp.ProgressUpdate)) {
	e.progressFn = fn
}

// Download runs yt-dlp for a single URL.
func (e *YTDLPEngine) Download(ctx context.Context, url string) error {
	dl := e.buildCommand()
	if _, err := dl.Run(ctx, url); err != nil {
		return err
	}
	return nil
}

func (e *YTDLPEngine) buildCommand() *ytdlp.Command {
	dl := ytdlp.New().
		Format("bestaudio/best").
		ExtractAudio().
		AudioFormat("mp3").
		AudioQuality(e.cfg.Quality).
		EmbedMetadata().
		RestrictFilenames().
		WindowsFilenames().
		Retries(engineRetries).
		FragmentRetries(engineFragmentRetries).
		Output(filepath.Join(e.cfg.OutputDir, outputTemplate))

	if e.cfg.EmbedThumbnail {
		dl = dl.WriteThumbnail().
			EmbedThumbnail().
			PostProcessorArgs("-id3v2_version 3")
	}
	if e.cfg.ArchivePath != "" {
		dl = dl.DownloadArchive(e.cfg.ArchivePath)
	}
	if e.cfg.CookiesPath != "" {
		if _, err := os.Stat(e.cfg.CookiesPath); err == nil {
			dl = dl.Cookies(e.cfg.CookiesPath)
		}
	}
	if e.cfg.RateLimit != "" {
		dl = dl.LimitRate(e.cfg.RateLimit)
	}
	if e.cfg.ConcurrentFragments > 1 {
		dl = dl.ConcurrentFragments(e.cfg.ConcurrentFragments)
	}
	if ffmpegDir := platform.FindFFmpeg(); ffmpegDir != "" {
		dl = dl.FFmpegLocation(ffmpegDir)
	}
	if e.progressFn != nil {
		dl.ProgressFunc(progressInterval, e.progressFn)
	}
	return dl
}
