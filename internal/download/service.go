package download

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/igget/ig2mp3/internal/config"
	"github.com/igget/ig2mp3/internal/logging"
	"github.com/igget/ig2mp3/internal/model"
	"github.com/igget/ig2mp3/internal/report"
)

// Backoff bounds: delay before retry is min(60s, 2^attempt) plus up to
// two seconds of jitter, with the total clamped to 60s.
const (
	maxBackoff = 60 * time.Second
	maxJitter  = 2 * time.Second
)

// Service walks an ordered link list and delegates each URL to the
// engine. One URL is processed at a time; the only concurrency-shaped
// behavior is the blocking retry loop.
type Service struct {
	cfg      config.RunConfig
	engine   Engine
	errorLog *report.ErrorLog
	log      zerolog.Logger

	onOutcome func(index, total int, outcome model.Outcome) // optional UI hook

	// replaced in tests
	sleep  func(ctx context.Context, d time.Duration)
	jitter func() time.Duration
}

// NewService creates a batch orchestrator for one run.
func NewService(cfg config.RunConfig, engine Engine, errorLog *report.ErrorLog) *Service {
	return &Service{
		cfg:      cfg.Normalize(),
		engine:   engine,
		errorLog: errorLog,
		log:      logging.Component("download"),
		sleep:    sleepContext,
		jitter: func() time.Duration {
			return time.Duration(rand.Float64() * float64(maxJitter))
		},
	}
}

// SetOutcomeCallback registers a hook invoked after every URL finishes,
// used by the GUI to refresh its progress display.
func (s *Service) SetOutcomeCallback(fn func(index, total int, outcome model.Outcome)) {
	s.onOutcome = fn
}

// Run processes every link in order and returns the per-URL outcomes
// with their aggregate summary. One URL exhausting its retries never
// aborts the batch; only context cancellation stops the walk early.
func (s *Service) Run(ctx context.Context, urls []string) ([]model.Outcome, model.Summary) {
	runID := uuid.NewString()
	total := len(urls)
	s.log.Info().Str("run_id", runID).Int("urls", total).Msg("starting batch")

	outcomes := make([]model.Outcome, 0, total)
	for i, url := range urls {
		if ctx.Err() != nil {
			s.log.Warn().Str("run_id", runID).Msg("batch interrupted")
			break
		}

		s.log.Info().Str("url", url).Msgf("[%d/%d] downloading", i+1, total)
		ok, note := s.downloadOne(ctx, url)

		outcome := model.Outcome{URL: url, Status: model.StatusOK}
		if !ok {
			outcome.Status = model.StatusFail
			outcome.Note = note
		}
		outcomes = append(outcomes, outcome)

		if s.onOutcome != nil {
			s.onOutcome(i+1, total, outcome)
		}
	}

	summary := model.Summarize(outcomes)
	s.log.Info().Str("run_id", runID).
		Int("ok", summary.OK).Int("failed", summary.Failed).
		Msg("batch finished")
	return outcomes, summary
}

// downloadOne attempts a single URL up to cfg.Retries times. A success
// is followed by the fixed pacing pause; an exhausted URL is appended
// to the error log with its last error text.
func (s *Service) downloadOne(ctx context.Context, url string) (bool, string) {
	var lastErr string
	for attempt := 1; attempt <= s.cfg.Retries; attempt++ {
		s.log.Debug().Str("url", url).Msgf("attempt %d/%d", attempt, s.cfg.Retries)

		err := s.engine.Download(ctx, url)
		if err == nil {
			s.sleep(ctx, s.cfg.SleepBetween())
			return true, ""
		}

		lastErr = err.Error()
		s.log.Error().Str("url", url).Msgf("attempt %d/%d failed: %s", attempt, s.cfg.Retries, lastErr)

		if ctx.Err() != nil {
			return false, lastErr
		}
		if attempt < s.cfg.Retries {
			s.sleep(ctx, backoffDelay(attempt, s.jitter()))
		}
	}

	if err := s.errorLog.Append(url, lastErr); err != nil {
		s.log.Warn().Err(err).Msg("failed to append error log")
	}
	return false, lastErr
}

// backoffDelay computes the capped, jittered delay before retrying.
func backoffDelay(attempt int, jitter time.Duration) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > maxBackoff {
		base = maxBackoff
	}
	delay := base + jitter
	if delay > maxBackoff {
		delay = maxBackoff
	}
	return delay
}

// sleepContext blocks for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
