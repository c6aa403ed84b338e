package download

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igget/ig2mp3/internal/config"
	"github.com/igget/ig2mp3/internal/model"
	"github.com/igget/ig2mp3/internal/report"
)

// fakeEngine fails a scripted number of times per URL before succeeding.
type fakeEngine struct {
	failures map[string]int // remaining failures per URL
	calls    []string
}

func (f *fakeEngine) Download(_ context.Context, url string) error {
	f.calls = append(f.calls, url)
	if f.failures[url] > 0 {
		f.failures[url]--
		return errors.New("engine error for " + url)
	}
	return nil
}

func newTestService(t *testing.T, engine Engine, cfg config.RunConfig) (*Service, *report.ErrorLog, *[]time.Duration) {
	t.Helper()

	errorLog := report.NewErrorLog(filepath.Join(t.TempDir(), "errors.log"))
	svc := NewService(cfg, engine, errorLog)

	var sleeps []time.Duration
	svc.sleep = func(_ context.Context, d time.Duration) {
		sleeps = append(sleeps, d)
	}
	svc.jitter = func() time.Duration { return 0 }
	return svc, errorLog, &sleeps
}

func TestService_Run_AllSucceed(t *testing.T) {
	engine := &fakeEngine{failures: map[string]int{}}
	cfg := config.Default()
	svc, _, sleeps := newTestService(t, engine, cfg)

	urls := []string{"https://a", "https://b"}
	outcomes, summary := svc.Run(context.Background(), urls)

	require.Len(t, outcomes, 2)
	assert.Equal(t, model.Summary{OK: 2, Failed: 0}, summary)
	for i, o := range outcomes {
		assert.Equal(t, urls[i], o.URL)
		assert.Equal(t, model.StatusOK, o.Status)
		assert.Empty(t, o.Note)
	}
	// One pacing pause per success, no backoff
	assert.Equal(t, []time.Duration{time.Second, time.Second}, *sleeps)
}

func TestService_Run_RetriesThenSucceeds(t *testing.T) {
	engine := &fakeEngine{failures: map[string]int{"https://flaky": 2}}
	cfg := config.Default() // 3 retries
	svc, errorLog, sleeps := newTestService(t, engine, cfg)

	outcomes, summary := svc.Run(context.Background(), []string{"https://flaky"})

	require.Len(t, outcomes, 1)
	assert.Equal(t, model.StatusOK, outcomes[0].Status)
	assert.Equal(t, 1, summary.OK)
	assert.Len(t, engine.calls, 3)

	// Two backoffs (2s, 4s with zero jitter) then the pacing pause
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, time.Second}, *sleeps)

	// No error log entry for a URL that eventually succeeded
	_, err := os.ReadFile(errorLog.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestService_Run_ExhaustedURLLoggedOnceBatchContinues(t *testing.T) {
	engine := &fakeEngine{failures: map[string]int{"https://dead": 99}}
	cfg := config.Default()
	svc, errorLog, _ := newTestService(t, engine, cfg)

	outcomes, summary := svc.Run(context.Background(), []string{"https://dead", "https://alive"})

	require.Len(t, outcomes, 2)
	assert.Equal(t, model.StatusFail, outcomes[0].Status)
	assert.Equal(t, "engine error for https://dead", outcomes[0].Note)
	assert.Equal(t, model.StatusOK, outcomes[1].Status)
	assert.Equal(t, model.Summary{OK: 1, Failed: 1}, summary)

	data, err := os.ReadFile(errorLog.Path())
	require.NoError(t, err)
	assert.Equal(t, "https://dead\tengine error for https://dead\n", string(data))
}

func TestService_Run_CancelledContextStopsBatch(t *testing.T) {
	engine := &fakeEngine{failures: map[string]int{}}
	cfg := config.Default()
	svc, _, _ := newTestService(t, engine, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, summary := svc.Run(ctx, []string{"https://a", "https://b"})
	assert.Empty(t, outcomes)
	assert.Equal(t, 0, summary.Total())
	assert.Empty(t, engine.calls)
}

func TestService_Run_OutcomeCallback(t *testing.T) {
	engine := &fakeEngine{failures: map[string]int{}}
	cfg := config.Default()
	svc, _, _ := newTestService(t, engine, cfg)

	var seen []model.Outcome
	svc.SetOutcomeCallback(func(index, total int, outcome model.Outcome) {
		assert.Equal(t, 2, total)
		seen = append(seen, outcome)
	})

	svc.Run(context.Background(), []string{"https://a", "https://b"})
	require.Len(t, seen, 2)
	assert.Equal(t, "https://a", seen[0].URL)
	assert.Equal(t, "https://b", seen[1].URL)
}

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		attempt  int
		jitter   time.Duration
		expected time.Duration
	}{
		{1, 0, 2 * time.Second},
		{2, 0, 4 * time.Second},
		{3, time.Second, 9 * time.Second},
		{6, 0, 60 * time.Second},          // 2^6=64 capped to 60
		{5, 2 * time.Second, 34 * time.Second},
		{6, 2 * time.Second, 60 * time.Second}, // total clamp
	}

	for _, test := range tests {
		got := backoffDelay(test.attempt, test.jitter)
		if got != test.expected {
			t.Errorf("backoffDelay(%d, %v) = %v, expected %v", test.attempt, test.jitter, got, test.expected)
		}
	}
}
