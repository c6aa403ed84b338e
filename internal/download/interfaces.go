package download

import "context"

// Engine is the external download/transcode engine for a single URL.
// Implementations return nil on success or the failure reason; the
// retry loop branches on that value, never on panics.
type Engine interface {
	Download(ctx context.Context, url string) error
}
