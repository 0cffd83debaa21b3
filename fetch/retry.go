package fetch

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/postcraft"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// WithRetry calls fetch until it succeeds, sleeping delays[i] before retry i.
// It makes at most len(delays)+1 attempts and returns the last error.
//
// Application errors (those carrying a postcraft error code) are treated as
// permanent and returned immediately. A nil logger disables retry logging.
func WithRetry(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if postcraft.ErrorCode(err) != "" || attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Warn("fetch retry",
				"url", url,
				"attempt", attempt+2,
				"err", err,
			)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
