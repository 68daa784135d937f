package repository

import (
	"context"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

const writeAttempts = 3

// withWriteRetry retries a storage write with exponential backoff while the
// SQLite driver reports lock contention. Read paths rely on the driver's own
// busy timeout and are not wrapped.
func withWriteRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(writeAttempts-1, retry.NewExponential(50*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if IsBusy(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// IsBusy reports whether err is SQLite lock contention (SQLITE_BUSY/LOCKED).
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}

// IsDuplicate reports whether err is a uniqueness violation.
func IsDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
