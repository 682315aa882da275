// Package gateway wraps writes to the record store with a bounded timeout
// and a single retry on network-class failures. Every failure is
// classified into the error taxonomy before it reaches a handler:
// configuration errors, timeouts, server-reported errors, and caller
// cancellation are all distinct, and cancellation is the one outcome
// nobody surfaces.
package gateway

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"syscall"
	"time"

	"gorm.io/gorm"

	apperrors "pondo/internal/errors"
	"pondo/internal/logger"
)

// Gateway reconciles row writes with the record store.
type Gateway struct {
	db      *gorm.DB
	timeout time.Duration
	backoff time.Duration
}

// New creates a Gateway. timeout bounds each individual attempt; backoff
// is the fixed pause before the one retry.
func New(db *gorm.DB, timeout, backoff time.Duration) *Gateway {
	return &Gateway{db: db, timeout: timeout, backoff: backoff}
}

// Do runs op against the record store. The op receives a DB handle bound
// to a timeout context. Network-class failures (timeout, connection
// failure) are retried exactly once after the backoff; validation and
// server-reported errors are never retried. A nil store is a
// configuration error, never a silent success.
func (g *Gateway) Do(ctx context.Context, op func(tx *gorm.DB) error) error {
	if g == nil || g.db == nil {
		return apperrors.ErrStoreNotConfigured
	}

	var err error
	for attempt := 1; attempt <= 2; attempt++ {
		err = g.attempt(ctx, op)
		if err == nil {
			return nil
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			// Already classified: cancellation, timeout of the caller's
			// own context, or an error the op raised itself.
			return err
		}

		if attempt == 1 && isNetworkClass(err) {
			logger.Get().Warnw("store write failed, retrying once",
				"attempt", attempt,
				"error", err.Error(),
			)
			select {
			case <-time.After(g.backoff):
			case <-ctx.Done():
				return apperrors.ErrRequestCancelled
			}
			continue
		}
		break
	}

	return classify(err)
}

// attempt runs op once under the gateway timeout and maps context
// outcomes: the caller going away is cancellation, the gateway deadline
// firing is a timeout.
func (g *Gateway) attempt(ctx context.Context, op func(tx *gorm.DB) error) error {
	opCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	err := op(g.db.WithContext(opCtx))
	if err == nil {
		return nil
	}

	if ctx.Err() != nil && errors.Is(ctx.Err(), context.Canceled) {
		return apperrors.ErrRequestCancelled
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return err
}

// classify maps a final, unretried error into the taxonomy. Server-reported
// errors keep their message verbatim.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(apperrors.ErrSaveTimeout, err)
	case isNetworkClass(err):
		return apperrors.Wrap(apperrors.ErrSaveTimeout, err)
	default:
		return &apperrors.AppError{
			Code:       apperrors.ErrStoreRejected.Code,
			Message:    err.Error(),
			StatusCode: apperrors.ErrStoreRejected.StatusCode,
			Internal:   err,
		}
	}
}

// isNetworkClass reports whether err looks like a transient transport
// failure worth one retry.
func isNetworkClass(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE)
}
