package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Notifier delivers a formatted message to one channel.
type Notifier interface {
	Send(ctx context.Context, subject, body string) error
	Name() string
}

// SendWithRetry sends a message with exponential backoff retry. A Multi is
// retried per channel, so a channel that already delivered is not sent to again.
func SendWithRetry(ctx context.Context, n Notifier, subject, body string, maxRetries int) error {
	if m, ok := n.(Multi); ok {
		return m.each(func(n Notifier) error {
			return SendWithRetry(ctx, n, subject, body, maxRetries)
		})
	}

	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if err := n.Send(ctx, subject, body); err != nil {
			lastErr = err
			if i == maxRetries {
				break
			}
			backoff := time.Duration(1<<uint(i)) * time.Second
			log.WithError(err).WithField("notifier", n.Name()).
				Warnf("send failed (attempt %d/%d), retrying in %v", i+1, maxRetries+1, backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("all %d retries exhausted: %w", maxRetries+1, lastErr)
}

// Multi fans a message out to every configured notifier.
type Multi []Notifier

func (m Multi) Name() string { return "multi" }

// Send delivers to all notifiers and joins their errors.
func (m Multi) Send(ctx context.Context, subject, body string) error {
	return m.each(func(n Notifier) error { return n.Send(ctx, subject, body) })
}

func (m Multi) each(send func(Notifier) error) error {
	var errs []error
	for _, n := range m {
		if err := send(n); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", n.Name(), err))
		}
	}
	return errors.Join(errs...)
}
