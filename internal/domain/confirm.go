package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/mouse-blink/jstruct/internal/adapter"
	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
	"github.com/mouse-blink/jstruct/internal/observability"
)

// Default confirmation pacing.
const (
	DefaultPollInterval = 50 * time.Millisecond
	DefaultSyncTimeout  = 5 * time.Second
)

// Confirmer blocks the calling goroutine until the source model reflects a
// mutation, polling at a fixed interval and giving up with SyncTimeout.
type Confirmer interface {
	// AwaitCount waits until the member count of kind differs from before.
	AwaitCount(ctx context.Context, kind m.MemberKind, before int) error
	// AwaitRevision waits until the source model has parsed revision rev.
	AwaitRevision(ctx context.Context, rev uint64) error
}

type confirmer struct {
	source   adapter.SourceModel
	interval time.Duration
	timeout  time.Duration
	log      *slog.Logger
}

// NewConfirmer creates a Confirmer polling source. Non-positive durations
// fall back to the defaults.
func NewConfirmer(source adapter.SourceModel, interval, timeout time.Duration, log *slog.Logger) Confirmer {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	if timeout <= 0 {
		timeout = DefaultSyncTimeout
	}

	if log == nil {
		log = slog.Default()
	}

	return &confirmer{source: source, interval: interval, timeout: timeout, log: log}
}

func (c *confirmer) AwaitCount(ctx context.Context, kind m.MemberKind, before int) error {
	err := c.await(ctx, "count", func() bool {
		return c.source.MemberCount(kind) != before
	})
	if err != nil {
		return jerrors.AddContext(err, jerrors.CtxKind, kind.String())
	}

	return nil
}

func (c *confirmer) AwaitRevision(ctx context.Context, rev uint64) error {
	return c.await(ctx, "revision", func() bool {
		return c.source.ParsedRevision() >= rev
	})
}

func (c *confirmer) await(ctx context.Context, predicate string, done func() bool) error {
	started := time.Now()

	if done() {
		observability.ConfirmWaitDuration.WithLabelValues(predicate, "ok").Observe(0)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	limiter := rate.NewLimiter(rate.Every(c.interval), 1)
	// Drain the initial burst token so the first poll waits one interval.
	limiter.Allow()

	polls := 0

	for {
		if err := limiter.Wait(ctx); err != nil {
			// One last look: the parse may have landed while we were waiting.
			if done() {
				break
			}

			observability.ConfirmWaitDuration.WithLabelValues(predicate, "timeout").Observe(time.Since(started).Seconds())
			c.log.Warn("change confirmation timed out", "predicate", predicate, "polls", polls, "waited", time.Since(started))

			return jerrors.Wrap(err, jerrors.CodeSyncTimeout, fmt.Sprintf("source model did not confirm %s change within %s", predicate, c.timeout))
		}

		polls++

		if done() {
			break
		}
	}

	observability.ConfirmWaitDuration.WithLabelValues(predicate, "ok").Observe(time.Since(started).Seconds())
	c.log.Debug("change confirmed", "predicate", predicate, "polls", polls, "waited", time.Since(started))

	return nil
}
