// Package carousel drives the home-page slide index. The rotator is bound
// to a view-activation check and advances only while that view is active, so
// navigating away stops the work instead of leaving a free-running timer.
package carousel

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Rotator struct {
	slides   int
	interval time.Duration
	active   func() bool
	logger   *zap.Logger

	mu    sync.Mutex
	slide int
}

// NewRotator wires the rotator to its activation check. active is consulted
// on every tick; a nil check means always active.
func NewRotator(slides int, interval time.Duration, active func() bool, log *zap.Logger) *Rotator {
	if active == nil {
		active = func() bool { return true }
	}
	return &Rotator{
		slides:   slides,
		interval: interval,
		active:   active,
		logger:   log,
	}
}

// Start runs until ctx is cancelled.
func (r *Rotator) Start(ctx context.Context) {
	if r.slides <= 0 || r.interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Debug("carousel rotator started", zap.Duration("interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("carousel rotator stopped")
			return
		case <-ticker.C:
			if !r.active() {
				continue
			}
			r.advance()
		}
	}
}

func (r *Rotator) advance() {
	r.mu.Lock()
	r.slide = (r.slide + 1) % r.slides
	r.mu.Unlock()
}

func (r *Rotator) Slide() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slide
}

// GoTo jumps to a slide directly (dot navigation). Out-of-range indexes are
// ignored.
func (r *Rotator) GoTo(index int) {
	if index < 0 || index >= r.slides {
		return
	}
	r.mu.Lock()
	r.slide = index
	r.mu.Unlock()
}
