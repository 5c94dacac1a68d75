// Package animator runs a per-frame callback on its own goroutine for as
// long as a Subscription is held.
package animator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidInterval = errors.New("animator: frame interval must be positive")
	ErrNilFrameFunc    = errors.New("animator: nil frame func")
)

// FrameFunc is called once per frame with a 1-based frame number. Calls are
// never concurrent.
type FrameFunc func(frame int)

// Subscription is a running frame loop.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
	frames atomic.Int64
}

// Start acquires a frame subscription that calls fn every interval until
// Release is called or ctx ends.
func Start(ctx context.Context, interval time.Duration, fn FrameFunc) (*Subscription, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if fn == nil {
		return nil, ErrNilFrameFunc
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.run(ctx, interval, fn)
	return s, nil
}

func (s *Subscription) run(ctx context.Context, interval time.Duration, fn FrameFunc) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		// Both cases can be ready at once; cancellation wins.
		if ctx.Err() != nil {
			return
		}
		n := s.frames.Add(1)
		fn(int(n))
	}
}

// Release stops the loop and waits for the current frame, if any, to
// finish. fn is not called again once Release returns. Safe to call more
// than once.
func (s *Subscription) Release() {
	s.once.Do(s.cancel)
	<-s.done
}

// Done is closed when the loop has exited.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Frames returns the number of frames run so far.
func (s *Subscription) Frames() int {
	return int(s.frames.Load())
}
