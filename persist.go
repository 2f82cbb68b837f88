package moneybook

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDebounce is how long the coordinator waits after the last change
// before writing.
const DefaultDebounce = time.Second

// Saver persists a document snapshot. It is typically backed by the sqlite
// store.
type Saver interface {
	Save(ctx context.Context, s AppState) error
}

// Coordinator debounces persistence. Every state change restarts its
// timer; only the latest snapshot ever reaches the Saver, so a burst of
// edits costs one write. Wire StateChanged to Book.OnChange.
type Coordinator struct {
	saver Saver
	delay time.Duration
	log   *zap.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending *AppState
	closed  bool
}

// NewCoordinator returns a Coordinator writing through saver after delay
// of quiet. A non-positive delay falls back to DefaultDebounce.
func NewCoordinator(saver Saver, delay time.Duration, log *zap.Logger) *Coordinator {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{saver: saver, delay: delay, log: log}
}

// StateChanged notes a new snapshot and restarts the debounce timer.
func (c *Coordinator) StateChanged(s AppState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.pending = &s
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, c.save)
}

// save is the timer callback. A failed write is logged and the snapshot
// kept, so the next change retries it.
func (c *Coordinator) save() {
	c.mu.Lock()
	s := c.pending
	c.pending = nil
	c.timer = nil
	c.mu.Unlock()
	if s == nil {
		return
	}

	if err := c.saver.Save(context.Background(), *s); err != nil {
		c.log.Warn("saving state failed, keeping snapshot for retry", zap.Error(err))
		c.mu.Lock()
		if c.pending == nil && !c.closed {
			c.pending = s
		}
		c.mu.Unlock()
	}
}

// Flush writes any pending snapshot immediately, cancelling the timer.
func (c *Coordinator) Flush(ctx context.Context) error {
	c.mu.Lock()
	s := c.pending
	c.pending = nil
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	if s == nil {
		return nil
	}
	return c.saver.Save(ctx, *s)
}

// Close cancels any scheduled write and drops the pending snapshot. Call
// Flush first when the snapshot must survive.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.pending = nil
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
