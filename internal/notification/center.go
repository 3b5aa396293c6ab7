package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
	logx "github.com/wichananm65/stylesphere-storefront/pkg/logger"
)

// Center owns every session's toast queue. Each toast has an auto-dismiss
// timer; dismissing a toast stops its timer.
type Center struct {
	mu              sync.Mutex
	defaultDuration time.Duration
	queues          map[string]*queue
}

type queue struct {
	toasts  []Toast
	timers  map[string]*time.Timer
	pending map[*deferred]struct{}
}

type deferred struct {
	timer *time.Timer
}

func NewCenter(defaultDuration time.Duration) *Center {
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}
	return &Center{
		defaultDuration: defaultDuration,
		queues:          make(map[string]*queue),
	}
}

func (c *Center) queueFor(sessionID string) *queue {
	q, ok := c.queues[sessionID]
	if !ok {
		q = &queue{
			timers:  make(map[string]*time.Timer),
			pending: make(map[*deferred]struct{}),
		}
		c.queues[sessionID] = q
	}
	return q
}

// Push appends t to the session queue and schedules its expiry.
func (c *Center) Push(sessionID string, t Toast) Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pushLocked(sessionID, c.queueFor(sessionID), t)
}

// pushLocked must be called with c.mu held.
func (c *Center) pushLocked(sessionID string, q *queue, t Toast) Toast {
	if t.Duration <= 0 {
		t.Duration = c.defaultDuration
	}
	t.ID = uuid.NewString()
	t.DurationMs = t.Duration.Milliseconds()
	t.ExpiresAt = time.Now().Add(t.Duration)

	q.toasts = append(q.toasts, t)
	id := t.ID
	q.timers[id] = time.AfterFunc(t.Duration, func() {
		c.expire(sessionID, id)
	})

	logx.Debug().Str("session", sessionID).Str("toast", id).Str("title", t.Title).Msg("toast pushed")
	return t
}

// PushAfter pushes t once delay has elapsed, unless the session's pending
// pushes are cancelled first. The pending check and the push share one
// critical section so a concurrent cancel or reset always wins.
func (c *Center) PushAfter(sessionID string, delay time.Duration, t Toast) {
	c.mu.Lock()
	defer c.mu.Unlock()

	q := c.queueFor(sessionID)
	d := &deferred{}
	q.pending[d] = struct{}{}
	d.timer = time.AfterFunc(delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		q, ok := c.queues[sessionID]
		if !ok {
			return
		}
		if _, ok := q.pending[d]; !ok {
			return
		}
		delete(q.pending, d)
		c.pushLocked(sessionID, q, t)
	})
}

// Dismiss removes the toast and cancels its timer. It reports whether the
// toast was still queued.
func (c *Center) Dismiss(sessionID, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remove(sessionID, id)
}

func (c *Center) expire(sessionID, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remove(sessionID, id) {
		logx.Debug().Str("session", sessionID).Str("toast", id).Msg("toast expired")
	}
}

// remove must be called with c.mu held.
func (c *Center) remove(sessionID, id string) bool {
	q, ok := c.queues[sessionID]
	if !ok {
		return false
	}
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the queued toasts in insertion order.
func (c *Center) List(sessionID string) []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.queues[sessionID]
	if !ok {
		return []Toast{}
	}
	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// CancelPending drops every PushAfter that has not fired yet.
func (c *Center) CancelPending(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.queues[sessionID]
	if !ok {
		return
	}
	for d := range q.pending {
		d.timer.Stop()
	}
	clear(q.pending)
}

// Reset tears down the session queue and all of its timers.
func (c *Center) Reset(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.queues[sessionID]
	if !ok {
		return
	}
	for _, timer := range q.timers {
		timer.Stop()
	}
	for d := range q.pending {
		d.timer.Stop()
	}
	delete(c.queues, sessionID)
}
