package notification

import (
	"sync"
	"time"
)

// Flash is a set of keyed indicators that switch themselves off after a
// fixed hold, like a "saved" badge or a resend spinner.
type Flash struct {
	mu    sync.Mutex
	hold  time.Duration
	now   func() time.Time
	until map[string]time.Time
}

func NewFlash(hold time.Duration) *Flash {
	return &Flash{
		hold:  hold,
		now:   time.Now,
		until: make(map[string]time.Time),
	}
}

// Raise turns key on and returns when it will turn off. It reports false if
// key was already on, leaving the original deadline in place.
func (f *Flash) Raise(key string) (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	if deadline, ok := f.until[key]; ok && now.Before(deadline) {
		return deadline, false
	}
	for k, deadline := range f.until {
		if !now.Before(deadline) {
			delete(f.until, k)
		}
	}
	deadline := now.Add(f.hold)
	f.until[key] = deadline
	return deadline, true
}

func (f *Flash) Active(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	deadline, ok := f.until[key]
	if !ok {
		return false
	}
	if !f.now().Before(deadline) {
		delete(f.until, key)
		return false
	}
	return true
}
