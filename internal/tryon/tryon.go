// Package tryon simulates the AR try-on camera for a product.
package tryon

import (
	"errors"
	"sync"
	"time"

	"github.com/wichananm65/stylesphere-storefront/internal/product"
)

var (
	ErrNotOpen   = errors.New("try-on is not open")
	ErrWarmingUp = errors.New("try-on camera is still warming up")
)

// Session is one open try-on for a product.
type Session struct {
	Product      product.Product `json:"product"`
	ReadyAt      time.Time       `json:"readyAt"`
	Loading      bool            `json:"loading"`
	CameraActive bool            `json:"cameraActive"`
}

type Service struct {
	mu     sync.Mutex
	warmup time.Duration
	now    func() time.Time
	open   map[string]*Session
}

func NewService(warmup time.Duration) *Service {
	return &Service{
		warmup: warmup,
		now:    time.Now,
		open:   make(map[string]*Session),
	}
}

// Open starts a try-on for p, replacing any try-on the session had open.
func (s *Service) Open(sessionID string, p product.Product) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &Session{Product: p, ReadyAt: s.now().Add(s.warmup)}
	s.open[sessionID] = sess
	return s.view(sess)
}

func (s *Service) Get(sessionID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.open[sessionID]
	if !ok {
		return Session{}, ErrNotOpen
	}
	return s.view(sess), nil
}

func (s *Service) StartCamera(sessionID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.open[sessionID]
	if !ok {
		return Session{}, ErrNotOpen
	}
	if s.now().Before(sess.ReadyAt) {
		return s.view(sess), ErrWarmingUp
	}
	sess.CameraActive = true
	return s.view(sess), nil
}

func (s *Service) Close(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.open, sessionID)
}

func (s *Service) view(sess *Session) Session {
	v := *sess
	v.Loading = s.now().Before(sess.ReadyAt)
	return v
}
