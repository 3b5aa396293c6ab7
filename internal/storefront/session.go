package storefront

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wichananm65/stylesphere-storefront/internal/checkout"
	"github.com/wichananm65/stylesphere-storefront/internal/user"
)

var ErrSessionNotFound = errors.New("session not found")

// OverlayKind names the single panel or modal open on top of the screen.
type OverlayKind string

const (
	OverlayNone               OverlayKind = "none"
	OverlayCart               OverlayKind = "cart"
	OverlayWishlist           OverlayKind = "wishlist"
	OverlayCheckout           OverlayKind = "checkout"
	OverlayConfirmation       OverlayKind = "confirmation"
	OverlayAuth               OverlayKind = "auth"
	OverlayProfile            OverlayKind = "profile"
	OverlayOrders             OverlayKind = "orders"
	OverlaySearch             OverlayKind = "search"
	OverlayTryOn              OverlayKind = "tryon"
	OverlayTracking           OverlayKind = "tracking"
	OverlayNotificationCenter OverlayKind = "notification-center"
	OverlayDemoGuide          OverlayKind = "demo-guide"
)

// Overlay is the active overlay plus the parameters it was opened with.
type Overlay struct {
	Kind         OverlayKind   `json:"kind"`
	ProductID    string        `json:"productId,omitempty"`
	OrderID      string        `json:"orderId,omitempty"`
	Confirmation *Confirmation `json:"confirmation,omitempty"`
}

// Confirmation is what the order-placed overlay shows.
type Confirmation struct {
	OrderNumber string          `json:"orderNumber"`
	Items       int             `json:"items"`
	Total       decimal.Decimal `json:"total"`
}

type Screen string

const (
	ScreenStorefront   Screen = "storefront"
	ScreenAdmin        Screen = "admin"
	ScreenBrandPartner Screen = "brand-partner"
)

// ScreenFor picks the top-level screen from the signed-in user's role.
func ScreenFor(u *user.User) Screen {
	if u == nil {
		return ScreenStorefront
	}
	switch u.Role {
	case user.RoleAdmin:
		return ScreenAdmin
	case user.RoleBrandPartner:
		return ScreenBrandPartner
	default:
		return ScreenStorefront
	}
}

// Session is the root state of one browser tab. Commands on a session are
// serialized through mu.
type Session struct {
	mu        sync.Mutex
	ID        string
	User      *user.User
	Overlay   Overlay
	Checkout  *checkout.Flow
	CreatedAt time.Time

	lastSeen atomic.Int64
}

// LastSeen is the last time the session was looked up.
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

type SessionStore interface {
	Create() *Session
	// Get returns the session and marks it as seen.
	Get(id string) (*Session, error)
	Delete(id string)
	// IdleSince lists the sessions not seen since cutoff.
	IdleSince(cutoff time.Time) []string
}

type InMemorySessionStore struct {
	mu       sync.RWMutex
	now      func() time.Time
	sessions map[string]*Session
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{now: time.Now, sessions: make(map[string]*Session)}
}

func (s *InMemorySessionStore) Create() *Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Overlay:   Overlay{Kind: OverlayNone},
		CreatedAt: now,
	}
	sess.lastSeen.Store(now.UnixNano())
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *InMemorySessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen.Store(s.now().UnixNano())
	return sess, nil
}

func (s *InMemorySessionStore) IdleSince(cutoff time.Time) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []string
	for id, sess := range s.sessions {
		if sess.lastSeen.Load() < cutoff.UnixNano() {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *InMemorySessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
