// Package storefront is the customer-facing controller. It owns each
// session's root state and exposes one command per user interaction.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wichananm65/stylesphere-storefront/internal/cart"
	"github.com/wichananm65/stylesphere-storefront/internal/checkout"
	"github.com/wichananm65/stylesphere-storefront/internal/notification"
	"github.com/wichananm65/stylesphere-storefront/internal/order"
	"github.com/wichananm65/stylesphere-storefront/internal/product"
	"github.com/wichananm65/stylesphere-storefront/internal/tracking"
	"github.com/wichananm65/stylesphere-storefront/internal/tryon"
	"github.com/wichananm65/stylesphere-storefront/internal/user"
	"github.com/wichananm65/stylesphere-storefront/internal/wishlist"
	logx "github.com/wichananm65/stylesphere-storefront/pkg/logger"
)

var (
	ErrAuthRequired     = errors.New("sign in required")
	ErrAlreadySignedIn  = errors.New("already signed in")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNoCheckout       = errors.New("checkout is not open")
	ErrOverlayNotDirect = errors.New("overlay cannot be opened directly")
	ErrUnknownOverlay   = errors.New("unknown overlay")
)

// Options are the storefront's fixed settings.
type Options struct {
	OrderPrefix      string
	DiscountDelay    time.Duration
	DiscountDuration time.Duration
}

// Deps are the services the storefront drives.
type Deps struct {
	Sessions SessionStore
	Users    *user.Service
	Products *product.Service
	Cart     *cart.Service
	Wishlist *wishlist.Service
	Orders   *order.Service
	Toasts   *notification.Center
	Logs     *notification.LogBook
	Tracking *tracking.Service
	TryOn    *tryon.Service
}

type Service struct {
	Deps
	opts Options
}

func NewService(deps Deps, opts Options) *Service {
	if opts.OrderPrefix == "" {
		opts.OrderPrefix = "SS"
	}
	return &Service{Deps: deps, opts: opts}
}

// View is the full state the client renders after every command.
type View struct {
	SessionID string               `json:"sessionId"`
	User      *user.User           `json:"user"`
	Screen    Screen               `json:"screen"`
	Overlay   Overlay              `json:"overlay"`
	Cart      cart.Summary         `json:"cart"`
	Wishlist  []string             `json:"wishlist"`
	Toasts    []notification.Toast `json:"toasts"`
	Checkout  *checkout.Flow       `json:"checkout,omitempty"`
}

// with runs fn while holding the session lock and returns the resulting view.
func (s *Service) with(ctx context.Context, sid string, fn func(*Session) error) (View, error) {
	sess, err := s.Sessions.Get(sid)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	fnErr := fn(sess)
	v, err := s.view(ctx, sess)
	if err != nil {
		return View{}, err
	}
	return v, fnErr
}

func (s *Service) view(ctx context.Context, sess *Session) (View, error) {
	summary, err := s.Cart.Summary(ctx, sess.ID)
	if err != nil {
		return View{}, err
	}
	v := View{
		SessionID: sess.ID,
		Screen:    ScreenFor(sess.User),
		Overlay:   sess.Overlay,
		Cart:      summary,
		Wishlist:  s.Wishlist.IDs(sess.ID),
		Toasts:    s.Toasts.List(sess.ID),
	}
	// the view outlives the lock, so it gets copies
	if sess.User != nil {
		u := sess.User.Sanitized()
		v.User = &u
	}
	if sess.Checkout != nil {
		flow := *sess.Checkout
		v.Checkout = &flow
	}
	return v, nil
}

func (s *Service) NewSession(ctx context.Context) (View, error) {
	sess := s.Sessions.Create()
	logx.Debug().Str("session", sess.ID).Msg("session created")
	return s.View(ctx, sess.ID)
}

func (s *Service) View(ctx context.Context, sid string) (View, error) {
	return s.with(ctx, sid, func(*Session) error { return nil })
}

// Screen returns the session's top-level screen and signed-in user.
func (s *Service) Screen(sid string) (Screen, *user.User, error) {
	sess, err := s.Sessions.Get(sid)
	if err != nil {
		return "", nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.User == nil {
		return ScreenStorefront, nil, nil
	}
	u := *sess.User
	return ScreenFor(&u), &u, nil
}

func (s *Service) signIn(sess *Session, u user.User) {
	sess.User = &u
	sess.Overlay = Overlay{Kind: OverlayNone}
	s.Toasts.Push(sess.ID, notification.Success("Welcome Back!", fmt.Sprintf("Logged in as %s", u.Name)))
	logx.Info().Str("session", sess.ID).Str("role", string(u.Role)).Msg("signed in")
}

func (s *Service) Login(ctx context.Context, sid string, form user.Form) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		if sess.User != nil {
			return ErrAlreadySignedIn
		}
		u, err := s.Users.Login(form)
		if err != nil {
			return err
		}
		s.signIn(sess, u)
		return nil
	})
}

func (s *Service) Register(ctx context.Context, sid string, form user.Form) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		if sess.User != nil {
			return ErrAlreadySignedIn
		}
		u, err := s.Users.Register(form)
		if err != nil {
			return err
		}
		s.signIn(sess, u)
		return nil
	})
}

func (s *Service) SocialLogin(ctx context.Context, sid string, provider user.Provider, role string) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		if sess.User != nil {
			return ErrAlreadySignedIn
		}
		u, err := s.Users.SocialLogin(provider, role)
		if err != nil {
			return err
		}
		s.signIn(sess, u)
		return nil
	})
}

// Logout clears the user, cart, wishlist and any open flow. Toasts already
// on screen stay; deferred ones are dropped.
func (s *Service) Logout(ctx context.Context, sid string) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		if sess.User == nil {
			return ErrAuthRequired
		}
		if err := s.Cart.Clear(ctx, sess.ID); err != nil {
			return err
		}
		s.Wishlist.Clear(sess.ID)
		s.TryOn.Close(sess.ID)
		s.Toasts.CancelPending(sess.ID)
		sess.User = nil
		sess.Checkout = nil
		sess.Overlay = Overlay{Kind: OverlayNone}
		s.Toasts.Push(sess.ID, notification.Info("Logged Out", "You have been successfully logged out."))
		return nil
	})
}

// EndSession discards the session and everything keyed by it.
func (s *Service) EndSession(ctx context.Context, sid string) error {
	sess, err := s.Sessions.Get(sid)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.Toasts.Reset(sid)
	s.Wishlist.Clear(sid)
	s.TryOn.Close(sid)
	s.Sessions.Delete(sid)
	return s.Cart.Clear(ctx, sid)
}

// DemoAccount is one sign-in the demo guide suggests.
type DemoAccount struct {
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  user.Role `json:"role"`
}

// DemoAccounts lists the back-office logins followed by the customer directory.
func (s *Service) DemoAccounts() []DemoAccount {
	out := []DemoAccount{
		{Email: user.AdminEmail, Name: "Store Admin", Role: user.RoleAdmin},
		{Email: user.BrandEmail, Name: "Brand Partner", Role: user.RoleBrandPartner},
	}
	for _, u := range s.Users.Directory() {
		out = append(out, DemoAccount{Email: u.Email, Name: u.Name, Role: u.Role})
	}
	return out
}

// SweepIdle ends every session not seen since cutoff and returns how many
// were removed.
func (s *Service) SweepIdle(ctx context.Context, cutoff time.Time) int {
	n := 0
	for _, sid := range s.Sessions.IdleSince(cutoff) {
		if err := s.EndSession(ctx, sid); err != nil {
			if !errors.Is(err, ErrSessionNotFound) {
				logx.Warn().Err(err).Str("session", sid).Msg("failed to end idle session")
			}
			continue
		}
		n++
	}
	return n
}

// RunSweeper calls SweepIdle every interval until ctx is done, ending
// sessions idle for longer than maxIdle.
func (s *Service) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if n := s.SweepIdle(ctx, now.Add(-maxIdle)); n > 0 {
				logx.Debug().Int("sessions", n).Msg("idle sessions ended")
			}
		}
	}
}

func (s *Service) DismissToast(ctx context.Context, sid, id string) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		s.Toasts.Dismiss(sess.ID, id)
		return nil
	})
}

func requiresUser(kind OverlayKind) bool {
	switch kind {
	case OverlayProfile, OverlayOrders, OverlayNotificationCenter:
		return true
	}
	return false
}

// OpenOverlay replaces the active overlay. Overlays that carry state of their
// own are opened through their dedicated commands.
func (s *Service) OpenOverlay(ctx context.Context, sid string, kind OverlayKind) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		switch kind {
		case OverlayNone:
			s.closeOverlay(sess)
			return nil
		case OverlayCart, OverlayWishlist, OverlaySearch, OverlayDemoGuide, OverlayProfile, OverlayOrders, OverlayNotificationCenter:
		case OverlayAuth:
			if sess.User != nil {
				return ErrAlreadySignedIn
			}
		case OverlayCheckout, OverlayConfirmation, OverlayTryOn, OverlayTracking:
			return ErrOverlayNotDirect
		default:
			return ErrUnknownOverlay
		}
		if requiresUser(kind) && sess.User == nil {
			return ErrAuthRequired
		}
		s.closeOverlay(sess)
		sess.Overlay = Overlay{Kind: kind}
		return nil
	})
}

func (s *Service) CloseOverlay(ctx context.Context, sid string) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		s.closeOverlay(sess)
		return nil
	})
}

// closeOverlay drops whatever state the current overlay owned.
func (s *Service) closeOverlay(sess *Session) {
	switch sess.Overlay.Kind {
	case OverlayCheckout:
		sess.Checkout = nil
	case OverlayTryOn:
		s.TryOn.Close(sess.ID)
	}
	sess.Overlay = Overlay{Kind: OverlayNone}
}

func (s *Service) addToCart(ctx context.Context, sess *Session, productID string) error {
	p, err := s.Products.GetByID(productID)
	if err != nil {
		return err
	}
	if _, err := s.Cart.Add(ctx, sess.ID, p); err != nil {
		if errors.Is(err, cart.ErrOutOfStock) {
			s.Toasts.Push(sess.ID, notification.Error("Out of Stock", fmt.Sprintf("%s is currently out of stock.", p.Name)))
		}
		return err
	}
	s.Toasts.Push(sess.ID, notification.Success("Added to Cart", fmt.Sprintf("%s has been added to your cart.", p.Name)))
	return nil
}

func (s *Service) AddToCart(ctx context.Context, sid, productID string) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		return s.addToCart(ctx, sess, productID)
	})
}

func (s *Service) UpdateQuantity(ctx context.Context, sid, productID string, quantity int) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		_, err := s.Cart.UpdateQuantity(ctx, sess.ID, productID, quantity)
		return err
	})
}

func (s *Service) RemoveFromCart(ctx context.Context, sid, productID string) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		_, err := s.Cart.Remove(ctx, sess.ID, productID)
		return err
	})
}

func (s *Service) ToggleWishlist(ctx context.Context, sid, productID string) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		p, err := s.Products.GetByID(productID)
		if err != nil {
			return err
		}
		if s.Wishlist.Toggle(sess.ID, p.ID) {
			s.Toasts.Push(sess.ID, notification.Success("Added to Wishlist", fmt.Sprintf("%s has been added to your wishlist.", p.Name)))
		} else {
			s.Toasts.Push(sess.ID, notification.Info("Removed from Wishlist", fmt.Sprintf("%s has been removed from your wishlist.", p.Name)))
		}
		return nil
	})
}

func (s *Service) RemoveFromWishlist(ctx context.Context, sid, productID string) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		s.Wishlist.Remove(sess.ID, productID)
		return nil
	})
}

func (s *Service) WishlistItems(sid string) ([]product.Product, error) {
	if _, err := s.Sessions.Get(sid); err != nil {
		return nil, err
	}
	return s.Wishlist.Items(sid), nil
}

// BeginCheckout opens checkout for a signed-in shopper. Guests are sent to
// the sign-in overlay instead and no error is reported.
func (s *Service) BeginCheckout(ctx context.Context, sid string) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		if sess.User == nil {
			s.closeOverlay(sess)
			sess.Overlay = Overlay{Kind: OverlayAuth}
			return nil
		}
		summary, err := s.Cart.Summary(ctx, sess.ID)
		if err != nil {
			return err
		}
		if len(summary.Items) == 0 {
			return ErrEmptyCart
		}
		s.closeOverlay(sess)
		sess.Checkout = checkout.NewFlow(*sess.User)
		sess.Overlay = Overlay{Kind: OverlayCheckout}
		return nil
	})
}

func (s *Service) SubmitShipping(ctx context.Context, sid string, ship checkout.Shipping) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		if sess.Checkout == nil {
			return ErrNoCheckout
		}
		return sess.Checkout.SubmitShipping(ship)
	})
}

func (s *Service) SubmitPayment(ctx context.Context, sid string, pay checkout.Payment) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		if sess.Checkout == nil {
			return ErrNoCheckout
		}
		return sess.Checkout.SubmitPayment(pay)
	})
}

// PlaceOrder turns the cart into an order, shows the confirmation, clears the
// cart and schedules the follow-up discount toast.
func (s *Service) PlaceOrder(ctx context.Context, sid string) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		if sess.User == nil {
			return ErrAuthRequired
		}
		if sess.Checkout == nil {
			return ErrNoCheckout
		}
		if err := sess.Checkout.ReadyToPlace(); err != nil {
			return err
		}
		summary, err := s.Cart.Summary(ctx, sess.ID)
		if err != nil {
			return err
		}
		if len(summary.Items) == 0 {
			return ErrEmptyCart
		}

		placed, err := s.Orders.Place(ctx, order.Order{
			OrderNumber:   checkout.NewOrderNumber(s.opts.OrderPrefix),
			CustomerName:  sess.User.Name,
			CustomerEmail: sess.User.Email,
			Total:         summary.Total,
			Items:         summary.ItemCount,
		})
		if err != nil {
			return err
		}
		if err := s.Cart.Clear(ctx, sess.ID); err != nil {
			return err
		}

		sess.Checkout = nil
		sess.Overlay = Overlay{
			Kind:    OverlayConfirmation,
			OrderID: placed.ID,
			Confirmation: &Confirmation{
				OrderNumber: placed.OrderNumber,
				Items:       placed.Items,
				Total:       placed.Total,
			},
		}
		s.Toasts.PushAfter(sess.ID, s.opts.DiscountDelay, notification.Discount(
			"15% OFF Your Next Purchase!",
			"Use code STYLE15 at checkout. Valid for 48 hours.",
			s.opts.DiscountDuration,
		))
		logx.Info().Str("session", sess.ID).Str("order", placed.OrderNumber).Str("total", placed.Total.StringFixed(2)).Msg("order placed")
		return nil
	})
}

// currentUser returns a copy of the signed-in user under the session lock.
func (s *Service) currentUser(sid string) (user.User, error) {
	sess, err := s.Sessions.Get(sid)
	if err != nil {
		return user.User{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.User == nil {
		return user.User{}, ErrAuthRequired
	}
	return *sess.User, nil
}

func (s *Service) ListOrders(ctx context.Context, sid, tab string) ([]order.Order, error) {
	u, err := s.currentUser(sid)
	if err != nil {
		return nil, err
	}
	return s.Orders.ListForCustomer(ctx, u.Email, tab)
}

func (s *Service) RequestRefund(ctx context.Context, sid, orderID, reason string) (order.Order, View, error) {
	var updated order.Order
	v, err := s.with(ctx, sid, func(sess *Session) error {
		if sess.User == nil {
			return ErrAuthRequired
		}
		o, err := s.Orders.RequestRefund(ctx, sess.User.Email, orderID, reason)
		if err != nil {
			return err
		}
		updated = o
		s.Toasts.Push(sess.ID, notification.Info("Refund Requested", "Your refund request has been submitted for review."))
		return nil
	})
	return updated, v, err
}

func (s *Service) UpdateProfile(ctx context.Context, sid string, upd user.ProfileUpdate) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		if sess.User == nil {
			return ErrAuthRequired
		}
		u, err := s.Users.UpdateProfile(*sess.User, upd)
		if err != nil {
			return err
		}
		sess.User = &u
		s.Toasts.Push(sess.ID, notification.Success("Profile Updated", "Your profile has been updated successfully."))
		return nil
	})
}

// ApplySearch runs the advanced filters and closes the search panel.
func (s *Service) ApplySearch(ctx context.Context, sid string, f product.Filters) ([]product.Product, View, error) {
	var results []product.Product
	v, err := s.with(ctx, sid, func(sess *Session) error {
		results = s.Products.Search(f)
		s.Toasts.Push(sess.ID, notification.Info("Filters Applied", "Search filters have been applied."))
		if sess.Overlay.Kind == OverlaySearch {
			sess.Overlay = Overlay{Kind: OverlayNone}
		}
		return nil
	})
	return results, v, err
}

func (s *Service) VisualSearch(ctx context.Context, sid string) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		s.Toasts.Push(sess.ID, notification.Info("Visual Search", "Searching for similar items..."))
		return nil
	})
}

func (s *Service) OpenTryOn(ctx context.Context, sid, productID string) (tryon.Session, View, error) {
	var t tryon.Session
	v, err := s.with(ctx, sid, func(sess *Session) error {
		p, err := s.Products.GetByID(productID)
		if err != nil {
			return err
		}
		s.closeOverlay(sess)
		t = s.TryOn.Open(sess.ID, p)
		sess.Overlay = Overlay{Kind: OverlayTryOn, ProductID: p.ID}
		return nil
	})
	return t, v, err
}

func (s *Service) TryOnState(sid string) (tryon.Session, error) {
	if _, err := s.Sessions.Get(sid); err != nil {
		return tryon.Session{}, err
	}
	return s.TryOn.Get(sid)
}

func (s *Service) StartCamera(sid string) (tryon.Session, error) {
	if _, err := s.Sessions.Get(sid); err != nil {
		return tryon.Session{}, err
	}
	return s.TryOn.StartCamera(sid)
}

// TryOnAddToCart adds the product being tried on and closes the try-on.
func (s *Service) TryOnAddToCart(ctx context.Context, sid string) (View, error) {
	return s.with(ctx, sid, func(sess *Session) error {
		t, err := s.TryOn.Get(sess.ID)
		if err != nil {
			return err
		}
		if err := s.addToCart(ctx, sess, t.Product.ID); err != nil {
			return err
		}
		s.closeOverlay(sess)
		return nil
	})
}

// Track opens the tracking overlay on orderID, or on the latest order when
// orderID is empty.
func (s *Service) Track(ctx context.Context, sid, orderID string, view tracking.View) (tracking.Tracking, error) {
	var t tracking.Tracking
	_, err := s.with(ctx, sid, func(sess *Session) error {
		o, err := s.orderFor(ctx, sess, orderID)
		if err != nil {
			return err
		}
		s.closeOverlay(sess)
		sess.Overlay = Overlay{Kind: OverlayTracking, OrderID: o.ID}
		t = s.Tracking.Track(sess.ID, o, view)
		return nil
	})
	return t, err
}

// ResendTracking reports false while the previous "email sent" notice is still up.
func (s *Service) ResendTracking(ctx context.Context, sid, orderID string) (bool, error) {
	var sent bool
	_, err := s.with(ctx, sid, func(sess *Session) error {
		o, err := s.orderFor(ctx, sess, orderID)
		if err != nil {
			return err
		}
		sent = s.Tracking.ResendEmail(sess.ID, o)
		return nil
	})
	return sent, err
}

func (s *Service) orderFor(ctx context.Context, sess *Session, orderID string) (order.Order, error) {
	if sess.User == nil {
		return order.Order{}, ErrAuthRequired
	}
	if orderID != "" {
		return s.Orders.Get(ctx, sess.User.Email, orderID)
	}
	orders, err := s.Orders.ListForCustomer(ctx, sess.User.Email, "all")
	if err != nil {
		return order.Order{}, err
	}
	if len(orders) == 0 {
		return order.Order{}, order.ErrNotFound
	}
	return orders[0], nil
}

func (s *Service) NotificationLogs(sid, filter string) (notification.LogPage, error) {
	u, err := s.currentUser(sid)
	if err != nil {
		return notification.LogPage{}, err
	}
	return s.Logs.ForRecipient(sid, u.Email, u.Phone, filter), nil
}

func (s *Service) ResendLog(sid, logID string) (notification.LogView, error) {
	u, err := s.currentUser(sid)
	if err != nil {
		return notification.LogView{}, err
	}
	return s.Logs.Resend(sid, u.Email, u.Phone, logID)
}
