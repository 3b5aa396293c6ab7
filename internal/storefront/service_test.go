package storefront

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/stylesphere-storefront/internal/cart"
	"github.com/wichananm65/stylesphere-storefront/internal/checkout"
	"github.com/wichananm65/stylesphere-storefront/internal/mockdata"
	"github.com/wichananm65/stylesphere-storefront/internal/notification"
	"github.com/wichananm65/stylesphere-storefront/internal/order"
	"github.com/wichananm65/stylesphere-storefront/internal/product"
	"github.com/wichananm65/stylesphere-storefront/internal/tracking"
	"github.com/wichananm65/stylesphere-storefront/internal/tryon"
	"github.com/wichananm65/stylesphere-storefront/internal/user"
	"github.com/wichananm65/stylesphere-storefront/internal/wishlist"
)

var testCatalog = []product.Product{
	{ID: "a", Name: "Wrap Dress", Price: decimal.NewFromInt(100), Category: "Female", StockQuantity: 20, Rating: 4.5},
	{ID: "b", Name: "Silk Scarf", Price: decimal.NewFromInt(50), Category: "Accessories", StockQuantity: 5, Rating: 4.1},
	{ID: "c", Name: "Linen Trousers", Price: decimal.NewFromInt(80), Category: "Male", StockQuantity: 0, Rating: 4.0},
}

func newTestService(t *testing.T, opts Options) *Service {
	t.Helper()
	products := product.NewService(product.NewInMemoryRepository(testCatalog))
	s := NewService(Deps{
		Sessions: NewInMemorySessionStore(),
		Users:    user.NewService(user.NewInMemoryRepository(mockdata.Customers())),
		Products: products,
		Cart:     cart.NewService(cart.NewInMemoryRepository()),
		Wishlist: wishlist.NewService(wishlist.NewInMemoryRepository(), products),
		Orders:   order.NewService(order.NewInMemoryRepository(mockdata.Orders())),
		Toasts:   notification.NewCenter(time.Second),
		Logs:     notification.NewLogBook(mockdata.NotificationLogs(), time.Second),
		Tracking: tracking.NewService(tracking.DefaultEvents(), time.Second),
		TryOn:    tryon.NewService(0),
	}, opts)
	return s
}

func newSession(t *testing.T, s *Service) string {
	t.Helper()
	v, err := s.NewSession(context.Background())
	require.NoError(t, err)
	return v.SessionID
}

func signIn(t *testing.T, s *Service, sid, email string) View {
	t.Helper()
	v, err := s.Login(context.Background(), sid, user.Form{Email: email})
	require.NoError(t, err)
	return v
}

func countType(toasts []notification.Toast, typ notification.Type) int {
	n := 0
	for _, t := range toasts {
		if t.Type == typ {
			n++
		}
	}
	return n
}

func TestAddToCart_RepeatedAddsAccumulate(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	sid := newSession(t, s)

	var v View
	var err error
	for i := 0; i < 4; i++ {
		v, err = s.AddToCart(ctx, sid, "a")
		require.NoError(t, err)
	}

	require.Len(t, v.Cart.Items, 1)
	assert.Equal(t, 4, v.Cart.Items[0].Quantity)
	assert.Equal(t, 4, v.Cart.ItemCount)
	assert.True(t, v.Cart.Total.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, 4, countType(v.Toasts, notification.TypeSuccess))
}

func TestAddToCart_OutOfStockLeavesCart(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	sid := newSession(t, s)

	_, err := s.AddToCart(ctx, sid, "b")
	require.NoError(t, err)

	v, err := s.AddToCart(ctx, sid, "c")
	assert.ErrorIs(t, err, cart.ErrOutOfStock)
	require.Len(t, v.Cart.Items, 1)
	assert.Equal(t, "b", v.Cart.Items[0].ID)
	assert.Equal(t, 1, countType(v.Toasts, notification.TypeError))

	for _, toast := range v.Toasts {
		if toast.Type == notification.TypeError {
			assert.Equal(t, "Out of Stock", toast.Title)
			assert.Equal(t, "Linen Trousers is currently out of stock.", toast.Message)
		}
	}
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	s := newTestService(t, Options{})
	sid := newSession(t, s)

	v, err := s.AddToCart(context.Background(), sid, "missing")
	assert.ErrorIs(t, err, product.ErrNotFound)
	assert.Empty(t, v.Cart.Items)
}

func TestToggleWishlist_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	sid := newSession(t, s)

	before, err := s.View(ctx, sid)
	require.NoError(t, err)

	v, err := s.ToggleWishlist(ctx, sid, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, v.Wishlist)

	v, err = s.ToggleWishlist(ctx, sid, "a")
	require.NoError(t, err)
	assert.Equal(t, before.Wishlist, v.Wishlist)
	assert.Equal(t, 1, countType(v.Toasts, notification.TypeInfo))
}

func TestCheckout_GuestIsSentToSignIn(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	sid := newSession(t, s)

	_, err := s.AddToCart(ctx, sid, "a")
	require.NoError(t, err)

	v, err := s.BeginCheckout(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, OverlayAuth, v.Overlay.Kind)
	assert.Nil(t, v.Checkout)
}

func TestCheckout_EmptyCart(t *testing.T) {
	s := newTestService(t, Options{})
	sid := newSession(t, s)
	signIn(t, s, sid, "amara.okafor@email.com")

	_, err := s.BeginCheckout(context.Background(), sid)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_TotalsAndClearsCart(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{OrderPrefix: "SS", DiscountDelay: 20 * time.Millisecond, DiscountDuration: time.Second})
	sid := newSession(t, s)
	signIn(t, s, sid, "amara.okafor@email.com")

	for _, id := range []string{"a", "a", "b"} {
		_, err := s.AddToCart(ctx, sid, id)
		require.NoError(t, err)
	}

	v, err := s.BeginCheckout(ctx, sid)
	require.NoError(t, err)
	require.NotNil(t, v.Checkout)
	assert.Equal(t, OverlayCheckout, v.Overlay.Kind)
	assert.Equal(t, "Lagos", v.Checkout.Shipping.City)

	_, err = s.PlaceOrder(ctx, sid)
	assert.ErrorIs(t, err, checkout.ErrWrongStep)

	_, err = s.SubmitShipping(ctx, sid, v.Checkout.Shipping)
	require.NoError(t, err)
	_, err = s.SubmitPayment(ctx, sid, checkout.Payment{Method: checkout.MethodPayPal})
	require.NoError(t, err)

	v, err = s.PlaceOrder(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, v.Cart.Items)
	assert.Nil(t, v.Checkout)
	require.Equal(t, OverlayConfirmation, v.Overlay.Kind)
	require.NotNil(t, v.Overlay.Confirmation)
	assert.Equal(t, "250.00", v.Overlay.Confirmation.Total.StringFixed(2))
	assert.Equal(t, 3, v.Overlay.Confirmation.Items)
	assert.Regexp(t, `^SS[0-9A-Z]{8}$`, v.Overlay.Confirmation.OrderNumber)

	orders, err := s.ListOrders(ctx, sid, "all")
	require.NoError(t, err)
	require.NotEmpty(t, orders)
	assert.Equal(t, v.Overlay.OrderID, orders[0].ID)
	assert.Equal(t, order.StatusProcessing, orders[0].Status)
	assert.Equal(t, 3, orders[0].Items)

	assert.Eventually(t, func() bool {
		cur, err := s.View(ctx, sid)
		return err == nil && countType(cur.Toasts, notification.TypeDiscount) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestLogin_DirectoryCustomerWinsOverForm(t *testing.T) {
	s := newTestService(t, Options{})
	sid := newSession(t, s)

	v, err := s.Login(context.Background(), sid, user.Form{
		Email: "amara.okafor@email.com",
		Name:  "Someone Else",
		City:  "Nowhere",
	})
	require.NoError(t, err)
	require.NotNil(t, v.User)
	assert.Equal(t, "Amara Okafor", v.User.Name)
	assert.Equal(t, "15 Admiralty Way, Lekki Phase 1", v.User.Address)
	assert.Equal(t, "Lagos", v.User.City)
	assert.Equal(t, ScreenStorefront, v.Screen)

	_, err = s.Login(context.Background(), sid, user.Form{Email: "kwame.mensah@email.com"})
	assert.ErrorIs(t, err, ErrAlreadySignedIn)
}

func TestLogin_RoleSelectsScreen(t *testing.T) {
	s := newTestService(t, Options{})

	v := signIn(t, s, newSession(t, s), user.AdminEmail)
	assert.Equal(t, ScreenAdmin, v.Screen)

	v = signIn(t, s, newSession(t, s), user.BrandEmail)
	assert.Equal(t, ScreenBrandPartner, v.Screen)
}

func TestLogout_ClearsSessionState(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{DiscountDelay: 30 * time.Millisecond})
	sid := newSession(t, s)
	signIn(t, s, sid, "amara.okafor@email.com")

	_, err := s.AddToCart(ctx, sid, "a")
	require.NoError(t, err)
	_, err = s.ToggleWishlist(ctx, sid, "b")
	require.NoError(t, err)
	_, err = s.BeginCheckout(ctx, sid)
	require.NoError(t, err)

	v, err := s.Logout(ctx, sid)
	require.NoError(t, err)
	assert.Nil(t, v.User)
	assert.Empty(t, v.Cart.Items)
	assert.Empty(t, v.Wishlist)
	assert.Nil(t, v.Checkout)
	assert.Equal(t, OverlayNone, v.Overlay.Kind)

	_, err = s.Logout(ctx, sid)
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestLogout_DropsPendingDiscount(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{DiscountDelay: 30 * time.Millisecond, DiscountDuration: time.Second})
	sid := newSession(t, s)
	signIn(t, s, sid, "amara.okafor@email.com")

	_, err := s.AddToCart(ctx, sid, "b")
	require.NoError(t, err)
	v, err := s.BeginCheckout(ctx, sid)
	require.NoError(t, err)
	_, err = s.SubmitShipping(ctx, sid, v.Checkout.Shipping)
	require.NoError(t, err)
	_, err = s.SubmitPayment(ctx, sid, checkout.Payment{Method: checkout.MethodCrypto})
	require.NoError(t, err)
	_, err = s.PlaceOrder(ctx, sid)
	require.NoError(t, err)

	_, err = s.Logout(ctx, sid)
	require.NoError(t, err)

	time.Sleep(80 * time.Millisecond)
	v, err = s.View(ctx, sid)
	require.NoError(t, err)
	assert.Zero(t, countType(v.Toasts, notification.TypeDiscount))
}

func TestOpenOverlay_Rules(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	sid := newSession(t, s)

	_, err := s.OpenOverlay(ctx, sid, OverlayOrders)
	assert.ErrorIs(t, err, ErrAuthRequired)

	_, err = s.OpenOverlay(ctx, sid, OverlayCheckout)
	assert.ErrorIs(t, err, ErrOverlayNotDirect)

	_, err = s.OpenOverlay(ctx, sid, OverlayKind("nope"))
	assert.ErrorIs(t, err, ErrUnknownOverlay)

	v, err := s.OpenOverlay(ctx, sid, OverlayCart)
	require.NoError(t, err)
	assert.Equal(t, OverlayCart, v.Overlay.Kind)

	v, err = s.OpenOverlay(ctx, sid, OverlaySearch)
	require.NoError(t, err)
	assert.Equal(t, OverlaySearch, v.Overlay.Kind)

	v, err = s.CloseOverlay(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, OverlayNone, v.Overlay.Kind)
}

func TestCloseOverlay_DiscardsCheckout(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	sid := newSession(t, s)
	signIn(t, s, sid, "zara.ahmed@email.com")

	_, err := s.AddToCart(ctx, sid, "a")
	require.NoError(t, err)
	_, err = s.BeginCheckout(ctx, sid)
	require.NoError(t, err)

	v, err := s.CloseOverlay(ctx, sid)
	require.NoError(t, err)
	assert.Nil(t, v.Checkout)

	_, err = s.SubmitShipping(ctx, sid, checkout.Shipping{})
	assert.ErrorIs(t, err, ErrNoCheckout)
}

func TestRequestRefund_OnOwnOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	sid := newSession(t, s)
	signIn(t, s, sid, "amara.okafor@email.com")

	_, _, err := s.RequestRefund(ctx, sid, "ord-3", "wrong size")
	assert.ErrorIs(t, err, order.ErrNotFound)

	_, _, err = s.RequestRefund(ctx, sid, "ord-2", "  ")
	assert.ErrorIs(t, err, order.ErrEmptyReason)

	o, v, err := s.RequestRefund(ctx, sid, "ord-2", "Colour differs from photos")
	require.NoError(t, err)
	assert.Equal(t, order.RefundRequested, o.RefundStatus)
	assert.Equal(t, 1, countType(v.Toasts, notification.TypeInfo))
}

func TestUpdateProfile_ReplacesSessionUser(t *testing.T) {
	s := newTestService(t, Options{})
	sid := newSession(t, s)
	signIn(t, s, sid, "kwame.mensah@email.com")

	v, err := s.UpdateProfile(context.Background(), sid, user.ProfileUpdate{City: "Kumasi"})
	require.NoError(t, err)
	assert.Equal(t, "Kumasi", v.User.City)
	assert.Equal(t, "Kwame Mensah", v.User.Name)
}

func TestApplySearch_ClosesSearchOverlay(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	sid := newSession(t, s)

	_, err := s.OpenOverlay(ctx, sid, OverlaySearch)
	require.NoError(t, err)

	f := product.DefaultFilters()
	f.MaxPrice = decimal.NewFromInt(60)
	results, v, err := s.ApplySearch(ctx, sid, f)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "b", results[0].ID)
	assert.Equal(t, OverlayNone, v.Overlay.Kind)
}

func TestTryOn_AddToCartClosesOverlay(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	sid := newSession(t, s)

	ts, v, err := s.OpenTryOn(ctx, sid, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", ts.Product.ID)
	assert.Equal(t, OverlayTryOn, v.Overlay.Kind)

	_, err = s.StartCamera(sid)
	require.NoError(t, err)

	v, err = s.TryOnAddToCart(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, OverlayNone, v.Overlay.Kind)
	require.Len(t, v.Cart.Items, 1)

	_, err = s.TryOnState(sid)
	assert.ErrorIs(t, err, tryon.ErrNotOpen)
}

func TestTrack_DefaultsToLatestOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	sid := newSession(t, s)

	_, err := s.Track(ctx, sid, "", tracking.ViewList)
	assert.ErrorIs(t, err, ErrAuthRequired)

	signIn(t, s, sid, "amara.okafor@email.com")
	tr, err := s.Track(ctx, sid, "", tracking.ViewList)
	require.NoError(t, err)
	assert.Equal(t, "ord-1", tr.Order.ID)

	sent, err := s.ResendTracking(ctx, sid, "ord-1")
	require.NoError(t, err)
	assert.True(t, sent)
	sent, err = s.ResendTracking(ctx, sid, "ord-1")
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestNotificationLogs_OwnedBySignedInUser(t *testing.T) {
	s := newTestService(t, Options{})
	sid := newSession(t, s)

	_, err := s.NotificationLogs(sid, "all")
	assert.ErrorIs(t, err, ErrAuthRequired)

	signIn(t, s, sid, "amara.okafor@email.com")
	page, err := s.NotificationLogs(sid, "all")
	require.NoError(t, err)
	assert.NotEmpty(t, page.Logs)
}

func TestDismissToast(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	sid := newSession(t, s)

	v, err := s.VisualSearch(ctx, sid)
	require.NoError(t, err)
	require.Len(t, v.Toasts, 1)

	v, err = s.DismissToast(ctx, sid, v.Toasts[0].ID)
	require.NoError(t, err)
	assert.Empty(t, v.Toasts)
}

func TestToast_ExpiresOnItsOwn(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	sid := newSession(t, s)
	s.Toasts.Push(sid, notification.Discount("Flash", "sale", 40*time.Millisecond))

	v, err := s.View(ctx, sid)
	require.NoError(t, err)
	require.Len(t, v.Toasts, 1)
	assert.Equal(t, int64(40), v.Toasts[0].DurationMs)

	assert.Eventually(t, func() bool {
		cur, err := s.View(ctx, sid)
		return err == nil && len(cur.Toasts) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestEndSession(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	sid := newSession(t, s)

	require.NoError(t, s.EndSession(ctx, sid))
	_, err := s.View(ctx, sid)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSweepIdle_EndsStaleSessions(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, Options{})
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewInMemorySessionStore()
	store.now = func() time.Time { return now }
	s.Sessions = store

	stale := newSession(t, s)
	_, err := s.AddToCart(ctx, stale, "a")
	require.NoError(t, err)
	require.NotEmpty(t, s.Toasts.List(stale))

	now = now.Add(2 * time.Hour)
	fresh := newSession(t, s)

	assert.Equal(t, 1, s.SweepIdle(ctx, now.Add(-time.Hour)))
	_, err = s.View(ctx, stale)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Empty(t, s.Toasts.List(stale))
	summary, err := s.Cart.Summary(ctx, stale)
	require.NoError(t, err)
	assert.Zero(t, summary.ItemCount)

	// a lookup keeps a session alive
	now = now.Add(2 * time.Hour)
	_, err = s.View(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, 0, s.SweepIdle(ctx, now.Add(-time.Hour)))

	now = now.Add(2 * time.Hour)
	assert.Equal(t, 1, s.SweepIdle(ctx, now.Add(-time.Hour)))
}
