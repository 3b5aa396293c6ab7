package storefront

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/stylesphere-storefront/internal/auth"
	"github.com/wichananm65/stylesphere-storefront/internal/cart"
	"github.com/wichananm65/stylesphere-storefront/internal/checkout"
	"github.com/wichananm65/stylesphere-storefront/internal/notification"
	"github.com/wichananm65/stylesphere-storefront/internal/order"
	"github.com/wichananm65/stylesphere-storefront/internal/product"
	"github.com/wichananm65/stylesphere-storefront/internal/tracking"
	"github.com/wichananm65/stylesphere-storefront/internal/tryon"
	"github.com/wichananm65/stylesphere-storefront/internal/user"
	logx "github.com/wichananm65/stylesphere-storefront/pkg/logger"
)

const localSession = "sid"

// TokenIssuer signs the session tokens handed back to the client.
type TokenIssuer interface {
	Issue(sessionID, userID, role string) (string, error)
}

type Handler struct {
	service        *Service
	tokens         TokenIssuer
	paymentMethods []checkout.PaymentMethod
}

func NewHandler(service *Service, tokens TokenIssuer, paymentMethods []checkout.PaymentMethod) *Handler {
	return &Handler{service: service, tokens: tokens, paymentMethods: paymentMethods}
}

func (h *Handler) RegisterPublicRoutes(r fiber.Router) {
	r.Post("/api/v1/session", h.createSession)
	r.Get("/api/v1/payment-methods", h.getPaymentMethods)
	r.Get("/api/v1/demo-accounts", h.getDemoAccounts)
}

func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	api := r.Group("/api/v1", h.loadSession)

	api.Get("/state", h.getState)
	api.Post("/sign-in", h.signIn)
	api.Post("/sign-up", h.signUp)
	api.Post("/sign-in/social", h.socialSignIn)
	api.Post("/sign-out", h.signOut)
	api.Delete("/session", h.endSession)
	api.Delete("/toasts/:id", h.dismissToast)
	api.Put("/overlay", h.openOverlay)
	api.Delete("/overlay", h.closeOverlay)

	shop := h.RequireScreen(ScreenStorefront)
	api.Post("/cart/items", shop, h.addToCart)
	api.Patch("/cart/items/:productId", shop, h.updateQuantity)
	api.Delete("/cart/items/:productId", shop, h.removeFromCart)

	api.Get("/wishlist", shop, h.getWishlist)
	api.Post("/wishlist/:productId", shop, h.toggleWishlist)
	api.Delete("/wishlist/:productId", shop, h.removeFromWishlist)

	api.Post("/checkout", shop, h.beginCheckout)
	api.Put("/checkout/shipping", shop, h.submitShipping)
	api.Put("/checkout/payment", shop, h.submitPayment)
	api.Post("/checkout/place", shop, h.placeOrder)

	api.Get("/orders", shop, h.getOrders)
	api.Post("/orders/:id/refund", shop, h.requestRefund)
	api.Get("/tracking", shop, h.getTracking)
	api.Post("/tracking/resend", shop, h.resendTracking)

	api.Patch("/profile", shop, h.updateProfile)
	api.Post("/search", shop, h.applySearch)
	api.Post("/search/visual", shop, h.visualSearch)

	api.Get("/tryon", shop, h.getTryOn)
	api.Post("/tryon/camera", shop, h.startCamera)
	api.Post("/tryon/cart", shop, h.tryOnAddToCart)
	api.Post("/tryon/:productId", shop, h.openTryOn)

	api.Get("/notification-logs", shop, h.getNotificationLogs)
	api.Post("/notification-logs/:id/resend", shop, h.resendNotificationLog)
}

// loadSession resolves the token's session and keeps its id in the context.
func (h *Handler) loadSession(c *fiber.Ctx) error {
	sid, err := auth.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if _, err := h.service.Sessions.Get(sid); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "session expired"})
	}
	c.Locals(localSession, sid)
	return c.Next()
}

func sessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(localSession).(string)
	return sid
}

// RequireScreen only lets through sessions whose signed-in role lands on screen.
func (h *Handler) RequireScreen(screen Screen) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, _, err := h.service.Screen(sessionID(c))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "session expired"})
		}
		if current != screen {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
		}
		return c.Next()
	}
}

// CurrentUser returns the signed-in user of the request's session, if any.
func (h *Handler) CurrentUser(c *fiber.Ctx) *user.User {
	_, u, err := h.service.Screen(sessionID(c))
	if err != nil {
		return nil
	}
	return u
}

func (h *Handler) createSession(c *fiber.Ctx) error {
	v, err := h.service.NewSession(c.UserContext())
	if err != nil {
		return err
	}
	return h.respondWithToken(c, fiber.StatusCreated, v)
}

func (h *Handler) respondWithToken(c *fiber.Ctx, status int, v View) error {
	var userID, role string
	if v.User != nil {
		userID, role = v.User.ID, string(v.User.Role)
	}
	token, err := h.tokens.Issue(v.SessionID, userID, role)
	if err != nil {
		logx.Error().Err(err).Msg("issue token")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"token": token, "state": v})
}

func (h *Handler) getPaymentMethods(c *fiber.Ctx) error {
	return c.JSON(h.paymentMethods)
}

func (h *Handler) getDemoAccounts(c *fiber.Ctx) error {
	return c.JSON(h.service.DemoAccounts())
}

func (h *Handler) getState(c *fiber.Ctx) error {
	v, err := h.service.View(c.UserContext(), sessionID(c))
	return h.respond(c, v, err)
}

func (h *Handler) signIn(c *fiber.Ctx) error {
	var form user.Form
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request"})
	}
	v, err := h.service.Login(c.UserContext(), sessionID(c), form)
	if err != nil {
		return h.fail(c, v, err)
	}
	return h.respondWithToken(c, fiber.StatusOK, v)
}

func (h *Handler) signUp(c *fiber.Ctx) error {
	var form user.Form
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request"})
	}
	v, err := h.service.Register(c.UserContext(), sessionID(c), form)
	if err != nil {
		return h.fail(c, v, err)
	}
	return h.respondWithToken(c, fiber.StatusCreated, v)
}

func (h *Handler) socialSignIn(c *fiber.Ctx) error {
	var req struct {
		Provider user.Provider `json:"provider"`
		Role     string        `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request"})
	}
	v, err := h.service.SocialLogin(c.UserContext(), sessionID(c), req.Provider, req.Role)
	if err != nil {
		return h.fail(c, v, err)
	}
	return h.respondWithToken(c, fiber.StatusOK, v)
}

func (h *Handler) signOut(c *fiber.Ctx) error {
	v, err := h.service.Logout(c.UserContext(), sessionID(c))
	if err != nil {
		return h.fail(c, v, err)
	}
	return h.respondWithToken(c, fiber.StatusOK, v)
}

func (h *Handler) endSession(c *fiber.Ctx) error {
	if err := h.service.EndSession(c.UserContext(), sessionID(c)); err != nil {
		return h.fail(c, View{}, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) dismissToast(c *fiber.Ctx) error {
	v, err := h.service.DismissToast(c.UserContext(), sessionID(c), c.Params("id"))
	return h.respond(c, v, err)
}

func (h *Handler) openOverlay(c *fiber.Ctx) error {
	var req struct {
		Kind OverlayKind `json:"kind"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request"})
	}
	v, err := h.service.OpenOverlay(c.UserContext(), sessionID(c), req.Kind)
	return h.respond(c, v, err)
}

func (h *Handler) closeOverlay(c *fiber.Ctx) error {
	v, err := h.service.CloseOverlay(c.UserContext(), sessionID(c))
	return h.respond(c, v, err)
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&req); err != nil || req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}
	v, err := h.service.AddToCart(c.UserContext(), sessionID(c), req.ProductID)
	return h.respond(c, v, err)
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request"})
	}
	v, err := h.service.UpdateQuantity(c.UserContext(), sessionID(c), c.Params("productId"), req.Quantity)
	return h.respond(c, v, err)
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	v, err := h.service.RemoveFromCart(c.UserContext(), sessionID(c), c.Params("productId"))
	return h.respond(c, v, err)
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	items, err := h.service.WishlistItems(sessionID(c))
	if err != nil {
		return h.fail(c, View{}, err)
	}
	return c.JSON(product.NewListings(items))
}

func (h *Handler) toggleWishlist(c *fiber.Ctx) error {
	v, err := h.service.ToggleWishlist(c.UserContext(), sessionID(c), c.Params("productId"))
	return h.respond(c, v, err)
}

func (h *Handler) removeFromWishlist(c *fiber.Ctx) error {
	v, err := h.service.RemoveFromWishlist(c.UserContext(), sessionID(c), c.Params("productId"))
	return h.respond(c, v, err)
}

func (h *Handler) beginCheckout(c *fiber.Ctx) error {
	v, err := h.service.BeginCheckout(c.UserContext(), sessionID(c))
	return h.respond(c, v, err)
}

func (h *Handler) submitShipping(c *fiber.Ctx) error {
	var ship checkout.Shipping
	if err := c.BodyParser(&ship); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request"})
	}
	v, err := h.service.SubmitShipping(c.UserContext(), sessionID(c), ship)
	return h.respond(c, v, err)
}

func (h *Handler) submitPayment(c *fiber.Ctx) error {
	var pay checkout.Payment
	if err := c.BodyParser(&pay); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request"})
	}
	v, err := h.service.SubmitPayment(c.UserContext(), sessionID(c), pay)
	return h.respond(c, v, err)
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	v, err := h.service.PlaceOrder(c.UserContext(), sessionID(c))
	if err != nil {
		return h.fail(c, v, err)
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(c.UserContext(), sessionID(c), c.Query("tab", "all"))
	if err != nil {
		return h.fail(c, View{}, err)
	}
	return c.JSON(orders)
}

func (h *Handler) requestRefund(c *fiber.Ctx) error {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request"})
	}
	o, v, err := h.service.RequestRefund(c.UserContext(), sessionID(c), c.Params("id"), req.Reason)
	if err != nil {
		return h.fail(c, v, err)
	}
	return c.JSON(fiber.Map{"order": o, "state": v})
}

func (h *Handler) getTracking(c *fiber.Ctx) error {
	t, err := h.service.Track(c.UserContext(), sessionID(c), c.Query("order"), tracking.ParseView(c.Query("view")))
	if err != nil {
		return h.fail(c, View{}, err)
	}
	return c.JSON(t)
}

func (h *Handler) resendTracking(c *fiber.Ctx) error {
	var req struct {
		OrderID string `json:"orderId"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request"})
		}
	}
	sent, err := h.service.ResendTracking(c.UserContext(), sessionID(c), req.OrderID)
	if err != nil {
		return h.fail(c, View{}, err)
	}
	if !sent {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "tracking email was just sent"})
	}
	return c.JSON(fiber.Map{"emailSent": true})
}

func (h *Handler) updateProfile(c *fiber.Ctx) error {
	var upd user.ProfileUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request"})
	}
	v, err := h.service.UpdateProfile(c.UserContext(), sessionID(c), upd)
	return h.respond(c, v, err)
}

func (h *Handler) applySearch(c *fiber.Ctx) error {
	filters := product.DefaultFilters()
	if err := c.BodyParser(&filters); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request"})
	}
	results, v, err := h.service.ApplySearch(c.UserContext(), sessionID(c), filters)
	if err != nil {
		return h.fail(c, v, err)
	}
	return c.JSON(fiber.Map{"results": product.NewListings(results), "state": v})
}

func (h *Handler) visualSearch(c *fiber.Ctx) error {
	v, err := h.service.VisualSearch(c.UserContext(), sessionID(c))
	return h.respond(c, v, err)
}

func (h *Handler) openTryOn(c *fiber.Ctx) error {
	t, v, err := h.service.OpenTryOn(c.UserContext(), sessionID(c), c.Params("productId"))
	if err != nil {
		return h.fail(c, v, err)
	}
	return c.JSON(fiber.Map{"tryOn": t, "state": v})
}

func (h *Handler) getTryOn(c *fiber.Ctx) error {
	t, err := h.service.TryOnState(sessionID(c))
	if err != nil {
		return h.fail(c, View{}, err)
	}
	return c.JSON(t)
}

func (h *Handler) startCamera(c *fiber.Ctx) error {
	t, err := h.service.StartCamera(sessionID(c))
	if err != nil {
		return h.fail(c, View{}, err)
	}
	return c.JSON(t)
}

func (h *Handler) tryOnAddToCart(c *fiber.Ctx) error {
	v, err := h.service.TryOnAddToCart(c.UserContext(), sessionID(c))
	return h.respond(c, v, err)
}

func (h *Handler) getNotificationLogs(c *fiber.Ctx) error {
	page, err := h.service.NotificationLogs(sessionID(c), c.Query("filter", "all"))
	if err != nil {
		return h.fail(c, View{}, err)
	}
	return c.JSON(page)
}

func (h *Handler) resendNotificationLog(c *fiber.Ctx) error {
	l, err := h.service.ResendLog(sessionID(c), c.Params("id"))
	if err != nil {
		return h.fail(c, View{}, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(l)
}

func (h *Handler) respond(c *fiber.Ctx, v View, err error) error {
	if err != nil {
		return h.fail(c, v, err)
	}
	return c.JSON(v)
}

// fail maps a command error to a status. When the command still produced a
// view (an out-of-stock toast, say) it is returned alongside the message.
func (h *Handler) fail(c *fiber.Ctx, v View, err error) error {
	body := fiber.Map{"message": err.Error()}
	if v.SessionID != "" {
		body["state"] = v
	}

	var verr *checkout.ValidationError
	switch {
	case errors.As(err, &verr):
		body["message"] = "validation failed"
		body["errors"] = verr.Fields
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.Is(err, ErrSessionNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "session expired"})
	case errors.Is(err, ErrAuthRequired), errors.Is(err, user.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(body)
	case errors.Is(err, product.ErrNotFound), errors.Is(err, order.ErrNotFound),
		errors.Is(err, notification.ErrLogNotFound), errors.Is(err, tryon.ErrNotOpen):
		return c.Status(fiber.StatusNotFound).JSON(body)
	case errors.Is(err, cart.ErrOutOfStock), errors.Is(err, user.ErrEmailExists),
		errors.Is(err, ErrAlreadySignedIn), errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrNoCheckout), errors.Is(err, checkout.ErrWrongStep),
		errors.Is(err, order.ErrRefundNotAllowed), errors.Is(err, notification.ErrResendInProgress),
		errors.Is(err, tryon.ErrWarmingUp):
		return c.Status(fiber.StatusConflict).JSON(body)
	case errors.Is(err, user.ErrEmailRequired), errors.Is(err, user.ErrUnknownProvider),
		errors.Is(err, order.ErrEmptyReason), errors.Is(err, notification.ErrNotResendable),
		errors.Is(err, ErrOverlayNotDirect), errors.Is(err, ErrUnknownOverlay):
		return c.Status(fiber.StatusBadRequest).JSON(body)
	default:
		logx.Error().Err(err).Str("path", c.Path()).Msg("storefront command failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}
}
