package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/stylesphere-storefront/internal/order"
	logx "github.com/wichananm65/stylesphere-storefront/pkg/logger"
)

type Handler struct {
	inventory *Inventory
	coupons   *Coupons
	orders    *order.Service
	settings  *SettingsStore
}

func NewHandler(inventory *Inventory, coupons *Coupons, orders *order.Service, settings *SettingsStore) *Handler {
	return &Handler{inventory: inventory, coupons: coupons, orders: orders, settings: settings}
}

// RegisterRoutes mounts the back office on r, which the caller has already
// restricted to admin sessions.
func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/inventory", h.listInventory)
	r.Post("/inventory", h.createItem)
	r.Patch("/inventory/:id", h.updateItem)
	r.Delete("/inventory/:id", h.deleteItem)

	r.Get("/coupons", h.listCoupons)
	r.Post("/coupons", h.createCoupon)
	r.Post("/coupons/:id/toggle", h.toggleCoupon)
	r.Delete("/coupons/:id", h.deleteCoupon)

	r.Get("/orders", h.listOrders)
	r.Get("/orders/refunds", h.listRefundRequests)
	r.Put("/orders/:id/status", h.setOrderStatus)
	r.Post("/orders/:id/refund/approve", h.approveRefund)
	r.Post("/orders/:id/refund/deny", h.denyRefund)

	r.Get("/settings", h.getSettings)
	r.Put("/settings", h.saveSettings)
}

func (h *Handler) listInventory(c *fiber.Ctx) error {
	return c.JSON(h.inventory.List())
}

func (h *Handler) createItem(c *fiber.Ctx) error {
	var p ItemPatch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	it, err := h.inventory.Create(p)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(it)
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	var p ItemPatch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	it, err := h.inventory.Update(c.Params("id"), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(it)
}

func (h *Handler) deleteItem(c *fiber.Ctx) error {
	if err := h.inventory.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) listCoupons(c *fiber.Ctx) error {
	return c.JSON(h.coupons.List())
}

func (h *Handler) createCoupon(c *fiber.Ctx) error {
	var f CouponForm
	if err := c.BodyParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	coupon, err := h.coupons.Create(f)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(coupon)
}

func (h *Handler) toggleCoupon(c *fiber.Ctx) error {
	coupon, err := h.coupons.Toggle(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(coupon)
}

func (h *Handler) deleteCoupon(c *fiber.Ctx) error {
	if err := h.coupons.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	orders, err := h.orders.All(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(orders)
}

func (h *Handler) listRefundRequests(c *fiber.Ctx) error {
	orders, err := h.orders.RefundRequests(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(orders)
}

func (h *Handler) setOrderStatus(c *fiber.Ctx) error {
	var req struct {
		Status order.Status `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	o, err := h.orders.SetStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(o)
}

func (h *Handler) approveRefund(c *fiber.Ctx) error {
	return h.resolveRefund(c, true)
}

func (h *Handler) denyRefund(c *fiber.Ctx) error {
	return h.resolveRefund(c, false)
}

func (h *Handler) resolveRefund(c *fiber.Ctx, approve bool) error {
	o, err := h.orders.ResolveRefund(c.UserContext(), c.Params("id"), approve)
	if err != nil {
		return writeError(c, err)
	}
	logx.Info().Str("order", o.OrderNumber).Str("refund", string(o.RefundStatus)).Msg("refund resolved")
	return c.JSON(o)
}

func (h *Handler) getSettings(c *fiber.Ctx) error {
	return c.JSON(h.settings.Get())
}

func (h *Handler) saveSettings(c *fiber.Ctx) error {
	var s Settings
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	view, err := h.settings.Save(s)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(view)
}

func writeError(c *fiber.Ctx, err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verr.Fields})
	case errors.Is(err, ErrItemNotFound), errors.Is(err, ErrCouponNotFound), errors.Is(err, order.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrCouponExists), errors.Is(err, order.ErrNoRefundRequest):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, order.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		logx.Error().Err(err).Str("path", c.Path()).Msg("admin request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}
}
