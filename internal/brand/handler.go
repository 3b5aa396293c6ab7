package brand

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/stylesphere-storefront/internal/user"
	logx "github.com/wichananm65/stylesphere-storefront/pkg/logger"
)

// CurrentUser resolves the signed-in partner of a request.
type CurrentUser func(c *fiber.Ctx) *user.User

type Handler struct {
	storefronts *Storefronts
	inventory   *Inventory
	current     CurrentUser
}

func NewHandler(storefronts *Storefronts, inventory *Inventory, current CurrentUser) *Handler {
	return &Handler{storefronts: storefronts, inventory: inventory, current: current}
}

// RegisterRoutes mounts the portal on r, which the caller has already
// restricted to brand-partner sessions.
func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/storefront", h.getStorefront)
	r.Put("/storefront", h.saveStorefront)
	r.Post("/influencers", h.addInfluencer)

	r.Get("/analytics", h.getAnalytics)

	r.Get("/inventory", h.getInventory)
	r.Patch("/inventory/:id", h.updateProduct)
	r.Delete("/inventory/:id", h.deleteProduct)
}

func (h *Handler) partner(c *fiber.Ctx) (user.User, bool) {
	u := h.current(c)
	if u == nil {
		return user.User{}, false
	}
	return *u, true
}

func (h *Handler) getStorefront(c *fiber.Ctx) error {
	u, ok := h.partner(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(fiber.Map{
		"profile":     h.storefronts.Profile(u),
		"influencers": h.storefronts.Influencers(u),
	})
}

func (h *Handler) saveStorefront(c *fiber.Ctx) error {
	u, ok := h.partner(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	var p Profile
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	saved, err := h.storefronts.SaveProfile(u, p)
	if err != nil {
		return writeError(c, err)
	}
	logx.Info().Str("brand", saved.BrandName).Msg("brand storefront updated")
	return c.JSON(saved)
}

func (h *Handler) addInfluencer(c *fiber.Ctx) error {
	u, ok := h.partner(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	var in Influencer
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	added, err := h.storefronts.AddInfluencer(u, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(added)
}

func (h *Handler) getAnalytics(c *fiber.Ctx) error {
	return c.JSON(Report())
}

func (h *Handler) getInventory(c *fiber.Ctx) error {
	u, ok := h.partner(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	products := h.inventory.List(u)
	return c.JSON(fiber.Map{
		"products":   products,
		"summary":    Summarize(products),
		"warehouses": Warehouses,
	})
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	u, ok := h.partner(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	var p ProductPatch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	prod, err := h.inventory.Update(u, c.Params("id"), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(prod)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	u, ok := h.partner(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if err := h.inventory.Delete(u, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func writeError(c *fiber.Ctx, err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verr.Fields})
	case errors.Is(err, ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	default:
		logx.Error().Err(err).Str("path", c.Path()).Msg("brand request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}
}
