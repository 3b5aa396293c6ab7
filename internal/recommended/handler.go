package recommended

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/stylesphere-storefront/internal/user"
)

// CurrentUser resolves the signed-in shopper of a request, nil for guests.
type CurrentUser func(c *fiber.Ctx) *user.User

type Handler struct {
	service *Service
	current CurrentUser
}

func NewHandler(s *Service, current CurrentUser) *Handler {
	return &Handler{service: s, current: current}
}

// RegisterProtectedRoutes needs the session middleware in front of it.
func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Get("/api/v1/recommended", h.getRecommended)
}

func (h *Handler) getRecommended(c *fiber.Ctx) error {
	u := h.current(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "sign in to see recommendations"})
	}

	// support pagination: ?limit=6&offset=0
	limit := DefaultLimit
	offset := 0
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}
	return c.JSON(h.service.For(u.Name, limit, offset))
}
