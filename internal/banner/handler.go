package banner

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(r fiber.Router) {
	r.Get("/api/v1/banner", h.getBanner)
}

func (h *Handler) getBanner(c *fiber.Ctx) error {
	return c.JSON(h.service.Get())
}
