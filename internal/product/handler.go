package product

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r fiber.Router) {
	r.Get("/api/v1/products", h.getProducts)
	r.Get("/api/v1/products/:id", h.getProduct)
	r.Post("/api/v1/products/search", h.searchProducts)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	products := h.service.List(c.Query("category", CategoryAll))
	return c.JSON(NewListings(products))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(NewListing(p))
}

// searchProducts starts from the sidebar defaults so omitted fields keep them.
func (h *Handler) searchProducts(c *fiber.Ctx) error {
	filters := DefaultFilters()
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&filters); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
	}
	if filters.MaxPrice.IsPositive() && filters.MaxPrice.LessThan(filters.MinPrice) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": map[string]string{"maxPrice": "maxPrice must be >= minPrice"}})
	}
	return c.JSON(NewListings(h.service.Search(filters)))
}
