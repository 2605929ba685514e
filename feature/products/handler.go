package products

import (
	"eox-sync/core/logger"
	"eox-sync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for products.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the product routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products")
	group.Get("/", h.HandleListProducts)
	group.Get("/:id", h.HandleGetProduct)
}

// HandleListProducts returns a page of products.
// @Summary List Products
// @Description List products with their lifecycle dates, ordered by product id.
// @Tags products
// @Produce json
// @Param offset query int false "Offset"
// @Param limit query int false "Page size (max 500)"
// @Success 200 {object} products.ProductPage "Products"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products [get]
func (h *Handler) HandleListProducts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	page, err := h.service.List(c.Context(), utils.ToInt(c.Query("offset")), utils.ToInt(c.Query("limit")))
	if err != nil {
		l.Error("Product listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(page)
}

// HandleGetProduct returns one product with its migration options.
// @Summary Get Product
// @Description Get a product by its product id.
// @Tags products
// @Produce json
// @Param id path string true "Product ID (e.g. 'WS-C2960-24T-S')"
// @Success 200 {object} products.ProductDetail "Product"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/{id} [get]
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c)

	detail, err := h.service.Get(c.Context(), id)
	if err != nil {
		l.Error("Product lookup failed", zap.String("product_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if detail == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "product not found",
		})
	}

	return c.JSON(detail)
}
