package handlers

import (
	"inventory/internal/apperrors"
	"inventory/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const productNotFound = "Product not found"

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name        *string          `json:"pname" validate:"required"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Stock       *int             `json:"stock" validate:"required"`
}

// UpdateProductRequest is the body of PUT /products/:pid. Every field is optional.
type UpdateProductRequest struct {
	Name        *string          `json:"pname"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
}

// DeleteResponse is returned after a successful delete.
type DeleteResponse struct {
	Result bool `json:"result"`
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes behind the given middleware.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, middleware ...fiber.Handler) {
	productRoutes := router.Group("/products", middleware...)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:pid<int>", h.HandleGetProduct)
	productRoutes.Put("/:pid<int>", h.HandleUpdateProduct)
	productRoutes.Delete("/:pid<int>", h.HandleDeleteProduct)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.BadRequest("Missing required fields").Wrap(err)
	}

	input := services.ProductInput{
		Name:  *req.Name,
		Price: *req.Price,
		Stock: *req.Stock,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}

	product, err := h.service.CreateProduct(input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product by its pid.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	pid, err := pathID(c, "pid", productNotFound)
	if err != nil {
		return err
	}

	product, err := h.service.GetProductByID(pid)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	pid, err := pathID(c, "pid", productNotFound)
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	product, err := h.service.UpdateProduct(pid, services.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its pid.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	pid, err := pathID(c, "pid", productNotFound)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProduct(pid); err != nil {
		return err
	}
	return c.JSON(DeleteResponse{Result: true})
}
