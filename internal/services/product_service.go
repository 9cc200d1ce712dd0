package services

import (
	"errors"
	"fmt"
	"time"

	"inventory/internal/apperrors"
	"inventory/internal/models"
	"inventory/internal/repositories"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const productNotFound = "Product not found"

// ProductInput carries the fields of a new product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

// ProductPatch lists the product fields a caller may change. Nil means untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	log       *zap.Logger
	now       func() time.Time
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher, log *zap.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// Prices fit numeric(10,2).
const (
	maxPriceIntegerDigits = 8
	maxPriceInputPlaces   = 32
)

var maxPrice = decimal.New(9999999999, -models.PricePlaces)

// normalizePrice rejects prices outside [0, maxPrice] and rounds the rest to
// PricePlaces. The digit and exponent checks must precede GreaterThan and
// Round, both of which rescale to the input's exponent.
func normalizePrice(price decimal.Decimal) (decimal.Decimal, error) {
	if price.IsNegative() {
		return decimal.Decimal{}, apperrors.BadRequest("Price must not be negative")
	}
	if price.IsZero() {
		return decimal.Zero, nil
	}
	if price.Exponent() < -maxPriceInputPlaces {
		return decimal.Decimal{}, apperrors.BadRequest("Price has too many decimal places")
	}
	if int64(price.NumDigits())+int64(price.Exponent()) > maxPriceIntegerDigits || price.GreaterThan(maxPrice) {
		return decimal.Decimal{}, apperrors.BadRequest("Price must not exceed " + maxPrice.StringFixed(models.PricePlaces))
	}
	return price.Round(models.PricePlaces), nil
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its pid.
func (s *ProductService) GetProductByID(pid uint) (*models.Product, error) {
	product, err := s.repo.GetByID(pid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound(productNotFound)
		}
		return nil, err
	}
	return product, nil
}

// CreateProduct stores a new product stamped with the current time.
func (s *ProductService) CreateProduct(input ProductInput) (*models.Product, error) {
	price, err := normalizePrice(input.Price)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
		Stock:       input.Stock,
		// millisecond precision survives every supported driver unchanged
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	publishEvent(s.publisher, s.log, EventProductCreated, product)
	return product, nil
}

// UpdateProduct applies patch to an existing product. An empty patch leaves
// the product unchanged.
func (s *ProductService) UpdateProduct(pid uint, patch ProductPatch) (*models.Product, error) {
	product, err := s.GetProductByID(pid)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		price, err := normalizePrice(*patch.Price)
		if err != nil {
			return nil, err
		}
		product.Price = price
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}

	if err := s.repo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound(productNotFound)
		}
		return nil, fmt.Errorf("failed to update product %d: %w", pid, err)
	}

	publishEvent(s.publisher, s.log, EventProductUpdated, product)
	return product, nil
}

// DeleteProduct deletes a product by its pid.
func (s *ProductService) DeleteProduct(pid uint) error {
	if _, err := s.GetProductByID(pid); err != nil {
		return err
	}
	if err := s.repo.Delete(pid); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound(productNotFound)
		}
		return err
	}

	publishEvent(s.publisher, s.log, EventProductDeleted, map[string]uint{"pid": pid})
	return nil
}
