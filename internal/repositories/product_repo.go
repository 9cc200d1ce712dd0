package repositories

import (
	"inventory/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(pid uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(pid uint) error
}
