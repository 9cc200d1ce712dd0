package repositories

import (
	"errors"
	"fmt"

	"inventory/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products ordered by pid.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.Order("pid").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its pid from the database.
func (r *GORMProductRepository) GetByID(pid uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, pid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", pid, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", pid, err)
	}
	return &product, nil
}

// Create inserts product and fills in its pid.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists all fields of an already loaded product. created_at is
// insert-only and is never rewritten. A product that no longer exists is
// reported as ErrNotFound, never re-inserted.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(product).Select("*").Omit("created_at").Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product %d: %w", product.PID, res.Error)
	}
	if res.RowsAffected == 0 {
		// MySQL counts changed rows, so an unchanged product also reports 0
		return r.ensureExists(product.PID)
	}
	return nil
}

func (r *GORMProductRepository) ensureExists(pid uint) error {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("pid = ?", pid).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check product %d: %w", pid, err)
	}
	if count == 0 {
		return fmt.Errorf("product with ID %d: %w", pid, ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its pid from the database.
func (r *GORMProductRepository) Delete(pid uint) error {
	res := r.db.Delete(&models.Product{}, pid)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", pid, ErrNotFound)
	}
	return nil
}
