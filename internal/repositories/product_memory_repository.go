package repositories

import (
	"fmt"
	"sort"
	"sync"

	"inventory/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products ordered by pid.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].PID < productList[j].PID })
	return productList, nil
}

// GetByID returns a copy of the product with the given pid.
func (r *InMemoryProductRepository) GetByID(pid uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[pid]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", pid, ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product and assigns its pid.
func (r *InMemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.PID = r.nextID
	r.nextID++
	r.products[product.PID] = *product
	return nil
}

// Update replaces an existing product, keeping the stored created_at.
func (r *InMemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.PID]
	if !ok {
		return fmt.Errorf("product with ID %d: %w", product.PID, ErrNotFound)
	}
	product.CreatedAt = existing.CreatedAt
	r.products[product.PID] = *product
	return nil
}

// Delete removes a product by its pid.
func (r *InMemoryProductRepository) Delete(pid uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[pid]; !ok {
		return fmt.Errorf("product with ID %d: %w", pid, ErrNotFound)
	}
	delete(r.products, pid)
	return nil
}
