package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PricePlaces is the number of fractional digits kept for prices.
const PricePlaces = 2

// Product represents a product in the store.
type Product struct {
	PID         uint            `json:"pid" gorm:"column:pid;primaryKey"`
	Name        string          `json:"pname" gorm:"column:pname;type:varchar(80);not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Stock       int             `json:"stock" gorm:"not null"`
	CreatedAt   time.Time       `json:"created_at" gorm:"<-:create"` // written once on insert
}

// TableName keeps the table name stable across drivers.
func (Product) TableName() string {
	return "product"
}

// MarshalJSON writes price as a JSON number rather than decimal's default
// quoted string.
func (p Product) MarshalJSON() ([]byte, error) {
	type product Product
	return json.Marshal(struct {
		product
		Price json.Number `json:"price"`
	}{
		product: product(p),
		Price:   json.Number(p.Price.String()),
	})
}
