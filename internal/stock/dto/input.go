package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	ID        int64           `json:"id" binding:"required,gt=0"`
	Name      string          `json:"name" binding:"required"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity" binding:"gte=0"`
	Route     string          `json:"route"`
	Form      string          `json:"form"`
	CreatedOn time.Time       `json:"created_on"`
	EnteredOn time.Time       `json:"entered_on"`
	ExpiresOn time.Time       `json:"expires_on"`
}

type UpdateProductInput struct {
	Name      string          `json:"name" binding:"required"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity" binding:"gte=0"`
	Route     string          `json:"route"`
	Form      string          `json:"form"`
	CreatedOn time.Time       `json:"created_on"`
	EnteredOn time.Time       `json:"entered_on"`
	ExpiresOn time.Time       `json:"expires_on"`
}
