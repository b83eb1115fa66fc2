package dto

import (
	"time"

	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/shopspring/decimal"
)

type ProductFilters struct {
	ID        *int64
	Name      string
	Route     string
	Form      string
	Quantity  *int64
	Price     *decimal.Decimal
	CreatedOn *time.Time
	EnteredOn *time.Time
	ExpiresOn *time.Time
	Page      int
	PageSize  int
}

// Dashboard is the landing-page summary: shortages, expirations and totals.
type Dashboard struct {
	LowStock       []model.Product `json:"low_stock"`
	Expired        []model.Product `json:"expired"`
	NearExpiration []model.Product `json:"near_expiration"`
	TotalStock     int64           `json:"total_stock"`
	TotalProducts  int             `json:"total_products"`
}
