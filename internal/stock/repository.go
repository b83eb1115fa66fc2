package stock

import (
	"context"
	"time"

	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/stock/dto"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error

	// Dashboard aggregates
	ListLowStock(ctx context.Context, threshold int64) ([]model.Product, error)
	ListExpired(ctx context.Context, asOf time.Time) ([]model.Product, error)
	ListByExpirationWindow(ctx context.Context, start, end time.Time) ([]model.Product, error)
	TotalStock(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int, error)
}
