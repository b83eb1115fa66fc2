package stock

import (
	"context"
	"errors"

	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/stock/dto"
)

var (
	ErrDuplicateID     = errors.New("a product with this id already exists")
	ErrProductNotFound = errors.New("product not found")
	ErrStockBusy       = errors.New("stock row is busy, please retry")
)

type UseCase interface {
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	GetDashboard(ctx context.Context) (*dto.Dashboard, error)
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
