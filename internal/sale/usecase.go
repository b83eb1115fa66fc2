package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/sale/dto"
)

var ErrEmptyBasket = errors.New("basket is missing or contains no valid lines")

// InsufficientStockError names the first product whose locked quantity could
// not cover the basket's aggregated demand.
type InsufficientStockError struct {
	ProductID int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
}

type UseCase interface {
	SubmitSale(ctx context.Context, input *dto.SubmitSaleInput) ([]model.Sale, error)
}
