package pharmacy

import (
	"context"

	"github.com/mkouadio/pharmacy-backend/internal/model"
)

type Repository interface {
	Create(ctx context.Context, p *model.Pharmacy) error
	FindLatest(ctx context.Context) (*model.Pharmacy, error)
}
