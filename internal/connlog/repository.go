package connlog

import (
	"context"

	"github.com/mkouadio/pharmacy-backend/internal/connlog/dto"
	"github.com/mkouadio/pharmacy-backend/internal/model"
)

type Repository interface {
	// Insert appends one connection event. Events are never updated.
	Insert(ctx context.Context, log *model.ConnectionLog) error
	FindAll(ctx context.Context, filters *dto.LogFilters) ([]model.ConnectionLog, error)
}
