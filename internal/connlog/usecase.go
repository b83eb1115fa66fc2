package connlog

import (
	"context"

	"github.com/mkouadio/pharmacy-backend/internal/connlog/dto"
	"github.com/mkouadio/pharmacy-backend/internal/model"
)

type UseCase interface {
	ListLogs(ctx context.Context, filters *dto.LogFilters) ([]model.ConnectionLog, error)
}
