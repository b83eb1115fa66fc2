package usecase

import (
	"context"

	"github.com/mkouadio/pharmacy-backend/internal/connlog"
	"github.com/mkouadio/pharmacy-backend/internal/connlog/dto"
	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
)

type connlogUseCase struct {
	repo   connlog.Repository
	logger logger.ZapLogger
}

func NewConnlogUseCase(repo connlog.Repository, log logger.ZapLogger) connlog.UseCase {
	return &connlogUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *connlogUseCase) ListLogs(ctx context.Context, filters *dto.LogFilters) ([]model.ConnectionLog, error) {
	return uc.repo.FindAll(ctx, filters)
}
