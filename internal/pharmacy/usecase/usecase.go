package usecase

import (
	"context"

	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/pharmacy"
	"github.com/mkouadio/pharmacy-backend/internal/pharmacy/dto"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
)

type pharmacyUseCase struct {
	repo   pharmacy.Repository
	logger logger.ZapLogger
}

func NewPharmacyUseCase(repo pharmacy.Repository, log logger.ZapLogger) pharmacy.UseCase {
	return &pharmacyUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *pharmacyUseCase) SaveSettings(ctx context.Context, input *dto.SaveSettingsInput) (*model.Pharmacy, error) {
	p := &model.Pharmacy{
		Name:           input.Name,
		Phone:          input.Phone,
		FooterMessage1: input.FooterMessage1,
		FooterMessage2: input.FooterMessage2,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *pharmacyUseCase) LatestSettings(ctx context.Context) (*model.Pharmacy, error) {
	p, err := uc.repo.FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, pharmacy.ErrNoSettings
	}
	return p, nil
}
