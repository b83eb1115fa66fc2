package pharmacy

import (
	"context"
	"errors"

	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/pharmacy/dto"
)

var ErrNoSettings = errors.New("no pharmacy settings recorded")

type UseCase interface {
	SaveSettings(ctx context.Context, input *dto.SaveSettingsInput) (*model.Pharmacy, error)
	LatestSettings(ctx context.Context) (*model.Pharmacy, error)
}
