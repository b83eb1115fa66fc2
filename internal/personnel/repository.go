package personnel

import (
	"context"

	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/personnel/dto"
)

type Repository interface {
	// FindByMatricule matches ignoring any spaces stored in the matricule.
	FindByMatricule(ctx context.Context, matricule string) (*model.Personnel, error)
	FindAll(ctx context.Context, filters *dto.PersonnelFilters) ([]model.Personnel, error)
	Create(ctx context.Context, p *model.Personnel) error
	Update(ctx context.Context, matricule string, p *model.Personnel) error
	Delete(ctx context.Context, matricule string) error
}
