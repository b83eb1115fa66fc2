package personnel

import (
	"context"
	"errors"

	"github.com/mkouadio/pharmacy-backend/internal/auth"
	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/personnel/dto"
)

var (
	// ErrInvalidCredentials covers both unknown matricules and wrong
	// passwords, so a failed login never reveals which one it was.
	ErrInvalidCredentials = errors.New("matricule or password incorrect")
	ErrRoleNotAllowed     = errors.New("access denied")
	ErrDuplicateMatricule = errors.New("an employee with this matricule already exists")
	ErrPersonnelNotFound  = errors.New("employee not found")
)

// SessionStore is the slice of auth.SessionStore the personnel flows need.
type SessionStore interface {
	Create(ctx context.Context, p *model.Personnel) (*auth.Session, error)
	Get(ctx context.Context, token string) (*auth.Session, error)
	Destroy(ctx context.Context, token string) error
}

type UseCase interface {
	Login(ctx context.Context, input *dto.LoginInput) (*dto.LoginResult, error)
	Logout(ctx context.Context, token string) error

	ListPersonnel(ctx context.Context, filters *dto.PersonnelFilters) ([]model.Personnel, error)
	CreatePersonnel(ctx context.Context, input *dto.CreatePersonnelInput) (*model.Personnel, error)
	UpdatePersonnel(ctx context.Context, matricule string, input *dto.UpdatePersonnelInput) (*model.Personnel, error)
	DeletePersonnel(ctx context.Context, matricule string) error
}
