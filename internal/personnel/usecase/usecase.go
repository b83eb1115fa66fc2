package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/mkouadio/pharmacy-backend/internal/auth"
	"github.com/mkouadio/pharmacy-backend/internal/connlog"
	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/personnel"
	"github.com/mkouadio/pharmacy-backend/internal/personnel/dto"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type personnelUseCase struct {
	repo     personnel.Repository
	logs     connlog.Repository
	sessions personnel.SessionStore
	logger   logger.ZapLogger
}

func NewPersonnelUseCase(repo personnel.Repository, logs connlog.Repository, sessions personnel.SessionStore, log logger.ZapLogger) personnel.UseCase {
	return &personnelUseCase{
		repo:     repo,
		logs:     logs,
		sessions: sessions,
		logger:   log,
	}
}

func (uc *personnelUseCase) Login(ctx context.Context, input *dto.LoginInput) (*dto.LoginResult, error) {
	matricule := strings.ReplaceAll(input.Matricule, " ", "")

	staff, err := uc.repo.FindByMatricule(ctx, matricule)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, personnel.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(input.Password)); err != nil {
		return nil, personnel.ErrInvalidCredentials
	}

	redirect, ok := auth.RedirectFor(staff.Role)
	if !ok {
		return nil, personnel.ErrRoleNotAllowed
	}

	uc.recordConnection(ctx, staff, model.LogActionLogin)

	sess, err := uc.sessions.Create(ctx, staff)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("login succeeded", zap.String("matricule", staff.Matricule), zap.String("role", staff.Role))

	return &dto.LoginResult{
		Token:    sess.Token,
		Redirect: redirect,
	}, nil
}

func (uc *personnelUseCase) Logout(ctx context.Context, token string) error {
	sess, err := uc.sessions.Get(ctx, token)
	if err != nil {
		return err
	}

	uc.recordConnection(ctx, &model.Personnel{
		LastName:  sess.LastName,
		FirstName: sess.FirstName,
		Position:  sess.Position,
	}, model.LogActionLogout)

	return uc.sessions.Destroy(ctx, token)
}

// recordConnection appends to the audit trail; a failure there must not
// block the login or logout itself.
func (uc *personnelUseCase) recordConnection(ctx context.Context, staff *model.Personnel, action string) {
	err := uc.logs.Insert(ctx, &model.ConnectionLog{
		LastName:  staff.LastName,
		FirstName: staff.FirstName,
		Position:  staff.Position,
		Action:    action,
		LoggedAt:  time.Now(),
	})
	if err != nil {
		uc.logger.Error("failed to record connection event",
			zap.String("action", action), zap.Error(err))
	}
}

func (uc *personnelUseCase) ListPersonnel(ctx context.Context, filters *dto.PersonnelFilters) ([]model.Personnel, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *personnelUseCase) CreatePersonnel(ctx context.Context, input *dto.CreatePersonnelInput) (*model.Personnel, error) {
	existing, err := uc.repo.FindByMatricule(ctx, input.Matricule)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, personnel.ErrDuplicateMatricule
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := &model.Personnel{
		Matricule:    input.Matricule,
		LastName:     input.LastName,
		FirstName:    input.FirstName,
		BirthDate:    input.BirthDate,
		HiredOn:      input.HiredOn,
		Diploma:      input.Diploma,
		Position:     input.Position,
		Contract:     input.Contract,
		PasswordHash: string(hash),
		Role:         input.Role,
	}

	if err := uc.repo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (uc *personnelUseCase) UpdatePersonnel(ctx context.Context, matricule string, input *dto.UpdatePersonnelInput) (*model.Personnel, error) {
	existing, err := uc.repo.FindByMatricule(ctx, matricule)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, personnel.ErrPersonnelNotFound
	}

	existing.Matricule = input.Matricule
	existing.LastName = input.LastName
	existing.FirstName = input.FirstName
	existing.BirthDate = input.BirthDate
	existing.HiredOn = input.HiredOn
	existing.Diploma = input.Diploma
	existing.Position = input.Position
	existing.Contract = input.Contract

	if err := uc.repo.Update(ctx, matricule, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *personnelUseCase) DeletePersonnel(ctx context.Context, matricule string) error {
	existing, err := uc.repo.FindByMatricule(ctx, matricule)
	if err != nil {
		return err
	}
	if existing == nil {
		return personnel.ErrPersonnelNotFound
	}
	return uc.repo.Delete(ctx, matricule)
}
