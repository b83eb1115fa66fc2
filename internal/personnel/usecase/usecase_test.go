package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkouadio/pharmacy-backend/internal/auth"
	connlogdto "github.com/mkouadio/pharmacy-backend/internal/connlog/dto"
	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/personnel"
	"github.com/mkouadio/pharmacy-backend/internal/personnel/dto"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
)

type mockPersonnelRepo struct {
	byMatricule map[string]*model.Personnel
	findErr     error
	createErr   error
}

func (m *mockPersonnelRepo) FindByMatricule(ctx context.Context, matricule string) (*model.Personnel, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	p, ok := m.byMatricule[strings.ReplaceAll(matricule, " ", "")]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockPersonnelRepo) FindAll(ctx context.Context, filters *dto.PersonnelFilters) ([]model.Personnel, error) {
	out := make([]model.Personnel, 0, len(m.byMatricule))
	for _, p := range m.byMatricule {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockPersonnelRepo) Create(ctx context.Context, p *model.Personnel) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byMatricule[p.Matricule] = p
	return nil
}

func (m *mockPersonnelRepo) Update(ctx context.Context, matricule string, p *model.Personnel) error {
	delete(m.byMatricule, matricule)
	m.byMatricule[p.Matricule] = p
	return nil
}

func (m *mockPersonnelRepo) Delete(ctx context.Context, matricule string) error {
	delete(m.byMatricule, matricule)
	return nil
}

type mockConnlogRepo struct {
	entries   []model.ConnectionLog
	insertErr error
}

func (m *mockConnlogRepo) Insert(ctx context.Context, log *model.ConnectionLog) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.entries = append(m.entries, *log)
	return nil
}

func (m *mockConnlogRepo) FindAll(ctx context.Context, filters *connlogdto.LogFilters) ([]model.ConnectionLog, error) {
	return m.entries, nil
}

type mockSessionStore struct {
	sessions  map[string]*auth.Session
	createErr error
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: map[string]*auth.Session{}}
}

func (m *mockSessionStore) Create(ctx context.Context, p *model.Personnel) (*auth.Session, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	sess := &auth.Session{
		Token:     uuid.New().String(),
		Matricule: p.Matricule,
		LastName:  p.LastName,
		FirstName: p.FirstName,
		Position:  p.Position,
		Role:      p.Role,
	}
	m.sessions[sess.Token] = sess
	return sess, nil
}

func (m *mockSessionStore) Get(ctx context.Context, token string) (*auth.Session, error) {
	sess, ok := m.sessions[token]
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	return sess, nil
}

func (m *mockSessionStore) Destroy(ctx context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func testLogger() logger.ZapLogger {
	return logger.NewZapLogger(&logger.ZapLoggerConfig{
		Encoding:          "console",
		Level:             "error",
		DisableCaller:     true,
		DisableStacktrace: true,
	})
}

func seller(t *testing.T) *model.Personnel {
	return &model.Personnel{
		Matricule:    "MAT001",
		LastName:     "Kone",
		FirstName:    "Awa",
		Position:     "vendeuse",
		PasswordHash: hashPassword(t, "s3cret-pass"),
		Role:         auth.RoleSeller,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := &mockPersonnelRepo{byMatricule: map[string]*model.Personnel{"MAT001": seller(t)}}
	logs := &mockConnlogRepo{}
	sessions := newMockSessionStore()
	uc := NewPersonnelUseCase(repo, logs, sessions, testLogger())

	result, err := uc.Login(context.Background(), &dto.LoginInput{Matricule: "MAT001", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "/sale", result.Redirect)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, model.LogActionLogin, logs.entries[0].Action)
	assert.Equal(t, "Kone", logs.entries[0].LastName)

	_, err = sessions.Get(context.Background(), result.Token)
	assert.NoError(t, err)
}

func TestLogin_MatriculeSpacesIgnored(t *testing.T) {
	repo := &mockPersonnelRepo{byMatricule: map[string]*model.Personnel{"MAT001": seller(t)}}
	uc := NewPersonnelUseCase(repo, &mockConnlogRepo{}, newMockSessionStore(), testLogger())

	result, err := uc.Login(context.Background(), &dto.LoginInput{Matricule: " MAT 001 ", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "/sale", result.Redirect)
}

func TestLogin_UnknownMatricule(t *testing.T) {
	repo := &mockPersonnelRepo{byMatricule: map[string]*model.Personnel{}}
	uc := NewPersonnelUseCase(repo, &mockConnlogRepo{}, newMockSessionStore(), testLogger())

	_, err := uc.Login(context.Background(), &dto.LoginInput{Matricule: "NOPE", Password: "whatever"})
	assert.ErrorIs(t, err, personnel.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &mockPersonnelRepo{byMatricule: map[string]*model.Personnel{"MAT001": seller(t)}}
	logs := &mockConnlogRepo{}
	uc := NewPersonnelUseCase(repo, logs, newMockSessionStore(), testLogger())

	_, err := uc.Login(context.Background(), &dto.LoginInput{Matricule: "MAT001", Password: "wrong"})
	assert.ErrorIs(t, err, personnel.ErrInvalidCredentials)
	assert.Empty(t, logs.entries)
}

func TestLogin_UnknownRoleRejected(t *testing.T) {
	staff := seller(t)
	staff.Role = "intern"
	repo := &mockPersonnelRepo{byMatricule: map[string]*model.Personnel{"MAT001": staff}}
	uc := NewPersonnelUseCase(repo, &mockConnlogRepo{}, newMockSessionStore(), testLogger())

	_, err := uc.Login(context.Background(), &dto.LoginInput{Matricule: "MAT001", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, personnel.ErrRoleNotAllowed)
}

func TestLogin_AuditFailureDoesNotBlockLogin(t *testing.T) {
	repo := &mockPersonnelRepo{byMatricule: map[string]*model.Personnel{"MAT001": seller(t)}}
	logs := &mockConnlogRepo{insertErr: errors.New("connection_logs unavailable")}
	uc := NewPersonnelUseCase(repo, logs, newMockSessionStore(), testLogger())

	result, err := uc.Login(context.Background(), &dto.LoginInput{Matricule: "MAT001", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestLogout_RecordsEventAndDestroysSession(t *testing.T) {
	repo := &mockPersonnelRepo{byMatricule: map[string]*model.Personnel{"MAT001": seller(t)}}
	logs := &mockConnlogRepo{}
	sessions := newMockSessionStore()
	uc := NewPersonnelUseCase(repo, logs, sessions, testLogger())

	result, err := uc.Login(context.Background(), &dto.LoginInput{Matricule: "MAT001", Password: "s3cret-pass"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), result.Token))

	require.Len(t, logs.entries, 2)
	assert.Equal(t, model.LogActionLogout, logs.entries[1].Action)

	_, err = sessions.Get(context.Background(), result.Token)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestLogout_UnknownToken(t *testing.T) {
	uc := NewPersonnelUseCase(&mockPersonnelRepo{}, &mockConnlogRepo{}, newMockSessionStore(), testLogger())

	err := uc.Logout(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestCreatePersonnel_HashesPassword(t *testing.T) {
	repo := &mockPersonnelRepo{byMatricule: map[string]*model.Personnel{}}
	uc := NewPersonnelUseCase(repo, &mockConnlogRepo{}, newMockSessionStore(), testLogger())

	staff, err := uc.CreatePersonnel(context.Background(), &dto.CreatePersonnelInput{
		Matricule: "MAT002",
		LastName:  "Traore",
		FirstName: "Ibrahim",
		Password:  "new-password",
		Role:      auth.RoleReception,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "new-password", staff.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte("new-password")))
}

func TestCreatePersonnel_DuplicateMatricule(t *testing.T) {
	repo := &mockPersonnelRepo{byMatricule: map[string]*model.Personnel{"MAT001": seller(t)}}
	uc := NewPersonnelUseCase(repo, &mockConnlogRepo{}, newMockSessionStore(), testLogger())

	_, err := uc.CreatePersonnel(context.Background(), &dto.CreatePersonnelInput{
		Matricule: "MAT001",
		LastName:  "Kone",
		FirstName: "Awa",
		Password:  "another-pass",
		Role:      auth.RoleSeller,
	})
	assert.ErrorIs(t, err, personnel.ErrDuplicateMatricule)
}

func TestUpdatePersonnel_NotFound(t *testing.T) {
	repo := &mockPersonnelRepo{byMatricule: map[string]*model.Personnel{}}
	uc := NewPersonnelUseCase(repo, &mockConnlogRepo{}, newMockSessionStore(), testLogger())

	_, err := uc.UpdatePersonnel(context.Background(), "MAT404", &dto.UpdatePersonnelInput{
		Matricule: "MAT404",
		LastName:  "X",
		FirstName: "Y",
	})
	assert.ErrorIs(t, err, personnel.ErrPersonnelNotFound)
}

func TestDeletePersonnel_NotFound(t *testing.T) {
	repo := &mockPersonnelRepo{byMatricule: map[string]*model.Personnel{}}
	uc := NewPersonnelUseCase(repo, &mockConnlogRepo{}, newMockSessionStore(), testLogger())

	err := uc.DeletePersonnel(context.Background(), "MAT404")
	assert.ErrorIs(t, err, personnel.ErrPersonnelNotFound)
}
