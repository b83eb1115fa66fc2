package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/stock"
	"github.com/mkouadio/pharmacy-backend/internal/stock/dto"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
)

type mockStockRepo struct {
	products map[int64]*model.Product

	lowStockErr error
	created     []int64
	deleted     []int64
}

func newMockStockRepo(products ...*model.Product) *mockStockRepo {
	m := &mockStockRepo{products: map[int64]*model.Product{}}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockStockRepo) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockStockRepo) FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	out := make([]model.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (m *mockStockRepo) Create(ctx context.Context, p *model.Product) error {
	m.products[p.ID] = p
	m.created = append(m.created, p.ID)
	return nil
}

func (m *mockStockRepo) Update(ctx context.Context, p *model.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *mockStockRepo) Delete(ctx context.Context, id int64) error {
	delete(m.products, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockStockRepo) ListLowStock(ctx context.Context, threshold int64) ([]model.Product, error) {
	if m.lowStockErr != nil {
		return nil, m.lowStockErr
	}
	var out []model.Product
	for _, p := range m.products {
		if p.Quantity < threshold {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockStockRepo) ListExpired(ctx context.Context, asOf time.Time) ([]model.Product, error) {
	var out []model.Product
	for _, p := range m.products {
		if p.ExpiresOn.Before(asOf) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockStockRepo) ListByExpirationWindow(ctx context.Context, start, end time.Time) ([]model.Product, error) {
	var out []model.Product
	for _, p := range m.products {
		if !p.ExpiresOn.Before(start) && !p.ExpiresOn.After(end) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockStockRepo) TotalStock(ctx context.Context) (int64, error) {
	var total int64
	for _, p := range m.products {
		total += p.Quantity
	}
	return total, nil
}

func (m *mockStockRepo) CountProducts(ctx context.Context) (int, error) {
	return len(m.products), nil
}

func newTestUseCase(repo *mockStockRepo) stock.UseCase {
	log := logger.NewZapLogger(&logger.ZapLoggerConfig{
		Encoding:          "console",
		Level:             "error",
		DisableCaller:     true,
		DisableStacktrace: true,
	})
	return NewStockUseCase(repo, nil, log, 10)
}

func product(id, quantity int64, expiresIn time.Duration) *model.Product {
	return &model.Product{
		ID:        id,
		Name:      "paracetamol 500mg",
		Price:     decimal.NewFromFloat(1.50),
		Quantity:  quantity,
		ExpiresOn: time.Now().Add(expiresIn),
	}
}

func TestGetDashboard_ComposesAggregates(t *testing.T) {
	repo := newMockStockRepo(
		product(1, 3, 365*24*time.Hour),  // low stock
		product(2, 50, -24*time.Hour),    // expired
		product(3, 40, 15*24*time.Hour),  // near expiration
		product(4, 80, 365*24*time.Hour), // healthy
	)
	uc := newTestUseCase(repo)

	dash, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, dash.LowStock, 1)
	assert.Equal(t, int64(1), dash.LowStock[0].ID)
	require.Len(t, dash.Expired, 1)
	assert.Equal(t, int64(2), dash.Expired[0].ID)
	require.Len(t, dash.NearExpiration, 1)
	assert.Equal(t, int64(3), dash.NearExpiration[0].ID)
	assert.Equal(t, int64(173), dash.TotalStock)
	assert.Equal(t, 4, dash.TotalProducts)
}

func TestGetDashboard_RepositoryFailure(t *testing.T) {
	repo := newMockStockRepo()
	repo.lowStockErr = errors.New("db down")
	uc := newTestUseCase(repo)

	_, err := uc.GetDashboard(context.Background())
	assert.Error(t, err)
}

func TestCreateProduct_Success(t *testing.T) {
	repo := newMockStockRepo()
	uc := newTestUseCase(repo)

	created, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		ID:       42,
		Name:     "amoxicillin 250mg",
		Price:    decimal.NewFromFloat(4.75),
		Quantity: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, []int64{42}, repo.created)
}

func TestCreateProduct_DuplicateID(t *testing.T) {
	repo := newMockStockRepo(product(42, 5, 24*time.Hour))
	uc := newTestUseCase(repo)

	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		ID:       42,
		Name:     "amoxicillin 250mg",
		Price:    decimal.NewFromFloat(4.75),
		Quantity: 20,
	})
	assert.ErrorIs(t, err, stock.ErrDuplicateID)
	assert.Empty(t, repo.created)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	repo := newMockStockRepo()
	uc := newTestUseCase(repo)

	err := uc.DeleteProduct(context.Background(), 99)
	assert.ErrorIs(t, err, stock.ErrProductNotFound)
	assert.Empty(t, repo.deleted)
}

func TestDeleteProduct_Success(t *testing.T) {
	repo := newMockStockRepo(product(7, 5, 24*time.Hour))
	uc := newTestUseCase(repo)

	require.NoError(t, uc.DeleteProduct(context.Background(), 7))
	assert.Equal(t, []int64{7}, repo.deleted)
}
