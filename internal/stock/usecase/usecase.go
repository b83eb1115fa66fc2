package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/stock"
	"github.com/mkouadio/pharmacy-backend/internal/stock/dto"
	"github.com/mkouadio/pharmacy-backend/pkg/cache"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
	"go.uber.org/zap"
)

const nearExpirationWindow = time.Hour * 24 * 30

type stockUseCase struct {
	repo              stock.Repository
	cache             *cache.RedisClient
	logger            logger.ZapLogger
	lowStockThreshold int64
}

func NewStockUseCase(repo stock.Repository, c *cache.RedisClient, log logger.ZapLogger, lowStockThreshold int64) stock.UseCase {
	return &stockUseCase{
		repo:              repo,
		cache:             c,
		logger:            log,
		lowStockThreshold: lowStockThreshold,
	}
}

func (uc *stockUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *stockUseCase) GetDashboard(ctx context.Context) (*dto.Dashboard, error) {
	now := time.Now()

	lowStock, err := uc.repo.ListLowStock(ctx, uc.lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}

	expired, err := uc.repo.ListExpired(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list expired: %w", err)
	}

	nearExpiration, err := uc.repo.ListByExpirationWindow(ctx, now, now.Add(nearExpirationWindow))
	if err != nil {
		return nil, fmt.Errorf("list near expiration: %w", err)
	}

	totalStock, err := uc.repo.TotalStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("total stock: %w", err)
	}

	totalProducts, err := uc.repo.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	return &dto.Dashboard{
		LowStock:       lowStock,
		Expired:        expired,
		NearExpiration: nearExpiration,
		TotalStock:     totalStock,
		TotalProducts:  totalProducts,
	}, nil
}

func (uc *stockUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	// Product ids are assigned by the pharmacy, not generated.
	existing, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, stock.ErrDuplicateID
	}

	p := &model.Product{
		ID:        input.ID,
		Name:      input.Name,
		Price:     input.Price,
		Quantity:  input.Quantity,
		Route:     input.Route,
		Form:      input.Form,
		CreatedOn: input.CreatedOn,
		EnteredOn: input.EnteredOn,
		ExpiresOn: input.ExpiresOn,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *stockUseCase) UpdateProduct(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error) {
	// Inventory edits are a separate writer path from sales; a short redis
	// lock keeps two terminals from clobbering each other's edits.
	lockKey := fmt.Sprintf("lock:stock:%d", id)
	lockValue := uuid.New().String()

	acquired := false
	for i := 0; i < 3; i++ {
		ok, err := uc.cache.AcquireLock(ctx, lockKey, lockValue, 5*time.Second)
		if err != nil {
			uc.logger.Error("failed to acquire stock lock", zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if !acquired {
		return nil, stock.ErrStockBusy
	}
	defer uc.cache.ReleaseLock(ctx, lockKey, lockValue)

	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, stock.ErrProductNotFound
	}

	existing.Name = input.Name
	existing.Price = input.Price
	existing.Quantity = input.Quantity
	existing.Route = input.Route
	existing.Form = input.Form
	existing.CreatedOn = input.CreatedOn
	existing.EnteredOn = input.EnteredOn
	existing.ExpiresOn = input.ExpiresOn

	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *stockUseCase) DeleteProduct(ctx context.Context, id int64) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return stock.ErrProductNotFound
	}
	return uc.repo.Delete(ctx, id)
}
