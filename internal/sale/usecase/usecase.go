package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/sale"
	"github.com/mkouadio/pharmacy-backend/internal/sale/dto"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type saleUseCase struct {
	repo   sale.Repository
	logger logger.ZapLogger
}

func NewSaleUseCase(repo sale.Repository, log logger.ZapLogger) sale.UseCase {
	return &saleUseCase{
		repo:   repo,
		logger: log,
	}
}

// SubmitSale runs the check-then-commit protocol: lock the stock rows for
// every product in the basket, validate aggregated demand against the locked
// quantities, append one ledger line per basket line, apply the decrements
// and commit. Any failure rolls the whole unit of work back.
func (uc *saleUseCase) SubmitSale(ctx context.Context, input *dto.SubmitSaleInput) ([]model.Sale, error) {
	if input == nil || len(input.Lines) == 0 {
		return nil, sale.ErrEmptyBasket
	}

	// Lines with non-positive ids or quantities are dropped; demand for the
	// same product across several lines is summed before the stock check.
	valid := make([]dto.SaleLineInput, 0, len(input.Lines))
	demand := make(map[int64]int64)
	for _, line := range input.Lines {
		if line.ProductID <= 0 || line.Quantity <= 0 {
			continue
		}
		valid = append(valid, line)
		demand[line.ProductID] += line.Quantity
	}
	if len(valid) == 0 {
		return nil, sale.ErrEmptyBasket
	}

	// Lock rows in ascending id order so overlapping baskets cannot deadlock.
	ids := make([]int64, 0, len(demand))
	for id := range demand {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	tx, err := uc.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin sale transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			uc.logger.Error("sale transaction rollback failed", zap.Error(rbErr))
		}
	}()

	locked, err := uc.repo.LockProducts(ctx, tx, ids)
	if err != nil {
		return nil, fmt.Errorf("lock stock rows: %w", err)
	}

	// A product missing from the locked read counts as insufficient stock.
	for _, id := range ids {
		row, ok := locked[id]
		if !ok || row.Quantity < demand[id] {
			return nil, &sale.InsufficientStockError{ProductID: id}
		}
	}

	now := time.Now()
	sales := make([]model.Sale, 0, len(valid))
	for _, line := range valid {
		price := locked[line.ProductID].Price
		sales = append(sales, model.Sale{
			ID:         uuid.New().String(),
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			TotalPrice: price.Mul(decimal.NewFromInt(line.Quantity)),
			CreatedAt:  now,
		})
	}

	if err := uc.repo.InsertSales(ctx, tx, sales); err != nil {
		return nil, fmt.Errorf("append sale lines: %w", err)
	}

	// Decrements come from the same aggregated demand the check validated.
	for _, id := range ids {
		if err := uc.repo.DecrementStock(ctx, tx, id, demand[id]); err != nil {
			return nil, fmt.Errorf("decrement stock for product %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sale transaction: %w", err)
	}
	committed = true

	uc.logger.Info("sale committed",
		zap.Int("lines", len(sales)),
		zap.Int("products", len(ids)),
	)
	return sales, nil
}
