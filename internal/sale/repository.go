package sale

import (
	"context"

	"github.com/mkouadio/pharmacy-backend/internal/model"
)

// Tx is one atomic unit of work over the stock rows and the sale ledger.
type Tx interface {
	Commit() error
	Rollback() error
}

type Repository interface {
	BeginTx(ctx context.Context) (Tx, error)

	// LockProducts reads quantity and price for the given ids under
	// row-level exclusive locks held until the transaction ends. Ids with
	// no matching row are simply absent from the result.
	LockProducts(ctx context.Context, tx Tx, ids []int64) (map[int64]model.ProductStock, error)

	// InsertSales appends ledger lines within the transaction.
	InsertSales(ctx context.Context, tx Tx, sales []model.Sale) error

	// DecrementStock subtracts quantity from one locked product row.
	DecrementStock(ctx context.Context, tx Tx, productID, quantity int64) error
}
