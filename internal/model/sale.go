package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one committed ledger line. Rows are append-only: there is no
// update or delete path for them anywhere in the application.
type Sale struct {
	ID         string          `db:"id" json:"id"`
	ProductID  int64           `db:"product_id" json:"product_id"`
	Quantity   int64           `db:"quantity" json:"quantity"`
	TotalPrice decimal.Decimal `db:"total_price" json:"total_price"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}
