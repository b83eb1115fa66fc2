package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64           `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	Route     string          `db:"route" json:"route"`
	Form      string          `db:"form" json:"form"`
	CreatedOn time.Time       `db:"created_on" json:"created_on"`
	EnteredOn time.Time       `db:"entered_on" json:"entered_on"`
	ExpiresOn time.Time       `db:"expires_on" json:"expires_on"`
}

// ProductStock is the snapshot of a stock row read under a row lock
// inside a sale transaction.
type ProductStock struct {
	ID       int64           `db:"id"`
	Quantity int64           `db:"quantity"`
	Price    decimal.Decimal `db:"price"`
}
