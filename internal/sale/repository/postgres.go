package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/sale"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

type pgTx struct {
	tx *sqlx.Tx
}

func (t *pgTx) Commit() error   { return t.tx.Commit() }
func (t *pgTx) Rollback() error { return t.tx.Rollback() }

func (r *PGRepository) BeginTx(ctx context.Context) (sale.Tx, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &pgTx{tx: tx}, nil
}

func (r *PGRepository) LockProducts(ctx context.Context, tx sale.Tx, ids []int64) (map[int64]model.ProductStock, error) {
	if len(ids) == 0 {
		return map[int64]model.ProductStock{}, nil
	}
	ptx := tx.(*pgTx).tx

	query, args, err := sqlx.In(`SELECT id, quantity, price FROM products WHERE id IN (?) FOR UPDATE`, ids)
	if err != nil {
		return nil, err
	}
	query = ptx.Rebind(query)

	var rows []model.ProductStock
	if err := ptx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	locked := make(map[int64]model.ProductStock, len(rows))
	for _, row := range rows {
		locked[row.ID] = row
	}
	return locked, nil
}

func (r *PGRepository) InsertSales(ctx context.Context, tx sale.Tx, sales []model.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	ptx := tx.(*pgTx).tx

	query := `
        INSERT INTO sales (id, product_id, quantity, total_price, created_at)
        VALUES (:id, :product_id, :quantity, :total_price, :created_at)
    `
	_, err := ptx.NamedExecContext(ctx, query, sales)
	return err
}

func (r *PGRepository) DecrementStock(ctx context.Context, tx sale.Tx, productID, quantity int64) error {
	ptx := tx.(*pgTx).tx

	res, err := ptx.ExecContext(ctx,
		`UPDATE products SET quantity = quantity - $1 WHERE id = $2`,
		quantity, productID,
	)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("product %d no longer exists", productID)
	}
	return nil
}
