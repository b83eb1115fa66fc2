package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/stock/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var products []model.Product
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ID != nil {
		conditions = append(conditions, "id = :id")
		args["id"] = *f.ID
	}
	if f.Name != "" {
		conditions = append(conditions, "name ILIKE :name")
		args["name"] = "%" + f.Name + "%"
	}
	if f.Route != "" {
		conditions = append(conditions, "route ILIKE :route")
		args["route"] = "%" + f.Route + "%"
	}
	if f.Form != "" {
		conditions = append(conditions, "form ILIKE :form")
		args["form"] = "%" + f.Form + "%"
	}
	if f.Quantity != nil {
		conditions = append(conditions, "quantity = :quantity")
		args["quantity"] = *f.Quantity
	}
	if f.Price != nil {
		conditions = append(conditions, "price = :price")
		args["price"] = *f.Price
	}
	if f.CreatedOn != nil {
		conditions = append(conditions, "created_on = :created_on")
		args["created_on"] = *f.CreatedOn
	}
	if f.EnteredOn != nil {
		conditions = append(conditions, "entered_on = :entered_on")
		args["entered_on"] = *f.EnteredOn
	}
	if f.ExpiresOn != nil {
		conditions = append(conditions, "expires_on = :expires_on")
		args["expires_on"] = *f.ExpiresOn
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM products" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	query := "SELECT * FROM products" + whereClause + " ORDER BY name ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &products, args)
	return products, count, err
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, name, price, quantity, route, form,
            created_on, entered_on, expires_on
        )
        VALUES (
            :id, :name, :price, :quantity, :route, :form,
            :created_on, :entered_on, :expires_on
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name = :name,
            price = :price,
            quantity = :quantity,
            route = :route,
            form = :form,
            created_on = :created_on,
            entered_on = :entered_on,
            expires_on = :expires_on
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *PGRepository) ListLowStock(ctx context.Context, threshold int64) ([]model.Product, error) {
	var products []model.Product
	query := `SELECT * FROM products WHERE quantity < $1 ORDER BY quantity ASC`
	err := r.DB.SelectContext(ctx, &products, query, threshold)
	return products, err
}

func (r *PGRepository) ListExpired(ctx context.Context, asOf time.Time) ([]model.Product, error) {
	var products []model.Product
	query := `SELECT * FROM products WHERE expires_on < $1 ORDER BY expires_on ASC`
	err := r.DB.SelectContext(ctx, &products, query, asOf)
	return products, err
}

func (r *PGRepository) ListByExpirationWindow(ctx context.Context, start, end time.Time) ([]model.Product, error) {
	var products []model.Product
	query := `SELECT * FROM products WHERE expires_on BETWEEN $1 AND $2 ORDER BY expires_on ASC`
	err := r.DB.SelectContext(ctx, &products, query, start, end)
	return products, err
}

func (r *PGRepository) TotalStock(ctx context.Context) (int64, error) {
	var total sql.NullInt64
	err := r.DB.GetContext(ctx, &total, `SELECT SUM(quantity) FROM products`)
	if err != nil {
		return 0, err
	}
	return total.Int64, nil
}

func (r *PGRepository) CountProducts(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`)
	return count, err
}
