package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/mkouadio/pharmacy-backend/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Pharmacy) error {
	query := `
        INSERT INTO pharmacies (name, phone, footer_message_1, footer_message_2)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	return r.DB.GetContext(ctx, &p.ID, query, p.Name, p.Phone, p.FooterMessage1, p.FooterMessage2)
}

func (r *PGRepository) FindLatest(ctx context.Context) (*model.Pharmacy, error) {
	var p model.Pharmacy
	query := `SELECT * FROM pharmacies ORDER BY id DESC LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
