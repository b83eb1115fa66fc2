package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mkouadio/pharmacy-backend/internal/connlog/dto"
	"github.com/mkouadio/pharmacy-backend/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Insert(ctx context.Context, log *model.ConnectionLog) error {
	query := `
        INSERT INTO connection_logs (last_name, first_name, position, action, logged_at)
        VALUES (:last_name, :first_name, :position, :action, :logged_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, log)
	return err
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.LogFilters) ([]model.ConnectionLog, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.LastName != "" {
		conditions = append(conditions, "last_name ILIKE :last_name")
		args["last_name"] = "%" + f.LastName + "%"
	}
	if f.FirstName != "" {
		conditions = append(conditions, "first_name ILIKE :first_name")
		args["first_name"] = "%" + f.FirstName + "%"
	}
	if f.Position != "" {
		conditions = append(conditions, "position ILIKE :position")
		args["position"] = "%" + f.Position + "%"
	}
	if f.Action != "" {
		conditions = append(conditions, "action ILIKE :action")
		args["action"] = "%" + f.Action + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := "SELECT * FROM connection_logs" + whereClause + " ORDER BY logged_at DESC"

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	var logs []model.ConnectionLog
	err = nstmt.SelectContext(ctx, &logs, args)
	return logs, err
}
