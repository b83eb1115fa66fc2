package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/personnel/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByMatricule(ctx context.Context, matricule string) (*model.Personnel, error) {
	var p model.Personnel
	// Stored matricules may contain stray spaces from badge printers.
	query := `SELECT * FROM personnel WHERE REPLACE(matricule, ' ', '') = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, strings.ReplaceAll(matricule, " ", ""))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.PersonnelFilters) ([]model.Personnel, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.Matricule != "" {
		conditions = append(conditions, "matricule ILIKE :matricule")
		args["matricule"] = "%" + f.Matricule + "%"
	}
	if f.LastName != "" {
		conditions = append(conditions, "last_name ILIKE :last_name")
		args["last_name"] = "%" + f.LastName + "%"
	}
	if f.FirstName != "" {
		conditions = append(conditions, "first_name ILIKE :first_name")
		args["first_name"] = "%" + f.FirstName + "%"
	}
	if f.Position != "" {
		conditions = append(conditions, "position = :position")
		args["position"] = f.Position
	}
	if f.Contract != "" {
		conditions = append(conditions, "contract = :contract")
		args["contract"] = f.Contract
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := "SELECT * FROM personnel" + whereClause + " ORDER BY last_name ASC, first_name ASC"

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	var staff []model.Personnel
	err = nstmt.SelectContext(ctx, &staff, args)
	return staff, err
}

func (r *PGRepository) Create(ctx context.Context, p *model.Personnel) error {
	query := `
        INSERT INTO personnel (
            matricule, last_name, first_name, birth_date, hired_on,
            diploma, position, contract, password_hash, role
        )
        VALUES (
            :matricule, :last_name, :first_name, :birth_date, :hired_on,
            :diploma, :position, :contract, :password_hash, :role
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) Update(ctx context.Context, matricule string, p *model.Personnel) error {
	query := `
        UPDATE personnel
        SET matricule = :matricule,
            last_name = :last_name,
            first_name = :first_name,
            birth_date = :birth_date,
            hired_on = :hired_on,
            diploma = :diploma,
            position = :position,
            contract = :contract
        WHERE matricule = :current_matricule
    `
	args := map[string]interface{}{
		"matricule":         p.Matricule,
		"last_name":         p.LastName,
		"first_name":        p.FirstName,
		"birth_date":        p.BirthDate,
		"hired_on":          p.HiredOn,
		"diploma":           p.Diploma,
		"position":          p.Position,
		"contract":          p.Contract,
		"current_matricule": matricule,
	}
	_, err := r.DB.NamedExecContext(ctx, query, args)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, matricule string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM personnel WHERE matricule = $1`, matricule)
	return err
}
