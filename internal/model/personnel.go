package model

import "time"

type Personnel struct {
	Matricule    string    `db:"matricule" json:"matricule"`
	LastName     string    `db:"last_name" json:"last_name"`
	FirstName    string    `db:"first_name" json:"first_name"`
	BirthDate    time.Time `db:"birth_date" json:"birth_date"`
	HiredOn      time.Time `db:"hired_on" json:"hired_on"`
	Diploma      string    `db:"diploma" json:"diploma"`
	Position     string    `db:"position" json:"position"`
	Contract     string    `db:"contract" json:"contract"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
}
