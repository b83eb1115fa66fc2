package model

import "time"

const (
	LogActionLogin  = "login"
	LogActionLogout = "logout"
)

type ConnectionLog struct {
	ID        int64     `db:"id" json:"id"`
	LastName  string    `db:"last_name" json:"last_name"`
	FirstName string    `db:"first_name" json:"first_name"`
	Position  string    `db:"position" json:"position"`
	Action    string    `db:"action" json:"action"`
	LoggedAt  time.Time `db:"logged_at" json:"logged_at"`
}
