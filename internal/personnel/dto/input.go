package dto

import "time"

type LoginInput struct {
	Matricule string `json:"matricule" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type CreatePersonnelInput struct {
	Matricule string    `json:"matricule" binding:"required"`
	LastName  string    `json:"last_name" binding:"required"`
	FirstName string    `json:"first_name" binding:"required"`
	BirthDate time.Time `json:"birth_date"`
	HiredOn   time.Time `json:"hired_on"`
	Diploma   string    `json:"diploma"`
	Position  string    `json:"position"`
	Contract  string    `json:"contract"`
	Password  string    `json:"password" binding:"required,min=8"`
	Role      string    `json:"role" binding:"required"`
}

type UpdatePersonnelInput struct {
	Matricule string    `json:"matricule" binding:"required"`
	LastName  string    `json:"last_name" binding:"required"`
	FirstName string    `json:"first_name" binding:"required"`
	BirthDate time.Time `json:"birth_date"`
	HiredOn   time.Time `json:"hired_on"`
	Diploma   string    `json:"diploma"`
	Position  string    `json:"position"`
	Contract  string    `json:"contract"`
}
