package dto

import "github.com/mkouadio/pharmacy-backend/internal/model"

type SaleOutcome struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Lines   []model.Sale `json:"lines,omitempty"`
}
