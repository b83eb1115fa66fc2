package dto

type SaleLineInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type SubmitSaleInput struct {
	Lines []SaleLineInput `json:"basket" binding:"required"`
}
