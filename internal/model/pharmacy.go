package model

type Pharmacy struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Phone          string `db:"phone" json:"phone"`
	FooterMessage1 string `db:"footer_message_1" json:"footer_message_1"`
	FooterMessage2 string `db:"footer_message_2" json:"footer_message_2"`
}
