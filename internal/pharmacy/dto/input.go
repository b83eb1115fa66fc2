package dto

type SaveSettingsInput struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	FooterMessage1 string `json:"footer_message_1"`
	FooterMessage2 string `json:"footer_message_2"`
}
