package dto

type LogFilters struct {
	LastName  string
	FirstName string
	Position  string
	Action    string
}
