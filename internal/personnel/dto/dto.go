package dto

type PersonnelFilters struct {
	Matricule string
	LastName  string
	FirstName string
	Position  string
	Contract  string
}

type LoginResult struct {
	Token    string `json:"token"`
	Redirect string `json:"redirect"`
}
