package model

// Doctor is a directory entry used by the role-filtered roster. It is
// seed data for presentation; appointments reference doctors by id as
// a soft reference.
type Doctor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Contact    string `json:"contact"`
	Status     string `json:"status"`
}
