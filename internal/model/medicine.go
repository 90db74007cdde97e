package model

// Medicine is a catalog entry. The catalog is read-mostly; stock is
// illustrative and is not decremented when orders are placed.
type Medicine struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}
