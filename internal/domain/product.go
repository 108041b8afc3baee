package domain

// Product is a catalog entry. Prices are in whole rupees; every soap in the
// current range sells at a single flat price.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Price    int64  `json:"price"`
}
