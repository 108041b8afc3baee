package domain

import "time"

// Line is a single product entry in a cart. Product details are denormalized
// onto the line so the cart renders without a catalog lookup.
type Line struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Subtotal returns price times quantity for this line.
func (l Line) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Cart holds the shopping cart for one browser session.
type Cart struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Lines     []Line    `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCart creates an empty cart for the given session.
func NewCart(id, sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        id,
		SessionID: sessionID,
		Lines:     []Line{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Total returns the sum of line subtotals in rupees.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount returns the total quantity across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// FindLineIndex returns the index of the line holding productID, or -1.
func (c *Cart) FindLineIndex(productID int) int {
	for i, l := range c.Lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
