// Package catalog serves the static product range. The shop sells a small
// fixed set of handmade soaps, so the catalog is compiled in rather than
// loaded from a database.
package catalog

import (
	"strconv"

	"github.com/caffeinepub/amala-organics-1/internal/domain"
	"github.com/caffeinepub/amala-organics-1/pkg/errors"
)

var products = []domain.Product{
	{ID: 1, Name: "Multani Mitti Natural Soap", ImageURL: "/assets/uploads/WhatsApp-Image-2026-02-26-at-10.24.29-PM-1--1.jpeg", Price: 80},
	{ID: 2, Name: "Neem and Tulsi Natural Soap", ImageURL: "/assets/uploads/WhatsApp-Image-2026-02-26-at-10.24.30-PM-2--2.jpeg", Price: 80},
	{ID: 3, Name: "Goat Milk Natural Soap", ImageURL: "/assets/uploads/WhatsApp-Image-2026-02-26-at-10.24.28-PM-1--3.jpeg", Price: 80},
	{ID: 4, Name: "Sandalwood Natural Soap", ImageURL: "/assets/uploads/WhatsApp-Image-2026-02-26-at-10.24.30-PM-3--4.jpeg", Price: 80},
	{ID: 5, Name: "Nalangu Maavu Natural Soap", ImageURL: "/assets/uploads/WhatsApp-Image-2026-02-26-at-10.24.30-PM-5.jpeg", Price: 80},
	{ID: 6, Name: "Mangosteen Natural Soap", ImageURL: "/assets/uploads/WhatsApp-Image-2026-02-26-at-10.24.29-PM-6.jpeg", Price: 80},
	{ID: 7, Name: "Kuppamieni Natural Soap", ImageURL: "/assets/uploads/WhatsApp-Image-2026-02-26-at-10.24.28-PM-2--7.jpeg", Price: 80},
	{ID: 8, Name: "Charcoal & Sage Natural Soap", ImageURL: "/assets/uploads/WhatsApp-Image-2026-02-26-at-10.24.28-PM-8.jpeg", Price: 80},
}

// All returns every product in catalog order. The returned slice is a copy;
// callers may mutate it freely.
func All() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// ByID returns the product with the given ID, or a NotFound error.
func ByID(id int) (domain.Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, errors.NotFound("product", strconv.Itoa(id))
}
