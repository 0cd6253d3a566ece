package domain

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryPainting Category = "painting"
	CategoryBook     Category = "book"
)

func (c Category) Valid() bool {
	return c == CategoryPainting || c == CategoryBook
}

// Product is a catalog record. Products are read-only for the lifetime
// of a session; the cart keeps its own snapshot of the fields it needs.
type Product struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Category         Category        `json:"category"`
	Price            decimal.Decimal `json:"price"`
	Image            string          `json:"image"`
	Featured         bool            `json:"featured"`
	Description      string          `json:"description"`
	Details          string          `json:"details"`
	ShortDescription string          `json:"shortDescription"`
}
