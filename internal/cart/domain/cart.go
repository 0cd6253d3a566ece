package domain

import "github.com/shopspring/decimal"

// Line is one cart entry. Name, price and image are a snapshot taken
// when the product was first added; later catalog changes do not
// retroactively reprice a cart.
type Line struct {
	ProductID int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// Cart is an ordered sequence of lines, at most one per product.
type Cart struct {
	Lines []Line
}

func (c *Cart) Find(productID int) *Line {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

func (c *Cart) Remove(productID int) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) ItemCount() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}
