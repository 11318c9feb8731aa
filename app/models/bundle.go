package models

import "github.com/shopspring/decimal"

type Bundle struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	ProductIDs    []string        `json:"productIds"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Image         string          `json:"image"`
}

func (b *Bundle) Contains(productID string) bool {
	for _, id := range b.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}
