package models

import "github.com/shopspring/decimal"

// Every simulated payment settles immediately, so history records carry a
// single fixed status.
const OrderStatusPaidDelivered = "Paid & Delivered"

// OrderRecord is a snapshot taken at purchase time. Title and price are
// captured by value, so later catalog edits do not rewrite history.
type OrderRecord struct {
	OrderID string          `json:"orderId"`
	Date    string          `json:"date"`
	Title   string          `json:"title"`
	Price   decimal.Decimal `json:"price"`
	Status  string          `json:"status"`
	Method  string          `json:"method"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
