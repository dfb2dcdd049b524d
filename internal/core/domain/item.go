package domain

import "github.com/shopspring/decimal"

// Item is an inventory item with a running stock quantity.
type Item struct {
	ItemID        string          `json:"id" yaml:"id"`
	Code          string          `json:"code" yaml:"code"`
	Name          string          `json:"name" yaml:"name"`
	StockQuantity decimal.Decimal `json:"stockQuantity" yaml:"stock_quantity"`
}
