package models

import "github.com/shopspring/decimal"

// Account is a row of the accounts table.
type Account struct {
	AccountID string          `db:"account_id"`
	Code      string          `db:"code"`
	Name      string          `db:"name"`
	GroupID   string          `db:"group_id"`
	Balance   decimal.Decimal `db:"balance"`
}

// Party is a row of the parties table.
type Party struct {
	PartyID   string          `db:"party_id"`
	Code      string          `db:"code"`
	Name      string          `db:"name"`
	PartyType string          `db:"party_type"`
	NTN       string          `db:"ntn"`
	STRN      string          `db:"strn"`
	Balance   decimal.Decimal `db:"balance"`
}

// Item is a row of the items table.
type Item struct {
	ItemID        string          `db:"item_id"`
	Code          string          `db:"code"`
	Name          string          `db:"name"`
	StockQuantity decimal.Decimal `db:"stock_quantity"`
}
