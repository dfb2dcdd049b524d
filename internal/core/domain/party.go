package domain

import "github.com/shopspring/decimal"

// PartyType distinguishes customers from suppliers.
type PartyType string

const (
	Customer PartyType = "Customer"
	Supplier PartyType = "Supplier"
)

// Party is a counterparty (customer or supplier) with a running balance.
type Party struct {
	PartyID   string          `json:"id" yaml:"id"`
	Code      string          `json:"code" yaml:"code"`
	Name      string          `json:"name" yaml:"name"`
	PartyType PartyType       `json:"partyType" yaml:"party_type"`
	NTN       string          `json:"ntn" yaml:"ntn"`   // national tax number
	STRN      string          `json:"strn" yaml:"strn"` // sales tax registration number
	Balance   decimal.Decimal `json:"balance" yaml:"balance"`
}
