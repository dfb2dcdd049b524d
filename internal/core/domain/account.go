package domain

import (
	"github.com/shopspring/decimal"
)

// Account is a general-ledger account carrying a running balance.
type Account struct {
	AccountID string          `json:"id" yaml:"id"`
	Code      string          `json:"code" yaml:"code"`
	Name      string          `json:"name" yaml:"name"`
	GroupID   string          `json:"groupID" yaml:"group_id"`
	Balance   decimal.Decimal `json:"balance" yaml:"balance"`
}
