package domain

import "fmt"

// StockPolicy decides what happens when a posting leaves an item's stock below zero.
type StockPolicy string

const (
	// StockPolicyReject aborts the unit of work.
	StockPolicyReject StockPolicy = "reject"
	// StockPolicyWarn lets the posting through and logs a warning.
	StockPolicyWarn StockPolicy = "warn"
)

// ParseStockPolicy converts a configuration value into a StockPolicy.
func ParseStockPolicy(s string) (StockPolicy, error) {
	switch StockPolicy(s) {
	case StockPolicyReject, StockPolicyWarn:
		return StockPolicy(s), nil
	case "":
		return StockPolicyReject, nil
	}
	return "", fmt.Errorf("unknown stock policy %q", s)
}
