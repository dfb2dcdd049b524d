package domain_test

import (
	"testing"

	"github.com/SscSPs/trading_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionType(t *testing.T) {
	tests := []struct {
		txType     domain.TransactionType
		valid      bool
		movesStock bool
	}{
		{domain.Sales, true, true},
		{domain.Purchase, true, true},
		{domain.Payment, true, false},
		{domain.Receipt, true, false},
		{domain.Journal, true, false},
		{domain.TransactionType("Transfer"), false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.txType), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.txType.Valid())
			assert.Equal(t, tt.movesStock, tt.txType.MovesStock())
			assert.Equal(t, tt.movesStock, tt.txType.Taxable())
		})
	}
}

func TestTransaction_HasParty(t *testing.T) {
	empty := ""
	party := "p-1"
	assert.False(t, domain.Transaction{}.HasParty())
	assert.False(t, domain.Transaction{PartyID: &empty}.HasParty())
	assert.True(t, domain.Transaction{PartyID: &party}.HasParty())
}

func TestParseStockPolicy(t *testing.T) {
	p, err := domain.ParseStockPolicy("")
	require.NoError(t, err)
	assert.Equal(t, domain.StockPolicyReject, p)

	p, err = domain.ParseStockPolicy("warn")
	require.NoError(t, err)
	assert.Equal(t, domain.StockPolicyWarn, p)

	_, err = domain.ParseStockPolicy("allow")
	assert.Error(t, err)
}
