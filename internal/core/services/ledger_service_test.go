package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/trading_ledger/internal/apperrors"
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	"github.com/SscSPs/trading_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

type LedgerTestSuite struct {
	suite.Suite
	ctx         context.Context
	uow         *memUnitOfWork
	poster      *services.LedgerPoster
	reverser    *services.LedgerReverser
	coordinator *services.UpdateCoordinator
}

func seedLedger() *memLedger {
	m := newMemLedger()
	for _, id := range []string{"receivable", "sales", "inventory", "payable", "cash", "expenses"} {
		m.accounts[id] = decimal.Zero
	}
	m.parties["cust-1"] = decimal.Zero
	m.parties["supp-1"] = decimal.Zero
	m.partyTax["cust-1"] = [2]string{"1234567-8", "STRN-001"}
	m.partyTax["supp-1"] = [2]string{"7654321-0", "STRN-002"}
	m.items["item-1"] = dec("500")
	return m
}

func (s *LedgerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.build(domain.StockPolicyReject)
}

func (s *LedgerTestSuite) build(policy domain.StockPolicy) {
	s.uow = &memUnitOfWork{state: seedLedger()}
	taxWriter := services.NewTaxRegisterWriter()
	s.poster = services.NewLedgerPoster(s.uow, taxWriter, policy)
	s.reverser = services.NewLedgerReverser(s.uow, taxWriter, policy)
	s.coordinator = services.NewUpdateCoordinator(s.uow, s.poster, s.reverser, policy)
}

// salesExample is a sale of 100 units at 10 plus 170 tax to cust-1.
func salesExample() domain.Transaction {
	return domain.Transaction{
		VoucherNo: "S-1",
		Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Type:      domain.Sales,
		Amount:    dec("1000"),
		TaxAmount: dec("170"),
		PartyID:   strPtr("cust-1"),
		Lines: []domain.TransactionLine{
			{AccountID: "sales", ItemID: strPtr("item-1"), Quantity: decPtr("100"), Rate: decPtr("10"),
				Amount: dec("1000"), TaxAmount: dec("170"), TotalAmount: dec("1170"), Side: domain.Credit},
			{AccountID: "receivable", Amount: dec("1170"), TotalAmount: dec("1170"), Side: domain.Debit},
		},
	}
}

func purchase(voucher string, qty string, value string) domain.Transaction {
	return domain.Transaction{
		VoucherNo: voucher,
		Date:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Type:      domain.Purchase,
		Amount:    dec(value),
		PartyID:   strPtr("supp-1"),
		Lines: []domain.TransactionLine{
			{AccountID: "inventory", ItemID: strPtr("item-1"), Quantity: decPtr(qty), Amount: dec(value), TotalAmount: dec(value), Side: domain.Debit},
			{AccountID: "payable", Amount: dec(value), TotalAmount: dec(value), Side: domain.Credit},
		},
	}
}

func (s *LedgerTestSuite) state() *memLedger { return s.uow.state }

func (s *LedgerTestSuite) assertDecimal(expected string, actual decimal.Decimal, msgAndArgs ...any) {
	s.True(dec(expected).Equal(actual), append([]any{"expected %s, got %s", expected, actual.String()}, msgAndArgs...)...)
}

type balanceSnapshot struct {
	accounts map[string]decimal.Decimal
	parties  map[string]decimal.Decimal
	items    map[string]decimal.Decimal
	taxRows  int
	txns     int
}

func snapshot(m *memLedger) balanceSnapshot {
	return balanceSnapshot{
		accounts: copyMap(m.accounts),
		parties:  copyMap(m.parties),
		items:    copyMap(m.items),
		taxRows:  len(m.tax),
		txns:     len(m.txns),
	}
}

func (s *LedgerTestSuite) assertSameBalances(want, got balanceSnapshot) {
	s.Equal(want.txns, got.txns, "transaction count")
	s.Equal(want.taxRows, got.taxRows, "tax register rows")
	for id, bal := range want.accounts {
		s.True(bal.Equal(got.accounts[id]), "account %s: want %s got %s", id, bal, got.accounts[id])
	}
	for id, bal := range want.parties {
		s.True(bal.Equal(got.parties[id]), "party %s: want %s got %s", id, bal, got.parties[id])
	}
	for id, qty := range want.items {
		s.True(qty.Equal(got.items[id]), "item %s: want %s got %s", id, qty, got.items[id])
	}
}

func (s *LedgerTestSuite) TestPost_SalesExample() {
	id, err := s.poster.Post(s.ctx, salesExample())
	s.Require().NoError(err)
	s.NotEmpty(id)

	st := s.state()
	s.assertDecimal("-1170", st.accounts["sales"])
	s.assertDecimal("1170", st.accounts["receivable"])
	s.assertDecimal("1170", st.parties["cust-1"])
	s.assertDecimal("400", st.items["item-1"])

	header := st.txns[id]
	s.assertDecimal("2340", header.TotalAmount, "header total is the sum of all line totals")
	s.Len(st.lines[id], 2)
	s.Equal(1, st.lines[id][0].LineNo)

	entry, ok := st.tax[id]
	s.Require().True(ok)
	s.assertDecimal("17", entry.TaxRate)
	s.assertDecimal("1000", entry.TaxableAmount)
	s.assertDecimal("170", entry.TaxAmount)
	s.assertDecimal("1170", entry.TotalAmount)
	s.Equal("1234567-8", entry.PartyNTN)
	s.Equal("STRN-001", entry.PartySTRN)
	s.Equal("S-1", entry.InvoiceNumber)
	s.Equal(domain.Sales, entry.InvoiceType)
	s.Equal(1, s.uow.commits)
}

func (s *LedgerTestSuite) TestPostThenReverse_RestoresEveryBalance() {
	before := snapshot(s.state())

	id, err := s.poster.Post(s.ctx, salesExample())
	s.Require().NoError(err)
	s.Require().NoError(s.reverser.Reverse(s.ctx, id))

	s.assertSameBalances(before, snapshot(s.state()))
	s.Empty(s.state().lines)
}

func (s *LedgerTestSuite) TestPurchase_IncreasesStock() {
	_, err := s.poster.Post(s.ctx, purchase("P-1", "25", "250"))
	s.Require().NoError(err)

	s.assertDecimal("525", s.state().items["item-1"])
	s.assertDecimal("-250", s.state().parties["supp-1"])
	s.assertDecimal("250", s.state().accounts["inventory"])
	s.Empty(s.state().tax, "untaxed purchase writes no register row")
}

func (s *LedgerTestSuite) TestPartyDeltaByType() {
	tests := []struct {
		txType domain.TransactionType
		want   string
	}{
		{domain.Receipt, "-300"},
		{domain.Payment, "300"},
		{domain.Journal, "0"},
	}
	for _, tt := range tests {
		s.Run(string(tt.txType), func() {
			s.SetupTest()
			txn := domain.Transaction{
				VoucherNo: "V-1", Date: time.Now(), Type: tt.txType, PartyID: strPtr("cust-1"),
				Lines: []domain.TransactionLine{
					{AccountID: "cash", TotalAmount: dec("300"), Side: domain.Debit},
					{AccountID: "receivable", TotalAmount: dec("300"), Side: domain.Credit},
				},
			}
			_, err := s.poster.Post(s.ctx, txn)
			s.Require().NoError(err)
			s.assertDecimal(tt.want, s.state().parties["cust-1"])
		})
	}
}

func (s *LedgerTestSuite) TestTaxRegisterEntry_OnlyForTaxedPartySalesAndPurchases() {
	tests := []struct {
		name   string
		mutate func(*domain.Transaction)
		want   bool
	}{
		{"taxed sale with party", func(*domain.Transaction) {}, true},
		{"no party", func(t *domain.Transaction) { t.PartyID = nil }, false},
		{"zero tax", func(t *domain.Transaction) { t.Lines[0].TaxAmount = decimal.Zero }, false},
		{"journal", func(t *domain.Transaction) {
			t.Type = domain.Journal
		}, false},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			txn := salesExample()
			tt.mutate(&txn)
			id, err := s.poster.Post(s.ctx, txn)
			s.Require().NoError(err)
			_, ok := s.state().tax[id]
			s.Equal(tt.want, ok)
		})
	}
}

func (s *LedgerTestSuite) TestPost_ValidationRejectsBeforeAnyMutation() {
	tests := []struct {
		name    string
		mutate  func(*domain.Transaction)
		wantErr error
	}{
		{"unbalanced", func(t *domain.Transaction) { t.Lines[1].TotalAmount = dec("1000") }, services.ErrUnbalanced},
		{"missing voucher", func(t *domain.Transaction) { t.VoucherNo = "" }, services.ErrVoucherNoMissing},
		{"missing date", func(t *domain.Transaction) { t.Date = time.Time{} }, services.ErrDateMissing},
		{"bad type", func(t *domain.Transaction) { t.Type = "Transfer" }, services.ErrInvalidType},
		{"single line", func(t *domain.Transaction) { t.Lines = t.Lines[:1] }, services.ErrTooFewLines},
		{"bad side", func(t *domain.Transaction) { t.Lines[0].Side = "Left" }, services.ErrInvalidSide},
		{"no account", func(t *domain.Transaction) { t.Lines[0].AccountID = "" }, services.ErrLineAccountMissing},
		{"negative tax", func(t *domain.Transaction) { t.Lines[0].TaxAmount = dec("-1") }, services.ErrNegativeAmount},
		{"zero total", func(t *domain.Transaction) {
			t.Lines[0].TotalAmount = decimal.Zero
			t.Lines[1].TotalAmount = decimal.Zero
		}, services.ErrNonPositiveTotal},
		{"item without quantity", func(t *domain.Transaction) { t.Lines[0].Quantity = nil }, services.ErrItemQuantityMissing},
		{"empty party", func(t *domain.Transaction) { t.PartyID = strPtr("") }, services.ErrPartyIDEmpty},
		{"sub-cent totals that only balance before rounding", func(t *domain.Transaction) {
			t.Lines = []domain.TransactionLine{
				{AccountID: "receivable", TotalAmount: dec("0.005"), Side: domain.Debit},
				{AccountID: "cash", TotalAmount: dec("0.005"), Side: domain.Debit},
				{AccountID: "sales", TotalAmount: dec("0.01"), Side: domain.Credit},
			}
			t.TaxAmount = decimal.Zero
		}, services.ErrTooPrecise},
		{"quantity beyond four places", func(t *domain.Transaction) { t.Lines[0].Quantity = decPtr("1.00005") }, services.ErrTooPrecise},
		{"header tax beyond two places", func(t *domain.Transaction) { t.TaxAmount = dec("170.001") }, services.ErrTooPrecise},
		{"amount too large to store", func(t *domain.Transaction) { t.Lines[0].Amount = dec("10000000000000000") }, services.ErrOutOfRange},
		{"line tax above line total", func(t *domain.Transaction) { t.Lines[0].TaxAmount = dec("1200") }, services.ErrTaxExceedsTotal},
		{"tax equal to posting value", func(t *domain.Transaction) { t.Lines[0].TaxAmount = dec("1170") }, services.ErrTaxExceedsValue},
		{"tax spread over lines above posting value", func(t *domain.Transaction) {
			t.Lines[0].TaxAmount = dec("600")
			t.Lines[1].TaxAmount = dec("600")
		}, services.ErrTaxExceedsValue},
		{"tax rate too large to store", func(t *domain.Transaction) { t.Lines[0].TaxAmount = dec("1169.99") }, services.ErrOutOfRange},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			before := snapshot(s.state())
			txn := salesExample()
			tt.mutate(&txn)

			_, err := s.poster.Post(s.ctx, txn)
			s.ErrorIs(err, apperrors.ErrValidation)
			s.ErrorIs(err, tt.wantErr)
			s.Equal(http.StatusBadRequest, apperrors.HTTPStatus(err))
			s.Zero(s.uow.commits + s.uow.rollbacks, "no unit of work is opened")
			s.assertSameBalances(before, snapshot(s.state()))
		})
	}
}

func (s *LedgerTestSuite) TestPost_StepFailureRollsBackEverything() {
	before := snapshot(s.state())
	cause := errors.New("disk full")
	s.state().failOn["InsertTaxRegisterEntry"] = cause

	_, err := s.poster.Post(s.ctx, salesExample())

	s.Require().Error(err)
	s.True(apperrors.IsPostingFailure(err))
	s.ErrorIs(err, cause)
	var pe *apperrors.PostingError
	s.Require().ErrorAs(err, &pe)
	s.Equal("post", pe.Op)
	s.Equal("tax register", pe.Step)
	s.Equal(http.StatusInternalServerError, apperrors.HTTPStatus(err))
	s.Equal(1, s.uow.rollbacks)
	s.assertSameBalances(before, snapshot(s.state()))
}

func (s *LedgerTestSuite) TestPost_UnknownAccountIsConstraintFailure() {
	txn := salesExample()
	txn.Lines[1].AccountID = "missing"

	_, err := s.poster.Post(s.ctx, txn)

	s.ErrorIs(err, apperrors.ErrConstraint)
	s.Equal(http.StatusConflict, apperrors.HTTPStatus(err))
	s.Empty(s.state().txns)
}

func (s *LedgerTestSuite) TestPost_DuplicateVoucher() {
	_, err := s.poster.Post(s.ctx, salesExample())
	s.Require().NoError(err)

	_, err = s.poster.Post(s.ctx, salesExample())
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.Len(s.state().txns, 1)
}

func (s *LedgerTestSuite) TestReverse_NotFound() {
	err := s.reverser.Reverse(s.ctx, "nope")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.False(apperrors.IsPostingFailure(err))
	s.Equal(http.StatusNotFound, apperrors.HTTPStatus(err))
}

func (s *LedgerTestSuite) TestReverse_FailureLeavesTransactionIntact() {
	id, err := s.poster.Post(s.ctx, salesExample())
	s.Require().NoError(err)
	before := snapshot(s.state())
	s.state().failOn["DeleteLines"] = errors.New("lock timeout")

	err = s.reverser.Reverse(s.ctx, id)

	s.True(apperrors.IsPostingFailure(err))
	s.assertSameBalances(before, snapshot(s.state()))
	s.Contains(s.state().txns, id)
}

func (s *LedgerTestSuite) TestUpdate_MatchesReverseThenPost() {
	replacement := salesExample()
	replacement.Lines[0].Quantity = decPtr("40")
	replacement.Lines[0].TotalAmount = dec("468")
	replacement.Lines[0].TaxAmount = dec("68")
	replacement.Lines[1].TotalAmount = dec("468")

	id, err := s.poster.Post(s.ctx, salesExample())
	s.Require().NoError(err)
	newID, err := s.coordinator.Update(s.ctx, id, replacement)
	s.Require().NoError(err)
	s.NotEqual(id, newID)
	s.NotContains(s.state().txns, id)
	s.Contains(s.state().tax, newID)
	updated := snapshot(s.state())

	s.SetupTest()
	id, err = s.poster.Post(s.ctx, salesExample())
	s.Require().NoError(err)
	s.Require().NoError(s.reverser.Reverse(s.ctx, id))
	_, err = s.poster.Post(s.ctx, replacement)
	s.Require().NoError(err)

	s.assertSameBalances(snapshot(s.state()), updated)
	s.assertDecimal("460", s.state().items["item-1"])
}

func (s *LedgerTestSuite) TestUpdate_FailedPostKeepsOriginal() {
	id, err := s.poster.Post(s.ctx, salesExample())
	s.Require().NoError(err)
	before := snapshot(s.state())

	replacement := salesExample()
	replacement.Lines[1].AccountID = "missing"
	_, err = s.coordinator.Update(s.ctx, id, replacement)

	s.ErrorIs(err, apperrors.ErrConstraint)
	s.assertSameBalances(before, snapshot(s.state()))
	s.Contains(s.state().txns, id)
	s.Contains(s.state().tax, id)
}

func (s *LedgerTestSuite) TestUpdate_NotFound() {
	_, err := s.coordinator.Update(s.ctx, "nope", salesExample())
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Empty(s.state().txns)
}

func (s *LedgerTestSuite) TestStockPolicy_RejectOversell() {
	txn := salesExample()
	txn.Lines[0].Quantity = decPtr("600")

	_, err := s.poster.Post(s.ctx, txn)

	s.ErrorIs(err, apperrors.ErrInsufficientStock)
	s.Equal(http.StatusConflict, apperrors.HTTPStatus(err))
	s.assertDecimal("500", s.state().items["item-1"])
	s.Empty(s.state().txns)
}

func (s *LedgerTestSuite) TestStockPolicy_WarnAllowsOversell() {
	s.build(domain.StockPolicyWarn)
	txn := salesExample()
	txn.Lines[0].Quantity = decPtr("600")

	_, err := s.poster.Post(s.ctx, txn)

	s.Require().NoError(err)
	s.assertDecimal("-100", s.state().items["item-1"])
}

func (s *LedgerTestSuite) TestStockPolicy_RejectOnlyWhenUnitLowersNegativeStock() {
	s.state().items["item-1"] = dec("-50")

	_, err := s.poster.Post(s.ctx, purchase("P-1", "20", "200"))
	s.Require().NoError(err, "a purchase that raises negative stock is allowed")
	s.assertDecimal("-30", s.state().items["item-1"])

	_, err = s.poster.Post(s.ctx, salesExample())
	s.ErrorIs(err, apperrors.ErrInsufficientStock)
	s.assertDecimal("-30", s.state().items["item-1"])
}

func (s *LedgerTestSuite) TestPost_TaxedSaleAtPrecisionLimits() {
	txn := salesExample()
	txn.Lines[0].Quantity = decPtr("0.0001")
	txn.Lines[0].TaxAmount = dec("170.10")
	txn.Lines[0].TotalAmount = dec("1170.10")
	txn.Lines[1].TotalAmount = dec("1170.10")
	txn.TaxAmount = dec("170.10")

	id, err := s.poster.Post(s.ctx, txn)

	s.Require().NoError(err, "trailing zeros within scale are accepted")
	s.assertDecimal("499.9999", s.state().items["item-1"])
	s.assertDecimal("17.01", s.state().tax[id].TaxRate)
}

func (s *LedgerTestSuite) TestUpdate_StockJudgedOnFinalQuantity() {
	purchaseID, err := s.poster.Post(s.ctx, purchase("P-1", "100", "1000"))
	s.Require().NoError(err)
	sale := salesExample()
	sale.Lines[0].Quantity = decPtr("550")
	_, err = s.poster.Post(s.ctx, sale)
	s.Require().NoError(err)
	s.assertDecimal("50", s.state().items["item-1"])

	// Reversing the purchase alone would leave -50.
	err = s.reverser.Reverse(s.ctx, purchaseID)
	s.ErrorIs(err, apperrors.ErrInsufficientStock)

	_, err = s.coordinator.Update(s.ctx, purchaseID, purchase("P-1", "120", "1200"))
	s.Require().NoError(err)
	s.assertDecimal("70", s.state().items["item-1"])
}

func TestLedgerServices(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}
