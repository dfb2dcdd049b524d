package services_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/trading_ledger/internal/apperrors"
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trading_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// memLedger is an in-memory LedgerStore. memUnitOfWork runs each unit
// against a copy and swaps it in only on success, giving the same
// all-or-nothing behaviour as a database transaction.
type memLedger struct {
	accounts map[string]decimal.Decimal
	parties  map[string]decimal.Decimal
	partyTax map[string][2]string
	items    map[string]decimal.Decimal
	txns     map[string]domain.Transaction
	lines    map[string][]domain.TransactionLine
	tax      map[string]domain.TaxRegisterEntry
	failOn   map[string]error
}

func newMemLedger() *memLedger {
	return &memLedger{
		accounts: map[string]decimal.Decimal{},
		parties:  map[string]decimal.Decimal{},
		partyTax: map[string][2]string{},
		items:    map[string]decimal.Decimal{},
		txns:     map[string]domain.Transaction{},
		lines:    map[string][]domain.TransactionLine{},
		tax:      map[string]domain.TaxRegisterEntry{},
		failOn:   map[string]error{},
	}
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (m *memLedger) clone() *memLedger {
	c := &memLedger{
		accounts: copyMap(m.accounts),
		parties:  copyMap(m.parties),
		partyTax: copyMap(m.partyTax),
		items:    copyMap(m.items),
		txns:     copyMap(m.txns),
		lines:    make(map[string][]domain.TransactionLine, len(m.lines)),
		tax:      copyMap(m.tax),
		failOn:   m.failOn,
	}
	for k, v := range m.lines {
		c.lines[k] = append([]domain.TransactionLine(nil), v...)
	}
	return c
}

func (m *memLedger) fail(op string) error {
	return m.failOn[op]
}

func (m *memLedger) AdjustAccount(_ context.Context, accountID string, delta decimal.Decimal) error {
	if err := m.fail("AdjustAccount"); err != nil {
		return err
	}
	bal, ok := m.accounts[accountID]
	if !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrConstraint, accountID)
	}
	m.accounts[accountID] = bal.Add(delta)
	return nil
}

func (m *memLedger) AdjustStock(_ context.Context, itemID string, delta decimal.Decimal) (decimal.Decimal, error) {
	if err := m.fail("AdjustStock"); err != nil {
		return decimal.Zero, err
	}
	qty, ok := m.items[itemID]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: item %s", apperrors.ErrConstraint, itemID)
	}
	qty = qty.Add(delta)
	m.items[itemID] = qty
	return qty, nil
}

func (m *memLedger) AdjustPartyBalance(_ context.Context, partyID string, delta decimal.Decimal) error {
	if err := m.fail("AdjustPartyBalance"); err != nil {
		return err
	}
	bal, ok := m.parties[partyID]
	if !ok {
		return fmt.Errorf("%w: party %s", apperrors.ErrConstraint, partyID)
	}
	m.parties[partyID] = bal.Add(delta)
	return nil
}

func (m *memLedger) FindTransactionByID(_ context.Context, id string) (*domain.Transaction, error) {
	txn, ok := m.txns[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

func (m *memLedger) LockTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return m.FindTransactionByID(ctx, id)
}

func (m *memLedger) FindLinesByTransactionID(_ context.Context, id string) ([]domain.TransactionLine, error) {
	return append([]domain.TransactionLine(nil), m.lines[id]...), nil
}

func (m *memLedger) ListTransactions(_ context.Context, txType *domain.TransactionType, limit int, _ *string) ([]domain.Transaction, *string, error) {
	out := make([]domain.Transaction, 0, len(m.txns))
	for _, t := range m.txns {
		if txType == nil || t.Type == *txType {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil, nil
}

func (m *memLedger) InsertTransaction(_ context.Context, txn domain.Transaction) error {
	if err := m.fail("InsertTransaction"); err != nil {
		return err
	}
	for _, t := range m.txns {
		if t.VoucherNo == txn.VoucherNo && t.Type == txn.Type {
			return fmt.Errorf("%w: voucher %s", apperrors.ErrDuplicate, txn.VoucherNo)
		}
	}
	m.txns[txn.TransactionID] = txn
	return nil
}

func (m *memLedger) InsertLine(_ context.Context, line domain.TransactionLine) error {
	if err := m.fail("InsertLine"); err != nil {
		return err
	}
	m.lines[line.TransactionID] = append(m.lines[line.TransactionID], line)
	return nil
}

func (m *memLedger) UpdateTransactionTotal(_ context.Context, id string, total decimal.Decimal) error {
	txn, ok := m.txns[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	txn.TotalAmount = total
	m.txns[id] = txn
	return nil
}

func (m *memLedger) DeleteLines(_ context.Context, id string) error {
	if err := m.fail("DeleteLines"); err != nil {
		return err
	}
	delete(m.lines, id)
	return nil
}

func (m *memLedger) DeleteTransaction(_ context.Context, id string) error {
	delete(m.txns, id)
	return nil
}

func (m *memLedger) FindPartyTaxIDs(_ context.Context, partyID string) (string, string, error) {
	ids, ok := m.partyTax[partyID]
	if !ok {
		return "", "", fmt.Errorf("%w: party %s", apperrors.ErrConstraint, partyID)
	}
	return ids[0], ids[1], nil
}

func (m *memLedger) InsertTaxRegisterEntry(_ context.Context, entry domain.TaxRegisterEntry) error {
	if err := m.fail("InsertTaxRegisterEntry"); err != nil {
		return err
	}
	m.tax[entry.TransactionID] = entry
	return nil
}

func (m *memLedger) DeleteTaxRegisterEntries(_ context.Context, id string) error {
	delete(m.tax, id)
	return nil
}

func (m *memLedger) FindTaxRegisterEntry(_ context.Context, id string) (*domain.TaxRegisterEntry, error) {
	e, ok := m.tax[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

var _ portsrepo.LedgerStore = (*memLedger)(nil)

type memUnitOfWork struct {
	state     *memLedger
	commits   int
	rollbacks int
}

func (u *memUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, store portsrepo.LedgerStore) error) error {
	work := u.state.clone()
	if err := fn(ctx, work); err != nil {
		u.rollbacks++
		return err
	}
	u.state = work
	u.commits++
	return nil
}

// memReader serves committed state to the facade.
type memReader struct{ uow *memUnitOfWork }

func (r memReader) FindTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	return r.uow.state.FindTransactionByID(ctx, id)
}

func (r memReader) FindLinesByTransactionID(ctx context.Context, id string) ([]domain.TransactionLine, error) {
	return r.uow.state.FindLinesByTransactionID(ctx, id)
}

func (r memReader) ListTransactions(ctx context.Context, txType *domain.TransactionType, limit int, next *string) ([]domain.Transaction, *string, error) {
	return r.uow.state.ListTransactions(ctx, txType, limit, next)
}

func (r memReader) FindTaxRegisterEntry(ctx context.Context, id string) (*domain.TaxRegisterEntry, error) {
	return r.uow.state.FindTaxRegisterEntry(ctx, id)
}

var (
	_ portsrepo.UnitOfWork   = (*memUnitOfWork)(nil)
	_ portsrepo.LedgerReader = memReader{}
)
