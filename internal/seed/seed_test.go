package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/trading_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReferenceRepo struct {
	mock.Mock
}

func (m *mockReferenceRepo) SaveAccount(ctx context.Context, a domain.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockReferenceRepo) SaveParty(ctx context.Context, p domain.Party) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockReferenceRepo) SaveItem(ctx context.Context, it domain.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockReferenceRepo) FindAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *mockReferenceRepo) FindPartyByID(ctx context.Context, id string) (*domain.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *mockReferenceRepo) FindItemByID(ctx context.Context, id string) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

const fixtureYAML = `
accounts:
  - id: AR
    code: "1100"
    name: Accounts Receivable
    group_id: assets
parties:
  - id: P1
    code: C001
    name: Customer One
    party_type: Customer
    ntn: "1234567-8"
    balance: 150.50
items:
  - id: WIDGET
    code: W-100
    name: Widget
    stock_quantity: 12.5
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(fixtureYAML))
	require.NoError(t, err)

	require.Len(t, f.Accounts, 1)
	assert.Equal(t, "assets", f.Accounts[0].GroupID)
	assert.True(t, f.Accounts[0].Balance.IsZero())

	require.Len(t, f.Parties, 1)
	assert.Equal(t, domain.Customer, f.Parties[0].PartyType)
	assert.Equal(t, "1234567-8", f.Parties[0].NTN)
	assert.True(t, f.Parties[0].Balance.Equal(decimal.RequireFromString("150.50")))

	require.Len(t, f.Items, 1)
	assert.True(t, f.Items[0].StockQuantity.Equal(decimal.RequireFromString("12.5")))
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"malformed", "accounts: [", "parsing seed file"},
		{"account without id", "accounts:\n  - code: X\n", "account 0: id is required"},
		{"unknown party type", "parties:\n  - id: P1\n    party_type: Vendor\n", `unknown party_type "Vendor"`},
		{"item without id", "items:\n  - name: Widget\n", "item 0: id is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Parties, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading seed file")
}

func TestApply(t *testing.T) {
	f, err := Parse([]byte(fixtureYAML))
	require.NoError(t, err)

	repo := new(mockReferenceRepo)
	repo.On("SaveAccount", mock.Anything, f.Accounts[0]).Return(nil).Once()
	repo.On("SaveParty", mock.Anything, f.Parties[0]).Return(nil).Once()
	repo.On("SaveItem", mock.Anything, f.Items[0]).Return(nil).Once()

	require.NoError(t, Apply(context.Background(), repo, f))
	repo.AssertExpectations(t)
}

func TestApply_StopsOnFailure(t *testing.T) {
	f, err := Parse([]byte(fixtureYAML))
	require.NoError(t, err)

	repo := new(mockReferenceRepo)
	repo.On("SaveAccount", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("SaveParty", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	err = Apply(context.Background(), repo, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving party P1")
	repo.AssertNotCalled(t, "SaveItem", mock.Anything, mock.Anything)
}

func TestDemoFixtureParses(t *testing.T) {
	f, err := Load(filepath.Join("..", "..", "seed", "demo.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, f.Accounts)
	assert.NotEmpty(t, f.Parties)
	assert.NotEmpty(t, f.Items)
}
