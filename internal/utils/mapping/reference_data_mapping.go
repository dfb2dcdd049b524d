package mapping

import (
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	"github.com/SscSPs/trading_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{AccountID: d.AccountID, Code: d.Code, Name: d.Name, GroupID: d.GroupID, Balance: d.Balance}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{AccountID: m.AccountID, Code: m.Code, Name: m.Name, GroupID: m.GroupID, Balance: m.Balance}
}

// ToModelParty converts a domain Party to a model Party
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:   d.PartyID,
		Code:      d.Code,
		Name:      d.Name,
		PartyType: string(d.PartyType),
		NTN:       d.NTN,
		STRN:      d.STRN,
		Balance:   d.Balance,
	}
}

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:   m.PartyID,
		Code:      m.Code,
		Name:      m.Name,
		PartyType: domain.PartyType(m.PartyType),
		NTN:       m.NTN,
		STRN:      m.STRN,
		Balance:   m.Balance,
	}
}

// ToModelItem converts a domain Item to a model Item
func ToModelItem(d domain.Item) models.Item {
	return models.Item{ItemID: d.ItemID, Code: d.Code, Name: d.Name, StockQuantity: d.StockQuantity}
}

// ToDomainItem converts a model Item to a domain Item
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{ItemID: m.ItemID, Code: m.Code, Name: m.Name, StockQuantity: m.StockQuantity}
}
