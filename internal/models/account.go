package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType is the kind of account.
type AccountType string

const (
	AccountTypeCash    AccountType = "cash"
	AccountTypeBank    AccountType = "bank"
	AccountTypeEwallet AccountType = "ewallet"
	AccountTypeOther   AccountType = "other"
)

// Account represents an account of a user, e.g. a bank account or a wallet.
type Account struct {
	DefaultModel
	UserID   uuid.UUID `gorm:"index"`
	Name     string
	Note     string
	Type     AccountType `gorm:"default:other"`
	Archived bool
	Inactive bool

	// The source data carries the balance under several legacy field
	// names depending on which app version wrote the row. All of them
	// are kept and normalized by EffectiveBalance.
	Balance        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	InitialBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave trims whitespace and validates the account type.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	if a.Type == "" {
		a.Type = AccountTypeOther
	}

	switch a.Type {
	case AccountTypeCash, AccountTypeBank, AccountTypeEwallet, AccountTypeOther:
		return nil
	}

	return ErrAccountTypeInvalid
}

// EffectiveBalance normalizes the legacy balance fields to one value.
//
// The first non-zero candidate wins, in this priority order: Balance,
// CurrentBalance, InitialBalance. This is the single place that knows
// about the legacy shapes.
func (a Account) EffectiveBalance() decimal.Decimal {
	for _, candidate := range []decimal.Decimal{a.Balance, a.CurrentBalance, a.InitialBalance} {
		if !candidate.IsZero() {
			return candidate
		}
	}

	return decimal.Zero
}

// CashLike reports whether the account counts towards the digest's
// headline balance. Untyped accounts count as cash-like.
func (a Account) CashLike() bool {
	switch a.Type {
	case AccountTypeCash, AccountTypeBank, AccountTypeEwallet, "":
		return true
	}

	return false
}
