package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Transaction represents a single booking of a user.
type Transaction struct {
	DefaultModel
	UserID     uuid.UUID       `gorm:"index"`
	Type       TransactionType `gorm:"index"`
	Date       time.Time       `gorm:"index"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note       string
	CategoryID *uuid.UUID
	Category   *Category `json:"-"`
	AccountID  *uuid.UUID
	Account    *Account `json:"-"`
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave validates the transaction and normalizes its date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	switch t.Type {
	case TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer:
	default:
		return ErrTransactionTypeInvalid
	}

	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	return nil
}

// CategoryName returns the category name with the placeholder fallback.
func (t Transaction) CategoryName() string {
	if t.Category == nil || t.Category.Name == "" {
		return NoCategoryName
	}

	return t.Category.Name
}
