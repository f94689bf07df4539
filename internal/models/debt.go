package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DebtStatus is the payment state of a debt.
type DebtStatus string

const (
	DebtStatusDue     DebtStatus = "due"
	DebtStatusOverdue DebtStatus = "overdue"
	DebtStatusPaid    DebtStatus = "paid"
)

// Debt is money a user owes (or is owed), with a due date.
type Debt struct {
	DefaultModel
	UserID  uuid.UUID `gorm:"index"`
	Title   string
	Name    string          // legacy alias for Title, kept for imported rows
	Amount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDate *time.Time
	Status  DebtStatus `gorm:"default:due"`
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	d.Title = strings.TrimSpace(d.Title)
	d.Name = strings.TrimSpace(d.Name)

	if d.Status == "" {
		d.Status = DebtStatusDue
	}

	switch d.Status {
	case DebtStatusDue, DebtStatusOverdue, DebtStatusPaid:
		return nil
	}

	return ErrChargeStatusInvalid
}

// DisplayName resolves the name fallback chain for upcoming items.
func (d Debt) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}

	if d.Title != "" {
		return d.Title
	}

	return "Hutang"
}
