package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ChargeStatus is the payment state of a subscription charge.
type ChargeStatus string

const (
	ChargeStatusDue     ChargeStatus = "due"
	ChargeStatusOverdue ChargeStatus = "overdue"
	ChargeStatusPaid    ChargeStatus = "paid"
)

// SubscriptionCharge is one upcoming charge of a recurring subscription.
type SubscriptionCharge struct {
	DefaultModel
	UserID  uuid.UUID `gorm:"index"`
	Name    string
	Title   string          // legacy alias for Name, kept for imported rows
	Amount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDate *time.Time
	Status  ChargeStatus `gorm:"default:due"`
}

func (s *SubscriptionCharge) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Title = strings.TrimSpace(s.Title)

	if s.Status == "" {
		s.Status = ChargeStatusDue
	}

	switch s.Status {
	case ChargeStatusDue, ChargeStatusOverdue, ChargeStatusPaid:
		return nil
	}

	return ErrChargeStatusInvalid
}

// DisplayName resolves the name fallback chain for upcoming items.
func (s SubscriptionCharge) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}

	if s.Title != "" {
		return s.Title
	}

	return "Langganan"
}
