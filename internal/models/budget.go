package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hematwoi/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod is the granularity a budget is planned for.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
)

// Budget is the planned spending for a category in a month.
//
// The planned amount doubles as the weight for the simulation engine's
// auto-distribution.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID `gorm:"index"`
	Name       string
	CategoryID *uuid.UUID
	Category   *Category       `json:"-"`
	Planned    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Month      types.Month     `gorm:"index"`
	Period     BudgetPeriod    `gorm:"default:monthly"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)

	if b.Period == "" {
		b.Period = BudgetPeriodMonthly
	}

	switch b.Period {
	case BudgetPeriodMonthly, BudgetPeriodWeekly:
	default:
		return ErrBudgetPeriodInvalid
	}

	if b.Planned.IsNegative() {
		return ErrBudgetPlannedNegative
	}

	return nil
}

// BudgetName returns the budget name, falling back to the category name.
func (b Budget) BudgetName() string {
	if b.Name != "" {
		return b.Name
	}

	if b.Category != nil && b.Category.Name != "" {
		return b.Category.Name
	}

	return NoCategoryName
}
