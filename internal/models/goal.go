package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target of a user.
type Goal struct {
	DefaultModel
	UserID   uuid.UUID `gorm:"index"`
	Name     string
	Note     string
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The target for the goal
	Saved    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // How much has been put aside so far
	DueDate  *time.Time
	Archived bool
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !g.Amount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	return nil
}
