package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hematwoi/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalarySimulation is a named what-if allocation of a salary across
// categories. It is distinct from the live budget rows until it is
// explicitly applied.
type SalarySimulation struct {
	DefaultModel
	UserID       uuid.UUID       `gorm:"index;uniqueIndex:salary_simulation_user_id_month_title"`
	Title        string          `gorm:"uniqueIndex:salary_simulation_user_id_month_title"`
	SalaryAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Month        types.Month     `gorm:"uniqueIndex:salary_simulation_user_id_month_title"`
	Note         string
	Items        []SalarySimulationItem `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (s *SalarySimulation) BeforeSave(_ *gorm.DB) error {
	s.Title = strings.TrimSpace(s.Title)
	s.Note = strings.TrimSpace(s.Note)

	if !s.SalaryAmount.IsPositive() {
		return ErrSalaryNotPositive
	}

	return nil
}

// SalarySimulationItem is one category allocation within a simulation.
type SalarySimulationItem struct {
	DefaultModel
	SalarySimulationID uuid.UUID        `gorm:"index"`
	SalarySimulation   SalarySimulation `json:"-"`
	CategoryID         *uuid.UUID
	Category           *Category       `json:"-"`
	AllocationAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AllocationPercent  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note               string
	Locked             bool
}

func (i *SalarySimulationItem) BeforeSave(_ *gorm.DB) error {
	i.Note = strings.TrimSpace(i.Note)
	return nil
}

func (i *SalarySimulationItem) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*SalarySimulationItem)
	return i.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (i *SalarySimulationItem) checkIntegrity(tx *gorm.DB, toSave SalarySimulationItem) error {
	return tx.First(&SalarySimulation{}, toSave.SalarySimulationID).Error
}
