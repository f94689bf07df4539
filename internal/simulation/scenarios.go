package simulation

import (
	"github.com/google/uuid"
	"github.com/hematwoi/backend/internal/models"
	"github.com/hematwoi/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateScenario stores a new named scenario with its items. The model
// hooks reject a non-positive salary.
func CreateScenario(db *gorm.DB, scenario *models.SalarySimulation, items []DraftItem) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(scenario).Error; err != nil {
			return err
		}

		return createItems(tx, scenario, items)
	})
}

// UpdateScenario updates a scenario's fields and replaces its items.
func UpdateScenario(db *gorm.DB, scenario *models.SalarySimulation, items []DraftItem) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(scenario).Select("Title", "SalaryAmount", "Month", "Note").Updates(*scenario).Error; err != nil {
			return err
		}

		err := tx.Unscoped().
			Where("salary_simulation_id = ?", scenario.ID).
			Delete(&models.SalarySimulationItem{}).Error
		if err != nil {
			return err
		}

		return createItems(tx, scenario, items)
	})
}

func createItems(tx *gorm.DB, scenario *models.SalarySimulation, items []DraftItem) error {
	for _, item := range items {
		record := models.SalarySimulationItem{
			SalarySimulationID: scenario.ID,
			CategoryID:         item.CategoryID,
			AllocationAmount:   item.AllocationAmount,
			AllocationPercent:  PercentFor(item.AllocationAmount, scenario.SalaryAmount),
			Note:               item.Note,
			Locked:             item.Locked,
		}

		if err := tx.Create(&record).Error; err != nil {
			return err
		}
	}

	return nil
}

// ListScenarios returns the scenarios of a user, newest month first. A
// zero month returns all of them.
func ListScenarios(db *gorm.DB, userID uuid.UUID, month types.Month) ([]models.SalarySimulation, error) {
	var scenarios []models.SalarySimulation

	q := db.Where("user_id = ?", userID)
	if !month.IsZero() {
		q = q.Where("month = ?", month)
	}

	err := q.
		Order("month DESC, created_at DESC").
		Find(&scenarios).Error

	return scenarios, err
}

// GetScenario returns one scenario of a user with its items.
func GetScenario(db *gorm.DB, userID, id uuid.UUID) (models.SalarySimulation, []models.SalarySimulationItem, error) {
	var scenario models.SalarySimulation

	err := db.Where("user_id = ?", userID).First(&scenario, id).Error
	if err != nil {
		return models.SalarySimulation{}, nil, err
	}

	items, err := scenarioItems(db, scenario.ID)
	return scenario, items, err
}

func scenarioItems(db *gorm.DB, scenarioID uuid.UUID) ([]models.SalarySimulationItem, error) {
	var items []models.SalarySimulationItem

	err := db.
		Preload("Category").
		Where("salary_simulation_id = ?", scenarioID).
		Order("created_at ASC").
		Find(&items).Error

	return items, err
}

// DeleteScenario removes a scenario and its items.
func DeleteScenario(db *gorm.DB, userID, id uuid.UUID) error {
	var scenario models.SalarySimulation

	err := db.Where("user_id = ?", userID).First(&scenario, id).Error
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().
			Where("salary_simulation_id = ?", scenario.ID).
			Delete(&models.SalarySimulationItem{}).Error
		if err != nil {
			return err
		}

		return tx.Unscoped().Delete(&scenario).Error
	})
}

// DuplicateScenario copies a scenario with all items under a new title.
func DuplicateScenario(db *gorm.DB, userID, id uuid.UUID, title string) (models.SalarySimulation, error) {
	scenario, items, err := GetScenario(db, userID, id)
	if err != nil {
		return models.SalarySimulation{}, err
	}

	duplicate := models.SalarySimulation{
		UserID:       scenario.UserID,
		Title:        title,
		SalaryAmount: scenario.SalaryAmount,
		Month:        scenario.Month,
		Note:         scenario.Note,
	}

	draftItems := make([]DraftItem, 0, len(items))
	for _, item := range items {
		draftItems = append(draftItems, DraftItem{
			CategoryID:        item.CategoryID,
			AllocationAmount:  item.AllocationAmount,
			AllocationPercent: item.AllocationPercent,
			Note:              item.Note,
			Locked:            item.Locked,
		})
	}

	err = CreateScenario(db, &duplicate, draftItems)
	return duplicate, err
}

// ApplyResult reports how many budget rows an apply touched.
type ApplyResult struct {
	MonthlyUpdated int `json:"monthlyUpdated"`
	WeeklyUpdated  int `json:"weeklyUpdated"`
}

// ApplyScenario writes the scenario's allocations into the live budget
// rows of its month. This is the only simulation operation with a side
// effect outside the scenario's own bookkeeping; the HTTP layer gates it
// behind an explicit POST.
//
// Rows are updated all-or-nothing within one database transaction: there
// is no partial success to report.
func ApplyScenario(db *gorm.DB, userID, id uuid.UUID) (ApplyResult, error) {
	scenario, items, err := GetScenario(db, userID, id)
	if err != nil {
		return ApplyResult{}, err
	}

	var result ApplyResult

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var budgets []models.Budget

			query := tx.Where("user_id = ? AND month = ?", userID, scenario.Month)
			if item.CategoryID == nil {
				query = query.Where("category_id IS NULL")
			} else {
				query = query.Where("category_id = ?", *item.CategoryID)
			}

			if err := query.Find(&budgets).Error; err != nil {
				return err
			}

			if len(budgets) == 0 {
				budget := models.Budget{
					UserID:     userID,
					CategoryID: item.CategoryID,
					Planned:    item.AllocationAmount,
					Month:      scenario.Month,
					Period:     models.BudgetPeriodMonthly,
				}

				if err := tx.Create(&budget).Error; err != nil {
					return err
				}

				result.MonthlyUpdated++
				continue
			}

			for _, budget := range budgets {
				err := tx.Model(&budget).Update("planned", item.AllocationAmount).Error
				if err != nil {
					return err
				}

				if budget.Period == models.BudgetPeriodWeekly {
					result.WeeklyUpdated++
				} else {
					result.MonthlyUpdated++
				}
			}
		}

		return nil
	})
	if err != nil {
		return ApplyResult{}, err
	}

	return result, nil
}

// Weights returns the planned budget amounts of a month keyed by
// category, used as auto-distribution weights.
func Weights(db *gorm.DB, userID uuid.UUID, month types.Month) (map[string]decimal.Decimal, error) {
	var budgets []models.Budget

	err := db.Where("user_id = ? AND month = ?", userID, month).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	weights := map[string]decimal.Decimal{}
	for _, budget := range budgets {
		key := ""
		if budget.CategoryID != nil {
			key = budget.CategoryID.String()
		}

		weights[key] = weights[key].Add(budget.Planned)
	}

	return weights, nil
}
