// Package simulation implements the salary-allocation engine: splitting
// a fixed salary across expense categories, validating the split and
// redistributing the unlocked remainder.
package simulation

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// DraftItem is one category row of an in-progress scenario.
//
// AllocationPercent is always derived from AllocationAmount: editing one
// recomputes the other through SetAmount and SetPercent.
type DraftItem struct {
	CategoryID        *uuid.UUID      `json:"categoryId"`
	AllocationAmount  decimal.Decimal `json:"allocationAmount"`
	AllocationPercent decimal.Decimal `json:"allocationPercent"`
	Note              string          `json:"note,omitempty"`
	Locked            bool            `json:"locked"`
}

// Key returns the bucket key of the item's category. The empty string is
// the "no category" bucket.
func (i DraftItem) Key() string {
	if i.CategoryID == nil {
		return ""
	}

	return i.CategoryID.String()
}

// PercentFor returns amount as a percentage of salary, rounded to two
// decimals. A salary of zero or below has no meaningful percentage.
func PercentFor(amount, salary decimal.Decimal) decimal.Decimal {
	if !salary.IsPositive() {
		return decimal.Zero
	}

	return amount.Div(salary).Mul(oneHundred).Round(2)
}

// AmountFor returns the whole-unit amount that percent of salary
// represents.
func AmountFor(percent, salary decimal.Decimal) decimal.Decimal {
	return salary.Mul(percent).Div(oneHundred).Round(0)
}

// SetAmount updates the item's amount, clamped to zero or more, and
// recomputes the percentage.
func (i *DraftItem) SetAmount(amount, salary decimal.Decimal) {
	if amount.IsNegative() {
		amount = decimal.Zero
	}

	i.AllocationAmount = amount
	i.AllocationPercent = PercentFor(amount, salary)
}

// SetPercent updates the item's percentage, clamped to [0, 100], and
// recomputes the amount.
func (i *DraftItem) SetPercent(percent, salary decimal.Decimal) {
	if percent.IsNegative() {
		percent = decimal.Zero
	}
	if percent.GreaterThan(oneHundred) {
		percent = oneHundred
	}

	i.AllocationPercent = percent
	i.AllocationAmount = AmountFor(percent, salary)
}

// AutoDistribute spreads the salary remainder over all unlocked items.
//
// Locked items keep their amounts and reduce the remainder. The
// remainder is split proportionally to the items' planned budget
// weights, or evenly when no unlocked item has a weight. Every share but
// the last is rounded; the last unlocked item absorbs whatever is left,
// so the amounts always reconcile exactly to the remainder.
func AutoDistribute(items []DraftItem, salary decimal.Decimal, weights map[string]decimal.Decimal) []DraftItem {
	result := make([]DraftItem, len(items))
	copy(result, items)

	remaining := salary
	var unlocked []int

	for index, item := range result {
		if item.Locked {
			remaining = remaining.Sub(item.AllocationAmount)
		} else {
			unlocked = append(unlocked, index)
		}
	}

	if len(unlocked) == 0 {
		return result
	}

	if !remaining.IsPositive() {
		for _, index := range unlocked {
			result[index].SetAmount(decimal.Zero, salary)
		}

		return result
	}

	totalWeight := decimal.Zero
	for _, index := range unlocked {
		totalWeight = totalWeight.Add(weights[result[index].Key()])
	}

	assigned := decimal.Zero
	for position, index := range unlocked {
		if position == len(unlocked)-1 {
			// The last item absorbs the rounding difference
			result[index].SetAmount(remaining.Sub(assigned), salary)
			break
		}

		var share decimal.Decimal
		if totalWeight.IsPositive() {
			share = remaining.Mul(weights[result[index].Key()]).Div(totalWeight).Round(0)
		} else {
			share = remaining.Div(decimal.NewFromInt(int64(len(unlocked)))).Round(0)
		}

		result[index].SetAmount(share, salary)
		assigned = assigned.Add(share)
	}

	return result
}

// OverBudgetCategory is an allocation exceeding the planned budget of
// its category.
type OverBudgetCategory struct {
	CategoryID       *uuid.UUID      `json:"categoryId"`
	AllocationAmount decimal.Decimal `json:"allocationAmount"`
	Planned          decimal.Decimal `json:"planned"`
	Delta            decimal.Decimal `json:"delta"` // allocation minus planned
}

// Summary is the derived state of a scenario draft.
type Summary struct {
	TotalAllocation decimal.Decimal      `json:"totalAllocation"`
	RemainingSalary decimal.Decimal      `json:"remainingSalary"`
	AllocationRatio decimal.Decimal      `json:"allocationRatio"` // share of the salary that is allocated, in percent
	OverBudget      []OverBudgetCategory `json:"overBudget"`
}

// Summarize computes the derived totals for a draft. planned maps
// category keys to the planned budget amounts of the month.
func Summarize(items []DraftItem, salary decimal.Decimal, planned map[string]decimal.Decimal) Summary {
	summary := Summary{
		OverBudget: []OverBudgetCategory{},
	}

	for _, item := range items {
		summary.TotalAllocation = summary.TotalAllocation.Add(item.AllocationAmount)

		plan, ok := planned[item.Key()]
		if ok && item.AllocationAmount.GreaterThan(plan) {
			summary.OverBudget = append(summary.OverBudget, OverBudgetCategory{
				CategoryID:       item.CategoryID,
				AllocationAmount: item.AllocationAmount,
				Planned:          plan,
				Delta:            item.AllocationAmount.Sub(plan),
			})
		}
	}

	summary.RemainingSalary = salary.Sub(summary.TotalAllocation)
	summary.AllocationRatio = PercentFor(summary.TotalAllocation, salary)

	return summary
}
