package digest

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hematwoi/backend/internal/models"
	"github.com/hematwoi/backend/internal/types"
	"github.com/shopspring/decimal"
)

// warningThreshold is the budget progress percentage at which a budget
// shows up in the digest's warnings.
var warningThreshold = decimal.NewFromInt(90)

// upcomingWindowDays is how far ahead the digest looks for due charges
// and debts.
const upcomingWindowDays = 7

var oneHundred = decimal.NewFromInt(100)

// rows is the raw input of one digest computation. All slices are
// snapshots: the reducer never mutates them.
type rows struct {
	accounts     []models.Account
	transactions []models.Transaction // historical window through today
	budgets      []models.Budget      // current month only
	charges      []models.SubscriptionCharge
	debts        []models.Debt
}

// safePct returns num/den as a percentage rounded to two decimals.
// A zero denominator means "no ratio", which is reported as zero. This
// is the single divide-by-zero convention for all derived percentages.
func safePct(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}

	return num.Div(den).Mul(oneHundred).Round(2)
}

// categoryKey maps a nullable category reference to a bucket key.
// The empty string is the "no category" bucket.
func categoryKey(t models.Transaction) string {
	if t.CategoryID == nil {
		return ""
	}

	return t.CategoryID.String()
}

// reduce turns the fetched rows into the digest view model. It is a pure
// function of its inputs; "now" is only recorded as the generation time.
func reduce(r rows, today types.Date, now time.Time) Data {
	loc := today.Time().Location()
	weekStart := today.StartOfWeek()
	monthStart := today.StartOfMonth()

	data := Data{
		Direction:      DirectionFlat,
		TopCategories:  []CategorySummary{},
		BudgetWarnings: []BudgetWarning{},
		Upcoming:       []UpcomingItem{},
		GeneratedAt:    now,
	}

	// Headline balance: active cash-like accounts only. Summation is
	// order-independent and skips archived rows wherever they are.
	for _, account := range r.accounts {
		if account.Archived || account.Inactive || !account.CashLike() {
			continue
		}

		data.Balance = data.Balance.Add(account.EffectiveBalance())
	}

	// One pass over the transactions fills every bucket the digest needs.
	weeklyTotals := map[string]decimal.Decimal{}                // week start -> expense total
	weeklyByCategory := map[string]map[string]decimal.Decimal{} // category -> week start -> total
	monthByCategory := map[string]decimal.Decimal{}
	monthCategoryNames := map[string]string{}
	var weekTransactions []models.Transaction

	for _, t := range r.transactions {
		day := types.DateOf(t.Date, loc)
		if day.After(today) {
			continue
		}

		isExpense := t.Type == models.TransactionTypeExpense

		if day.Equal(today) {
			switch t.Type {
			case models.TransactionTypeIncome:
				data.BalanceChange = data.BalanceChange.Add(t.Amount)
			case models.TransactionTypeExpense:
				data.BalanceChange = data.BalanceChange.Sub(t.Amount)
				data.TodayExpense = data.TodayExpense.Add(t.Amount)
			}
		}

		if !isExpense {
			continue
		}

		week := day.StartOfWeek().String()
		weeklyTotals[week] = weeklyTotals[week].Add(t.Amount)

		key := categoryKey(t)
		if weeklyByCategory[key] == nil {
			weeklyByCategory[key] = map[string]decimal.Decimal{}
		}
		weeklyByCategory[key][week] = weeklyByCategory[key][week].Add(t.Amount)

		if !day.Before(weekStart) {
			weekTransactions = append(weekTransactions, t)
			data.WeekExpense = data.WeekExpense.Add(t.Amount)
		}

		if !day.Before(monthStart) {
			data.MonthExpense = data.MonthExpense.Add(t.Amount)
			monthByCategory[key] = monthByCategory[key].Add(t.Amount)
			monthCategoryNames[key] = t.CategoryName()
		}
	}

	switch {
	case data.BalanceChange.IsPositive():
		data.Direction = DirectionUp
	case data.BalanceChange.IsNegative():
		data.Direction = DirectionDown
	}

	// Daily average: the clamp on DayOfMonth keeps the divisor valid on
	// the first of the month.
	data.AvgDailyExpense = data.MonthExpense.Div(decimal.NewFromInt(int64(today.DayOfMonth()))).Round(2)
	data.TodayVsAverage = safePct(data.TodayExpense, data.AvgDailyExpense)

	// Weekly average over all historical buckets, current week excluded.
	data.AvgWeeklyExpense = meanExcluding(weeklyTotals, weekStart.String())
	data.WeekVsAverage = safePct(data.WeekExpense, data.AvgWeeklyExpense)

	data.TopCategories = topCategories(monthByCategory, monthCategoryNames, data.MonthExpense)
	data.BudgetWarnings = budgetWarnings(r.budgets, monthByCategory)
	data.Upcoming = upcomingItems(r.charges, r.debts, today)
	data.Insight = insightSentence(weekTransactions, weeklyByCategory, weekStart)

	return data
}

// meanExcluding returns the arithmetic mean of all bucket totals except
// the one with the excluded key. No buckets means no average.
func meanExcluding(buckets map[string]decimal.Decimal, exclude string) decimal.Decimal {
	sum := decimal.Zero
	count := 0

	for key, total := range buckets {
		if key == exclude {
			continue
		}

		sum = sum.Add(total)
		count++
	}

	if count == 0 {
		return decimal.Zero
	}

	return sum.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// topCategories returns the three biggest expense categories of the
// month with their share of the month-to-date total.
func topCategories(totals map[string]decimal.Decimal, names map[string]string, monthExpense decimal.Decimal) []CategorySummary {
	summaries := make([]CategorySummary, 0, len(totals))

	for key, total := range totals {
		summary := CategorySummary{
			Name:     names[key],
			Total:    total,
			PctOfMTD: safePct(total, monthExpense),
		}

		if key != "" {
			id := uuid.MustParse(key)
			summary.CategoryID = &id
		}

		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Total.GreaterThan(summaries[j].Total)
	})

	if len(summaries) > 3 {
		summaries = summaries[:3]
	}

	return summaries
}

// budgetWarnings lists budgets at 90% progress or more, most exhausted
// first. Budgets without a planned amount cannot have progress.
func budgetWarnings(budgets []models.Budget, monthByCategory map[string]decimal.Decimal) []BudgetWarning {
	warnings := []BudgetWarning{}

	for _, budget := range budgets {
		if !budget.Planned.IsPositive() {
			continue
		}

		key := ""
		if budget.CategoryID != nil {
			key = budget.CategoryID.String()
		}

		actual := monthByCategory[key]
		progress := safePct(actual, budget.Planned)

		if progress.LessThan(warningThreshold) {
			continue
		}

		warnings = append(warnings, BudgetWarning{
			BudgetID: budget.ID,
			Name:     budget.BudgetName(),
			Planned:  budget.Planned,
			Actual:   actual,
			Progress: progress,
		})
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].Progress.GreaterThan(warnings[j].Progress)
	})

	return warnings
}

// upcomingItems collects unpaid subscription charges and debts due
// within the next week, soonest first.
func upcomingItems(charges []models.SubscriptionCharge, debts []models.Debt, today types.Date) []UpcomingItem {
	loc := today.Time().Location()
	horizon := today.AddDays(upcomingWindowDays)
	items := []UpcomingItem{}

	inWindow := func(due *time.Time) bool {
		if due == nil {
			return false
		}

		day := types.DateOf(*due, loc)
		return !day.Before(today) && !day.After(horizon)
	}

	for _, charge := range charges {
		if charge.Status == models.ChargeStatusPaid || !inWindow(charge.DueDate) {
			continue
		}

		items = append(items, UpcomingItem{
			Kind:    UpcomingKindSubscription,
			ID:      charge.ID,
			Name:    charge.DisplayName(),
			Amount:  charge.Amount,
			DueDate: *charge.DueDate,
		})
	}

	for _, debt := range debts {
		if debt.Status == models.DebtStatusPaid || !inWindow(debt.DueDate) {
			continue
		}

		items = append(items, UpcomingItem{
			Kind:    UpcomingKindDebt,
			ID:      debt.ID,
			Name:    debt.DisplayName(),
			Amount:  debt.Amount,
			DueDate: *debt.DueDate,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueDate.Before(items[j].DueDate)
	})

	return items
}
