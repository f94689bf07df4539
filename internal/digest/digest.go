// Package digest computes the daily summary a user sees when opening the
// app: balance, spending compared to their own history, categories that
// eat the month's budget and what is due in the next days.
package digest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction indicates whether today's balance change is positive,
// negative or zero.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// Data is the daily digest view model. It is derived data: recomputed on
// every refresh and cached, never authoritative.
type Data struct {
	Balance       decimal.Decimal `json:"balance" example:"200000"`       // Total balance of cash-like accounts
	BalanceChange decimal.Decimal `json:"balanceChange" example:"-50000"` // Today's income minus today's expense
	Direction     Direction       `json:"direction" example:"flat"`

	TodayExpense    decimal.Decimal `json:"todayExpense" example:"25000"`
	AvgDailyExpense decimal.Decimal `json:"avgDailyExpense" example:"32000"` // Month-to-date expense divided by the day of month
	TodayVsAverage  decimal.Decimal `json:"todayVsAverage" example:"78.13"`  // Today's expense as percent of the daily average

	WeekExpense      decimal.Decimal `json:"weekExpense" example:"120000"`
	AvgWeeklyExpense decimal.Decimal `json:"avgWeeklyExpense" example:"150000"` // Mean of prior weekly totals, current week excluded
	WeekVsAverage    decimal.Decimal `json:"weekVsAverage" example:"80"`

	MonthExpense  decimal.Decimal   `json:"monthExpense" example:"960000"`
	TopCategories []CategorySummary `json:"topCategories"`

	BudgetWarnings []BudgetWarning `json:"budgetWarnings"`
	Upcoming       []UpcomingItem  `json:"upcoming"`

	Insight     string    `json:"insight" example:"No transactions recorded this week yet."`
	GeneratedAt time.Time `json:"generatedAt"`
}

// CategorySummary is one of the top spending categories of the month.
type CategorySummary struct {
	CategoryID *uuid.UUID      `json:"categoryId"` // nil for the "no category" bucket
	Name       string          `json:"name" example:"Makanan"`
	Total      decimal.Decimal `json:"total" example:"450000"`
	PctOfMTD   decimal.Decimal `json:"pctOfMTD" example:"46.88"` // Share of the month-to-date expense total
}

// BudgetWarning is a budget that is at 90% progress or more.
type BudgetWarning struct {
	BudgetID uuid.UUID       `json:"budgetId"`
	Name     string          `json:"name" example:"Transport"`
	Planned  decimal.Decimal `json:"planned" example:"500000"`
	Actual   decimal.Decimal `json:"actual" example:"470000"`
	Progress decimal.Decimal `json:"progress" example:"94"` // Percent of the planned amount spent so far
}

// UpcomingKind distinguishes upcoming item sources.
type UpcomingKind string

const (
	UpcomingKindSubscription UpcomingKind = "subscription"
	UpcomingKindDebt         UpcomingKind = "debt"
)

// UpcomingItem is a subscription charge or debt due within the next week.
type UpcomingItem struct {
	Kind    UpcomingKind    `json:"kind" example:"subscription"`
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name" example:"Spotify"`
	Amount  decimal.Decimal `json:"amount" example:"54990"`
	DueDate time.Time       `json:"dueDate"`
}
