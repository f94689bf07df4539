package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAccountTypeInvalid        = errors.New("the account type must be one of cash, bank, ewallet, other")
	ErrTransactionTypeInvalid    = errors.New("the transaction type must be one of expense, income, transfer")
	ErrTransactionAmountNegative = errors.New("transaction amounts must not be negative")
	ErrBudgetPlannedNegative     = errors.New("the planned amount of a budget must not be negative")
	ErrBudgetPeriodInvalid       = errors.New("the budget period must be monthly or weekly")
	ErrChargeStatusInvalid       = errors.New("the charge status must be one of due, overdue, paid")
	ErrGoalAmountNotPositive     = errors.New("goal amounts must be larger than zero")
	ErrSalaryNotPositive         = errors.New("the salary amount must be larger than zero")
	ErrCategoryNameNotUnique     = errors.New("you already have a category with this name")
	ErrSimulationNameNotUnique   = errors.New("you already have a simulation with this title for the month")
	ErrSettingKeyEmpty           = errors.New("the setting key must not be empty")
)
