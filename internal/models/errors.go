package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// User and session errors
var (
	ErrUserEmailNotUnique  = errors.New("a user with this email address already exists")
	ErrUserEmailInvalid    = errors.New("the email address is not valid")
	ErrUserCurrencyInvalid = errors.New("the currency must be a valid ISO 4217 code")
	ErrPasswordTooShort    = errors.New("the password must be at least 8 characters long")
	ErrSessionExpired      = errors.New("the session has expired, please log in again")
)

// Category errors
var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrCategoryNameEmpty     = errors.New("the category name must not be empty")
	ErrCategoryKindInvalid   = errors.New("the category kind must be INCOME or EXPENSE")
)

// Transaction errors
var (
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be positive")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be INCOME or EXPENSE")
	ErrTransactionIncomeAssigned    = errors.New("income transactions cannot be assigned to a budget")
)

// Budget errors
var (
	ErrBudgetAmountNotPositive      = errors.New("the budget amount must be positive")
	ErrBudgetTypeInvalid            = errors.New("the budget type must be SINGLE or MULTI")
	ErrBudgetSingleWithGroup        = errors.New("single budgets cannot be part of a group")
	ErrBudgetTypeImmutable          = errors.New("the type and group of a budget cannot be changed")
	ErrBudgetDueDayInvalid          = errors.New("the due day must be between 0 and 28")
	ErrBudgetGroupDueDayMismatch    = errors.New("all budgets of a group must have the same due day")
	ErrBudgetGroupCategoryNotUnique = errors.New("a category can only be used once per budget group")
	ErrBudgetCategoryNotExpense     = errors.New("budgets can only be set for expense categories")
)

// Category rule errors
var (
	ErrCategoryRuleMatchEmpty = errors.New("the match pattern of a category rule must not be empty")
)

// Notification and badge errors
var (
	ErrNotificationNotUnique      = errors.New("this notification has already been sent for the current budget period")
	ErrNotificationSubjectMissing = errors.New("a notification needs a budget or a budget group")
	ErrBadgeAlreadyUnlocked       = errors.New("this badge has already been unlocked")
)
