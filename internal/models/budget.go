package models

import (
	"time"

	"github.com/fi-rise/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Budget is the amount a user plans to spend in a category in one month.
//
// There is at most one budget per user, category and month.
type Budget struct {
	ID         uint            `json:"id" gorm:"primaryKey" example:"1"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"650"`
	CategoryID uint            `json:"categoryId" gorm:"uniqueIndex:budget_user_category_month" example:"1"`
	UserID     uint            `json:"userId" gorm:"uniqueIndex:budget_user_category_month" example:"1"`
	Month      int             `json:"month" gorm:"uniqueIndex:budget_user_category_month" example:"9"`
	Year       int             `json:"year" gorm:"uniqueIndex:budget_user_category_month" example:"2023"`
	CreatedAt  time.Time       `json:"createdAt" example:"2023-09-01T10:00:00Z"`
}

// Window returns the month the budget applies to.
func (b Budget) Window() types.Month {
	return types.NewMonth(b.Year, time.Month(b.Month))
}

type BudgetCreate struct {
	Amount     decimal.Decimal
	CategoryID uint
	UserID     uint
	Month      int
	Year       int
}

func (c BudgetCreate) Model() Budget {
	return Budget{
		Amount:     c.Amount,
		CategoryID: c.CategoryID,
		UserID:     c.UserID,
		Month:      c.Month,
		Year:       c.Year,
	}
}

type BudgetPatch struct {
	Amount *decimal.Decimal
}

// Merge returns a copy of the budget with the patch applied.
func (b Budget) Merge(p BudgetPatch) Budget {
	b.Amount = pick(b.Amount, p.Amount)
	return b
}
