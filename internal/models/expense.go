package models

import (
	"time"

	"github.com/fi-rise/backend/internal/types"
	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          uint            `json:"id" gorm:"primaryKey" example:"1"`
	Description string          `json:"description" example:"Grocery Store"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"78.25"`
	Date        types.Date      `json:"date" gorm:"index" example:"2023-09-15"`
	CategoryID  *uint           `json:"categoryId" example:"2"` // nil for uncategorized expenses
	UserID      uint            `json:"userId" gorm:"index" example:"1"`
	CreatedAt   time.Time       `json:"createdAt" example:"2023-09-15T10:00:00Z"`
}

type ExpenseCreate struct {
	Description string
	Amount      decimal.Decimal
	Date        types.Date
	CategoryID  *uint
	UserID      uint
}

func (c ExpenseCreate) Model() Expense {
	return Expense{
		Description: c.Description,
		Amount:      c.Amount,
		Date:        c.Date,
		CategoryID:  c.CategoryID,
		UserID:      c.UserID,
	}
}

type ExpensePatch struct {
	Description *string
	Amount      *decimal.Decimal
	Date        *types.Date
	CategoryID  Optional[uint]
}

// Merge returns a copy of the expense with the patch applied.
func (e Expense) Merge(p ExpensePatch) Expense {
	e.Description = pick(e.Description, p.Description)
	e.Amount = pick(e.Amount, p.Amount)
	e.Date = pick(e.Date, p.Date)
	e.CategoryID = p.CategoryID.apply(e.CategoryID)
	return e
}
