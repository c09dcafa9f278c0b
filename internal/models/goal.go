package models

import (
	"time"

	"github.com/fi-rise/backend/internal/types"
	"github.com/shopspring/decimal"
)

type Goal struct {
	ID            uint            `json:"id" gorm:"primaryKey" example:"1"`
	Name          string          `json:"name" example:"Emergency Fund"`
	TargetAmount  decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)" example:"1000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(20,8)" example:"450"`
	TargetDate    *types.Date     `json:"targetDate" example:"2023-10-30"`
	Completed     bool            `json:"completed" example:"false"` // set by the user, never derived from the amounts
	UserID        uint            `json:"userId" gorm:"index" example:"1"`
	CreatedAt     time.Time       `json:"createdAt" example:"2023-09-01T10:00:00Z"`
}

type GoalCreate struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *types.Date
	Completed     bool
	UserID        uint
}

func (c GoalCreate) Model() Goal {
	return Goal{
		Name:          c.Name,
		TargetAmount:  c.TargetAmount,
		CurrentAmount: c.CurrentAmount,
		TargetDate:    c.TargetDate,
		Completed:     c.Completed,
		UserID:        c.UserID,
	}
}

type GoalPatch struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetDate    Optional[types.Date]
	Completed     *bool
}

// Merge returns a copy of the goal with the patch applied.
func (g Goal) Merge(p GoalPatch) Goal {
	g.Name = pick(g.Name, p.Name)
	g.TargetAmount = pick(g.TargetAmount, p.TargetAmount)
	g.CurrentAmount = pick(g.CurrentAmount, p.CurrentAmount)
	g.TargetDate = p.TargetDate.apply(g.TargetDate)
	g.Completed = pick(g.Completed, p.Completed)
	return g
}
