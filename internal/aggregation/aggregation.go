// Package aggregation derives display values from raw entities.
//
// All functions are pure. Sums use exact decimal arithmetic.
package aggregation

import (
	"fmt"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Uncategorized is the key for expenses without a category.
const Uncategorized uint = 0

const (
	StatusCompleted    = "Completed"
	StatusAlmostThere  = "Almost There"
	StatusJustStarted  = "Just Started"
	statusPercentLabel = "%d%% Complete"
)

var hundred = decimal.NewFromInt(100)

// SpendByCategory sums the amounts of the expenses in the month by
// category. Expenses without a category are summed under Uncategorized.
func SpendByCategory(expenses []models.Expense, month types.Month) map[uint]decimal.Decimal {
	spent := make(map[uint]decimal.Decimal)

	for _, e := range expenses {
		if !month.Contains(e.Date.Time()) {
			continue
		}

		key := Uncategorized
		if e.CategoryID != nil {
			key = *e.CategoryID
		}

		spent[key] = spent[key].Add(e.Amount)
	}

	return spent
}

// Total sums the amounts of the expenses in the month.
func Total(expenses []models.Expense, month types.Month) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if month.Contains(e.Date.Time()) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Percentage returns current as a share of total in whole percent,
// rounded half up and capped to the range 0 to 100.
//
// A total of zero or less yields 0.
func Percentage(current, total decimal.Decimal) int {
	if !total.IsPositive() {
		return 0
	}

	p := current.Div(total).Mul(hundred).Round(0)
	switch {
	case p.GreaterThan(hundred):
		return 100
	case p.IsNegative():
		return 0
	}

	return int(p.IntPart())
}

// GoalProgress returns the share of the target amount that is saved.
func GoalProgress(g models.Goal) int {
	return Percentage(g.CurrentAmount, g.TargetAmount)
}

// GoalStatus classifies a goal.
//
// The completed flag takes precedence over the progress.
func GoalStatus(g models.Goal) string {
	if g.Completed {
		return StatusCompleted
	}

	progress := GoalProgress(g)
	switch {
	case progress >= 75:
		return StatusAlmostThere
	case progress >= 25:
		return fmt.Sprintf(statusPercentLabel, progress)
	}

	return StatusJustStarted
}
