package aggregation

import (
	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// BudgetUsage is the spending against one budget.
type BudgetUsage struct {
	Budget     models.Budget   `json:"budget"`
	Category   string          `json:"category" example:"Food"`
	Spent      decimal.Decimal `json:"spent" example:"90.75"`
	Remaining  decimal.Decimal `json:"remaining" example:"209.25"` // negative when overspent
	Percentage int             `json:"percentage" example:"30"`
	Overspent  bool            `json:"overspent" example:"false"`
}

// CategorySpend is the spending in one category.
type CategorySpend struct {
	CategoryID uint            `json:"categoryId" example:"2"` // 0 for uncategorized expenses
	Category   string          `json:"category" example:"Food"`
	Spent      decimal.Decimal `json:"spent" example:"90.75"`
	Budgeted   bool            `json:"budgeted" example:"true"`
}

// Overview summarizes budgets and spending for a month.
type Overview struct {
	Month           types.Month     `json:"month" example:"2023-09"`
	Budgets         []BudgetUsage   `json:"budgets"`
	Categories      []CategorySpend `json:"categories"`
	TotalBudget     decimal.Decimal `json:"totalBudget" example:"1500"`
	TotalSpent      decimal.Decimal `json:"totalSpent" example:"833.82"`
	TotalPercentage int             `json:"totalPercentage" example:"56"`
	Overspent       bool            `json:"overspent" example:"false"`
}

// MonthOverview computes the overview for the month.
//
// Budgets and expenses outside of the month are ignored. Category names are
// taken from categories; expenses in unknown categories are still counted.
func MonthOverview(month types.Month, budgets []models.Budget, expenses []models.Expense, categories []models.Category) Overview {
	names := make(map[uint]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	names[Uncategorized] = "Uncategorized"

	spent := SpendByCategory(expenses, month)

	o := Overview{
		Month:       month,
		Budgets:     []BudgetUsage{},
		Categories:  []CategorySpend{},
		TotalBudget: decimal.Zero,
		TotalSpent:  Total(expenses, month),
	}

	budgeted := make(map[uint]bool)
	for _, b := range budgets {
		if b.Month != month.Number() || b.Year != month.Year() {
			continue
		}

		s := spent[b.CategoryID]
		o.Budgets = append(o.Budgets, BudgetUsage{
			Budget:     b,
			Category:   names[b.CategoryID],
			Spent:      s,
			Remaining:  b.Amount.Sub(s),
			Percentage: Percentage(s, b.Amount),
			Overspent:  s.GreaterThan(b.Amount),
		})

		budgeted[b.CategoryID] = true
		o.TotalBudget = o.TotalBudget.Add(b.Amount)
	}

	for id, s := range spent {
		o.Categories = append(o.Categories, CategorySpend{
			CategoryID: id,
			Category:   names[id],
			Spent:      s,
			Budgeted:   budgeted[id],
		})
	}

	// Highest spending first
	slices.SortFunc(o.Categories, func(a, b CategorySpend) int {
		if c := b.Spent.Cmp(a.Spent); c != 0 {
			return c
		}
		return compareID(a.CategoryID, b.CategoryID)
	})

	o.TotalPercentage = Percentage(o.TotalSpent, o.TotalBudget)
	o.Overspent = o.TotalSpent.GreaterThan(o.TotalBudget)

	return o
}

func compareID(a, b uint) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
