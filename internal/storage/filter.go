package storage

import (
	"strings"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/types"
	"github.com/ryanuber/go-glob"
)

// CategoryFilter selects categories.
//
// With a UserID, the global categories and the categories of that user
// are selected. Without, all categories are.
type CategoryFilter struct {
	UserID *uint
}

func (f CategoryFilter) Match(c models.Category) bool {
	return f.UserID == nil || c.VisibleTo(*f.UserID)
}

type ExpenseFilter struct {
	UserID     uint
	Month      types.Month // zero for all months
	CategoryID *uint
	Limit      int // 0 for no limit
}

func (f ExpenseFilter) Match(e models.Expense) bool {
	if e.UserID != f.UserID {
		return false
	}

	if !f.Month.IsZero() && !f.Month.Contains(e.Date.Time()) {
		return false
	}

	if f.CategoryID != nil && (e.CategoryID == nil || *e.CategoryID != *f.CategoryID) {
		return false
	}

	return true
}

type GoalFilter struct {
	UserID    uint
	Completed *bool
}

func (f GoalFilter) Match(g models.Goal) bool {
	return g.UserID == f.UserID && (f.Completed == nil || g.Completed == *f.Completed)
}

type BudgetFilter struct {
	UserID uint
	Month  types.Month // zero for all months
}

func (f BudgetFilter) Match(b models.Budget) bool {
	if b.UserID != f.UserID {
		return false
	}

	return f.Month.IsZero() || (b.Month == f.Month.Number() && b.Year == f.Month.Year())
}

// ResourceFilter selects resources. Name is a case insensitive glob
// pattern, e.g. "*counsel*".
type ResourceFilter struct {
	Type       *models.ResourceType
	Bookmarked *bool
	Name       string
}

func (f ResourceFilter) Match(r models.Resource) bool {
	if f.Type != nil && r.Type != *f.Type {
		return false
	}

	if f.Bookmarked != nil && r.Bookmarked != *f.Bookmarked {
		return false
	}

	return f.MatchName(r)
}

// MatchName reports whether the resource name matches the Name pattern.
func (f ResourceFilter) MatchName(r models.Resource) bool {
	if f.Name == "" {
		return true
	}

	return glob.Glob(strings.ToLower(f.Name), strings.ToLower(r.Name))
}

type ArticleFilter struct {
	Category *models.ArticleCategory
}

func (f ArticleFilter) Match(a models.Article) bool {
	return f.Category == nil || a.Category == *f.Category
}
