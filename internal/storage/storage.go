// Package storage defines the persistence contract of the fi-rise backend.
//
// Every entity family has its own interface. Stores return records by value,
// report missing records with errors wrapping models.ErrResourceNotFound and
// report deletes of missing records as false without an error.
package storage

import (
	"context"

	"github.com/fi-rise/backend/internal/models"
)

type Users interface {
	GetUser(ctx context.Context, id uint) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)

	// CreateUser stores a user. It fails with models.ErrUsernameNotUnique
	// if the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

type Categories interface {
	GetCategory(ctx context.Context, id uint) (models.Category, error)
	ListCategories(ctx context.Context, filter CategoryFilter) ([]models.Category, error)
	CreateCategory(ctx context.Context, create models.CategoryCreate) (models.Category, error)
	UpdateCategory(ctx context.Context, id uint, patch models.CategoryPatch) (models.Category, error)
	DeleteCategory(ctx context.Context, id uint) (bool, error)
}

type Expenses interface {
	GetExpense(ctx context.Context, id uint) (models.Expense, error)

	// ListExpenses returns expenses ordered by date, most recent first.
	// Expenses on the same date are ordered by insertion.
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error)
	CreateExpense(ctx context.Context, create models.ExpenseCreate) (models.Expense, error)
	UpdateExpense(ctx context.Context, id uint, patch models.ExpensePatch) (models.Expense, error)
	DeleteExpense(ctx context.Context, id uint) (bool, error)
}

type Goals interface {
	GetGoal(ctx context.Context, id uint) (models.Goal, error)

	// ListGoals returns goals ordered by target date, earliest first.
	// Goals without a target date come last.
	ListGoals(ctx context.Context, filter GoalFilter) ([]models.Goal, error)
	CreateGoal(ctx context.Context, create models.GoalCreate) (models.Goal, error)
	UpdateGoal(ctx context.Context, id uint, patch models.GoalPatch) (models.Goal, error)
	DeleteGoal(ctx context.Context, id uint) (bool, error)
}

type Budgets interface {
	GetBudget(ctx context.Context, id uint) (models.Budget, error)
	ListBudgets(ctx context.Context, filter BudgetFilter) ([]models.Budget, error)

	// FindBudget returns the budget of a user for a category in a month.
	FindBudget(ctx context.Context, userID, categoryID uint, month, year int) (models.Budget, error)
	CreateBudget(ctx context.Context, create models.BudgetCreate) (models.Budget, error)
	UpdateBudget(ctx context.Context, id uint, patch models.BudgetPatch) (models.Budget, error)
	DeleteBudget(ctx context.Context, id uint) (bool, error)

	// UpsertBudget sets the amount of the budget for the user, category
	// and month of the input, creating the budget if it does not exist.
	//
	// Concurrent upserts for the same key never create more than one budget.
	// created reports whether a new budget was stored.
	UpsertBudget(ctx context.Context, create models.BudgetCreate) (budget models.Budget, created bool, err error)
}

type Resources interface {
	GetResource(ctx context.Context, id uint) (models.Resource, error)
	ListResources(ctx context.Context, filter ResourceFilter) ([]models.Resource, error)
	CreateResource(ctx context.Context, create models.ResourceCreate) (models.Resource, error)

	// ToggleBookmark flips the bookmark of a resource and returns the result.
	ToggleBookmark(ctx context.Context, id uint) (models.Resource, error)
}

type Articles interface {
	GetArticle(ctx context.Context, id uint) (models.Article, error)
	ListArticles(ctx context.Context, filter ArticleFilter) ([]models.Article, error)
	CreateArticle(ctx context.Context, create models.ArticleCreate) (models.Article, error)
}

// Store is the complete storage used by the API.
type Store interface {
	Users
	Categories
	Expenses
	Goals
	Budgets
	Resources
	Articles

	// Ping verifies that the store can serve requests.
	Ping(ctx context.Context) error
	Close() error
}
