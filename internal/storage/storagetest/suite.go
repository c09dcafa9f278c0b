// Package storagetest contains a test suite that every storage.Store
// implementation must pass.
package storagetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"github.com/fi-rise/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// Suite runs the storage contract against the store returned by New.
// New is called before every test, the store is closed after it.
type Suite struct {
	suite.Suite
	New   func(t *testing.T) storage.Store
	Store storage.Store
}

func (s *Suite) SetupTest() {
	s.Store = s.New(s.T())
}

func (s *Suite) TearDownTest() {
	_ = s.Store.Close()
}

func ptr[T any](v T) *T {
	return &v
}

func (s *Suite) createExpense(userID uint, amount string, date types.Date, categoryID *uint) models.Expense {
	e, err := s.Store.CreateExpense(context.Background(), models.ExpenseCreate{
		Description: "Expense " + amount,
		Amount:      decimal.RequireFromString(amount),
		Date:        date,
		CategoryID:  categoryID,
		UserID:      userID,
	})
	s.Require().Nil(err)
	return e
}

func (s *Suite) createResource(name string, kind models.ResourceType) models.Resource {
	r, err := s.Store.CreateResource(context.Background(), models.ResourceCreate{
		Name:        name,
		Description: name,
		Type:        kind,
	})
	s.Require().Nil(err)
	return r
}

func (s *Suite) TestPing() {
	s.Assert().Nil(s.Store.Ping(context.Background()))
}

func (s *Suite) TestUsers() {
	ctx := context.Background()

	u, err := models.UserCreate{Username: "alex", Password: "secret1", FullName: "Alex Doe"}.Model()
	s.Require().Nil(err)

	created, err := s.Store.CreateUser(ctx, u)
	s.Require().Nil(err)
	s.Assert().NotZero(created.ID)

	byID, err := s.Store.GetUser(ctx, created.ID)
	s.Require().Nil(err)
	s.Assert().Equal("alex", byID.Username)
	s.Assert().True(byID.CheckPassword("secret1"))

	byName, err := s.Store.GetUserByUsername(ctx, "alex")
	s.Require().Nil(err)
	s.Assert().Equal(created.ID, byName.ID)

	_, err = s.Store.CreateUser(ctx, u)
	s.Assert().ErrorIs(err, models.ErrUsernameNotUnique)

	_, err = s.Store.GetUserByUsername(ctx, "nobody")
	s.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (s *Suite) TestCategoryVisibility() {
	ctx := context.Background()

	global, err := s.Store.CreateCategory(ctx, models.CategoryCreate{Name: "Housing", Icon: "home"})
	s.Require().Nil(err)
	own, err := s.Store.CreateCategory(ctx, models.CategoryCreate{Name: "Pets", Icon: "pets", UserID: ptr(uint(1))})
	s.Require().Nil(err)
	other, err := s.Store.CreateCategory(ctx, models.CategoryCreate{Name: "Boat", Icon: "boat", UserID: ptr(uint(2))})
	s.Require().Nil(err)

	tests := []struct {
		name   string
		filter storage.CategoryFilter
		want   []uint
	}{
		{"all", storage.CategoryFilter{}, []uint{global.ID, own.ID, other.ID}},
		{"user 1", storage.CategoryFilter{UserID: ptr(uint(1))}, []uint{global.ID, own.ID}},
		{"user 3", storage.CategoryFilter{UserID: ptr(uint(3))}, []uint{global.ID}},
	}

	for _, tt := range tests {
		s.T().Run(tt.name, func(t *testing.T) {
			categories, err := s.Store.ListCategories(ctx, tt.filter)
			s.Require().Nil(err)

			ids := make([]uint, 0, len(categories))
			for _, c := range categories {
				ids = append(ids, c.ID)
			}
			s.Assert().Equal(tt.want, ids)
		})
	}
}

func (s *Suite) TestCategoryUpdateDelete() {
	ctx := context.Background()

	c, err := s.Store.CreateCategory(ctx, models.CategoryCreate{Name: "Pets", Icon: "pets", UserID: ptr(uint(1))})
	s.Require().Nil(err)

	updated, err := s.Store.UpdateCategory(ctx, c.ID, models.CategoryPatch{Name: ptr("Animals")})
	s.Require().Nil(err)
	s.Assert().Equal("Animals", updated.Name)
	s.Assert().Equal("pets", updated.Icon)

	e := s.createExpense(1, "20", types.NewDate(2023, 9, 1), &c.ID)
	_, err = s.Store.CreateBudget(ctx, models.BudgetCreate{Amount: decimal.NewFromInt(50), CategoryID: c.ID, UserID: 1, Month: 9, Year: 2023})
	s.Require().Nil(err)

	ok, err := s.Store.DeleteCategory(ctx, c.ID)
	s.Require().Nil(err)
	s.Assert().True(ok)

	e, err = s.Store.GetExpense(ctx, e.ID)
	s.Require().Nil(err)
	s.Assert().Nil(e.CategoryID, "expenses of deleted categories are uncategorized")

	budgets, err := s.Store.ListBudgets(ctx, storage.BudgetFilter{UserID: 1})
	s.Require().Nil(err)
	s.Assert().Len(budgets, 0)

	ok, err = s.Store.DeleteCategory(ctx, c.ID)
	s.Require().Nil(err)
	s.Assert().False(ok)
}

func (s *Suite) TestExpenseOrdering() {
	ctx := context.Background()

	first := s.createExpense(1, "10", types.NewDate(2023, 9, 10), nil)
	newest := s.createExpense(1, "20", types.NewDate(2023, 9, 15), nil)
	sameDay := s.createExpense(1, "30", types.NewDate(2023, 9, 10), nil)
	oldest := s.createExpense(1, "40", types.NewDate(2023, 8, 1), nil)
	s.createExpense(2, "50", types.NewDate(2023, 9, 20), nil)

	expenses, err := s.Store.ListExpenses(ctx, storage.ExpenseFilter{UserID: 1})
	s.Require().Nil(err)

	ids := make([]uint, 0, len(expenses))
	for _, e := range expenses {
		ids = append(ids, e.ID)
	}
	s.Assert().Equal([]uint{newest.ID, first.ID, sameDay.ID, oldest.ID}, ids)

	recent, err := s.Store.ListExpenses(ctx, storage.ExpenseFilter{UserID: 1, Limit: 2})
	s.Require().Nil(err)
	s.Require().Len(recent, 2)
	s.Assert().Equal(newest.ID, recent[0].ID)
	s.Assert().Equal(first.ID, recent[1].ID)
}

func (s *Suite) TestExpenseFilter() {
	ctx := context.Background()

	s.createExpense(1, "50", types.NewDate(2023, 9, 5), ptr(uint(1)))
	s.createExpense(1, "25", types.NewDate(2023, 9, 30), ptr(uint(2)))
	s.createExpense(1, "10", types.NewDate(2023, 8, 31), ptr(uint(1)))
	s.createExpense(1, "5", types.NewDate(2023, 10, 1), nil)

	september := types.NewMonth(2023, time.September)

	tests := []struct {
		name   string
		filter storage.ExpenseFilter
		count  int
	}{
		{"month", storage.ExpenseFilter{UserID: 1, Month: september}, 2},
		{"month and category", storage.ExpenseFilter{UserID: 1, Month: september, CategoryID: ptr(uint(1))}, 1},
		{"category", storage.ExpenseFilter{UserID: 1, CategoryID: ptr(uint(1))}, 2},
		{"other user", storage.ExpenseFilter{UserID: 2}, 0},
	}

	for _, tt := range tests {
		s.T().Run(tt.name, func(t *testing.T) {
			expenses, err := s.Store.ListExpenses(ctx, tt.filter)
			s.Require().Nil(err)
			s.Assert().Len(expenses, tt.count)
		})
	}
}

func (s *Suite) TestExpenseUpdate() {
	ctx := context.Background()

	e := s.createExpense(1, "87.32", types.NewDate(2023, 9, 10), ptr(uint(4)))

	updated, err := s.Store.UpdateExpense(ctx, e.ID, models.ExpensePatch{Amount: ptr(decimal.RequireFromString("90.10"))})
	s.Require().Nil(err)
	s.Assert().Equal(e.ID, updated.ID)
	s.Assert().True(decimal.RequireFromString("90.10").Equal(updated.Amount))
	s.Assert().Equal(e.Description, updated.Description)
	s.Assert().Equal(uint(4), *updated.CategoryID)

	stored, err := s.Store.GetExpense(ctx, e.ID)
	s.Require().Nil(err)
	s.Assert().True(decimal.RequireFromString("90.10").Equal(stored.Amount))
	s.Assert().Equal("2023-09-10", stored.Date.String())

	_, err = s.Store.UpdateExpense(ctx, e.ID+100, models.ExpensePatch{})
	s.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (s *Suite) TestDeleteMissing() {
	ctx := context.Background()

	deletes := map[string]func(uint) (bool, error){
		"expense":  func(id uint) (bool, error) { return s.Store.DeleteExpense(ctx, id) },
		"goal":     func(id uint) (bool, error) { return s.Store.DeleteGoal(ctx, id) },
		"budget":   func(id uint) (bool, error) { return s.Store.DeleteBudget(ctx, id) },
		"category": func(id uint) (bool, error) { return s.Store.DeleteCategory(ctx, id) },
	}

	for name, del := range deletes {
		s.T().Run(name, func(t *testing.T) {
			for i := 0; i < 2; i++ {
				ok, err := del(999)
				s.Assert().Nil(err)
				s.Assert().False(ok)
			}
		})
	}
}

func (s *Suite) TestDeleteExpense() {
	ctx := context.Background()
	e := s.createExpense(1, "12.50", types.NewDate(2023, 9, 14), nil)

	ok, err := s.Store.DeleteExpense(ctx, e.ID)
	s.Require().Nil(err)
	s.Assert().True(ok)

	_, err = s.Store.GetExpense(ctx, e.ID)
	s.Assert().ErrorIs(err, models.ErrResourceNotFound)

	ok, err = s.Store.DeleteExpense(ctx, e.ID)
	s.Require().Nil(err)
	s.Assert().False(ok)
}

func (s *Suite) TestGoalOrdering() {
	ctx := context.Background()

	create := func(name string, target *types.Date) models.Goal {
		g, err := s.Store.CreateGoal(ctx, models.GoalCreate{
			Name:         name,
			TargetAmount: decimal.NewFromInt(100),
			TargetDate:   target,
			UserID:       1,
		})
		s.Require().Nil(err)
		return g
	}

	undated := create("Undated", nil)
	later := create("Later", ptr(types.NewDate(2024, 3, 15)))
	sooner := create("Sooner", ptr(types.NewDate(2023, 10, 30)))
	undated2 := create("Undated again", nil)

	goals, err := s.Store.ListGoals(ctx, storage.GoalFilter{UserID: 1})
	s.Require().Nil(err)

	ids := make([]uint, 0, len(goals))
	for _, g := range goals {
		ids = append(ids, g.ID)
	}
	s.Assert().Equal([]uint{sooner.ID, later.ID, undated.ID, undated2.ID}, ids)
}

func (s *Suite) TestGoalUpdate() {
	ctx := context.Background()

	g, err := s.Store.CreateGoal(ctx, models.GoalCreate{
		Name:          "Emergency Fund",
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(450),
		TargetDate:    ptr(types.NewDate(2023, 10, 30)),
		UserID:        1,
	})
	s.Require().Nil(err)
	s.Assert().False(g.Completed)

	updated, err := s.Store.UpdateGoal(ctx, g.ID, models.GoalPatch{
		CurrentAmount: ptr(decimal.NewFromInt(1200)),
		TargetDate:    models.Null[types.Date](),
	})
	s.Require().Nil(err)
	s.Assert().True(decimal.NewFromInt(1200).Equal(updated.CurrentAmount))
	s.Assert().Nil(updated.TargetDate)
	s.Assert().False(updated.Completed, "goals are not completed automatically")

	completed, err := s.Store.ListGoals(ctx, storage.GoalFilter{UserID: 1, Completed: ptr(true)})
	s.Require().Nil(err)
	s.Assert().Len(completed, 0)
}

func (s *Suite) TestUpsertBudgetIdempotent() {
	ctx := context.Background()
	create := models.BudgetCreate{Amount: decimal.RequireFromString("200"), CategoryID: 1, UserID: 1, Month: 9, Year: 2023}

	first, created, err := s.Store.UpsertBudget(ctx, create)
	s.Require().Nil(err)
	s.Assert().True(created)

	second, created, err := s.Store.UpsertBudget(ctx, create)
	s.Require().Nil(err)
	s.Assert().False(created)
	s.Assert().Equal(first.ID, second.ID)

	budgets, err := s.Store.ListBudgets(ctx, storage.BudgetFilter{UserID: 1, Month: types.NewMonth(2023, time.September)})
	s.Require().Nil(err)
	s.Require().Len(budgets, 1)
	s.Assert().True(decimal.RequireFromString("200").Equal(budgets[0].Amount))
}

func (s *Suite) TestUpsertBudgetUpdate() {
	ctx := context.Background()
	create := models.BudgetCreate{Amount: decimal.RequireFromString("200"), CategoryID: 1, UserID: 1, Month: 9, Year: 2023}

	first, _, err := s.Store.UpsertBudget(ctx, create)
	s.Require().Nil(err)

	create.Amount = decimal.RequireFromString("350")
	second, created, err := s.Store.UpsertBudget(ctx, create)
	s.Require().Nil(err)
	s.Assert().False(created)
	s.Assert().Equal(first.ID, second.ID)
	s.Assert().True(decimal.RequireFromString("350").Equal(second.Amount))

	found, err := s.Store.FindBudget(ctx, 1, 1, 9, 2023)
	s.Require().Nil(err)
	s.Assert().Equal(first.ID, found.ID)
	s.Assert().True(decimal.RequireFromString("350").Equal(found.Amount))

	// Other months and users are separate budgets
	create.Month = 10
	_, created, err = s.Store.UpsertBudget(ctx, create)
	s.Require().Nil(err)
	s.Assert().True(created)

	create.Month = 9
	create.UserID = 2
	_, created, err = s.Store.UpsertBudget(ctx, create)
	s.Require().Nil(err)
	s.Assert().True(created)

	_, err = s.Store.FindBudget(ctx, 1, 2, 9, 2023)
	s.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (s *Suite) TestUpsertBudgetConcurrent() {
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := s.Store.UpsertBudget(ctx, models.BudgetCreate{
				Amount:     decimal.NewFromInt(int64(100 + i)),
				CategoryID: 3,
				UserID:     1,
				Month:      9,
				Year:       2023,
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Require().Nil(err)
	}

	budgets, err := s.Store.ListBudgets(ctx, storage.BudgetFilter{UserID: 1})
	s.Require().Nil(err)
	s.Assert().Len(budgets, 1)
}

func (s *Suite) TestConcurrentCreateUniqueIDs() {
	ctx := context.Background()

	var mu sync.Mutex
	var wg sync.WaitGroup
	ids := make(map[uint]bool)

	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := s.Store.CreateExpense(ctx, models.ExpenseCreate{
				Description: "Coffee",
				Amount:      decimal.RequireFromString("3.50"),
				Date:        types.NewDate(2023, 9, 1),
				UserID:      1,
			})
			s.Assert().Nil(err)

			mu.Lock()
			ids[e.ID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Assert().Len(ids, 25)
}

func (s *Suite) TestToggleBookmark() {
	ctx := context.Background()
	r := s.createResource("Financial Counseling", models.ResourceFinancial)
	s.Assert().False(r.Bookmarked)

	toggled, err := s.Store.ToggleBookmark(ctx, r.ID)
	s.Require().Nil(err)
	s.Assert().True(toggled.Bookmarked)

	toggled, err = s.Store.ToggleBookmark(ctx, r.ID)
	s.Require().Nil(err)
	s.Assert().False(toggled.Bookmarked)

	_, err = s.Store.ToggleBookmark(ctx, r.ID+100)
	s.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (s *Suite) TestToggleBookmarkConcurrent() {
	ctx := context.Background()
	r := s.createResource("Job Training Program", models.ResourceEmployment)

	var wg sync.WaitGroup
	for i := 0; i < 11; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Store.ToggleBookmark(ctx, r.ID)
			s.Assert().Nil(err)
		}()
	}
	wg.Wait()

	stored, err := s.Store.GetResource(ctx, r.ID)
	s.Require().Nil(err)
	s.Assert().True(stored.Bookmarked, "an odd number of toggles leaves the bookmark set")
}

func (s *Suite) TestResourceFilter() {
	ctx := context.Background()
	s.createResource("Job Training Program", models.ResourceEmployment)
	counseling := s.createResource("Financial Counseling", models.ResourceFinancial)
	s.createResource("Community Action Agency", models.ResourceHousing)

	_, err := s.Store.ToggleBookmark(ctx, counseling.ID)
	s.Require().Nil(err)

	tests := []struct {
		name   string
		filter storage.ResourceFilter
		count  int
	}{
		{"all", storage.ResourceFilter{}, 3},
		{"type", storage.ResourceFilter{Type: ptr(models.ResourceHousing)}, 1},
		{"bookmarked", storage.ResourceFilter{Bookmarked: ptr(true)}, 1},
		{"name glob", storage.ResourceFilter{Name: "*program*"}, 1},
		{"name glob, no match", storage.ResourceFilter{Name: "legal*"}, 0},
	}

	for _, tt := range tests {
		s.T().Run(tt.name, func(t *testing.T) {
			resources, err := s.Store.ListResources(ctx, tt.filter)
			s.Require().Nil(err)
			s.Assert().Len(resources, tt.count)
		})
	}
}

func (s *Suite) TestSeed() {
	ctx := context.Background()
	now := time.Date(2023, 9, 20, 12, 0, 0, 0, time.UTC)

	s.Require().Nil(storage.Seed(ctx, s.Store, now))
	s.Require().Nil(storage.Seed(ctx, s.Store, now), "seeding twice is a no-op")

	user, err := s.Store.GetUserByUsername(ctx, storage.DemoUsername)
	s.Require().Nil(err)
	s.Assert().True(user.CheckPassword("password123"))

	categories, err := s.Store.ListCategories(ctx, storage.CategoryFilter{})
	s.Require().Nil(err)
	s.Assert().Len(categories, 8)

	budgets, err := s.Store.ListBudgets(ctx, storage.BudgetFilter{UserID: user.ID, Month: types.MonthOf(now)})
	s.Require().Nil(err)
	s.Assert().Len(budgets, 6)

	expenses, err := s.Store.ListExpenses(ctx, storage.ExpenseFilter{UserID: user.ID})
	s.Require().Nil(err)
	s.Require().Len(expenses, 5)
	s.Assert().Equal("Grocery Store", expenses[0].Description)
	s.Assert().Equal("Rent", expenses[4].Description)

	goals, err := s.Store.ListGoals(ctx, storage.GoalFilter{UserID: user.ID})
	s.Require().Nil(err)
	s.Assert().Len(goals, 2)

	resources, err := s.Store.ListResources(ctx, storage.ResourceFilter{})
	s.Require().Nil(err)
	s.Assert().Len(resources, 3)

	articles, err := s.Store.ListArticles(ctx, storage.ArticleFilter{})
	s.Require().Nil(err)
	s.Assert().Len(articles, 7)

	credit, err := s.Store.ListArticles(ctx, storage.ArticleFilter{Category: ptr(models.ArticleCredit)})
	s.Require().Nil(err)
	s.Require().Len(credit, 1)
	s.Assert().Equal("Understanding Credit Scores", credit[0].Title)
}

func (s *Suite) TestClosed() {
	ctx := context.Background()
	s.Require().Nil(s.Store.Close())

	_, err := s.Store.ListExpenses(ctx, storage.ExpenseFilter{UserID: 1})
	s.Assert().ErrorIs(err, models.ErrGeneral)

	s.Assert().NotNil(s.Store.Ping(ctx))
}
