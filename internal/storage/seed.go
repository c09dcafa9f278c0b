package storage

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DemoUsername is the username of the seeded demo user.
const DemoUsername = "jamie"

//go:embed seed/articles.json
var seedArticles []byte

type seedArticle struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Content     string                 `json:"content"`
	ImageURL    string                 `json:"imageUrl"`
	Category    models.ArticleCategory `json:"category"`
}

// Seed inserts the demo data set into the store.
//
// Budgets are created for the month of now. If the demo user already
// exists, the store is assumed to be seeded and nothing is done.
func Seed(ctx context.Context, s Store, now time.Time) error {
	_, err := s.GetUserByUsername(ctx, DemoUsername)
	if err == nil {
		log.Debug().Str("username", DemoUsername).Msg("demo user exists, skipping seed")
		return nil
	}
	if !errors.Is(err, models.ErrResourceNotFound) {
		return err
	}

	email := "jamie@example.com"
	user, err := models.UserCreate{
		Username: DemoUsername,
		Password: "password123",
		FullName: "Jamie Smith",
		Email:    &email,
	}.Model()
	if err != nil {
		return err
	}

	user, err = s.CreateUser(ctx, user)
	if err != nil {
		return fmt.Errorf("seeding user: %w", err)
	}

	categories := []models.CategoryCreate{
		{Name: "Housing", Icon: "home"},
		{Name: "Food", Icon: "restaurant"},
		{Name: "Transportation", Icon: "directions_bus"},
		{Name: "Utilities", Icon: "power"},
		{Name: "Healthcare", Icon: "local_hospital"},
		{Name: "Personal", Icon: "person"},
		{Name: "Education", Icon: "school"},
		{Name: "Other", Icon: "more_horiz"},
	}

	ids := make(map[string]uint, len(categories))
	for _, c := range categories {
		created, err := s.CreateCategory(ctx, c)
		if err != nil {
			return fmt.Errorf("seeding categories: %w", err)
		}
		ids[c.Name] = created.ID
	}

	month := types.MonthOf(now)
	budgets := map[string]string{
		"Housing":        "650",
		"Food":           "300",
		"Transportation": "200",
		"Utilities":      "150",
		"Healthcare":     "100",
		"Personal":       "100",
	}
	for _, name := range []string{"Housing", "Food", "Transportation", "Utilities", "Healthcare", "Personal"} {
		_, err := s.CreateBudget(ctx, models.BudgetCreate{
			Amount:     decimal.RequireFromString(budgets[name]),
			CategoryID: ids[name],
			UserID:     user.ID,
			Month:      month.Number(),
			Year:       month.Year(),
		})
		if err != nil {
			return fmt.Errorf("seeding budgets: %w", err)
		}
	}

	expenses := []struct {
		description string
		amount      string
		date        types.Date
		category    string
	}{
		{"Grocery Store", "78.25", types.NewDate(2023, time.September, 15), "Food"},
		{"Lunch Cafe", "12.50", types.NewDate(2023, time.September, 14), "Food"},
		{"Public Transit", "5.75", types.NewDate(2023, time.September, 13), "Transportation"},
		{"Electric Bill", "87.32", types.NewDate(2023, time.September, 10), "Utilities"},
		{"Rent", "650", types.NewDate(2023, time.September, 1), "Housing"},
	}
	for _, e := range expenses {
		categoryID := ids[e.category]
		_, err := s.CreateExpense(ctx, models.ExpenseCreate{
			Description: e.description,
			Amount:      decimal.RequireFromString(e.amount),
			Date:        e.date,
			CategoryID:  &categoryID,
			UserID:      user.ID,
		})
		if err != nil {
			return fmt.Errorf("seeding expenses: %w", err)
		}
	}

	emergency := types.NewDate(2023, time.October, 30)
	creditCard := types.NewDate(2024, time.March, 15)
	goals := []models.GoalCreate{
		{Name: "Emergency Fund", TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(450), TargetDate: &emergency, UserID: user.ID},
		{Name: "Pay Off Credit Card", TargetAmount: decimal.NewFromInt(3000), CurrentAmount: decimal.NewFromInt(750), TargetDate: &creditCard, UserID: user.ID},
	}
	for _, g := range goals {
		if _, err := s.CreateGoal(ctx, g); err != nil {
			return fmt.Errorf("seeding goals: %w", err)
		}
	}

	resources := []struct {
		name, description, address string
		distance                   float64
		kind                       models.ResourceType
	}{
		{"Job Training Program", "Free career training and placement services", "123 Main St, City, State 12345", 3.2, models.ResourceEmployment},
		{"Financial Counseling", "Free 1-on-1 sessions with a certified counselor", "456 Oak Ave, City, State 12345", 5.7, models.ResourceFinancial},
		{"Community Action Agency", "Assistance with housing, utilities, and more", "789 Elm St, City, State 12345", 1.8, models.ResourceHousing},
	}
	for _, r := range resources {
		address, distance := r.address, r.distance
		_, err := s.CreateResource(ctx, models.ResourceCreate{
			Name:        r.name,
			Description: r.description,
			Address:     &address,
			Distance:    &distance,
			Type:        r.kind,
		})
		if err != nil {
			return fmt.Errorf("seeding resources: %w", err)
		}
	}

	var articles []seedArticle
	if err := json.Unmarshal(seedArticles, &articles); err != nil {
		return fmt.Errorf("decoding seed articles: %w", err)
	}
	for _, a := range articles {
		imageURL := a.ImageURL
		_, err := s.CreateArticle(ctx, models.ArticleCreate{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			ImageURL:    &imageURL,
			Category:    a.Category,
		})
		if err != nil {
			return fmt.Errorf("seeding articles: %w", err)
		}
	}

	log.Info().Uint("user", user.ID).Msg("seeded demo data")
	return nil
}
