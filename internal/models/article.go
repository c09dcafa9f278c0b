package models

import "golang.org/x/exp/slices"

type ArticleCategory string

const (
	ArticleBudgeting ArticleCategory = "budgeting"
	ArticleCredit    ArticleCategory = "credit"
	ArticleSaving    ArticleCategory = "saving"
	ArticleDebt      ArticleCategory = "debt"
	ArticleBanking   ArticleCategory = "banking"
	ArticleCareer    ArticleCategory = "career"
	ArticleTaxes     ArticleCategory = "taxes"
)

var ArticleCategories = []ArticleCategory{
	ArticleBudgeting,
	ArticleCredit,
	ArticleSaving,
	ArticleDebt,
	ArticleBanking,
	ArticleCareer,
	ArticleTaxes,
}

// Valid reports whether the category is a known article category.
func (c ArticleCategory) Valid() bool {
	return slices.Contains(ArticleCategories, c)
}

// Article is educational reference content. Articles are not user scoped.
type Article struct {
	ID          uint            `json:"id" gorm:"primaryKey" example:"1"`
	Title       string          `json:"title" example:"Budgeting Basics"`
	Description string          `json:"description" example:"Learn how to create and stick to a budget"`
	Content     string          `json:"content"`
	ImageURL    *string         `json:"imageUrl" example:"https://images.unsplash.com/photo-1554224155-6726b3ff858f"`
	Category    ArticleCategory `json:"category" gorm:"index" example:"budgeting"`
}

type ArticleCreate struct {
	Title       string
	Description string
	Content     string
	ImageURL    *string
	Category    ArticleCategory
}

func (c ArticleCreate) Model() Article {
	return Article{
		Title:       c.Title,
		Description: c.Description,
		Content:     c.Content,
		ImageURL:    c.ImageURL,
		Category:    c.Category,
	}
}
