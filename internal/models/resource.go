package models

import "golang.org/x/exp/slices"

type ResourceType string

const (
	ResourceEmployment ResourceType = "employment"
	ResourceHousing    ResourceType = "housing"
	ResourceFinancial  ResourceType = "financial"
	ResourceEducation  ResourceType = "education"
	ResourceHealth     ResourceType = "health"
	ResourceLegal      ResourceType = "legal"
	ResourceCommunity  ResourceType = "community"
)

var ResourceTypes = []ResourceType{
	ResourceEmployment,
	ResourceHousing,
	ResourceFinancial,
	ResourceEducation,
	ResourceHealth,
	ResourceLegal,
	ResourceCommunity,
}

// Valid reports whether the type is a known resource type.
func (t ResourceType) Valid() bool {
	return slices.Contains(ResourceTypes, t)
}

// Resource is a local support service. Resources are shared by all users.
type Resource struct {
	ID          uint         `json:"id" gorm:"primaryKey" example:"1"`
	Name        string       `json:"name" example:"Job Training Program"`
	Description string       `json:"description" example:"Free career training and placement services"`
	Address     *string      `json:"address" example:"123 Main St, City, State 12345"`
	Distance    *float64     `json:"distance" example:"3.2"` // miles
	Type        ResourceType `json:"type" gorm:"index" example:"employment"`
	Bookmarked  bool         `json:"bookmarked" example:"false"`
}

type ResourceCreate struct {
	Name        string
	Description string
	Address     *string
	Distance    *float64
	Type        ResourceType
}

func (c ResourceCreate) Model() Resource {
	return Resource{
		Name:        c.Name,
		Description: c.Description,
		Address:     c.Address,
		Distance:    c.Distance,
		Type:        c.Type,
	}
}
