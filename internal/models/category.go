package models

type Category struct {
	ID     uint   `json:"id" gorm:"primaryKey" example:"2"`
	Name   string `json:"name" example:"Food"`
	Icon   string `json:"icon" example:"restaurant"`
	UserID *uint  `json:"userId" gorm:"index" example:"1"` // nil for global categories
}

// IsGlobal reports whether the category is visible to all users.
func (c Category) IsGlobal() bool {
	return c.UserID == nil
}

// VisibleTo reports whether the category can be read by the user.
func (c Category) VisibleTo(userID uint) bool {
	return c.UserID == nil || *c.UserID == userID
}

// OwnedBy reports whether the category belongs to the user.
func (c Category) OwnedBy(userID uint) bool {
	return c.UserID != nil && *c.UserID == userID
}

type CategoryCreate struct {
	Name   string
	Icon   string
	UserID *uint
}

func (c CategoryCreate) Model() Category {
	return Category{
		Name:   c.Name,
		Icon:   c.Icon,
		UserID: c.UserID,
	}
}

type CategoryPatch struct {
	Name *string
	Icon *string
}

// Merge returns a copy of the category with the patch applied.
func (c Category) Merge(p CategoryPatch) Category {
	c.Name = pick(c.Name, p.Name)
	c.Icon = pick(c.Icon, p.Icon)
	if c.UserID != nil {
		id := *c.UserID
		c.UserID = &id
	}
	return c
}
