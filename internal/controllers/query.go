package controllers

import (
	"time"

	"github.com/fi-rise/backend/internal/types"
	"github.com/fi-rise/backend/internal/validation"
)

// MonthQuery selects a calendar month in the query string.
type MonthQuery struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year" binding:"omitempty,min=1970,max=9999"`
}

// window returns the month selected by the query. A month without a year
// is in the current year, no month at all selects the fallback.
func (q MonthQuery) window(now time.Time, fallback types.Month) (types.Month, error) {
	switch {
	case q.Month == 0 && q.Year == 0:
		return fallback, nil
	case q.Month == 0:
		return types.Month{}, validation.Single("month", "is required when year is set")
	case q.Year == 0:
		return types.NewMonth(now.Year(), time.Month(q.Month)), nil
	}

	return types.NewMonth(q.Year, time.Month(q.Month)), nil
}
