package domain

import "time"

// Experience is one work-history entry.
type Experience struct {
	ID          string
	Position    string
	Company     string
	StartDate   string // "YYYY-MM"
	EndDate     string // "YYYY-MM", empty while IsPresent
	IsPresent   bool
	Description string // free text, may contain embedded line breaks
	Skills      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
