package db

import "github.com/google/uuid"

// Sentinel used when a profile has no city or country reference
const locationNotSpecified = "Not specified"

// UserProfile is a read-only snapshot of a user's profile, built fresh per
// request. City and Country are never empty; they fall back to "Not specified"
// when the profile has no reference row.
type UserProfile struct {
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Availability string   `json:"availability"`
	Bio          string   `json:"bio"`
	Role         string   `json:"role"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	Skills       []string `json:"skills"`
}

// JobFilter holds the optional job search filters. A nil field means no
// constraint on that field.
type JobFilter struct {
	Title       *string `json:"title,omitempty"`
	MinSalary   *int    `json:"min_salary,omitempty"`
	MaxSalary   *int    `json:"max_salary,omitempty"`
	City        *string `json:"city,omitempty"`
	Country     *string `json:"country,omitempty"`
	JobType     *string `json:"job_type,omitempty"`
	JobCategory *string `json:"job_category,omitempty"`
	Currency    *string `json:"currency,omitempty"`
}

// JobSummary is the minimal view of a posting returned to the agent
type JobSummary struct {
	JobID uuid.UUID `json:"job_id"`
	Title string    `json:"title"`
}

// AppliedFilters echoes the filters a search actually applied, plus the
// result limit, so the agent can explain what it searched for.
type AppliedFilters struct {
	JobFilter
	Limit int `json:"limit"`
}

// JobSearchResult is the outcome of one job search. On query failure Error
// carries the description and Jobs is empty; the result is still valid and is
// handed to the model as-is.
type JobSearchResult struct {
	Jobs           []JobSummary   `json:"jobs"`
	TotalFound     int            `json:"total_found"`
	FiltersApplied AppliedFilters `json:"filters_applied"`
	Error          string         `json:"error,omitempty"`
}
