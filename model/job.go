package model

import "time"

// Job represents a single job posting on the marketplace.
// Text fields (Title, Description, Category, Location) and the
// RequiredSkills array are the searchable surface used by the scorer.
type Job struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Location       string    `json:"location"`
	JobType        string    `json:"job_type"` // e.g. "full-time", "contract", "one-off"
	BudgetMin      float64   `json:"budget_min"`
	BudgetMax      float64   `json:"budget_max"`
	RequiredSkills []string  `json:"required_skills"`
	PostedBy       string    `json:"posted_by"`
	CreatedAt      time.Time `json:"created_at"`
}
