package model

import "time"

// FreelancerProfile represents a freelancer's public profile.
// Name and Username are the primary searchable fields; Skills and
// ServiceCategories are the tag fields.
type FreelancerProfile struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Username          string    `json:"username"`
	Bio               string    `json:"bio"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	Skills            []string  `json:"skills"`
	ServiceCategories []string  `json:"service_categories"`
	HourlyRate        float64   `json:"hourly_rate"`
	CreatedAt         time.Time `json:"created_at"`
}
