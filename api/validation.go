// Package api exposes the search service over HTTP.
package api

import (
	"fmt"
	"strings"
)

const (
	maxQueryLength  = 256
	maxFilterSkills = 20
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateSearchRequest validates an incoming search request. An empty
// query is valid: it means "show the coarse filter result".
func ValidateSearchRequest(req *SearchRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(req.Query) > maxQueryLength {
		result.AddError("query", fmt.Sprintf("Query must be at most %d characters", maxQueryLength))
	}

	if req.Filters != nil {
		f := req.Filters
		if f.BudgetMin != nil && *f.BudgetMin < 0 {
			result.AddError("filters.budget_min", "Budget minimum cannot be negative")
		}
		if f.BudgetMax != nil && *f.BudgetMax < 0 {
			result.AddError("filters.budget_max", "Budget maximum cannot be negative")
		}
		if f.BudgetMin != nil && f.BudgetMax != nil && *f.BudgetMin > *f.BudgetMax {
			result.AddError("filters.budget_min", "Budget minimum cannot exceed budget maximum")
		}
		if len(f.Skills) > maxFilterSkills {
			result.AddError("filters.skills", fmt.Sprintf("At most %d skills may be filtered on", maxFilterSkills))
		}
		for i, skill := range f.Skills {
			if strings.TrimSpace(skill) == "" {
				result.AddError("filters.skills", fmt.Sprintf("Skill at position %d is empty", i))
				break
			}
		}
	}

	return result
}
