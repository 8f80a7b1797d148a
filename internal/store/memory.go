// Package store provides the coarse-filter sources the engine fetches
// from: Postgres, an in-memory store for tests and demo mode, and a
// Redis read-through cache decorator.
package store

import (
	"context"
	"strings"
	"sync"

	"github.com/teejay382/jobtolk-search/model"
	"github.com/teejay382/jobtolk-search/services"
)

// MemorySource is an in-memory services.Source. It applies the same
// coarse-filter semantics as the Postgres source and preserves
// insertion order, which makes tie-breaking in tests deterministic.
type MemorySource struct {
	mu       sync.RWMutex
	jobs     []model.Job
	profiles []model.FreelancerProfile
}

// NewMemorySource creates an empty MemorySource.
func NewMemorySource() *MemorySource {
	return &MemorySource{}
}

// AddJobs appends jobs to the store.
func (m *MemorySource) AddJobs(jobs ...model.Job) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = append(m.jobs, jobs...)
}

// AddProfiles appends freelancer profiles to the store.
func (m *MemorySource) AddProfiles(profiles ...model.FreelancerProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = append(m.profiles, profiles...)
}

// FetchJobs implements services.JobSource.
func (m *MemorySource) FetchJobs(_ context.Context, filter services.CoarseFilter, limit int) ([]model.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]model.Job, 0)
	for _, job := range m.jobs {
		if limit > 0 && len(result) >= limit {
			break
		}
		if jobMatchesFilter(job, filter) {
			result = append(result, job)
		}
	}
	return result, nil
}

// FetchProfiles implements services.ProfileSource.
func (m *MemorySource) FetchProfiles(_ context.Context, filter services.CoarseFilter, limit int) ([]model.FreelancerProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]model.FreelancerProfile, 0)
	for _, profile := range m.profiles {
		if limit > 0 && len(result) >= limit {
			break
		}
		if profileMatchesFilter(profile, filter) {
			result = append(result, profile)
		}
	}
	return result, nil
}

func jobMatchesFilter(job model.Job, filter services.CoarseFilter) bool {
	if filter.Category != "" && !strings.EqualFold(job.Category, filter.Category) {
		return false
	}
	if filter.JobType != "" && !strings.EqualFold(job.JobType, filter.JobType) {
		return false
	}
	// Budget ranges match when they overlap.
	if filter.BudgetMin != nil && job.BudgetMax > 0 && job.BudgetMax < *filter.BudgetMin {
		return false
	}
	if filter.BudgetMax != nil && job.BudgetMin > *filter.BudgetMax {
		return false
	}
	if filter.Location != "" && !containsFold(job.Location, filter.Location) {
		return false
	}
	if len(filter.Skills) > 0 && !anySkillMatches(job.RequiredSkills, filter.Skills) {
		return false
	}
	return true
}

func profileMatchesFilter(profile model.FreelancerProfile, filter services.CoarseFilter) bool {
	if filter.Category != "" && !anySkillMatches(profile.ServiceCategories, []string{filter.Category}) {
		return false
	}
	if filter.Location != "" && !containsFold(profile.Location, filter.Location) {
		return false
	}
	if len(filter.Skills) > 0 && !anySkillMatches(profile.Skills, filter.Skills) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// anySkillMatches reports whether any wanted skill appears in the
// entity's skill list. The coarse filter is deliberately permissive;
// precision comes from the scorer.
func anySkillMatches(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
