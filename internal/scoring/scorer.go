// Package scoring computes the additive relevance score of one entity
// against a normalized query. The point values come from a
// config.FieldWeights table; the rules here only decide which table
// entries apply.
package scoring

import (
	"strings"

	"github.com/teejay382/jobtolk-search/config"
	"github.com/teejay382/jobtolk-search/internal/tokenizer"
	"github.com/teejay382/jobtolk-search/model"
)

// Scorer scores entities of one kind against queries using a fixed
// weight table. Safe for concurrent use; it holds no mutable state.
type Scorer struct {
	weights config.FieldWeights
}

// NewScorer creates a Scorer for the given weight table.
func NewScorer(weights config.FieldWeights) *Scorer {
	return &Scorer{weights: weights}
}

// ScoreJob returns the relevance score of a job for the query.
// An empty query always scores 0; callers bypass scoring entirely on
// the empty-query path.
func (s *Scorer) ScoreJob(q tokenizer.Query, job *model.Job) int {
	if q.IsEmpty() {
		return 0
	}

	score := s.scorePrimary(q, job.Title, s.weights.PrimaryWord)
	score += s.scoreTags(q, job.RequiredSkills, s.weights.SkillExact, s.weights.SkillSubstring, s.weights.SkillWord)
	if job.Category != "" {
		score += s.scoreTags(q, []string{job.Category}, s.weights.CategoryExact, s.weights.CategorySubstring, s.weights.CategoryWord)
	}
	score += s.scoreWords(q, job.Description, s.weights.DescriptionWord)
	score += s.scoreWords(q, job.Location, s.weights.LocationWord)
	return score
}

// ScoreProfile returns the relevance score of a freelancer profile for
// the query. Name and username are both primary fields and are scored
// independently.
func (s *Scorer) ScoreProfile(q tokenizer.Query, profile *model.FreelancerProfile) int {
	if q.IsEmpty() {
		return 0
	}

	score := s.scorePrimary(q, profile.Name, s.weights.PrimaryWord)
	score += s.scorePrimary(q, profile.Username, s.weights.PrimaryWord)
	score += s.scoreTags(q, profile.Skills, s.weights.SkillExact, s.weights.SkillSubstring, s.weights.SkillWord)
	score += s.scoreTags(q, profile.ServiceCategories, s.weights.CategoryExact, s.weights.CategorySubstring, s.weights.CategoryWord)
	score += s.scoreWords(q, profile.Bio, s.weights.DescriptionWord)
	score += s.scoreWords(q, profile.Company, s.weights.DescriptionWord)
	score += s.scoreWords(q, profile.Location, s.weights.LocationWord)
	return score
}

// scorePrimary applies the primary-field rules: the exclusive full-term
// tier (exact suppresses substring) plus a bonus per matching word.
func (s *Scorer) scorePrimary(q tokenizer.Query, field string, wordWeight int) int {
	lower := strings.ToLower(field)
	if lower == "" {
		return 0
	}

	score := 0
	if lower == q.FullTerm {
		score += s.weights.PrimaryExact
	} else if strings.Contains(lower, q.FullTerm) {
		score += s.weights.PrimarySubstring
	}
	for _, word := range q.Words {
		if strings.Contains(lower, word) {
			score += wordWeight
		}
	}
	return score
}

// scoreTags applies the tag rules to every array element: the exclusive
// full-term tier per tag, plus a bonus per (tag, word) containment
// pair. There is no cap, so many matching tags accumulate freely.
func (s *Scorer) scoreTags(q tokenizer.Query, tags []string, exactWeight, substringWeight, wordWeight int) int {
	score := 0
	for _, tag := range tags {
		lower := strings.ToLower(strings.TrimSpace(tag))
		if lower == "" {
			continue
		}
		if lower == q.FullTerm {
			score += exactWeight
		} else if strings.Contains(lower, q.FullTerm) {
			score += substringWeight
		}
		for _, word := range q.Words {
			if strings.Contains(lower, word) {
				score += wordWeight
			}
		}
	}
	return score
}

// scoreWords applies the per-word rule used by descriptive and location
// fields; the full term plays no role here.
func (s *Scorer) scoreWords(q tokenizer.Query, field string, wordWeight int) int {
	lower := strings.ToLower(field)
	if lower == "" {
		return 0
	}

	score := 0
	for _, word := range q.Words {
		if strings.Contains(lower, word) {
			score += wordWeight
		}
	}
	return score
}
