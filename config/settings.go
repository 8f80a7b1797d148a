// Package config defines the tunable settings for the search service:
// the relevance point tables used by the scorer, engine limits, and
// server configuration loaded from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// FieldWeights is the relevance point table for one entity kind.
// Point values are fixed design constants; they are data here so the
// jobs and freelancer tables differ by configuration, not by code.
//
// The full-term tiers on a primary field are exclusive (an exact match
// suppresses the substring tier for that field); all other rules
// accumulate additively across fields, query words, and tag elements.
type FieldWeights struct {
	PrimaryExact      int `json:"primary_exact"`      // full term equals the primary field
	PrimarySubstring  int `json:"primary_substring"`  // full term contained in the primary field
	PrimaryWord       int `json:"primary_word"`       // per query word contained in the primary field
	SkillExact        int `json:"skill_exact"`        // full term equals a skill tag
	SkillSubstring    int `json:"skill_substring"`    // full term contained in a skill tag
	SkillWord         int `json:"skill_word"`         // per (skill tag, word) containment pair
	CategoryExact     int `json:"category_exact"`     // full term equals a category value
	CategorySubstring int `json:"category_substring"` // full term contained in a category value
	CategoryWord      int `json:"category_word"`      // per (category, word) containment pair
	DescriptionWord   int `json:"description_word"`   // per word in description/bio/company
	LocationWord      int `json:"location_word"`      // per word in location
}

// DefaultJobWeights returns the canonical point table for ranking jobs.
func DefaultJobWeights() FieldWeights {
	return FieldWeights{
		PrimaryExact:      100,
		PrimarySubstring:  50,
		PrimaryWord:       20,
		SkillExact:        50,
		SkillSubstring:    30,
		SkillWord:         15,
		CategoryExact:     35,
		CategorySubstring: 25,
		CategoryWord:      12,
		DescriptionWord:   5,
		LocationWord:      10,
	}
}

// DefaultProfileWeights returns the canonical point table for ranking
// freelancer profiles. Identical to the job table except that per-word
// matches on the name/username fields carry more weight.
func DefaultProfileWeights() FieldWeights {
	w := DefaultJobWeights()
	w.PrimaryWord = 25
	return w
}

// Validate checks that every point value is non-negative and that the
// full-term tiers are ordered (exact >= substring). Returns a list of
// problems, empty when the table is usable.
func (w FieldWeights) Validate() []string {
	var problems []string

	check := func(name string, v int) {
		if v < 0 {
			problems = append(problems, fmt.Sprintf("weight %s must be non-negative, got %d", name, v))
		}
	}
	check("primary_exact", w.PrimaryExact)
	check("primary_substring", w.PrimarySubstring)
	check("primary_word", w.PrimaryWord)
	check("skill_exact", w.SkillExact)
	check("skill_substring", w.SkillSubstring)
	check("skill_word", w.SkillWord)
	check("category_exact", w.CategoryExact)
	check("category_substring", w.CategorySubstring)
	check("category_word", w.CategoryWord)
	check("description_word", w.DescriptionWord)
	check("location_word", w.LocationWord)

	if w.PrimaryExact < w.PrimarySubstring {
		problems = append(problems, "primary_exact must not be lower than primary_substring")
	}
	if w.SkillExact < w.SkillSubstring {
		problems = append(problems, "skill_exact must not be lower than skill_substring")
	}
	if w.CategoryExact < w.CategorySubstring {
		problems = append(problems, "category_exact must not be lower than category_substring")
	}

	return problems
}

// EngineSettings holds the limits and weight tables for the ranking
// engine.
type EngineSettings struct {
	MaxResults     int           `json:"max_results"`     // hard cap on ranked results per search
	CoarseLimit    int           `json:"coarse_limit"`    // max entities fetched from a source per search
	MinWordLength  int           `json:"min_word_length"` // query words shorter than this skip word-level matching
	DebounceWindow time.Duration `json:"debounce_window"` // quiet window for the dispatcher
	JobWeights     FieldWeights  `json:"job_weights"`
	ProfileWeights FieldWeights  `json:"profile_weights"`
}

// ApplyDefaults fills zero-valued settings with the canonical defaults.
func (s *EngineSettings) ApplyDefaults() {
	if s.MaxResults == 0 {
		s.MaxResults = 50
	}
	if s.CoarseLimit == 0 {
		s.CoarseLimit = 100
	}
	if s.MinWordLength == 0 {
		s.MinWordLength = 2
	}
	if s.DebounceWindow == 0 {
		s.DebounceWindow = 150 * time.Millisecond
	}
	zero := FieldWeights{}
	if s.JobWeights == zero {
		s.JobWeights = DefaultJobWeights()
	}
	if s.ProfileWeights == zero {
		s.ProfileWeights = DefaultProfileWeights()
	}
}

// Validate returns a list of problems with the settings, empty when
// they are usable.
func (s *EngineSettings) Validate() []string {
	var problems []string
	if s.MaxResults < 1 {
		problems = append(problems, fmt.Sprintf("max_results must be positive, got %d", s.MaxResults))
	}
	if s.CoarseLimit < 1 {
		problems = append(problems, fmt.Sprintf("coarse_limit must be positive, got %d", s.CoarseLimit))
	}
	if s.MinWordLength < 1 {
		problems = append(problems, fmt.Sprintf("min_word_length must be positive, got %d", s.MinWordLength))
	}
	if s.DebounceWindow < 0 {
		problems = append(problems, "debounce_window must not be negative")
	}
	problems = append(problems, s.JobWeights.Validate()...)
	problems = append(problems, s.ProfileWeights.Validate()...)
	return problems
}

// ServerConfig holds runtime configuration for the HTTP server and the
// backing stores, read from environment variables.
type ServerConfig struct {
	Port         string
	DatabaseURL  string // empty means the in-memory source is used
	RedisURL     string // empty disables the coarse-result cache
	CacheTTL     time.Duration
	RateLimitRPS float64 // per-client request rate; 0 disables limiting
	RateBurst    int
}

// LoadServerConfig reads environment variables and returns a validated
// ServerConfig. DATABASE_URL and REDIS_URL are optional: without them
// the service runs against the in-memory source with no cache.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Port:         os.Getenv("SEARCH_PORT"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		CacheTTL:     30 * time.Second,
		RateLimitRPS: 25,
		RateBurst:    50,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if s := os.Getenv("CACHE_TTL_SECONDS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("CACHE_TTL_SECONDS must be a positive integer, got %q", s)
		}
		cfg.CacheTTL = time.Duration(v) * time.Second
	}

	if s := os.Getenv("RATE_LIMIT_RPS"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("RATE_LIMIT_RPS must be a non-negative number, got %q", s)
		}
		cfg.RateLimitRPS = v
	}

	return cfg, nil
}
