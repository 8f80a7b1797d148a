package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teejay382/jobtolk-search/model"
	"github.com/teejay382/jobtolk-search/services"
)

// PostgresSource is a services.Source backed by a Postgres database.
// It translates the coarse filter into SQL; result order is whatever
// the database returns, which the engine treats as arbitrary.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource connects to databaseURL and verifies connectivity.
func NewPostgresSource(ctx context.Context, databaseURL string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	return &PostgresSource{pool: pool}, nil
}

// Close releases the connection pool.
func (p *PostgresSource) Close() {
	p.pool.Close()
}

// FetchJobs implements services.JobSource.
func (p *PostgresSource) FetchJobs(ctx context.Context, filter services.CoarseFilter, limit int) ([]model.Job, error) {
	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Category != "" {
		conditions = append(conditions, "lower(category) = lower("+arg(filter.Category)+")")
	}
	if filter.JobType != "" {
		conditions = append(conditions, "lower(job_type) = lower("+arg(filter.JobType)+")")
	}
	if filter.BudgetMin != nil {
		conditions = append(conditions, "budget_max >= "+arg(*filter.BudgetMin))
	}
	if filter.BudgetMax != nil {
		conditions = append(conditions, "budget_min <= "+arg(*filter.BudgetMax))
	}
	if filter.Location != "" {
		conditions = append(conditions, "location ILIKE "+arg("%"+filter.Location+"%"))
	}
	if len(filter.Skills) > 0 {
		conditions = append(conditions, "required_skills && "+arg(filter.Skills))
	}

	query := `SELECT id, title, description, category, location, job_type,
		budget_min, budget_max, required_skills, posted_by, created_at
		FROM jobs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " LIMIT " + arg(limit)

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.Job, 0)
	for rows.Next() {
		var job model.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.Category, &job.Location,
			&job.JobType, &job.BudgetMin, &job.BudgetMax, &job.RequiredSkills,
			&job.PostedBy, &job.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading job rows: %w", err)
	}
	return jobs, nil
}

// FetchProfiles implements services.ProfileSource.
func (p *PostgresSource) FetchProfiles(ctx context.Context, filter services.CoarseFilter, limit int) ([]model.FreelancerProfile, error) {
	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Category != "" {
		conditions = append(conditions, "service_categories && "+arg([]string{filter.Category}))
	}
	if filter.Location != "" {
		conditions = append(conditions, "location ILIKE "+arg("%"+filter.Location+"%"))
	}
	if len(filter.Skills) > 0 {
		conditions = append(conditions, "skills && "+arg(filter.Skills))
	}

	query := `SELECT id, name, username, bio, company, location,
		skills, service_categories, hourly_rate, created_at
		FROM freelancer_profiles`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " LIMIT " + arg(limit)

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying freelancer profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]model.FreelancerProfile, 0)
	for rows.Next() {
		var profile model.FreelancerProfile
		if err := rows.Scan(
			&profile.ID, &profile.Name, &profile.Username, &profile.Bio,
			&profile.Company, &profile.Location, &profile.Skills,
			&profile.ServiceCategories, &profile.HourlyRate, &profile.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading profile rows: %w", err)
	}
	return profiles, nil
}
