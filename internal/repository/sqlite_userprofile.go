package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/contrib/internal/db"
	"github.com/alexanderramin/contrib/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

const profileColumns = `id, first_name, last_name, email, weekly_committed_hours, active, created_at`

func (r *SQLiteProfileRepo) Create(ctx context.Context, p *domain.VolunteerProfile) error {
	query := `INSERT INTO volunteer_profiles (` + profileColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.FirstName,
		p.LastName,
		p.Email,
		p.WeeklyCommittedHours,
		boolToInt(p.Active),
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting volunteer profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) GetByID(ctx context.Context, id string) (*domain.VolunteerProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM volunteer_profiles WHERE id = ?`
	p, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("volunteer profile: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning volunteer profile: %w", err)
	}
	return p, nil
}

func (r *SQLiteProfileRepo) List(ctx context.Context, activeOnly bool) ([]*domain.VolunteerProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM volunteer_profiles`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY first_name COLLATE NOCASE, last_name COLLATE NOCASE`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing volunteer profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.VolunteerProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning volunteer profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating volunteer profiles: %w", err)
	}
	return profiles, nil
}

func (r *SQLiteProfileRepo) Update(ctx context.Context, p *domain.VolunteerProfile) error {
	query := `UPDATE volunteer_profiles
		SET first_name = ?, last_name = ?, email = ?, weekly_committed_hours = ?, active = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.FirstName,
		p.LastName,
		p.Email,
		p.WeeklyCommittedHours,
		boolToInt(p.Active),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating volunteer profile: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("volunteer profile %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.VolunteerProfile, error) {
	var p domain.VolunteerProfile
	var active int
	var createdAtStr string
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.WeeklyCommittedHours, &active, &createdAtStr)
	if err != nil {
		return nil, err
	}
	p.Active = intToBool(active)
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &p, nil
}
