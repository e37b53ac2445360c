package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/contrib/internal/db"
	"github.com/alexanderramin/contrib/internal/domain"
)

// SQLiteTimeEntryRepo implements TimeEntryRepo using a SQLite database.
type SQLiteTimeEntryRepo struct {
	db db.DBTX
}

// NewSQLiteTimeEntryRepo creates a new SQLiteTimeEntryRepo.
func NewSQLiteTimeEntryRepo(conn db.DBTX) *SQLiteTimeEntryRepo {
	return &SQLiteTimeEntryRepo{db: conn}
}

const timeEntryColumns = `id, user_id, project_id, project_name, hours, minutes, is_tangible,
	date_of_work, notes, created_at, updated_at`

func (r *SQLiteTimeEntryRepo) Create(ctx context.Context, e *domain.LoggedEntry) error {
	query := `INSERT INTO time_entries (` + timeEntryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		nullableString(e.ProjectID),
		e.ProjectName,
		e.Hours,
		e.Minutes,
		boolToInt(e.IsTangible),
		e.DateOfWork.Format(domain.DateLayout),
		e.Notes,
		e.CreatedAt.UTC().Format(time.RFC3339),
		e.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting time entry: %w", err)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) GetByID(ctx context.Context, id string) (*domain.LoggedEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE id = ?`
	e, err := scanTimeEntry(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("time entry: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning time entry: %w", err)
	}
	return e, nil
}

func (r *SQLiteTimeEntryRepo) ListByUsers(ctx context.Context, userIDs []string, from, to time.Time) ([]*domain.LoggedEntry, error) {
	var where []string
	var args []interface{}
	if len(userIDs) > 0 {
		where = append(where, `user_id IN (`+placeholders(len(userIDs))+`)`)
		args = append(args, stringArgs(userIDs)...)
	}
	where, args = appendDateRange(where, args, from, to)

	entries, err := r.list(ctx, where, args)
	if err != nil {
		return nil, fmt.Errorf("listing time entries by users: %w", err)
	}
	return entries, nil
}

func (r *SQLiteTimeEntryRepo) ListByProjectsExcludingUsers(ctx context.Context, projectIDs, userIDs []string, from, to time.Time) ([]*domain.LoggedEntry, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}
	where := []string{`project_id IN (` + placeholders(len(projectIDs)) + `)`}
	args := stringArgs(projectIDs)
	if len(userIDs) > 0 {
		where = append(where, `user_id NOT IN (`+placeholders(len(userIDs))+`)`)
		args = append(args, stringArgs(userIDs)...)
	}
	where, args = appendDateRange(where, args, from, to)

	entries, err := r.list(ctx, where, args)
	if err != nil {
		return nil, fmt.Errorf("listing time entries by projects: %w", err)
	}
	return entries, nil
}

func (r *SQLiteTimeEntryRepo) ListByUserWeek(ctx context.Context, userID string, weekStart time.Time) ([]*domain.LoggedEntry, error) {
	where := []string{`user_id = ?`}
	args := []interface{}{userID}
	where, args = appendDateRange(where, args, weekStart, weekStart.AddDate(0, 0, 6))

	entries, err := r.list(ctx, where, args)
	if err != nil {
		return nil, fmt.Errorf("listing week entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteTimeEntryRepo) Update(ctx context.Context, e *domain.LoggedEntry) error {
	query := `UPDATE time_entries SET project_id = ?, project_name = ?, hours = ?, minutes = ?,
		is_tangible = ?, date_of_work = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableString(e.ProjectID),
		e.ProjectName,
		e.Hours,
		e.Minutes,
		boolToInt(e.IsTangible),
		e.DateOfWork.Format(domain.DateLayout),
		e.Notes,
		nowUTC(),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating time entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("time entry %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("time entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) list(ctx context.Context, where []string, args []interface{}) ([]*domain.LoggedEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY date_of_work, created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.LoggedEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning time entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return entries, nil
}

// appendDateRange adds inclusive day bounds; zero times are skipped.
func appendDateRange(where []string, args []interface{}, from, to time.Time) ([]string, []interface{}) {
	if !from.IsZero() {
		where = append(where, `date_of_work >= ?`)
		args = append(args, from.Format(domain.DateLayout))
	}
	if !to.IsZero() {
		where = append(where, `date_of_work <= ?`)
		args = append(args, to.Format(domain.DateLayout))
	}
	return where, args
}

func scanTimeEntry(row rowScanner) (*domain.LoggedEntry, error) {
	var e domain.LoggedEntry
	var projectID sql.NullString
	var tangible int
	var dateStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&e.ID, &e.UserID, &projectID, &e.ProjectName, &e.Hours, &e.Minutes, &tangible,
		&dateStr, &e.Notes, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}
	e.ProjectID = stringFromNull(projectID)
	e.IsTangible = intToBool(tangible)

	if e.DateOfWork, err = time.Parse(domain.DateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing date_of_work: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &e, nil
}
