package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("record not found")

// Repository handles database operations
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// CreateUser stores a new anonymous user
func (r *Repository) CreateUser(ctx context.Context, ipHash, userAgent string) (*User, error) {
	stmt, err := r.db.GetPreparedStatement(stmtInsertUser)
	if err != nil {
		return nil, err
	}

	user := NewUser(ipHash, userAgent)
	if _, err := stmt.ExecContext(ctx, user.ID, user.IPHash, user.UserAgent, user.CreatedAt, user.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUser loads a user by id
func (r *Repository) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, ip_hash, COALESCE(user_agent, ''), created_at, updated_at
		FROM users WHERE id = ?
	`, id).Scan(&user.ID, &user.IPHash, &user.UserAgent, &user.CreatedAt, &user.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}

// InsertResult stores a submission
func (r *Repository) InsertResult(ctx context.Context, rec *ResultRecord) error {
	stmt, err := r.db.GetPreparedStatement(stmtInsertResult)
	if err != nil {
		return err
	}

	categories, answers, err := rec.encode()
	if err != nil {
		return err
	}

	var userID sql.NullString
	if rec.UserID != "" {
		userID = sql.NullString{String: rec.UserID, Valid: true}
	}

	_, err = stmt.ExecContext(ctx,
		rec.ID, userID, rec.OverallScore, rec.Percentile, string(rec.Archetype),
		categories, answers, rec.IsVerified, rec.ClientHash, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}

	return nil
}

// GetResult loads a stored submission by id
func (r *Repository) GetResult(ctx context.Context, id string) (*ResultRecord, error) {
	var (
		rec        ResultRecord
		userID     sql.NullString
		clientHash sql.NullString
		categories string
		answers    string
		archetype  string
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, overall_score, percentile, archetype,
			category_scores, answers, is_verified, client_hash, created_at
		FROM results WHERE id = ?
	`, id).Scan(
		&rec.ID, &userID, &rec.OverallScore, &rec.Percentile, &archetype,
		&categories, &answers, &rec.IsVerified, &clientHash, &rec.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query result: %w", err)
	}

	rec.UserID = userID.String
	rec.ClientHash = clientHash.String
	rec.Archetype = scoring.Archetype(archetype)
	if err := rec.decode(categories, answers); err != nil {
		return nil, err
	}

	return &rec, nil
}

// VerifiedRank counts verified results and how many of them score strictly
// below score.
func (r *Repository) VerifiedRank(ctx context.Context, score int) (total, below int, err error) {
	stmt, err := r.db.GetPreparedStatement(stmtVerifiedRank)
	if err != nil {
		return 0, 0, err
	}

	if err := stmt.QueryRowContext(ctx, score).Scan(&total, &below); err != nil {
		return 0, 0, fmt.Errorf("failed to rank score: %w", err)
	}

	return total, below, nil
}

// VerifiedScores returns every verified score, ascending
func (r *Repository) VerifiedScores(ctx context.Context) ([]ScoreRow, error) {
	stmt, err := r.db.GetPreparedStatement(stmtVerifiedScores)
	if err != nil {
		return nil, err
	}

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query verified scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreRow
	for rows.Next() {
		var (
			row       ScoreRow
			archetype string
		)
		if err := rows.Scan(&row.OverallScore, &archetype); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		row.Archetype = scoring.Archetype(archetype)
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate verified scores: %w", err)
	}

	return out, nil
}

// CountResults returns the number of stored results for userID
func (r *Repository) CountResults(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count results: %w", err)
	}
	return n, nil
}

// DeleteResultsByUser removes every result linked to userID
func (r *Repository) DeleteResultsByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM results WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete results: %w", err)
	}
	return res.RowsAffected()
}

// DeleteUser removes the user row itself
func (r *Repository) DeleteUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	return res.RowsAffected()
}

// DeleteUnverifiedBefore removes anonymous results created before cutoff
func (r *Repository) DeleteUnverifiedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM results WHERE is_verified = FALSE AND created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete old results: %w", err)
	}
	return res.RowsAffected()
}
