package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

// User is an anonymous respondent identity issued with a session token
type User struct {
	ID        string    `json:"id" db:"id"`
	IPHash    string    `json:"-" db:"ip_hash"`
	UserAgent string    `json:"-" db:"user_agent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ResultRecord is a stored submission
type ResultRecord struct {
	ID             string                  `json:"id" db:"id"`
	UserID         string                  `json:"user_id,omitempty" db:"user_id"`
	OverallScore   int                     `json:"overall_score" db:"overall_score"`
	Percentile     int                     `json:"percentile" db:"percentile"`
	Archetype      scoring.Archetype       `json:"archetype" db:"archetype"`
	CategoryScores []scoring.CategoryScore `json:"category_scores" db:"category_scores"`
	Answers        scoring.Answers         `json:"answers" db:"answers"`
	IsVerified     bool                    `json:"is_verified" db:"is_verified"`
	ClientHash     string                  `json:"-" db:"client_hash"`
	CreatedAt      time.Time               `json:"created_at" db:"created_at"`
}

// ScoreRow is the projection used for population statistics
type ScoreRow struct {
	OverallScore int
	Archetype    scoring.Archetype
}

// NewUser creates a new user with generated ID
func NewUser(ipHash, userAgent string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New().String(),
		IPHash:    ipHash,
		UserAgent: userAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewResultRecord prepares a result for storage. A non-empty userID marks the
// record as verified.
func NewResultRecord(result scoring.Result, userID, clientHash string) *ResultRecord {
	return &ResultRecord{
		ID:             uuid.New().String(),
		UserID:         userID,
		OverallScore:   result.OverallScore,
		Percentile:     result.Percentile,
		Archetype:      result.Archetype,
		CategoryScores: result.CategoryScores,
		Answers:        result.Answers,
		IsVerified:     userID != "",
		ClientHash:     clientHash,
		CreatedAt:      time.Now().UTC(),
	}
}

// ErrInvalidRecord marks a record whose content cannot be stored. It is a
// data problem, not a storage failure.
var ErrInvalidRecord = errors.New("invalid result record")

// Validate reports whether the record can be encoded for storage
func (r *ResultRecord) Validate() error {
	_, _, err := r.encode()
	return err
}

func (r *ResultRecord) encode() (categories, answers string, err error) {
	catJSON, err := json.Marshal(r.CategoryScores)
	if err != nil {
		return "", "", fmt.Errorf("%w: category scores: %v", ErrInvalidRecord, err)
	}

	answers = "{}"
	if r.Answers != nil {
		ansJSON, err := json.Marshal(r.Answers)
		if err != nil {
			return "", "", fmt.Errorf("%w: answers: %v", ErrInvalidRecord, err)
		}
		answers = string(ansJSON)
	}

	return string(catJSON), answers, nil
}

func (r *ResultRecord) decode(categories, answers string) error {
	if err := json.Unmarshal([]byte(categories), &r.CategoryScores); err != nil {
		return fmt.Errorf("failed to decode category scores: %w", err)
	}
	if err := json.Unmarshal([]byte(answers), &r.Answers); err != nil {
		return fmt.Errorf("failed to decode answers: %w", err)
	}
	return nil
}
