// Package privacy anonymizes client identifiers and enforces data deletion
// and retention for stored results.
package privacy

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/database"
	apperrors "github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
)

// DefaultRetentionDays applies to anonymous (unverified) results
const DefaultRetentionDays = 90

// Store is the subset of the repository the privacy service needs
type Store interface {
	CountResults(ctx context.Context, userID string) (int, error)
	DeleteResultsByUser(ctx context.Context, userID string) (int64, error)
	DeleteUser(ctx context.Context, userID string) (int64, error)
	DeleteUnverifiedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Invalidator is notified when stored verified results change
type Invalidator interface {
	Invalidate()
}

// DeletionReport summarises a DeleteUserData call
type DeletionReport struct {
	ResultsDeleted int64 `json:"resultsDeleted"`
	UserDeleted    bool  `json:"userDeleted"`
}

// PrivacyService handles data anonymization and privacy compliance
type PrivacyService struct {
	store         Store
	retentionDays int
	invalidator   Invalidator
	now           func() time.Time
}

// NewService creates a new privacy service
func NewService(store Store, retentionDays int) *PrivacyService {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	return &PrivacyService{
		store:         store,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// OnChange registers inv to be invalidated after deletions
func (ps *PrivacyService) OnChange(inv Invalidator) {
	ps.invalidator = inv
}

// AnonymizeIP returns the SHA-256 hex digest of ip
func AnonymizeIP(ip string) string {
	hash := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(hash[:])
}

// ClientHash fingerprints a client from its IP and user agent without
// storing either.
func ClientHash(ip, userAgent string) string {
	hash := sha256.Sum256([]byte(ip + "\x00" + userAgent))
	return hex.EncodeToString(hash[:])
}

// DeleteUserData removes every result linked to userID and the user itself
func (ps *PrivacyService) DeleteUserData(ctx context.Context, userID string) (*DeletionReport, error) {
	slog.Info("Initiating data deletion", "user_id", shortID(userID))

	results, err := ps.store.DeleteResultsByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to delete user results")
	}

	users, err := ps.store.DeleteUser(ctx, userID)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to delete user")
	}

	if results > 0 && ps.invalidator != nil {
		ps.invalidator.Invalidate()
	}

	slog.Info("Data deletion completed",
		"user_id", shortID(userID),
		"results_deleted", results,
		"user_deleted", users > 0,
	)

	return &DeletionReport{ResultsDeleted: results, UserDeleted: users > 0}, nil
}

// ScheduleDataCleanup deletes unverified results older than retentionDays.
// A non-positive value uses the service's configured retention.
func (ps *PrivacyService) ScheduleDataCleanup(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = ps.retentionDays
	}

	cutoff := ps.now().AddDate(0, 0, -retentionDays)
	deleted, err := ps.store.DeleteUnverifiedBefore(ctx, cutoff)
	if err != nil {
		return 0, apperrors.WrapError(err, "failed to delete results older than %d days", retentionDays)
	}

	slog.Info("Data cleanup completed", "cutoff_date", cutoff, "results_deleted", deleted)
	return deleted, nil
}

// RunCleanup repeats ScheduleDataCleanup every interval until ctx is done
func (ps *PrivacyService) RunCleanup(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// a panicking pass must not take the server down with it
			apperrors.SafeExecute(func() {
				if _, err := ps.ScheduleDataCleanup(ctx, 0); err != nil {
					slog.Error("Scheduled data cleanup failed", "error", err)
				}
			}, func(r interface{}) {
				slog.Error("Scheduled data cleanup panicked", "panic", r)
			})
		}
	}
}

// GetPrivacySettings reports what is stored for userID
func (ps *PrivacyService) GetPrivacySettings(ctx context.Context, userID string) (map[string]interface{}, error) {
	count, err := ps.store.CountResults(ctx, userID)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to get privacy settings")
	}

	return map[string]interface{}{
		"user_id":             shortID(userID),
		"stored_results":      count,
		"data_retention_info": ps.GetDataRetentionInfo(),
		"can_delete_data":     true,
	}, nil
}

// GetDataRetentionInfo provides information about data retention policies
func (ps *PrivacyService) GetDataRetentionInfo() map[string]interface{} {
	return map[string]interface{}{
		"unverified_result_retention_days": ps.retentionDays,
		"verified_result_retention":        "until deleted by the user",
		"stored_fields":                    []string{"overall_score", "percentile", "archetype", "category_scores", "answers"},
		"anonymization_method":             "SHA-256",
		"raw_ip_stored":                    false,
		"data_deletion_endpoint":           "DELETE /api/privacy/data",
	}
}

var _ Store = (*database.Repository)(nil)

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "..."
}
