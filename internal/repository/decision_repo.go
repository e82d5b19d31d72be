package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/petswipe/petswipe/internal/db"
)

// DecisionRepository provides data access methods for the Decision model.
// It encapsulates all queries related to likes/dislikes between profiles.
type DecisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new repository bound to the given DB connection.
func NewDecisionRepository(database *gorm.DB) *DecisionRepository {
	return &DecisionRepository{db: database}
}

// PutDecision inserts or updates a decision made by actor -> target.
//
// Behavior:
//   - If the (actor_id, target_id) pair exists → the row is updated
//     with the new "liked" value.
//   - If it doesn't exist → a new row is inserted.
//   - Composite PK plus ON CONFLICT makes the upsert atomic, so
//     concurrent swipes on the same pair never create duplicates.
//
// Example:
//
//	repo.PutDecision(ctx, "a", "b", true) // profile a liked profile b
func (r *DecisionRepository) PutDecision(
	ctx context.Context,
	actorID, targetID string,
	liked bool,
) error {
	decision := db.Decision{
		ActorID:  actorID,
		TargetID: targetID,
		Liked:    liked,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "actor_id"}, {Name: "target_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
		}).
		Create(&decision).Error
}

// ListDecidedProfiles returns the profiles the actor has liked
// (liked=true) or disliked (liked=false), in storage order.
func (r *DecisionRepository) ListDecidedProfiles(
	ctx context.Context,
	actorID string,
	liked bool,
) ([]db.Profile, error) {
	var profiles []db.Profile
	err := r.db.WithContext(ctx).
		Table("profiles p").
		Select("p.*").
		Joins("JOIN decisions d ON d.target_id = p.id").
		Where("d.actor_id = ? AND d.liked = ?", actorID, liked).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// CountLikes returns how many actors currently like the given target.
// Used as the DB fallback behind the Redis like counter.
func (r *DecisionRepository) CountLikes(
	ctx context.Context,
	targetID string,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Decision{}).
		Where("target_id = ? AND liked = ?", targetID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
