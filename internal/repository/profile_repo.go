package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/petswipe/petswipe/internal/db"
)

// ProfileRepository provides data access methods for the Profile model.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new repository bound to the given DB connection.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// Create inserts a new profile row.
func (r *ProfileRepository) Create(ctx context.Context, profile *db.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetByID fetches a profile by id. Returns gorm.ErrRecordNotFound when
// no row matches.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*db.Profile, error) {
	var profile db.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateFields overwrites city, age, name and gender for a profile,
// leaving the photo untouched. Returns the number of rows affected so
// callers can distinguish "updated" from "no such profile".
func (r *ProfileRepository) UpdateFields(
	ctx context.Context,
	id, city string,
	age int,
	name, gender string,
) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"city":   city,
			"age":    age,
			"name":   name,
			"gender": gender,
		})
	return res.RowsAffected, res.Error
}

// SetPhoto stores the photo filename for a profile. The filename is
// derived from the id, so repeated uploads overwrite in place.
func (r *ProfileRepository) SetPhoto(ctx context.Context, id, filename string) error {
	return r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Where("id = ?", id).
		Update("photo", filename).Error
}

// GetCandidates returns up to limit profiles the actor can still decide
// on: everyone except the actor itself and the targets of the actor's
// prior decisions (liked or disliked). Storage order, no further
// ranking.
func (r *ProfileRepository) GetCandidates(
	ctx context.Context,
	actorID string,
	limit int,
) ([]db.Profile, error) {
	decided := r.db.
		Table("decisions").
		Select("target_id").
		Where("actor_id = ?", actorID)

	var profiles []db.Profile
	err := r.db.WithContext(ctx).
		Where("id <> ?", actorID).
		Where("id NOT IN (?)", decided).
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
