package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/petswipe/petswipe/internal/db"
	"github.com/petswipe/petswipe/internal/repository"
)

func TestProfileCreateAndGet(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	p := db.Profile{ID: "p1", Name: "Milo", City: "Lyon", Age: 2, Gender: "M", Description: "x"}
	require.NoError(t, repo.Create(ctx, &p))

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Milo", got.Name)
	assert.Nil(t, got.Photo)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProfileUpdateFields(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	photo := "p1.png"
	require.NoError(t, repo.Create(ctx, &db.Profile{ID: "p1", Name: "Milo", City: "Lyon", Age: 2, Gender: "M", Photo: &photo}))

	affected, err := repo.UpdateFields(ctx, "p1", "Paris", 3, "Max", "M")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Paris", got.City)
	assert.Equal(t, 3, got.Age)
	assert.Equal(t, "Max", got.Name)
	// photo untouched by field updates
	require.NotNil(t, got.Photo)
	assert.Equal(t, "p1.png", *got.Photo)

	affected, err = repo.UpdateFields(ctx, "missing", "Paris", 3, "Max", "M")
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestProfileSetPhoto(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	require.NoError(t, repo.Create(ctx, &db.Profile{ID: "p1", Name: "Milo"}))
	require.NoError(t, repo.SetPhoto(ctx, "p1", "p1.png"))

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got.Photo)
	assert.Equal(t, "p1.png", *got.Photo)
}

func TestGetCandidates_ExcludesSelfAndDecided(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	profiles := repository.NewProfileRepository(dbase)
	decisions := repository.NewDecisionRepository(dbase)

	for _, id := range []string{"me", "liked", "disliked", "fresh1", "fresh2"} {
		createProfile(t, dbase, id, id)
	}
	require.NoError(t, decisions.PutDecision(ctx, "me", "liked", true))
	require.NoError(t, decisions.PutDecision(ctx, "me", "disliked", false))

	candidates, err := profiles.GetCandidates(ctx, "me", 10)
	require.NoError(t, err)

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{"fresh1", "fresh2"}, ids)
}

func TestGetCandidates_Limit(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	profiles := repository.NewProfileRepository(dbase)

	for i := 0; i < 15; i++ {
		createProfile(t, dbase, string(rune('a'+i)), "cat")
	}

	candidates, err := profiles.GetCandidates(ctx, "actor-not-a-profile", 10)
	require.NoError(t, err)
	assert.Len(t, candidates, 10)
}
