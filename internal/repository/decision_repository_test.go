package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/petswipe/petswipe/internal/db"
	"github.com/petswipe/petswipe/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.AutoMigrate(&db.Profile{}, &db.CannedMessage{}, &db.Decision{}, &db.DirectMessage{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func createProfile(t *testing.T, gdb *gorm.DB, id, name string) {
	t.Helper()
	require.NoError(t, gdb.Create(&db.Profile{ID: id, Name: name, City: "Lyon", Age: 2, Gender: "M"}).Error)
}

func TestPutDecision_UpsertKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewDecisionRepository(dbase)

	// insert like
	err := repo.PutDecision(ctx, "a", "b", true)
	assert.NoError(t, err)

	// overwrite with dislike
	err = repo.PutDecision(ctx, "a", "b", false)
	assert.NoError(t, err)

	var decisions []db.Decision
	require.NoError(t, dbase.Find(&decisions).Error)
	require.Len(t, decisions, 1)
	assert.Equal(t, "a", decisions[0].ActorID)
	assert.Equal(t, "b", decisions[0].TargetID)
	assert.Equal(t, false, decisions[0].Liked)
}

func TestListDecidedProfiles(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewDecisionRepository(dbase)

	createProfile(t, dbase, "b", "Felix")
	createProfile(t, dbase, "c", "Luna")
	createProfile(t, dbase, "d", "Nala")

	require.NoError(t, repo.PutDecision(ctx, "a", "b", true))
	require.NoError(t, repo.PutDecision(ctx, "a", "c", false))
	require.NoError(t, repo.PutDecision(ctx, "a", "d", true))

	liked, err := repo.ListDecidedProfiles(ctx, "a", true)
	assert.NoError(t, err)
	assert.Len(t, liked, 2)

	disliked, err := repo.ListDecidedProfiles(ctx, "a", false)
	assert.NoError(t, err)
	require.Len(t, disliked, 1)
	assert.Equal(t, "Luna", disliked[0].Name)

	// other actors see nothing
	none, err := repo.ListDecidedProfiles(ctx, "z", true)
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestCountLikes(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewDecisionRepository(dbase)

	require.NoError(t, repo.PutDecision(ctx, "a", "x", true))
	require.NoError(t, repo.PutDecision(ctx, "b", "x", true))
	require.NoError(t, repo.PutDecision(ctx, "c", "x", false))

	count, err := repo.CountLikes(ctx, "x")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// a flips to dislike, the counter follows
	require.NoError(t, repo.PutDecision(ctx, "a", "x", false))
	count, err = repo.CountLikes(ctx, "x")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
