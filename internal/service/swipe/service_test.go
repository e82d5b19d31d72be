package swipe_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/petswipe/petswipe/internal/app"
	"github.com/petswipe/petswipe/internal/cache"
	"github.com/petswipe/petswipe/internal/config"
	"github.com/petswipe/petswipe/internal/db"
	"github.com/petswipe/petswipe/internal/server"
	"github.com/petswipe/petswipe/internal/service/swipe"
)

func setupRouter(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbase, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, dbase.AutoMigrate(&db.Profile{}, &db.CannedMessage{}, &db.Decision{}, &db.DirectMessage{}))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	redisCache := cache.NewRedisCache(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	appCtx := app.New(cfg, dbase, redisCache, logger)
	router := server.NewRouter(cfg, swipe.NewRegistrar(appCtx))
	return router, dbase
}

func seedProfiles(t *testing.T, gdb *gorm.DB, ids ...string) {
	t.Helper()
	for _, id := range ids {
		photo := id + ".png"
		require.NoError(t, gdb.Create(&db.Profile{ID: id, Name: "cat-" + id, City: "Lyon", Age: 2, Gender: "M", Photo: &photo}).Error)
	}
}

func doJSON(router *mux.Router, method, path, payload string) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != "" {
		body = bytes.NewBufferString(payload)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPutDecision_MissingParams(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodPost, "/users/a/like", `{"userIdLiked":"b"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(router, http.MethodPost, "/users/a/like", `{"liked":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPutDecision_AcceptsBoolAndInt(t *testing.T) {
	router, gdb := setupRouter(t)

	rec := doJSON(router, http.MethodPost, "/users/a/like", `{"userIdLiked":"b","liked":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "liked")

	rec = doJSON(router, http.MethodPost, "/users/a/like", `{"userIdLiked":"c","liked":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "disliked")

	var count int64
	require.NoError(t, gdb.Model(&db.Decision{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestPutDecision_RepeatSwipeKeepsOneRow(t *testing.T) {
	router, gdb := setupRouter(t)

	rec := doJSON(router, http.MethodPost, "/users/a/like", `{"userIdLiked":"b","liked":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(router, http.MethodPost, "/users/a/like", `{"userIdLiked":"b","liked":0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var decisions []db.Decision
	require.NoError(t, gdb.Find(&decisions).Error)
	require.Len(t, decisions, 1)
	assert.False(t, decisions[0].Liked)
}

func TestListDecisions(t *testing.T) {
	router, gdb := setupRouter(t)
	seedProfiles(t, gdb, "b", "c")

	require.Equal(t, http.StatusOK,
		doJSON(router, http.MethodPost, "/users/a/like", `{"userIdLiked":"b","liked":1}`).Code)
	require.Equal(t, http.StatusOK,
		doJSON(router, http.MethodPost, "/users/a/like", `{"userIdLiked":"c","liked":0}`).Code)

	rec := doJSON(router, http.MethodGet, "/users/a/likes?liked=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var liked []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &liked))
	require.Len(t, liked, 1)
	assert.Equal(t, "b", liked[0]["id"])
	assert.Equal(t, "http://example.com/uploads/b.png", liked[0]["photo"])

	rec = doJSON(router, http.MethodGet, "/users/a/likes?liked=0", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var disliked []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &disliked))
	require.Len(t, disliked, 1)
	assert.Equal(t, "c", disliked[0]["id"])
}

func TestListDecisions_EmptyIsArray(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodGet, "/users/nobody/likes?liked=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListDecisions_BadLikedParam(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodGet, "/users/a/likes?liked=banana", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(router, http.MethodGet, "/users/a/likes", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCandidates_ExcludesSelfAndDecided(t *testing.T) {
	router, gdb := setupRouter(t)
	seedProfiles(t, gdb, "me", "liked", "disliked", "fresh")

	require.Equal(t, http.StatusOK,
		doJSON(router, http.MethodPost, "/users/me/like", `{"userIdLiked":"liked","liked":1}`).Code)
	require.Equal(t, http.StatusOK,
		doJSON(router, http.MethodPost, "/users/me/like", `{"userIdLiked":"disliked","liked":0}`).Code)

	rec := doJSON(router, http.MethodGet, "/users/me/smashorpass", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var candidates []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &candidates))
	require.Len(t, candidates, 1)
	assert.Equal(t, "fresh", candidates[0]["id"])
}

func TestCandidates_CappedAtTen(t *testing.T) {
	router, gdb := setupRouter(t)
	for i := 0; i < 15; i++ {
		seedProfiles(t, gdb, fmt.Sprintf("cat-%02d", i))
	}

	rec := doJSON(router, http.MethodGet, "/users/outsider/smashorpass", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var candidates []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &candidates))
	assert.Len(t, candidates, 10)
}

func TestLikedCount_CacheFirstWithDBFallback(t *testing.T) {
	router, _ := setupRouter(t)

	require.Equal(t, http.StatusOK,
		doJSON(router, http.MethodPost, "/users/a/like", `{"userIdLiked":"x","liked":1}`).Code)
	require.Equal(t, http.StatusOK,
		doJSON(router, http.MethodPost, "/users/b/like", `{"userIdLiked":"x","liked":1}`).Code)

	rec := doJSON(router, http.MethodGet, "/users/x/likedcount", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(2), got.Count)
}
