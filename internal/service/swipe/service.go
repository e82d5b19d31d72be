package swipe

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/petswipe/petswipe/internal/app"
	"github.com/petswipe/petswipe/internal/cache"
	"github.com/petswipe/petswipe/internal/db"
	svcErr "github.com/petswipe/petswipe/internal/errors"
	"github.com/petswipe/petswipe/internal/repository"
	"github.com/petswipe/petswipe/internal/server"
	"github.com/petswipe/petswipe/internal/utils/weburl"
)

// candidateLimit caps the smash-or-pass batch size.
const candidateLimit = 10

// Service implements the swipe HTTP API: recording like/dislike
// decisions, listing past decisions and serving candidate batches.
type Service struct {
	appCtx       *app.AppContext
	decisionRepo *repository.DecisionRepository
	profileRepo  *repository.ProfileRepository
}

// NewService creates a new swipe service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:       appCtx,
		decisionRepo: repository.NewDecisionRepository(appCtx.DB),
		profileRepo:  repository.NewProfileRepository(appCtx.DB),
	}
}

// flexBool accepts JSON true/false, 0/1 and their string forms, since
// clients send the liked flag either way.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "true", "1", `"true"`, `"1"`:
		*b = true
	case "false", "0", `"false"`, `"0"`:
		*b = false
	default:
		return fmt.Errorf("invalid liked value: %s", data)
	}
	return nil
}

type likeRequest struct {
	UserIDLiked string    `json:"userIdLiked"`
	Liked       *flexBool `json:"liked"`
}

// PutDecision handles POST /users/{userId}/like.
//
// Behavior:
//   - userIdLiked and liked are both required.
//   - The decision is upserted atomically per (actor, target) pair:
//     repeat swipes flip the flag in place, one row per pair.
//   - The target's cached like counter is adjusted best-effort.
func (s *Service) PutDecision(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["userId"]

	var req likeRequest
	if err := server.DecodeJSON(r, &req); err != nil {
		svcErr.Write(w, svcErr.BadRequest("invalid request payload"), "")
		return
	}
	if req.UserIDLiked == "" || req.Liked == nil {
		svcErr.Write(w, svcErr.BadRequest("missing parameters: userIdLiked and liked are required"), "")
		return
	}

	liked := bool(*req.Liked)
	if err := s.decisionRepo.PutDecision(r.Context(), actorID, req.UserIDLiked, liked); err != nil {
		s.appCtx.Logger.Error("PutDecision failed", "actor", actorID, "target", req.UserIDLiked, "err", err)
		svcErr.Write(w, err, "failed to record like/dislike")
		return
	}

	// advisory counter, TTL keeps it honest
	key := s.appCtx.RedisCache.KeyForLikeCount(req.UserIDLiked)
	ctx := r.Context()
	if liked {
		_, _ = s.appCtx.RedisCache.Incr(ctx, key)
	} else {
		_, _ = s.appCtx.RedisCache.Decr(ctx, key)
	}
	_ = s.appCtx.RedisCache.Client.Expire(ctx, key, cache.DefaultTTL).Err()

	msg := "User disliked successfully"
	if liked {
		msg = "User liked successfully"
	}
	server.RespondJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// ListDecisions handles GET /users/{userId}/likes?liked=0|1 and returns
// the profiles the actor liked or disliked.
func (s *Service) ListDecisions(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["userId"]

	liked, err := parseLikedParam(r.URL.Query().Get("liked"))
	if err != nil {
		svcErr.Write(w, svcErr.BadRequest("liked query parameter must be 0 or 1"), "")
		return
	}

	profiles, err := s.decisionRepo.ListDecidedProfiles(r.Context(), actorID, liked)
	if err != nil {
		s.appCtx.Logger.Error("ListDecisions failed", "actor", actorID, "err", err)
		svcErr.Write(w, err, "failed to fetch likes/dislikes")
		return
	}

	server.RespondJSON(w, http.StatusOK, s.withPhotoURLs(r, profiles))
}

// Candidates handles GET /users/{userId}/smashorpass: up to 10 profiles
// the actor has not decided on, never including the actor itself.
func (s *Service) Candidates(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["userId"]

	profiles, err := s.profileRepo.GetCandidates(r.Context(), actorID, candidateLimit)
	if err != nil {
		s.appCtx.Logger.Error("Candidates failed", "actor", actorID, "err", err)
		svcErr.Write(w, err, "failed to fetch profiles")
		return
	}

	server.RespondJSON(w, http.StatusOK, s.withPhotoURLs(r, profiles))
}

// LikedCount handles GET /users/{userId}/likedcount.
// Cache-first strategy:
//  1. Attempts to read from Redis (likes:count:userID).
//  2. On cache miss, falls back to the DB count.
//  3. On DB fetch, updates Redis with a TTL.
func (s *Service) LikedCount(w http.ResponseWriter, r *http.Request) {
	targetID := mux.Vars(r)["userId"]
	ctx := r.Context()

	if count, ok, err := s.appCtx.RedisCache.GetLikeCount(ctx, targetID); err == nil && ok {
		server.RespondJSON(w, http.StatusOK, map[string]int64{"count": count})
		return
	}

	count, err := s.decisionRepo.CountLikes(ctx, targetID)
	if err != nil {
		svcErr.Write(w, err, "failed to count likes")
		return
	}
	_ = s.appCtx.RedisCache.UpdateLikeCount(ctx, targetID, count)

	server.RespondJSON(w, http.StatusOK, map[string]int64{"count": count})
}

// parseLikedParam coerces the liked query parameter strictly; anything
// other than the recognized forms is an error rather than a silent
// empty match.
func parseLikedParam(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid liked parameter: %q", v)
}

// withPhotoURLs rewrites photo references to absolute URLs. Always
// returns a non-nil slice so empty results encode as [].
func (s *Service) withPhotoURLs(r *http.Request, profiles []db.Profile) []db.Profile {
	out := make([]db.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.Photo != nil {
			url := weburl.Photo(r, s.appCtx.Config.HTTP.PublicBaseURL, *p.Photo)
			p.Photo = &url
		}
		out = append(out, p)
	}
	return out
}
