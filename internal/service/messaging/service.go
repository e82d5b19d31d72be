package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"

	"github.com/petswipe/petswipe/internal/app"
	"github.com/petswipe/petswipe/internal/cache"
	svcErr "github.com/petswipe/petswipe/internal/errors"
	"github.com/petswipe/petswipe/internal/repository"
	"github.com/petswipe/petswipe/internal/server"
)

// Service implements the messaging HTTP API: persist a user-to-user
// message and answer with one pseudo-random canned reply.
type Service struct {
	appCtx      *app.AppContext
	messageRepo *repository.MessageRepository
}

// NewService creates a new messaging service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:      appCtx,
		messageRepo: repository.NewMessageRepository(appCtx.DB),
	}
}

type sendRequest struct {
	UserID      string `json:"userId"`
	RecipientID string `json:"recipientId"`
	Message     string `json:"message"`
}

// Send handles POST /messages/send.
//
// Behavior:
//   - userId, recipientId and message are all required.
//   - The message is persisted unconditionally (no delivery semantics),
//     then one canned reply is drawn uniformly at random and returned
//     in the same response as a scripted auto-reply.
func (s *Service) Send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := server.DecodeJSON(r, &req); err != nil {
		svcErr.Write(w, svcErr.BadRequest("invalid request payload"), "")
		return
	}
	if req.UserID == "" || req.RecipientID == "" || req.Message == "" {
		svcErr.Write(w, svcErr.BadRequest("missing parameters: userId, recipientId and message are required"), "")
		return
	}

	ctx := r.Context()
	if err := s.messageRepo.CreateDirectMessage(ctx, req.UserID, req.RecipientID, req.Message); err != nil {
		s.appCtx.Logger.Error("message insert failed", "sender", req.UserID, "err", err)
		svcErr.Write(w, err, "failed to save message")
		return
	}

	reply, err := s.randomCannedReply(ctx)
	if err != nil {
		s.appCtx.Logger.Error("auto-reply fetch failed", "err", err)
		svcErr.Write(w, err, "failed to fetch auto-reply")
		return
	}

	server.RespondJSON(w, http.StatusOK, map[string]string{
		"message":   "Message sent successfully",
		"autoReply": reply,
	})
}

// randomCannedReply picks one canned reply, reading the seeded set
// through the Redis cache with a DB fallback. Cache failures degrade to
// the DB silently.
func (s *Service) randomCannedReply(ctx context.Context) (string, error) {
	var replies []string

	if cached, err := s.appCtx.RedisCache.Get(ctx, cache.KeyCannedReplies); err == nil && cached != "" {
		if err := json.Unmarshal([]byte(cached), &replies); err != nil {
			replies = nil
		}
	}

	if len(replies) == 0 {
		var err error
		replies, err = s.messageRepo.ListCannedReplies(ctx)
		if err != nil {
			return "", err
		}
		if len(replies) == 0 {
			return "", errors.New("canned reply set is empty")
		}
		if data, err := json.Marshal(replies); err == nil {
			_ = s.appCtx.RedisCache.Set(ctx, cache.KeyCannedReplies, data, cache.DefaultTTL)
		}
	}

	return replies[rand.Intn(len(replies))], nil
}
