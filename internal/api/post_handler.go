package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/social-spark/internal/api/shared"
	"github.com/phrazzld/social-spark/internal/generation"
	"github.com/phrazzld/social-spark/internal/platform/logger"
	"github.com/phrazzld/social-spark/internal/post"
)

// DownloadFilePrefix names downloaded images: social-spark-image.<ext>.
const DownloadFilePrefix = "social-spark-image"

// PostService is the per-session Post state machine.
type PostService interface {
	Create(ctx context.Context, sessionID string, req generation.Request) (*post.Post, error)
	List(ctx context.Context, sessionID string) ([]*post.Post, error)
	Get(ctx context.Context, sessionID string, id uuid.UUID) (*post.Post, error)
	Delete(ctx context.Context, sessionID string, id uuid.UUID) error
	GenerateImage(ctx context.Context, sessionID string, id uuid.UUID, opts post.ImageOptions) (*post.Post, error)
	RegenerateText(ctx context.Context, sessionID string, id uuid.UUID) (*post.Post, error)
	ImageBytes(ctx context.Context, sessionID string, id uuid.UUID, index int) (string, []byte, error)
}

var _ PostService = (*post.Service)(nil)

// CreatePostRequest is the body of POST /api/posts.
type CreatePostRequest struct {
	Topic     string `json:"topic"`
	Platform  string `json:"platform,omitempty"`
	Tone      string `json:"tone,omitempty"`
	Language  string `json:"language,omitempty"`
	ImageType string `json:"image_type,omitempty"`
}

// PostListResponse is the body of GET /api/posts.
type PostListResponse struct {
	Posts []*post.Post `json:"posts"`
}

// PostHandler serves the Post board of the caller's session.
type PostHandler struct {
	posts  PostService
	logger *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(posts PostService, logger *slog.Logger) *PostHandler {
	if posts == nil {
		panic("post service cannot be nil for PostHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for PostHandler")
	}
	return &PostHandler{
		posts:  posts,
		logger: logger.With(slog.String("component", "post_handler")),
	}
}

// CreatePost handles POST /api/posts. It generates text for the topic and
// adds the resulting post to the top of the board.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	p, err := h.posts.Create(r.Context(), shared.GetSessionID(r.Context()), generation.Request{
		Topic:     req.Topic,
		Platform:  req.Platform,
		Tone:      req.Tone,
		Language:  req.Language,
		ImageType: req.ImageType,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, p)
}

// ListPosts handles GET /api/posts.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context(), shared.GetSessionID(r.Context()))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, PostListResponse{Posts: posts})
}

// GetPost handles GET /api/posts/{id}.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	p, err := h.posts.Get(r.Context(), shared.GetSessionID(r.Context()), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, p)
}

// DeletePost handles DELETE /api/posts/{id}.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.posts.Delete(r.Context(), shared.GetSessionID(r.Context()), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GenerateImage handles POST /api/posts/{id}/image. The body is optional and
// defaults to generating from the post's topic. A failed generation still
// answers 200 with the post in its failed state.
func (h *PostHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var opts post.ImageOptions
	if err := shared.DecodeJSON(w, r, &opts); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	p, err := h.posts.GenerateImage(r.Context(), shared.GetSessionID(r.Context()), id, opts)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, p)
}

// RegenerateText handles POST /api/posts/{id}/text.
func (h *PostHandler) RegenerateText(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	p, err := h.posts.RegenerateText(r.Context(), shared.GetSessionID(r.Context()), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, p)
}

// DownloadImage handles GET /api/posts/{id}/images/{index}.
func (h *PostHandler) DownloadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	index, err := getPathIndex(r, "index")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	mimeType, data, err := h.posts.ImageBytes(r.Context(), shared.GetSessionID(r.Context()), id, index)
	if err != nil {
		if errors.Is(err, generation.ErrInvalidBaseImage) {
			logger.FromContextOrDefault(r.Context(), h.logger).Error("stored image is not a valid data URI",
				"post_id", id, "index", index)
		}
		HandleAPIError(w, r, err, "")
		return
	}

	filename := fmt.Sprintf("%s.%s", DownloadFilePrefix, generation.FileExtension(mimeType))
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("image download interrupted", "error", err)
	}
}

func (h *PostHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("invalid post id", "error", err)
		HandleAPIError(w, r, err, "")
		return uuid.Nil, false
	}
	return id, true
}
