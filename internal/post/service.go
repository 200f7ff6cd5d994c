package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/social-spark/internal/action"
	"github.com/phrazzld/social-spark/internal/generation"
	"github.com/phrazzld/social-spark/internal/platform/logger"
)

// Actions is the server action layer the Post service drives.
type Actions interface {
	GenerateText(ctx context.Context, req generation.Request) action.Result[generation.PostContent]
	GenerateImage(ctx context.Context, req generation.Request) action.Result[generation.ImageResult]
	GenerateDualImage(ctx context.Context, req generation.Request) action.Result[generation.DualImageResult]
}

// ImageOptions selects how GenerateImage produces the Post's image.
type ImageOptions struct {
	// Mode defaults to ModeGenerate.
	Mode Mode `json:"mode"`
	// Instruction describes the change for ModeRefine. Empty means the
	// original topic.
	Instruction string `json:"instruction,omitempty"`
	// Dual asks both image providers for an alternative each.
	Dual bool `json:"dual,omitempty"`
	// ImageType overrides the Post's recorded format hint when set.
	ImageType string `json:"image_type,omitempty"`
}

// Service runs the Post state machine on top of the action layer.
type Service struct {
	actions         Actions
	boards          *Boards
	defaultLanguage string
	now             func() time.Time
	logger          *slog.Logger
}

// NewService creates a Post service.
func NewService(actions Actions, boards *Boards, defaultLanguage string, log *slog.Logger) *Service {
	if actions == nil {
		panic("actions cannot be nil")
	}
	if boards == nil {
		panic("boards cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		actions:         actions,
		boards:          boards,
		defaultLanguage: defaultLanguage,
		now:             time.Now,
		logger:          log.With(slog.String("component", "post_service")),
	}
}

// Create generates text for req and adds the resulting Post to the top of the
// session's board. Nothing is stored when generation fails.
func (s *Service) Create(ctx context.Context, sessionID string, req generation.Request) (*Post, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	if strings.TrimSpace(req.Language) == "" {
		req.Language = s.defaultLanguage
	}

	res := s.actions.GenerateText(context.WithoutCancel(ctx), req)
	if !res.OK() {
		return nil, &ActionError{Kind: res.Kind, Message: res.Error}
	}

	now := s.now().UTC()
	p := &Post{
		ID:         uuid.New(),
		Topic:      strings.TrimSpace(req.Topic),
		Platform:   strings.TrimSpace(req.Platform),
		Tone:       strings.TrimSpace(req.Tone),
		Language:   strings.TrimSpace(req.Language),
		ImageType:  strings.TrimSpace(req.ImageType),
		MainText:   res.Data.MainText,
		Hashtags:   res.Data.Hashtags,
		Images:     []string{},
		ImageState: ImageIdle,
		TextState:  TextReady,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.boards.add(sessionID, p)

	logger.FromContextOrDefault(ctx, s.logger).InfoContext(ctx, "post created",
		"post_id", p.ID,
		"hashtag_count", len(p.Hashtags))
	return p.clone(), nil
}

// List returns the session's posts, newest first.
func (s *Service) List(ctx context.Context, sessionID string) ([]*Post, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	return s.boards.list(sessionID), nil
}

// Get returns one post.
func (s *Service) Get(ctx context.Context, sessionID string, id uuid.UUID) (*Post, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	return s.boards.get(sessionID, id)
}

// Delete removes a post. An in-flight operation on it completes but its
// result is discarded.
func (s *Service) Delete(ctx context.Context, sessionID string, id uuid.UUID) error {
	if sessionID == "" {
		return ErrMissingSession
	}
	return s.boards.remove(sessionID, id)
}

// GenerateImage produces an image for a post according to opts and returns
// the settled post. A failed generation is not an error: the post comes back
// in ImageFailed with ImageError set and its previous images intact.
func (s *Service) GenerateImage(ctx context.Context, sessionID string, id uuid.UUID, opts ImageOptions) (*Post, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	if opts.Mode == "" {
		opts.Mode = ModeGenerate
	}
	log := logger.FromContextOrDefault(ctx, s.logger).With("post_id", id, "mode", opts.Mode, "dual", opts.Dual)

	var req generation.Request
	err := s.boards.update(sessionID, id, func(p *Post) error {
		if err := p.startImage(opts.Mode); err != nil {
			return err
		}
		if t := strings.TrimSpace(opts.ImageType); t != "" {
			p.ImageType = t
		}
		req = imageRequest(p, opts)
		p.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The provider call outlives the HTTP request so the post always settles.
	images, notice, errMsg := s.runImage(context.WithoutCancel(ctx), req, opts.Dual)

	var out *Post
	err = s.boards.update(sessionID, id, func(p *Post) error {
		p.finishImage(images, notice, errMsg, s.now().UTC())
		out = p.clone()
		return nil
	})
	if err != nil {
		log.InfoContext(ctx, "post removed during image generation")
		return nil, err
	}

	log.InfoContext(ctx, "image operation settled", "state", out.ImageState, "image_count", len(out.Images))
	return out, nil
}

func imageRequest(p *Post, opts ImageOptions) generation.Request {
	req := generation.Request{
		Topic:     p.Topic,
		Platform:  p.Platform,
		Language:  p.Language,
		ImageType: p.ImageType,
	}
	if opts.Mode == ModeRefine {
		if instruction := strings.TrimSpace(opts.Instruction); instruction != "" {
			req.Topic = instruction
		}
		req.BaseImage = p.Images[0]
	}
	return req
}

func (s *Service) runImage(ctx context.Context, req generation.Request, dual bool) (images []string, notice, errMsg string) {
	if dual {
		res := s.actions.GenerateDualImage(ctx, req)
		if !res.OK() {
			return nil, "", res.Error
		}
		return res.Data.URLs(), res.Data.PartialError, ""
	}

	res := s.actions.GenerateImage(ctx, req)
	if !res.OK() {
		return nil, "", res.Error
	}
	return []string{res.Data.ImageURL}, "", ""
}

// RegenerateText produces new text for a post from its original request and
// returns the settled post. As with images, a failed generation leaves the
// post in TextFailed with its previous text intact.
func (s *Service) RegenerateText(ctx context.Context, sessionID string, id uuid.UUID) (*Post, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	var req generation.Request
	err := s.boards.update(sessionID, id, func(p *Post) error {
		if err := p.startText(); err != nil {
			return err
		}
		req = generation.Request{Topic: p.Topic, Platform: p.Platform, Tone: p.Tone, Language: p.Language}
		p.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := s.actions.GenerateText(context.WithoutCancel(ctx), req)

	var out *Post
	err = s.boards.update(sessionID, id, func(p *Post) error {
		p.finishText(res.Data, res.Error, s.now().UTC())
		out = p.clone()
		return nil
	})
	return out, err
}

// ImageBytes decodes the index-th image of a post for download.
func (s *Service) ImageBytes(ctx context.Context, sessionID string, id uuid.UUID, index int) (string, []byte, error) {
	p, err := s.Get(ctx, sessionID, id)
	if err != nil {
		return "", nil, err
	}
	if index < 0 || index >= len(p.Images) {
		return "", nil, fmt.Errorf("%w: image %d", ErrNotFound, index)
	}
	return generation.ParseDataURI(p.Images[index])
}
