package action

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/social-spark/internal/config"
	"github.com/phrazzld/social-spark/internal/events"
	"github.com/phrazzld/social-spark/internal/generation"
	"github.com/phrazzld/social-spark/internal/platform/logger"
	"github.com/phrazzld/social-spark/internal/redact"
)

// User-facing messages for missing credentials and unclassified failures.
const (
	MissingMistralKeyMessage = "Mistral API key is not configured. " +
		"Please add MISTRAL_API_KEY to your environment variables."
	MissingGeminiKeyMessage = "Gemini API key is not configured. " +
		"Please add GEMINI_API_KEY to your environment variables."

	DefaultTextErrorMessage      = "An unknown error occurred while generating text."
	DefaultImageErrorMessage     = "An unknown error occurred while generating the image."
	DefaultDualImageErrorMessage = "An unknown error occurred while generating dual images."
)

// Provider names recorded on generation events.
const (
	ProviderMistral    = "mistral"
	ProviderGemini     = "gemini"
	ProviderGeminiDual = "gemini+imagen"
)

// TextGenerator produces post text for a request.
type TextGenerator interface {
	Generate(ctx context.Context, req generation.Request) (*generation.PostContent, error)
}

// ImageGenerator produces a single image for a request.
type ImageGenerator interface {
	Generate(ctx context.Context, req generation.Request) (*generation.ImageResult, error)
}

// DualImageGenerator produces one image from each of two providers.
type DualImageGenerator interface {
	Generate(ctx context.Context, req generation.Request) (*generation.DualImageResult, error)
}

// Flows bundles the generation flows an action Service dispatches to.
// A nil flow is reported as a configuration error.
type Flows struct {
	Text  TextGenerator
	Image ImageGenerator
	Dual  DualImageGenerator
}

// Service runs generation actions.
type Service struct {
	flows           Flows
	mistralKey      string
	geminiKey       string
	textModel       string
	imageModel      string
	dualModels      string
	defaultLanguage string
	timeout         time.Duration
	validate        *validator.Validate
	emitter         events.EventEmitter
	logger          *slog.Logger
}

// NewService creates an action Service.
// emitter may be nil, in which case no generation events are published.
func NewService(
	cfg *config.Config,
	flows Flows,
	emitter events.EventEmitter,
	log *slog.Logger,
) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &Service{
		flows:           flows,
		mistralKey:      cfg.LLM.MistralAPIKey,
		geminiKey:       cfg.LLM.GeminiAPIKey,
		textModel:       cfg.LLM.TextModel,
		imageModel:      cfg.LLM.ImageModel,
		dualModels:      cfg.LLM.ImageModel + "," + cfg.LLM.SecondaryImageModel,
		defaultLanguage: cfg.Generation.DefaultLanguage,
		timeout:         time.Duration(cfg.LLM.RequestTimeoutSeconds) * time.Second,
		validate:        newValidator(),
		emitter:         emitter,
		logger:          log.With(slog.String("component", "action_service")),
	}, nil
}

// GenerateText produces post text and hashtags.
func (s *Service) GenerateText(ctx context.Context, req generation.Request) Result[generation.PostContent] {
	run := call[generation.PostContent]{
		kind:           events.KindText,
		provider:       ProviderMistral,
		model:          s.textModel,
		key:            s.mistralKey,
		missingKey:     MissingMistralKeyMessage,
		defaultMessage: DefaultTextErrorMessage,
	}
	if s.flows.Text != nil {
		run.flow = s.flows.Text.Generate
	}
	return execute(ctx, s, run, req)
}

// GenerateImage produces a single marketing image.
func (s *Service) GenerateImage(ctx context.Context, req generation.Request) Result[generation.ImageResult] {
	run := call[generation.ImageResult]{
		kind:           events.KindImage,
		provider:       ProviderGemini,
		model:          s.imageModel,
		key:            s.geminiKey,
		missingKey:     MissingGeminiKeyMessage,
		defaultMessage: DefaultImageErrorMessage,
	}
	if s.flows.Image != nil {
		run.flow = s.flows.Image.Generate
	}
	return execute(ctx, s, run, req)
}

// GenerateDualImage produces one image from each image provider.
func (s *Service) GenerateDualImage(ctx context.Context, req generation.Request) Result[generation.DualImageResult] {
	run := call[generation.DualImageResult]{
		kind:           events.KindDualImage,
		provider:       ProviderGeminiDual,
		model:          s.dualModels,
		key:            s.geminiKey,
		missingKey:     MissingGeminiKeyMessage,
		defaultMessage: DefaultDualImageErrorMessage,
		notice: func(r *generation.DualImageResult) string {
			r.PartialError = redact.String(r.PartialError)
			return r.PartialError
		},
	}
	if s.flows.Dual != nil {
		run.flow = s.flows.Dual.Generate
	}
	return execute(ctx, s, run, req)
}

// call describes one action invocation.
type call[T any] struct {
	kind           events.Kind
	provider       string
	model          string
	key            string
	missingKey     string
	defaultMessage string
	flow           func(context.Context, generation.Request) (*T, error)
	// notice returns the redacted partial-failure message of a successful
	// result, or "" when the result is complete.
	notice func(*T) string
}

func execute[T any](ctx context.Context, s *Service, c call[T], req generation.Request) Result[T] {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("action", string(c.kind)),
		slog.String("model", c.model),
	)
	start := time.Now()

	if c.key == "" || c.flow == nil {
		log.WarnContext(ctx, "generation requested without provider credentials")
		s.emit(ctx, events.NewGenerationEvent(c.kind, c.provider, c.model, events.StatusFailure, 0).
			WithError(c.missingKey))
		return failure[T](KindConfiguration, c.missingKey)
	}

	prepared, err := s.prepare(req)
	if err != nil {
		log.InfoContext(ctx, "generation request rejected", "error", err)
		return failure[T](KindValidation, err.Error())
	}

	data, err := runFlow(ctx, s.timeout, log, c.flow, prepared)
	duration := time.Since(start)

	if err != nil {
		kind := classify(err)
		msg := redact.Error(err)
		if kind == KindInternal || msg == "" {
			msg = c.defaultMessage
		}
		log.ErrorContext(ctx, "generation failed",
			"error", redact.Error(err),
			"error_kind", kind,
			"duration_ms", duration.Milliseconds())
		s.emit(ctx, events.NewGenerationEvent(c.kind, c.provider, c.model, events.StatusFailure, duration).
			WithError(msg))
		return failure[T](kind, msg)
	}

	event := events.NewGenerationEvent(c.kind, c.provider, c.model, events.StatusSuccess, duration)
	if c.notice != nil {
		if notice := c.notice(data); notice != "" {
			event.Status = events.StatusPartial
			event.WithError(notice)
		}
	}
	log.InfoContext(ctx, "generation completed",
		"status", event.Status,
		"duration_ms", duration.Milliseconds())
	s.emit(ctx, event)

	return success(data)
}

// runFlow invokes flow with the configured timeout and converts a panic into
// an error.
func runFlow[T any](
	ctx context.Context,
	timeout time.Duration,
	log *slog.Logger,
	flow func(context.Context, generation.Request) (*T, error),
	req generation.Request,
) (data *T, err error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "generation flow panicked", "panic", fmt.Sprint(r))
			data, err = nil, fmt.Errorf("generation flow panicked: %v", r)
		}
	}()

	data, err = flow(ctx, req)
	if err == nil && data == nil {
		err = fmt.Errorf("%w: flow returned no result", generation.ErrProvider)
	}
	return data, err
}

func (s *Service) emit(ctx context.Context, event *events.GenerationEvent) {
	if s.emitter == nil {
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to record generation event",
			"event_id", event.ID,
			"error", redact.Error(err))
	}
}
