package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/phrazzld/social-spark/internal/action"
	"github.com/phrazzld/social-spark/internal/api/shared"
	"github.com/phrazzld/social-spark/internal/generation"
)

const testSessionID = "0f8e2d6c-6a43-4f1b-9c3e-5b7a1d2e4f60"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockActions implements Actions with overridable behavior.
type MockActions struct {
	GenerateTextFn      func(ctx context.Context, req generation.Request) action.Result[generation.PostContent]
	GenerateImageFn     func(ctx context.Context, req generation.Request) action.Result[generation.ImageResult]
	GenerateDualImageFn func(ctx context.Context, req generation.Request) action.Result[generation.DualImageResult]
}

func (m *MockActions) GenerateText(ctx context.Context, req generation.Request) action.Result[generation.PostContent] {
	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, req)
	}
	return action.Result[generation.PostContent]{
		Data: &generation.PostContent{MainText: "Texto de " + req.Topic, Hashtags: []string{"promo"}},
	}
}

func (m *MockActions) GenerateImage(ctx context.Context, req generation.Request) action.Result[generation.ImageResult] {
	if m.GenerateImageFn != nil {
		return m.GenerateImageFn(ctx, req)
	}
	return action.Result[generation.ImageResult]{Data: &generation.ImageResult{ImageURL: "data:image/png;base64,AQID"}}
}

func (m *MockActions) GenerateDualImage(
	ctx context.Context,
	req generation.Request,
) action.Result[generation.DualImageResult] {
	if m.GenerateDualImageFn != nil {
		return m.GenerateDualImageFn(ctx, req)
	}
	return action.Result[generation.DualImageResult]{Data: &generation.DualImageResult{
		ImageURL:          "data:image/png;base64,AQID",
		SecondaryImageURL: "data:image/jpeg;base64,BAUG",
	}}
}

// newRequest builds a request carrying a trace ID and the test session.
func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	ctx := context.WithValue(req.Context(), shared.TraceIDKey, "test-trace-id")
	ctx = shared.SetSessionID(ctx, testSessionID)
	return req.WithContext(ctx)
}
