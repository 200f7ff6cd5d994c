package generation

import "context"

// SegmentKind distinguishes the parts of a multimodal prompt.
type SegmentKind string

const (
	SegmentText  SegmentKind = "text"
	SegmentImage SegmentKind = "image"
)

// Segment is one ordered part of a multimodal prompt.
type Segment struct {
	Kind     SegmentKind
	Text     string
	MIMEType string
	Data     []byte
}

// TextProvider generates structured text from a prompt.
// This interface is the boundary between the pipeline and external LLM services.
type TextProvider interface {
	// GenerateJSON sends prompt with a JSON-object output directive and returns
	// the raw JSON text of the first completion.
	GenerateJSON(ctx context.Context, prompt string) (string, error)

	// Model names the model used for requests, for logging and generation records.
	Model() string
}

// ImageProvider generates a single image from ordered prompt segments.
type ImageProvider interface {
	// GenerateImage returns the first image the provider produced.
	// Implementations return an error wrapping ErrProvider when no image is returned.
	GenerateImage(ctx context.Context, segments []Segment, opts ImageOptions) (*Media, error)

	// Model names the model used for requests.
	Model() string
}

// ImageOptions carries provider hints derived from the request.
type ImageOptions struct {
	// AspectRatio is a ratio such as "9:16"; empty lets the provider choose.
	AspectRatio string
}
