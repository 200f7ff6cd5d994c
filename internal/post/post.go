package post

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/social-spark/internal/generation"
)

// ImageState is the image half of a Post's state machine.
type ImageState string

const (
	ImageIdle       ImageState = "idle"
	ImageGenerating ImageState = "generating"
	ImageReady      ImageState = "ready"
	ImageFailed     ImageState = "failed"
)

// TextState is the text half of a Post's state machine.
type TextState string

const (
	TextReady        TextState = "ready"
	TextRegenerating TextState = "regenerating"
	TextFailed       TextState = "failed"
)

// Mode selects how an image is produced.
type Mode string

const (
	// ModeGenerate draws from the original topic. Allowed from any settled state.
	ModeGenerate Mode = "generate"
	// ModeRegenerate draws again from the original topic. Allowed from ready or failed.
	ModeRegenerate Mode = "regenerate"
	// ModeRefine edits the current first image. Allowed from ready or failed
	// when an image exists.
	ModeRefine Mode = "refine"
)

// Post is one generated social media post.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Topic     string    `json:"topic"`
	Platform  string    `json:"platform,omitempty"`
	Tone      string    `json:"tone,omitempty"`
	Language  string    `json:"language,omitempty"`
	ImageType string    `json:"image_type,omitempty"`

	MainText string   `json:"main_text"`
	Hashtags []string `json:"hashtags"`

	// Images are data URIs in display order.
	Images     []string   `json:"images"`
	ImageState ImageState `json:"image_state"`
	ImageError string     `json:"image_error,omitempty"`
	// ImageNotice reports a provider that failed during an otherwise
	// successful dual generation.
	ImageNotice string `json:"image_notice,omitempty"`

	TextState TextState `json:"text_state"`
	TextError string    `json:"text_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsGeneratingImage reports whether an image request is in flight.
func (p *Post) IsGeneratingImage() bool {
	return p.ImageState == ImageGenerating
}

// CanRegenerateText reports whether the Post recorded everything text
// regeneration needs.
func (p *Post) CanRegenerateText() bool {
	return p.Platform != "" && p.Tone != "" && p.Language != ""
}

// ShareText is the text copied to the clipboard.
func (p *Post) ShareText() string {
	return generation.ShareText(generation.PostContent{MainText: p.MainText, Hashtags: p.Hashtags})
}

// MarshalJSON adds the derived fields the page renders from.
func (p *Post) MarshalJSON() ([]byte, error) {
	type plain Post
	return json.Marshal(struct {
		*plain
		IsGeneratingImage  bool   `json:"is_generating_image"`
		IsRegeneratingText bool   `json:"is_regenerating_text"`
		CanRegenerateText  bool   `json:"can_regenerate_text"`
		ShareText          string `json:"share_text"`
	}{
		plain:              (*plain)(p),
		IsGeneratingImage:  p.IsGeneratingImage(),
		IsRegeneratingText: p.TextState == TextRegenerating,
		CanRegenerateText:  p.CanRegenerateText(),
		ShareText:          p.ShareText(),
	})
}

// clone returns a deep copy safe to hand out of the board lock.
func (p *Post) clone() *Post {
	c := *p
	c.Hashtags = append([]string(nil), p.Hashtags...)
	c.Images = append([]string(nil), p.Images...)
	if c.Hashtags == nil {
		c.Hashtags = []string{}
	}
	if c.Images == nil {
		c.Images = []string{}
	}
	return &c
}

// startImage moves the Post into generating for mode, or reports why it cannot.
func (p *Post) startImage(mode Mode) error {
	if p.ImageState == ImageGenerating {
		return ErrBusy
	}
	switch mode {
	case ModeGenerate:
	case ModeRegenerate:
		if p.ImageState == ImageIdle {
			return ErrInvalidTransition
		}
	case ModeRefine:
		if p.ImageState == ImageIdle {
			return ErrInvalidTransition
		}
		if len(p.Images) == 0 {
			return ErrNothingToRefine
		}
	default:
		return ErrInvalidMode
	}
	p.ImageState = ImageGenerating
	p.ImageError = ""
	p.ImageNotice = ""
	return nil
}

// finishImage settles an image operation. Previous images survive a failure.
func (p *Post) finishImage(images []string, notice, errMsg string, now time.Time) {
	if errMsg != "" {
		p.ImageState = ImageFailed
		p.ImageError = errMsg
	} else {
		p.ImageState = ImageReady
		p.ImageError = ""
		p.Images = images
		p.ImageNotice = notice
	}
	p.UpdatedAt = now
}

func (p *Post) startText() error {
	if !p.CanRegenerateText() {
		return ErrTextRegenerationUnavailable
	}
	if p.TextState == TextRegenerating {
		return ErrBusy
	}
	p.TextState = TextRegenerating
	p.TextError = ""
	return nil
}

// finishText settles a text regeneration. Previous text survives a failure.
func (p *Post) finishText(content *generation.PostContent, errMsg string, now time.Time) {
	if errMsg != "" {
		p.TextState = TextFailed
		p.TextError = errMsg
	} else {
		p.TextState = TextReady
		p.TextError = ""
		p.MainText = content.MainText
		p.Hashtags = content.Hashtags
	}
	p.UpdatedAt = now
}
