package generation

// Request is the input record for every generation operation.
// It is immutable for the duration of a call.
type Request struct {
	// Topic is the subject of the post, or the refinement instruction when
	// BaseImage is set.
	Topic     string `json:"topic" validate:"required,max=2000"`
	Platform  string `json:"platform,omitempty" validate:"max=100"`
	Tone      string `json:"tone,omitempty" validate:"max=100"`
	Language  string `json:"language,omitempty" validate:"omitempty,bcp47_language_tag"`
	ImageType string `json:"image_type,omitempty" validate:"max=200"`
	BaseImage string `json:"base_image,omitempty" validate:"omitempty,datauri"`
}

// PostContent is the validated output of text generation.
type PostContent struct {
	MainText string   `json:"main_text"`
	Hashtags []string `json:"hashtags"`
}

// ImageResult is the output of single-provider image generation.
type ImageResult struct {
	ImageURL string `json:"imageUrl"`
}

// DualImageResult is the output of dual-provider image generation.
// When only one provider produced an image it is reported in ImageURL,
// SecondaryImageURL is empty and PartialError names the provider that failed.
type DualImageResult struct {
	ImageURL          string `json:"imageUrl"`
	SecondaryImageURL string `json:"secondaryImageUrl,omitempty"`
	PartialError      string `json:"partialError,omitempty"`
}

// URLs returns the non-empty image references in display order.
func (r DualImageResult) URLs() []string {
	urls := make([]string, 0, 2)
	for _, u := range []string{r.ImageURL, r.SecondaryImageURL} {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// Media is raw image output from a provider.
type Media struct {
	MIMEType string
	Data     []byte
}

// DataURI encodes the media as a base64 data URI.
func (m Media) DataURI() string {
	return EncodeDataURI(m.MIMEType, m.Data)
}
