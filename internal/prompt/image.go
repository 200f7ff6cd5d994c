package prompt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/phrazzld/social-spark/internal/generation"
)

const closingInstruction = " The image should act as a visual accompaniment to a text post on this topic, " +
	"enhancing its message rather than literally depicting it. " +
	"Aim for a high-quality, photorealistic style suitable for social media."

// BuildImage returns the ordered prompt segments for req. When req carries a
// base image, the image segment comes first and the text asks the model to
// refine it using req.Topic as the instruction.
func BuildImage(req generation.Request) ([]generation.Segment, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, generation.ErrEmptyTopic
	}

	if req.BaseImage == "" {
		text := fmt.Sprintf("Generate an illustrative and visually appealing marketing image "+
			"that complements the topic: %q.", topic)
		text += formatClause(req.Platform, req.ImageType) + closingInstruction
		return []generation.Segment{{Kind: generation.SegmentText, Text: text}}, nil
	}

	mimeType, data, err := generation.ParseDataURI(req.BaseImage)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("Use the provided image as the reference to refine. "+
		"Refine it according to this instruction: %q. "+
		"Keep its subject and composition unless the instruction asks otherwise.", topic)
	text += formatClause(req.Platform, req.ImageType) + closingInstruction

	return []generation.Segment{
		{Kind: generation.SegmentImage, MIMEType: mimeType, Data: data},
		{Kind: generation.SegmentText, Text: text},
	}, nil
}

func formatClause(platform, imageType string) string {
	platform = strings.TrimSpace(platform)
	imageType = strings.TrimSpace(imageType)

	switch {
	case platform != "" && imageType != "":
		return fmt.Sprintf(" The image should be suitable for %s as a %s.", platform, imageType)
	case platform != "":
		return fmt.Sprintf(" The image should be suitable for %s.", platform)
	case imageType != "":
		return fmt.Sprintf(" The image should be a %s.", imageType)
	default:
		return ""
	}
}

var dimensionHint = regexp.MustCompile(`(\d{2,5})\s*[xX×]\s*(\d{2,5})`)

// supportedRatios are the aspect ratios image providers accept.
var supportedRatios = []struct {
	name  string
	value float64
}{
	{"1:1", 1},
	{"3:4", 3.0 / 4.0},
	{"4:3", 4.0 / 3.0},
	{"9:16", 9.0 / 16.0},
	{"16:9", 16.0 / 9.0},
}

// AspectRatio derives the closest supported aspect ratio from a dimension
// hint such as "Instagram Story (1080x1920px)". It returns "" when the hint
// has no dimensions.
func AspectRatio(imageType string) string {
	m := dimensionHint.FindStringSubmatch(imageType)
	if m == nil {
		return ""
	}

	w, errW := strconv.ParseFloat(m[1], 64)
	h, errH := strconv.ParseFloat(m[2], 64)
	if errW != nil || errH != nil || w == 0 || h == 0 {
		return ""
	}

	target := math.Log(w / h)
	best := supportedRatios[0]
	for _, r := range supportedRatios[1:] {
		if math.Abs(math.Log(r.value)-target) < math.Abs(math.Log(best.value)-target) {
			best = r
		}
	}
	return best.name
}
