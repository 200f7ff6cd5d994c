package generation

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const dataURIPrefix = "data:"

// EncodeDataURI renders data as "data:<mime>;base64,<payload>".
func EncodeDataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return dataURIPrefix + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURI decodes a base64 data URI into its MIME type and bytes.
// Returns ErrInvalidBaseImage for anything else.
func ParseDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return "", nil, ErrInvalidBaseImage
	}

	header, payload, ok := strings.Cut(uri[len(dataURIPrefix):], ",")
	if !ok {
		return "", nil, ErrInvalidBaseImage
	}

	mimeType, isBase64 := strings.CutSuffix(header, ";base64")
	if !isBase64 || mimeType == "" {
		return "", nil, fmt.Errorf("%w: expected base64 encoding with a MIME type", ErrInvalidBaseImage)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidBaseImage, err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("%w: empty payload", ErrInvalidBaseImage)
	}

	return mimeType, data, nil
}

// FileExtension returns a file extension for common image MIME types.
func FileExtension(mimeType string) string {
	switch mimeType {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "png"
	}
}
