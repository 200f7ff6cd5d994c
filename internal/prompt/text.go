package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/phrazzld/social-spark/internal/generation"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var textTemplate = template.Must(template.ParseFS(templateFS, "templates/marketing_post.tmpl"))

// BuildText renders the marketing post prompt for req. Platform, tone and
// language lines appear only when the request supplies them.
func BuildText(req generation.Request) (string, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return "", generation.ErrEmptyTopic
	}

	var buf bytes.Buffer
	if err := textTemplate.Execute(&buf, req); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
