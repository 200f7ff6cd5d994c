package api

import (
	"net/http"

	"github.com/phrazzld/social-spark/internal/api/shared"
)

// Option is one selectable value in the generation form.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionsResponse lists the values the generation form offers.
type OptionsResponse struct {
	Platforms       []string `json:"platforms"`
	Tones           []string `json:"tones"`
	Languages       []Option `json:"languages"`
	ImageTypes      []Option `json:"image_types"`
	DefaultLanguage string   `json:"default_language"`
}

var (
	platformOptions = []string{"Instagram", "Facebook", "Twitter (X)", "LinkedIn", "TikTok"}
	toneOptions     = []string{"Profesional", "Amistoso", "Divertido", "Persuasivo", "Inspirador"}
	languageOptions = []Option{
		{Value: "es", Label: "Español"},
		{Value: "en", Label: "English"},
		{Value: "pt", Label: "Português"},
		{Value: "fr", Label: "Français"},
	}
	imageTypeOptions = []Option{
		{Value: "", Label: "Automático"},
		{Value: "Instagram Post (1080x1080px)", Label: "Instagram Post (1:1)"},
		{Value: "Instagram Story (1080x1920px)", Label: "Instagram Story (9:16)"},
		{Value: "Facebook Post (1200x630px)", Label: "Facebook Post"},
		{Value: "Twitter (X) Post (1600x900px)", Label: "Twitter (X) Post (16:9)"},
		{Value: "LinkedIn Post (1200x1200px)", Label: "LinkedIn Post (1:1)"},
	}
)

// OptionsHandler serves the generation form options.
type OptionsHandler struct {
	response OptionsResponse
}

// NewOptionsHandler creates an OptionsHandler advertising defaultLanguage.
func NewOptionsHandler(defaultLanguage string) *OptionsHandler {
	return &OptionsHandler{response: OptionsResponse{
		Platforms:       platformOptions,
		Tones:           toneOptions,
		Languages:       languageOptions,
		ImageTypes:      imageTypeOptions,
		DefaultLanguage: defaultLanguage,
	}}
}

// GetOptions handles GET /api/options.
func (h *OptionsHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.response)
}
