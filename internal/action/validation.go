package action

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/social-spark/internal/generation"
)

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match what the page sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// prepare applies defaults and validates req, returning the request the flow
// should run with.
func (s *Service) prepare(req generation.Request) (generation.Request, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	req.Platform = strings.TrimSpace(req.Platform)
	req.Tone = strings.TrimSpace(req.Tone)
	req.Language = strings.TrimSpace(req.Language)
	if req.Language == "" {
		req.Language = s.defaultLanguage
	}

	if req.Topic == "" {
		return req, generation.ErrEmptyTopic
	}
	if err := s.validate.Struct(req); err != nil {
		return req, fmt.Errorf("%w: %s", generation.ErrInvalidRequest, validationMessage(err))
	}
	return req, nil
}

// validationMessage describes the first failed field in plain words.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "validation error"
	}
	fe := verrs[0]
	return fmt.Sprintf("invalid %s: %s", fe.Field(), tagMessage(fe.Tag()))
}

func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	case "bcp47_language_tag":
		return "must be a BCP-47 language tag"
	case "datauri":
		return "must be a base64 data URI"
	default:
		return "validation failed"
	}
}
