package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation pipeline.
var (
	// ErrConfiguration is returned when a required provider credential is missing.
	ErrConfiguration = errors.New("provider is not configured")

	// ErrProvider is returned when a provider call fails or yields no usable content.
	ErrProvider = errors.New("provider request failed")

	// ErrSchemaValidation is returned when a provider response does not match
	// the expected output shape.
	ErrSchemaValidation = errors.New("provider response failed schema validation")

	// ErrInvalidRequest is returned when a generation request fails input validation.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrInvalidConfig is returned when a provider adapter is constructed with bad settings.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrContentBlocked is returned when a provider refuses the prompt on safety grounds.
	ErrContentBlocked = fmt.Errorf("%w: content blocked by safety filters", ErrProvider)

	// ErrEmptyTopic is returned when a request carries no topic or instruction.
	ErrEmptyTopic = fmt.Errorf("%w: topic cannot be empty", ErrInvalidRequest)

	// ErrInvalidBaseImage is returned when a base image is not a base64 data URI.
	ErrInvalidBaseImage = fmt.Errorf("%w: base image must be a base64 data URI", ErrInvalidRequest)

	// ErrReferenceImageUnsupported is returned by text-to-image providers
	// asked to refine an existing image.
	ErrReferenceImageUnsupported = fmt.Errorf("%w: provider does not accept reference images", ErrInvalidRequest)
)
