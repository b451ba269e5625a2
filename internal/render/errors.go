package render

import "errors"

// Sentinel errors for rendering operations.
var (
	ErrEmptySVG       = errors.New("svg content cannot be empty")
	ErrSVGParse       = errors.New("svg parsing failed")
	ErrNoDrawableArea = errors.New("svg has no drawable area")
	ErrPNGEncode      = errors.New("png encoding failed")
	ErrPNGDecode      = errors.New("png decoding failed")

	// Settings validation errors.
	ErrInvalidHeight = errors.New("invalid output height")
)
