package render

import "fmt"

// Output height bounds in pixels.
const (
	MinHeight     = 16
	MaxHeight     = 2048
	DefaultHeight = 240
)

// supersample renders at a multiple of the target size before downscaling.
// Vector edges rasterized at 1x look ragged at icon sizes; 2x plus a
// Lanczos downscale matches what rsvg-convert produces.
const supersample = 2

// Input contains conversion parameters for a single SVG.
type Input struct {
	SVG    []byte // SVG source (required)
	Height int    // output height in pixels (0 = service default)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	height   int
	compress bool
}

// WithHeight sets the default output height for conversions.
// Panics if h is out of bounds (programmer error, similar to time.NewTicker).
func WithHeight(h int) Option {
	if err := validateHeight(h); err != nil {
		panic(fmt.Sprintf("render: WithHeight: %v", err))
	}
	return func(s *Service) {
		s.cfg.height = h
	}
}

// WithCompression enables palette quantization on every Convert result.
func WithCompression(enabled bool) Option {
	return func(s *Service) {
		s.cfg.compress = enabled
	}
}

// validateHeight checks that a pixel height is within bounds.
func validateHeight(h int) error {
	if h < MinHeight || h > MaxHeight {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidHeight, h, MinHeight, MaxHeight)
	}
	return nil
}
