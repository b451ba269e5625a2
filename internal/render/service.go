// Package render rasterizes SVG logos to PNG.
//
// The pipeline replaces the containerized rsvg-convert + pngquant pair with
// an in-process rasterizer: oksvg parses the SVG, rasterx scans it into an
// RGBA buffer at 2x the target size, imaging downscales with Lanczos, and
// the optional compression stage quantizes to a 256-color palette.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Service converts SVG bytes to PNG bytes.
// A Service reuses its raster buffer across conversions, so it must not be
// shared between goroutines; use a ServicePool for parallel batches.
type Service struct {
	cfg serviceConfig

	mu  sync.Mutex
	buf *image.RGBA // scratch buffer, reused when dimensions match
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithHeight, WithCompression).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{height: DefaultHeight, compress: true},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert rasterizes one SVG and returns the PNG as bytes.
// The context is checked between pipeline stages.
func (s *Service) Convert(ctx context.Context, input Input) ([]byte, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(input.SVG))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSVGParse, err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		return nil, ErrNoDrawableArea
	}

	height := input.Height
	if height == 0 {
		height = s.cfg.height
	}
	width := int(math.Round(float64(height) * vw / vh))
	if width < 1 {
		width = 1
	}

	out := s.rasterize(icon, width, height)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pngBytes, err := encodePNG(out, false)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if s.cfg.compress {
		return Compress(pngBytes)
	}
	return pngBytes, nil
}

// rasterize scans the icon into the reusable RGBA buffer at supersample
// resolution, then downscales to the target size with Lanczos.
func (s *Service) rasterize(icon *oksvg.SvgIcon, width, height int) *image.NRGBA {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := width*supersample, height*supersample
	bounds := image.Rect(0, 0, w, h)
	if s.buf == nil || s.buf.Bounds() != bounds {
		s.buf = image.NewRGBA(bounds)
	} else {
		clear(s.buf.Pix)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, s.buf, s.buf.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return imaging.Resize(s.buf, width, height, imaging.Lanczos)
}

// Close releases the scratch buffer.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf = nil
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if len(input.SVG) == 0 {
		return ErrEmptySVG
	}
	if input.Height != 0 {
		if err := validateHeight(input.Height); err != nil {
			return err
		}
	}
	return nil
}
