package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/ericpauley/go-quantize/quantize"
)

// maxPaletteSize is the PNG8 palette ceiling, matching pngquant's default.
const maxPaletteSize = 256

// Compress quantizes a PNG to a 256-color palette and re-encodes it at
// maximum compression. If the quantized file would be larger than the
// input (flat-color logos sometimes compress better as truecolor), the
// input is returned unchanged, so output size never regresses.
func Compress(data []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPNGDecode, err)
	}

	quantized, err := encodePNG(quantizeImage(img), true)
	if err != nil {
		return nil, err
	}

	if len(quantized) >= len(data) {
		return data, nil
	}
	return quantized, nil
}

// quantizeImage reduces an image to a Floyd-Steinberg dithered paletted image.
func quantizeImage(img image.Image) *image.Paletted {
	bounds := img.Bounds()

	quantizer := quantize.MedianCutQuantizer{}
	palette := quantizer.Quantize(make([]color.Color, 0, maxPaletteSize), img)
	if len(palette) == 0 {
		palette = color.Palette{color.Transparent}
	}

	paletted := image.NewPaletted(bounds, palette)
	draw.FloydSteinberg.Draw(paletted, bounds, img, bounds.Min)
	return paletted
}

// encodePNG encodes an image, optionally at best compression.
func encodePNG(img image.Image, best bool) ([]byte, error) {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if best {
		enc.CompressionLevel = png.BestCompression
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPNGEncode, err)
	}
	return buf.Bytes(), nil
}
