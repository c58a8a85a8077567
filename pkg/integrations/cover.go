package integrations

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	CoverMaxWidth  = 600
	CoverMaxHeight = 900
	coverQuality   = 85
)

// ProcessCover decodes a jpeg, png or webp cover, scales it down to fit
// CoverMaxWidth x CoverMaxHeight and re-encodes it as jpeg.
func ProcessCover(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("cover is empty")
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode cover: %w", err)
	}

	bounds := img.Bounds()
	width, height := fitDimensions(bounds.Dx(), bounds.Dy(), CoverMaxWidth, CoverMaxHeight)
	if width != bounds.Dx() || height != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: coverQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode cover: %w", err)
	}
	return buf.Bytes(), nil
}

// fitDimensions keeps the aspect ratio. Images already inside the box are
// left alone.
func fitDimensions(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	scale := float64(maxWidth) / float64(width)
	if hs := float64(maxHeight) / float64(height); hs < scale {
		scale = hs
	}

	w, h := int(float64(width)*scale), int(float64(height)*scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
