package icon

import (
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// alphaThreshold decides which anti-aliased pixels become set bits.
const alphaThreshold = 0x80

// FromSVG rasterizes an SVG document into a w×h icon. Pixels at least
// half opaque are set.
func FromSVG(r io.Reader, name string, w, h int) (Icon, error) {
	if w <= 0 || h <= 0 || w > 0x7FFF || h > 0x7FFF {
		return Icon{}, fmt.Errorf("icon %s: invalid size %dx%d", name, w, h)
	}

	svg, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return Icon{}, fmt.Errorf("icon %s: parse svg: %w", name, err)
	}
	svg.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	svg.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return fromAlpha(img, name), nil
}

func fromAlpha(img *image.RGBA, name string) Icon {
	b := img.Bounds()
	ic := Icon{
		Name:   name,
		Width:  int16(b.Dx()),
		Height: int16(b.Dy()),
	}
	stride := ic.Stride()
	ic.Data = make([]byte, stride*b.Dy())

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if img.RGBAAt(b.Min.X+x, b.Min.Y+y).A >= alphaThreshold {
				ic.Data[y*stride+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return ic
}
