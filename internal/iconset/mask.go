package iconset

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Resize resamples src to a size×size NRGBA image with the Catmull-Rom
// kernel. Alpha is preserved.
func Resize(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// RoundedMask returns a size×size alpha mask that is opaque inside a
// rounded rectangle of the given corner radius spanning the full bounds
// and transparent outside it. Edges are anti-aliased.
func RoundedMask(size, radius int) *image.Alpha {
	dc := gg.NewContext(size, size)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), float64(radius))
	dc.SetRGBA(1, 1, 1, 1)
	dc.Fill()
	return dc.AsMask()
}

// ApplyMask replaces the alpha channel of img with mask. Any transparency
// img already had is discarded. Both must share the same bounds.
func ApplyMask(img *image.NRGBA, mask *image.Alpha) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix[img.PixOffset(x, y)+3] = mask.Pix[mask.PixOffset(x, y)]
		}
	}
}

// Variant produces the rounded icon image for s from the decoded source.
func Variant(src image.Image, s Spec) *image.NRGBA {
	img := Resize(src, s.Size)
	ApplyMask(img, RoundedMask(s.Size, s.Radius()))
	return img
}
