// Package iconset renders the rounded PNG variants that make up a macOS
// .iconset directory.
package iconset

// Spec is one entry of the iconset: the pixel dimension of the square
// image and the base name iconutil expects for it.
type Spec struct {
	Size int
	Name string
}

// specs must match iconutil's naming contract exactly. The @2x entries
// share a pixel size with the next nominal size but are distinct files.
var specs = [...]Spec{
	{16, "icon_16x16"},
	{32, "icon_16x16@2x"},
	{32, "icon_32x32"},
	{64, "icon_32x32@2x"},
	{128, "icon_128x128"},
	{256, "icon_128x128@2x"},
	{256, "icon_256x256"},
	{512, "icon_256x256@2x"},
	{512, "icon_512x512"},
	{1024, "icon_512x512@2x"},
}

// Specs returns the fixed iconset table in render order.
func Specs() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs[:])
	return out
}

// FileName returns the PNG file name for s inside the iconset directory.
func (s Spec) FileName() string {
	return s.Name + ".png"
}

// Radius returns the corner radius for s: a fifth of the size, rounded down.
func (s Spec) Radius() int {
	return s.Size / 5
}

func isSpecFile(name string) bool {
	for _, s := range specs {
		if s.FileName() == name {
			return true
		}
	}
	return false
}
