// Package icon renders circle icons and writes them as PNG files or an
// ICO bundle.
package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Size limits accepted by Spec.Validate.
const (
	MinSize = 1
	MaxSize = 8192
)

// Errors returned for bad Spec input.
var (
	ErrInvalidSize = errors.New("invalid icon size")
	ErrBadColor    = errors.New("bad color")
)

var (
	DefaultFill       = color.NRGBA{R: 0x42, G: 0x85, B: 0xF4, A: 0xFF} // #4285f4
	DefaultBackground = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	DefaultSizes      = []int{16, 48, 128}
)

// Spec describes one icon: a filled circle inscribed in a box inset by
// Size/4 from every edge.
type Spec struct {
	Size       int
	Fill       color.NRGBA
	Background color.NRGBA
}

// NewSpec returns a Spec with the default colors.
func NewSpec(size int) Spec {
	return Spec{Size: size, Fill: DefaultFill, Background: DefaultBackground}
}

// Validate reports ErrInvalidSize when Size is outside MinSize..MaxSize.
func (s Spec) Validate() error {
	if s.Size < MinSize || s.Size > MaxSize {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidSize, s.Size, MinSize, MaxSize)
	}
	return nil
}

// Margin is the inset from each canvas edge, floor(Size/4).
func (s Spec) Margin() int {
	return s.Size / 4
}

// Bounds returns the circle's bounding box. Max is inclusive, so for
// Size 16 this is (4,4)-(12,12).
func (s Spec) Bounds() image.Rectangle {
	m := s.Margin()
	return image.Rect(m, m, s.Size-m, s.Size-m)
}

// ParseColor accepts "#rrggbb", "rrggbb", "#rgb" or an SVG color name.
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[v]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}, nil
	}
	hex := strings.TrimPrefix(v, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xFF}, nil
}

// FormatColor returns c as "#rrggbb".
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
