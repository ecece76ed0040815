package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
)

// ErrNoOutputDir is returned when Dir is missing and MakeDir is off.
var ErrNoOutputDir = errors.New("output directory does not exist")

// Generator writes one PNG per size into Dir, in order. The first error
// aborts the run; files already written are left in place.
type Generator struct {
	Dir        string
	Sizes      []int
	Fill       color.NRGBA
	Background color.NRGBA
	Renderer   Renderer
	// ICO, when set, is the path of an .ico bundle of all sizes written
	// after the PNGs.
	ICO string
	// MakeDir creates Dir instead of failing when it is missing.
	MakeDir bool
	Log     zerolog.Logger
}

// NewGenerator returns a Generator for the default sizes and colors
// writing into dir.
func NewGenerator(dir string) *Generator {
	return &Generator{
		Dir:        dir,
		Sizes:      append([]int(nil), DefaultSizes...),
		Fill:       DefaultFill,
		Background: DefaultBackground,
		Renderer:   Crisp{},
		Log:        zerolog.Nop(),
	}
}

// FileName returns the conventional name for a size, e.g. "icon16.png".
func FileName(size int) string {
	return "icon" + strconv.Itoa(size) + ".png"
}

// Path returns where the icon for size is written.
func (g *Generator) Path(size int) string {
	return filepath.Join(g.Dir, FileName(size))
}

func (g *Generator) spec(size int) Spec {
	return Spec{Size: size, Fill: g.Fill, Background: g.Background}
}

// Run validates every size, checks the output directory, then generates
// each icon in order.
func (g *Generator) Run() error {
	if len(g.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidSize)
	}
	for _, size := range g.Sizes {
		if err := g.spec(size).Validate(); err != nil {
			return err
		}
	}
	if g.ICO != "" {
		for _, size := range g.Sizes {
			if size > 256 {
				return fmt.Errorf("%w: %d", ErrICOSize, size)
			}
		}
	}
	if err := g.ensureDir(); err != nil {
		return err
	}

	var pngs [][]byte
	for _, size := range g.Sizes {
		data, err := g.generate(size)
		if err != nil {
			return err
		}
		pngs = append(pngs, data)
	}

	if g.ICO == "" {
		return nil
	}
	ico, err := EncodeICO(g.Sizes, pngs)
	if err != nil {
		return err
	}
	if err := writeFile(g.ICO, ico); err != nil {
		return err
	}
	g.Log.Info().Str("path", g.ICO).Ints("sizes", g.Sizes).Msg("wrote icon bundle")
	return nil
}

// Generate renders and writes the icon for a single size.
func (g *Generator) Generate(size int) error {
	if err := g.spec(size).Validate(); err != nil {
		return err
	}
	if err := g.ensureDir(); err != nil {
		return err
	}
	_, err := g.generate(size)
	return err
}

func (g *Generator) generate(size int) ([]byte, error) {
	s := g.spec(size)
	g.Log.Debug().Int("size", size).Int("margin", s.Margin()).
		Str("bounds", s.Bounds().String()).Msg("rendering")

	data, err := Encode(g.renderer(), s)
	if err != nil {
		return nil, err
	}
	path := g.Path(size)
	if err := writeFile(path, data); err != nil {
		return nil, err
	}
	g.Log.Info().Str("path", path).Int("size", size).Msg("wrote icon")
	return data, nil
}

func (g *Generator) renderer() Renderer {
	if g.Renderer == nil {
		return Crisp{}
	}
	return g.Renderer
}

func (g *Generator) ensureDir() error {
	dir := g.Dir
	if dir == "" {
		dir = "."
	}
	fi, err := os.Stat(dir)
	switch {
	case err == nil && fi.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%w: %s is not a directory", ErrNoOutputDir, dir)
	case errors.Is(err, os.ErrNotExist) && g.MakeDir:
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		g.Log.Debug().Str("dir", dir).Msg("created output directory")
		return nil
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNoOutputDir, dir)
	}
	return fmt.Errorf("stat output directory: %w", err)
}

// Encode renders s with r and returns the PNG bytes. The canvas is opaque,
// so the encoder emits an RGB image without an alpha channel.
func Encode(r Renderer, s Spec) ([]byte, error) {
	img, err := r.Render(s)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png encode %d: %w", s.Size, err)
	}
	return buf.Bytes(), nil
}

// writeFile replaces path via a temp file and rename.
func writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
