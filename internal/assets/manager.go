package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrUnknownSprite = errors.New("unknown sprite")

// Choice is one entry of the built-in sprite catalog.
type Choice struct {
	Name  string
	Label string
	paint func(dst *ebiten.Image)
}

var catalog = []Choice{
	{Name: "flying", Label: "Snoopy (flying)", paint: paintFlying},
	{Name: "grabbing", Label: "Snoopy (grabbing)", paint: paintGrabbing},
}

// Choices lists the catalog in display order.
func Choices() []Choice {
	out := make([]Choice, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(name string) (Choice, error) {
	for _, c := range catalog {
		if c.Name == name {
			return c, nil
		}
	}
	return Choice{}, fmt.Errorf("%w: %q", ErrUnknownSprite, name)
}

// Image paints the catalog sprite into a fresh image.
func (c Choice) Image() *ebiten.Image {
	img := ebiten.NewImage(SpriteSize, SpriteSize)
	c.paint(img)
	return img
}

// LoadFile decodes a PNG, GIF or JPEG from disk into VRAM.
func LoadFile(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %q: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// Scale returns img resized by factor with linear filtering.
func Scale(img *ebiten.Image, factor float64) *ebiten.Image {
	if factor == 1 {
		return img
	}
	w, h := ScaledSize(img.Bounds().Dx(), img.Bounds().Dy(), factor)
	dst := ebiten.NewImage(w, h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(img.Bounds().Dx()), float64(h)/float64(img.Bounds().Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
	return dst
}

// ScaledSize truncates like the image resize it mirrors, but never below one pixel.
func ScaledSize(w, h int, factor float64) (int, int) {
	return max(1, int(float64(w)*factor)), max(1, int(float64(h)*factor))
}
