package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteSize is the edge of the square canvas the catalog sprites are painted on.
const SpriteSize = 160

var (
	colFur     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colOutline = color.RGBA{0x10, 0x10, 0x10, 0xff}
	colScarf   = color.RGBA{0xd6, 0x3a, 0x2f, 0xff}
	colGoggle  = color.RGBA{0x8b, 0x5a, 0x2b, 0xff} // Leather
	colCollar  = color.RGBA{0xc8, 0x1e, 0x1e, 0xff}
)

// --- Vector Beagle Renderer ---
func paintBody(dst *ebiten.Image, arms func(dst *ebiten.Image)) {
	// 1. Body & feet
	vector.DrawFilledCircle(dst, 80, 112, 30, colFur, true)
	vector.DrawFilledCircle(dst, 64, 142, 10, colFur, true)
	vector.DrawFilledCircle(dst, 96, 142, 10, colFur, true)
	vector.StrokeCircle(dst, 64, 142, 10, 2, colOutline, true)
	vector.StrokeCircle(dst, 96, 142, 10, 2, colOutline, true)

	// 2. Arms (pose specific)
	arms(dst)

	// 3. Head & snout
	vector.DrawFilledCircle(dst, 80, 58, 28, colFur, true)
	vector.DrawFilledCircle(dst, 104, 64, 18, colFur, true)
	vector.DrawFilledCircle(dst, 120, 60, 7, colOutline, true) // Nose

	// 4. Ear
	vector.DrawFilledRect(dst, 56, 46, 14, 34, colOutline, true)
	vector.DrawFilledCircle(dst, 63, 80, 7, colOutline, true)

	// 5. Eye & collar
	vector.DrawFilledRect(dst, 88, 44, 3, 10, colOutline, true)
	vector.DrawFilledRect(dst, 60, 86, 40, 5, colCollar, true)
}

func paintFlying(dst *ebiten.Image) {
	paintBody(dst, func(dst *ebiten.Image) {
		// Arms spread wide like wings
		vector.StrokeLine(dst, 56, 104, 18, 86, 9, colFur, true)
		vector.StrokeLine(dst, 104, 104, 142, 86, 9, colFur, true)
		vector.DrawFilledCircle(dst, 18, 86, 6, colFur, true)
		vector.DrawFilledCircle(dst, 142, 86, 6, colFur, true)
	})

	// Scarf trailing behind, goggles on top
	vector.StrokeLine(dst, 62, 90, 24, 100, 6, colScarf, true)
	vector.StrokeLine(dst, 24, 100, 10, 94, 6, colScarf, true)
	vector.DrawFilledRect(dst, 62, 30, 40, 8, colGoggle, true)
	vector.DrawFilledCircle(dst, 72, 32, 7, colGoggle, true)
	vector.DrawFilledCircle(dst, 92, 32, 7, colGoggle, true)
}

func paintGrabbing(dst *ebiten.Image) {
	paintBody(dst, func(dst *ebiten.Image) {
		// Both arms reaching forward
		vector.StrokeLine(dst, 94, 100, 140, 94, 9, colFur, true)
		vector.StrokeLine(dst, 94, 116, 140, 110, 9, colFur, true)
		vector.DrawFilledCircle(dst, 142, 94, 7, colFur, true)
		vector.DrawFilledCircle(dst, 142, 110, 7, colFur, true)
		vector.StrokeCircle(dst, 142, 94, 7, 2, colOutline, true)
		vector.StrokeCircle(dst, 142, 110, 7, 2, colOutline, true)
	})
}
