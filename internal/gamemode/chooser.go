package gamemode

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chaser/internal/assets"
)

type ChooserState int

const (
	ChooserOpen      ChooserState = iota // Waiting for a pick
	ChooserConfirmed                     // Enter pressed
	ChooserCancelled                     // Escape pressed
)

// Chooser is the startup prompt asking which sprite should chase the mouse.
type Chooser struct {
	State    ChooserState
	Choices  []assets.Choice
	Selected int
}

func NewChooser(choices []assets.Choice) *Chooser {
	return &Chooser{State: ChooserOpen, Choices: choices}
}

func (c *Chooser) Next() { c.Select(c.Selected + 1) }
func (c *Chooser) Prev() { c.Select(c.Selected - 1) }

// Select moves the highlight, wrapping around the list.
func (c *Chooser) Select(i int) {
	if c.State != ChooserOpen || len(c.Choices) == 0 {
		return
	}
	n := len(c.Choices)
	c.Selected = ((i % n) + n) % n
}

func (c *Chooser) Confirm() {
	if c.State == ChooserOpen && len(c.Choices) > 0 {
		c.State = ChooserConfirmed
	}
}

func (c *Chooser) Cancel() {
	if c.State == ChooserOpen {
		c.State = ChooserCancelled
	}
}

// Result is the confirmed choice; ok is false until Confirm.
func (c *Chooser) Result() (assets.Choice, bool) {
	if c.State != ChooserConfirmed {
		return assets.Choice{}, false
	}
	return c.Choices[c.Selected], true
}

var digitKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

func (c *Chooser) Update() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		c.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		c.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		c.Confirm()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		c.Cancel()
	}

	for i, k := range digitKeys {
		if i < len(c.Choices) && inpututil.IsKeyJustPressed(k) {
			c.Select(i)
		}
	}
}

func (c *Chooser) Text() string {
	var b strings.Builder
	b.WriteString("Which Snoopy image should chase the mouse?\n\n")
	for i, choice := range c.Choices {
		mark := " "
		if i == c.Selected {
			mark = ">"
		}
		fmt.Fprintf(&b, "%s %d. %s\n", mark, i+1, choice.Label)
	}
	b.WriteString("\nUP/DOWN to pick, ENTER to start, ESC to quit")
	b.WriteString("\nOwn image? Restart with -sprite-file path/to/image.png")
	return b.String()
}

func (c *Chooser) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, c.Text(), 24, 24)
}
