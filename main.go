package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"chaser/internal/assets"
	"chaser/internal/config"
	"chaser/internal/logger"
)

type flags struct {
	config     string
	sprite     string
	spriteFile string
	logLevel   string
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("chaser", flag.ContinueOnError)
	fs.StringVar(&f.config, "config", "", "path to a YAML config file")
	fs.StringVar(&f.sprite, "sprite", "", "built-in sprite to use (flying, grabbing); skips the prompt")
	fs.StringVar(&f.spriteFile, "sprite-file", "", "image file to use as the sprite; skips the prompt")
	fs.StringVar(&f.logLevel, "log-level", "", "override log.level")
	return f, fs.Parse(args)
}

// applyFlags lays command-line overrides over the loaded config.
func applyFlags(cfg *config.Config, f flags) {
	if f.sprite != "" {
		cfg.Sprite.Name = f.sprite
	}
	if f.spriteFile != "" {
		cfg.Sprite.File = f.spriteFile
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
}

// loadSprite returns nil when the player still has to choose one.
func loadSprite(cfg config.SpriteConfig) (*ebiten.Image, error) {
	switch {
	case cfg.File != "":
		img, err := assets.LoadFile(cfg.File)
		if err != nil {
			return nil, err
		}
		return assets.Scale(img, cfg.Scale), nil
	case cfg.Name != "":
		choice, err := assets.Lookup(cfg.Name)
		if err != nil {
			return nil, err
		}
		return assets.Scale(choice.Image(), cfg.Scale), nil
	}
	return nil, nil
}

func fatal(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "chaser: %v\n", err)
	os.Exit(1)
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		fatal(err)
	}
	applyFlags(&cfg, f)

	log, err := logger.New(cfg.Log)
	if err != nil {
		fatal(err)
	}
	defer func() { _ = log.Sync() }()

	// 1. Window Setup
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowSizeLimits(cfg.Window.MinWidth, cfg.Window.MinHeight, -1, -1)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	// 2. Initialize Game
	sprite, err := loadSprite(cfg.Sprite)
	if err != nil {
		log.Fatal("could not load sprite", zap.Error(err))
	}
	game, err := NewGame(cfg, log, sprite)
	if err != nil {
		log.Fatal("could not start", zap.Error(err))
	}

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("game loop failed", zap.Error(err))
	}
	log.Info("bye")
}
