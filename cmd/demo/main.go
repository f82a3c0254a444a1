// Demo: a sprite walking over a tiled world, exercising the batched
// renderer, the asset loader and the camera on both backends. Runs in a
// desktop window natively and against a DOM canvas under js/wasm.
package main

import (
	"log/slog"
	"os"

	"github.com/pixlgo/pixl/internal/platform"
	"github.com/pixlgo/pixl/pkg/assets"
	"github.com/pixlgo/pixl/pkg/game"
	"github.com/pixlgo/pixl/pkg/gfx"
)

const (
	screenW = 800
	screenH = 600
	worldW  = 1600
	worldH  = 1200

	tileSize   = 64
	heroFrames = 4
	heroSize   = 64
)

type spriteScene struct {
	camera *game.Camera
	hero   *gfx.Texture
	tiles  *gfx.Texture

	x, y    float32
	frame   int
	elapsed float64
}

func (s *spriteScene) Load(l *assets.Loader) {
	s.hero = l.Texture("assets/hero.png", heroFrames*heroSize, heroSize)
	s.tiles = l.Texture("assets/tiles.png", 256, 256)
}

func (s *spriteScene) Init() {
	s.camera = game.NewCamera(screenW, screenH, worldW, worldH)
	s.x, s.y = worldW/2, worldH/2
}

func (s *spriteScene) Update(dt float64, kb *game.Keyboard) game.SceneAction {
	if kb.Pressed("Escape") {
		return game.ActionQuit
	}
	speed := float32(240 * dt)
	moving := false
	if kb.IsDown("ArrowLeft") {
		s.x -= speed
		moving = true
	}
	if kb.IsDown("ArrowRight") {
		s.x += speed
		moving = true
	}
	if kb.IsDown("ArrowUp") {
		s.y -= speed
		moving = true
	}
	if kb.IsDown("ArrowDown") {
		s.y += speed
		moving = true
	}
	if moving {
		s.elapsed += dt
	}
	s.frame = int(s.elapsed*8) % heroFrames
	s.camera.SetOrigin(int32(s.x)-screenW/2, int32(s.y)-screenH/2)
	return game.ActionNone
}

func (s *spriteScene) Draw(r gfx.Renderer) {
	r.ApplyTexture(s.tiles)
	for ty := 0; ty < worldH; ty += tileSize {
		for tx := 0; tx < worldW; tx += tileSize {
			if !s.camera.Visible(float32(tx), float32(ty), tileSize, tileSize) {
				continue
			}
			x, y := s.camera.Apply(float32(tx), float32(ty))
			r.DrawTexture(x, y, tileSize, tileSize, 0, 0, tileSize, tileSize)
		}
	}

	r.ApplyTexture(s.hero)
	x, y := s.camera.Apply(s.x-heroSize/2, s.y-heroSize/2)
	r.DrawTexture(x, y, heroSize, heroSize, float32(s.frame*heroSize), 0, heroSize, heroSize)
}

func (s *spriteScene) Unload() {}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	surface, err := platform.New(platform.Options{
		Title:    "pixl demo",
		CanvasID: "pixl",
		Width:    screenW,
		Height:   screenH,
	})
	if err != nil {
		slog.Error("surface init failed", "error", err)
		os.Exit(1)
	}

	renderer, factory := gfx.New(surface.GL(), surface.Context2D(), gfx.Config{
		CanvasID: "pixl",
		Width:    screenW,
		Height:   screenH,
	})

	loop := game.NewLoop(surface, renderer, factory, &spriteScene{})
	loop.Run()
	surface.Close()
}
