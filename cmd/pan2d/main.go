// Command pan2d shows a FlyCamera2D panning over a grid of tiles.
// Move with W/A/S/D. Pass -config to load camera tuning from a YAML file;
// the file is watched and re-applied on save.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"

	"github.com/mcpar-land/flycam"
	"github.com/mcpar-land/flycam/config"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	gridAmount  = 6
	gridSpacing = 300
	tileSize    = 120
)

var tileColor = color.RGBA{R: 0xe6, G: 0x4c, B: 0x66, A: 0xff}

type game struct {
	tool   *app.App
	camera ecs.Entity
	mapper *ecs.Map2[flycam.FlyCamera2D, flycam.Transform]

	watcher    *config.Watcher
	configPath string
}

func newGame(configPath string) (*game, error) {
	tool := app.New(16)
	flycam.Plugin{}.Install(tool)

	cam := flycam.NewFlyCamera2D()
	tr := flycam.NewTransform(0, 0, 0)

	g := &game{
		tool:       tool,
		mapper:     ecs.NewMap2[flycam.FlyCamera2D, flycam.Transform](&tool.World),
		configPath: configPath,
	}

	if configPath != "" {
		spec, err := config.LoadCameraSpec(configPath)
		if err != nil {
			return nil, err
		}
		if err := spec.Apply2D(&cam); err != nil {
			return nil, err
		}
		watcher, err := config.Watch(configPath)
		if err != nil {
			return nil, err
		}
		g.watcher = watcher
	}

	g.camera = g.mapper.NewEntity(&cam, &tr)
	tool.Initialize()
	return g, nil
}

func (g *game) Update() error {
	if g.watcher != nil {
		select {
		case _, ok := <-g.watcher.Events:
			if ok {
				g.reloadConfig()
			}
		default:
		}
	}

	g.tool.Update()
	return nil
}

func (g *game) reloadConfig() {
	spec, err := config.LoadCameraSpec(g.configPath)
	if err != nil {
		log.Printf("reload %s: %v", g.configPath, err)
		return
	}
	cam, _ := g.mapper.Get(g.camera)
	if err := spec.Apply2D(cam); err != nil {
		log.Printf("apply %s: %v", g.configPath, err)
		return
	}
	log.Printf("reloaded %s", g.configPath)
}

func (g *game) Draw(screen *ebiten.Image) {
	cam, tr := g.mapper.Get(g.camera)
	camX := float64(tr.Position.X())
	camY := float64(tr.Position.Y())

	half := gridAmount / 2
	for x := -half; x < half; x++ {
		for y := -half; y < half; y++ {
			wx := float64(x) * gridSpacing
			wy := float64(y) * gridSpacing
			// The camera position is the view center; world Y points up,
			// screen Y points down.
			sx := wx - camX + baseWidth/2
			sy := camY - wy + baseHeight/2
			vector.DrawFilledRect(screen,
				float32(sx-tileSize/2), float32(sy-tileSize/2),
				tileSize, tileSize, tileColor, false)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"pos (%.1f, %.1f)  vel (%.2f, %.2f)  FPS %.1f",
		camX, camY, cam.Velocity.X, cam.Velocity.Y, ebiten.ActualFPS()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func main() {
	configPath := flag.String("config", "", "camera tuning YAML file, re-applied on save")
	flag.Parse()

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("flycam: 2d pan")

	g, err := newGame(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if g.watcher != nil {
		defer g.watcher.Close()
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
