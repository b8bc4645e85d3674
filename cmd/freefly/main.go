// Command freefly shows a FlyCamera flying through a grid of wireframe
// cubes. Move with W/A/S/D, rise with Space, sink with left shift, look
// around with the mouse. Tab toggles the camera (and mouse capture) on and
// off.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"

	"github.com/mcpar-land/flycam"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	gridAmount = 6
	cubeSize   = 0.25
)

var lineColor = color.RGBA{R: 0xff, G: 0x33, B: 0x4c, A: 0xff}

// cubeCorners and cubeEdges describe a unit cube centered on the origin.
var cubeCorners = [8]mgl32.Vec3{
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

type game struct {
	tool   *app.App
	camera ecs.Entity
	mapper *ecs.Map2[flycam.FlyCamera, flycam.Transform]
}

func newGame() *game {
	tool := app.New(16)
	flycam.Plugin{CaptureOnly: true}.Install(tool)

	cam := flycam.NewFlyCamera()
	tr := flycam.NewTransform(0, 0, 6)

	g := &game{
		tool:   tool,
		mapper: ecs.NewMap2[flycam.FlyCamera, flycam.Transform](&tool.World),
	}
	g.camera = g.mapper.NewEntity(&cam, &tr)

	tool.Initialize()
	return g
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		cam, _ := g.mapper.Get(g.camera)
		cam.Enabled = !cam.Enabled
		if cam.Enabled {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
	}

	g.tool.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	cam, tr := g.mapper.Get(g.camera)

	view := mgl32.Translate3D(tr.Position.X(), tr.Position.Y(), tr.Position.Z()).
		Mul4(tr.Rotation.Mat4()).
		Inv()
	proj := mgl32.Perspective(mgl32.DegToRad(60),
		float32(baseWidth)/float32(baseHeight), 0.1, 200)
	vp := proj.Mul4(view)

	half := gridAmount / 2
	for x := -half; x < half; x++ {
		for y := -half; y < half; y++ {
			for z := -half; z < half; z++ {
				center := mgl32.Vec3{float32(x), float32(y), float32(z)}
				drawCube(screen, vp, center)
			}
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"yaw %.1f  pitch %.1f  speed %.3f  FPS %.1f  [tab] toggle",
		cam.Yaw, cam.Pitch, cam.Velocity.Len(), ebiten.ActualFPS()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func drawCube(screen *ebiten.Image, vp mgl32.Mat4, center mgl32.Vec3) {
	var pts [8][2]float32
	var ok [8]bool
	for i, corner := range cubeCorners {
		p := center.Add(corner.Mul(cubeSize))
		pts[i][0], pts[i][1], ok[i] = project(vp, p)
	}
	for _, e := range cubeEdges {
		a, b := e[0], e[1]
		if !ok[a] || !ok[b] {
			continue
		}
		vector.StrokeLine(screen,
			pts[a][0], pts[a][1], pts[b][0], pts[b][1],
			1, lineColor, false)
	}
}

// project maps a world point to screen coordinates. ok is false for points
// at or behind the near plane.
func project(vp mgl32.Mat4, p mgl32.Vec3) (x, y float32, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() < 1e-4 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return (ndcX + 1) / 2 * baseWidth, (1 - ndcY) / 2 * baseHeight, true
}

func main() {
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("flycam: free fly")
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
