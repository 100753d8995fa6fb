package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/gogpu/verve"
	"github.com/gogpu/verve/integration/ebitenhost"
	"github.com/gogpu/verve/param"
	"github.com/gogpu/verve/render"
)

// sectionKeys maps number keys to the built-in sections.
var sectionKeys = []struct {
	key     ebiten.Key
	section string
}{
	{ebiten.Key1, "home"},
	{ebiten.Key2, "technology"},
	{ebiten.Key3, "portfolio"},
	{ebiten.Key4, "research"},
	{ebiten.Key5, "about"},
	{ebiten.Key6, "contact"},
}

// newWindowCmd opens an interactive ebiten window. Pointer and wheel
// feed the engine; number keys navigate sections; each renderer family
// is a flat-shaded layer so switches and parameter motion are visible
// without any real shaders.
func newWindowCmd(configPath *string) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open an interactive demo window",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(*configPath,
				verve.WithBackend("ebiten"),
				verve.WithViewport(float64(width), float64(height)),
			)
			if err != nil {
				return err
			}
			defer eng.Close()

			canvas, _, err := eng.CreateSurface("main", verve.SurfaceOptions{
				Canvas:   render.CanvasOptions{Width: width, Height: height},
				Priority: 100,
				Cost:     1,
			})
			if err != nil {
				return err
			}

			for _, name := range []string{
				verve.SystemQuantum, verve.SystemHolographic, verve.SystemFaceted,
			} {
				sys := &flatSystem{name: name, canvas: canvas.(*ebitenhost.Canvas)}
				if err := eng.RegisterSystem("main", sys); err != nil {
					return err
				}
			}

			seedClock(eng)
			eng.TransitionToSection("home")

			game := ebitenhost.NewGame(eng, width, height)
			game.OnUpdate = func(now time.Time) {
				for _, sk := range sectionKeys {
					if inpututil.IsKeyJustPressed(sk.key) {
						eng.TransitionToSection(sk.section)
					}
				}
			}
			game.Overlay = func(screen *ebiten.Image, f param.Frame) {
				ebitenutil.DebugPrint(screen, fmt.Sprintf(
					"section %s  system %s  quality %s\nintensity %.2f  hue %.0f  energy %.2f\nkeys 1-6 switch sections",
					f.Section, f.System, f.Quality,
					f.Current.Intensity, f.Current.Hue, f.Energy))
			}

			ebiten.SetWindowTitle("verve demo (" + version + ")")
			ebiten.SetWindowSize(width, height)
			ebiten.SetTPS(60)
			return ebiten.RunGame(game)
		},
	}

	cmd.Flags().IntVar(&width, "width", 1280, "window width")
	cmd.Flags().IntVar(&height, "height", 720, "window height")
	return cmd
}

// flatSystem is a stand-in renderer family: it repaints its canvas with
// a hue-and-intensity wash plus a system-specific accent band, enough
// to see every parameter channel move.
type flatSystem struct {
	name   string
	canvas *ebitenhost.Canvas
	band   *ebiten.Image
	active bool
}

func (s *flatSystem) Name() string          { return s.name }
func (s *flatSystem) SetActive(active bool) { s.active = active }
func (s *flatSystem) Dispose() {
	if s.band != nil {
		s.band.Deallocate()
		s.band = nil
	}
}

func (s *flatSystem) UpdateParams(f param.Frame) {
	if !s.active {
		return
	}
	img := s.canvas.Image()
	w, h := s.canvas.Size()
	img.Fill(hueColor(f.Current.Hue, f.Current.Intensity))

	// Accent band sweeps with speed so motion is visible even at rest.
	if s.band == nil {
		s.band = ebiten.NewImage(8, h)
	}
	s.band.Fill(hueColor(f.Current.Hue+120, f.Current.Intensity*1.4))
	var op ebiten.DrawImageOptions
	phase := math.Mod(float64(f.Seq)*f.Current.Speed*2, float64(w))
	op.GeoM.Translate(phase, 0)
	img.DrawImage(s.band, &op)
}

// hueColor converts a hue angle and intensity into an opaque RGB color
// at fixed saturation.
func hueColor(hue, intensity float64) color.RGBA {
	h := param.WrapHue(hue) / 60
	i := math.Min(math.Max(intensity, 0), 1.8) / 1.8
	c := i
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))

	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 255,
	}
}
