// Package render draws the scene with ebiten: the lit heart field, burst
// confetti and the wizard UI.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/ecs"
	"github.com/decker502/proposal/pkg/systems"
	"github.com/decker502/proposal/pkg/utils"
)

var (
	panelFill    = color.NRGBA{R: 255, G: 255, B: 255, A: 235}
	panelBorder  = color.NRGBA{R: 255, G: 182, B: 193, A: 255}
	titleColor   = color.NRGBA{R: 214, G: 51, B: 108, A: 255}
	bodyColor    = color.NRGBA{R: 85, G: 60, B: 70, A: 255}
	buttonNormal = color.NRGBA{R: 255, G: 107, B: 139, A: 255}
	buttonHover  = color.NRGBA{R: 255, G: 133, B: 160, A: 255}
	buttonDown   = color.NRGBA{R: 224, G: 80, B: 112, A: 255}
	buttonOff    = color.NRGBA{R: 200, G: 180, B: 185, A: 255}
	buttonText   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	trackColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 70}
	fillColor    = color.NRGBA{R: 255, G: 77, B: 128, A: 255}
	glowColor    = color.NRGBA{R: 255, G: 160, B: 190, A: 255}
)

// RenderSystem draws every visible entity.
type RenderSystem struct {
	entityManager *ecs.EntityManager
	lighting      utils.Lighting
	background    color.RGBA
	pulsePeriod   float64

	// whiteSubImage is the 1x1 source for solid triangle fills.
	whiteSubImage *ebiten.Image

	titleFace  *text.GoTextFace
	bodyFace   *text.GoTextFace
	buttonFace *text.GoTextFace

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderSystem creates the render system and loads the UI font.
func NewRenderSystem(em *ecs.EntityManager, cfg *config.SceneConfig) (*RenderSystem, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load UI font: %w", err)
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &RenderSystem{
		entityManager: em,
		lighting:      systems.NewLighting(cfg.Lights),
		background:    utils.MustParseHexColor(cfg.Window.Background),
		pulsePeriod:   cfg.Wizard.PulsePeriod,
		whiteSubImage: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		titleFace:     &text.GoTextFace{Source: src, Size: config.TitleFontSize},
		bodyFace:      &text.GoTextFace{Source: src, Size: config.BodyFontSize},
		buttonFace:    &text.GoTextFace{Source: src, Size: config.ButtonFontSize},
	}, nil
}

// Draw renders the whole frame.
//
// Parameters:
//   - screen: render target
//   - cam: the scene camera
//   - clock: scene time in seconds, drives the ready pulse
func (s *RenderSystem) Draw(screen *ebiten.Image, cam *components.CameraComponent, clock float64) {
	screen.Fill(s.background)
	s.DrawHearts(screen, cam)
	s.DrawUI(screen, clock)
	s.DrawConfetti(screen)
}

// DrawHearts draws the heart field back to front.
func (s *RenderSystem) DrawHearts(screen *ebiten.Image, cam *components.CameraComponent) {
	for _, h := range systems.HeartSprites(s.entityManager, cam, s.lighting) {
		if h.Size < 0.5 {
			continue
		}
		s.path = vector.Path{}
		utils.TraceHeart(&s.path, utils.Transform2{
			CX:     h.X,
			CY:     h.Y,
			Size:   h.Size,
			ScaleX: h.ScaleX,
			ScaleY: h.ScaleY,
		})
		s.fillPath(screen, h.Color, h.Alpha)
	}
}

// DrawConfetti draws every live confetti particle.
func (s *RenderSystem) DrawConfetti(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.ConfettiComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		c, _ := ecs.GetComponent[*components.ConfettiComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if c.Alpha <= 0 {
			continue
		}

		s.path = vector.Path{}
		switch c.Shape {
		case config.ShapeCircle:
			r := float32(c.Size / 2)
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r*float32(math.Max(0.3, math.Abs(c.TiltCos))), utils.WithAlpha(c.Color, c.Alpha), true)
			continue
		case config.ShapeHeart:
			utils.TraceHeart(&s.path, utils.Transform2{
				CX:     pos.X,
				CY:     pos.Y,
				Size:   c.Size * 1.5,
				Angle:  c.TiltAngle * 0.2,
				ScaleX: c.TiltCos,
				ScaleY: 1,
			})
		default:
			// Flutter: one corner follows the wobble point.
			const random = 2.5
			wx := pos.X + c.Size*math.Cos(c.Wobble)
			wy := pos.Y + c.Size*math.Sin(c.Wobble)
			s.path.MoveTo(float32(pos.X), float32(pos.Y))
			s.path.LineTo(float32(wx), float32(pos.Y+random*c.TiltSin))
			s.path.LineTo(float32(wx+random*c.TiltCos), float32(wy+random*c.TiltSin))
			s.path.LineTo(float32(pos.X+random*c.TiltCos), float32(wy))
			s.path.Close()
		}
		s.fillPath(screen, c.Color, c.Alpha)
	}
}

// DrawUI draws the progress bar, the active panel and its button.
func (s *RenderSystem) DrawUI(screen *ebiten.Image, clock float64) {
	em := s.entityManager

	for _, id := range ecs.GetEntitiesWith2[*components.ProgressBarComponent, *components.PositionComponent](em) {
		bar, _ := ecs.GetComponent[*components.ProgressBarComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(bar.Width), float32(bar.Height), trackColor, false)
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(bar.Width*utils.Clamp01(bar.Displayed)), float32(bar.Height), fillColor, false)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PanelComponent, *components.PositionComponent](em) {
		panel, _ := ecs.GetComponent[*components.PanelComponent](em, id)
		if !panel.Active {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		s.drawPanel(screen, panel, pos)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](em) {
		btn, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		s.drawButton(screen, btn, pos, clock)
	}
}

func (s *RenderSystem) drawPanel(screen *ebiten.Image, panel *components.PanelComponent, pos *components.PositionComponent) {
	x, y := float32(pos.X), float32(pos.Y)
	vector.DrawFilledRect(screen, x, y, config.PanelWidth, config.PanelHeight, panelFill, true)
	vector.StrokeRect(screen, x, y, config.PanelWidth, config.PanelHeight, 2, panelBorder, true)

	cx := pos.X + config.PanelWidth/2
	ty := pos.Y + config.PanelPadding
	s.drawText(screen, panel.Title, s.titleFace, cx, ty, titleColor)

	maxWidth := config.PanelWidth - 2*config.PanelPadding
	measure := func(str string) float64 {
		w, _ := text.Measure(str, s.bodyFace, 0)
		return w
	}
	lineHeight := s.bodyFace.Size * 1.4
	by := ty + s.titleFace.Size*1.6
	for _, line := range utils.WrapText(panel.Body, measure, maxWidth) {
		s.drawText(screen, line, s.bodyFace, cx, by, bodyColor)
		by += lineHeight
	}
}

func (s *RenderSystem) drawButton(screen *ebiten.Image, btn *components.ButtonComponent, pos *components.PositionComponent, clock float64) {
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(btn.Width), float32(btn.Height)

	if btn.Pulsing && s.pulsePeriod > 0 {
		phase := 0.5 + 0.5*math.Sin(2*math.Pi*clock/s.pulsePeriod)
		grow := float32(4 + 6*phase)
		glow := glowColor
		glow.A = uint8(90 + 120*phase)
		vector.DrawFilledRect(screen, x-grow, y-grow, w+2*grow, h+2*grow, glow, true)
	}

	fill := buttonNormal
	switch btn.State {
	case components.UIHovered:
		fill = buttonHover
	case components.UIClicked:
		fill = buttonDown
	case components.UIDisabled:
		fill = buttonOff
	}
	vector.DrawFilledRect(screen, x, y, w, h, fill, true)

	_, th := text.Measure(btn.Label, s.buttonFace, 0)
	s.drawText(screen, btn.Label, s.buttonFace, pos.X+btn.Width/2, pos.Y+(btn.Height-th)/2, buttonText)
}

// drawText draws str horizontally centered on cx with its top at y.
func (s *RenderSystem) drawText(screen *ebiten.Image, str string, face *text.GoTextFace, cx, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// fillPath fills s.path with a solid color using the non-zero rule, so the
// concave heart outline fills correctly.
func (s *RenderSystem) fillPath(screen *ebiten.Image, clr color.RGBA, alpha float64) {
	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	if len(s.indices) == 0 {
		return
	}

	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(utils.Clamp01(alpha))
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillRuleNonZero
	op.AntiAlias = true
	screen.DrawTriangles(s.vertices, s.indices, s.whiteSubImage, op)
}
