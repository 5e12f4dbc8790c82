package main

import (
	"context"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/ecs"
	"github.com/decker502/proposal/pkg/game"
	"github.com/decker502/proposal/pkg/systems"
	"github.com/decker502/proposal/pkg/utils"
)

const (
	// pixelsPerDot is the size of one canvas pixel (half a cell) in the
	// proposal's surface pixels. The simulation runs at this virtual
	// resolution so confetti velocities keep their on-screen meaning.
	pixelsPerDot = 8

	ticksPerSecond = 60
	tickSeconds    = 1.0 / ticksPerSecond

	maxPanelWidth = 48
	panelHeight   = 9
)

var (
	panelColor = color.RGBA{R: 0x3d, G: 0x12, B: 0x26, A: 0xff}
	textColor  = color.RGBA{R: 0xff, G: 0xf0, B: 0xf5, A: 0xff}
	trackColor = color.RGBA{R: 0x55, G: 0x22, B: 0x3a, A: 0xff}
	fillColor  = color.RGBA{R: 0xff, G: 0x4d, B: 0x8d, A: 0xff}
	glowColor  = color.RGBA{R: 0xff, G: 0xd1, B: 0xdc, A: 0xff}
	mutedColor = color.RGBA{R: 0x8a, G: 0x6a, B: 0x78, A: 0xff}
)

// termLayout is the cell geometry of the wizard UI.
type termLayout struct {
	panelX, panelY, panelW, panelH int
	barX, barY, barW               int
	buttonX, buttonY, buttonW      int
}

// layoutFor centers the panel on a cols x rows terminal, with the progress
// bar two rows above it and the button on its last inner row.
func layoutFor(cols, rows int, label string) termLayout {
	w := min(cols-4, maxPanelWidth)
	if w < 8 {
		w = max(cols, 0)
	}
	h := min(panelHeight, max(rows-3, 3))

	l := termLayout{
		panelW: w,
		panelH: h,
		panelX: (cols - w) / 2,
		panelY: max((rows-h)/2, 2),
	}
	l.barW = w
	l.barX = l.panelX
	l.barY = l.panelY - 2
	l.buttonW = runewidth.StringWidth(label) + 4
	l.buttonX = (cols - l.buttonW) / 2
	l.buttonY = l.panelY + l.panelH - 2
	return l
}

func (l termLayout) inButton(x, y int) bool {
	return y == l.buttonY && x >= l.buttonX && x < l.buttonX+l.buttonW
}

// Terminal draws a game.Proposal into a tcell screen and feeds it keys and
// mouse clicks.
type Terminal struct {
	screen   tcell.Screen
	proposal *game.Proposal
	lighting utils.Lighting
	bg       color.RGBA

	cols, rows int
	mouseDown  bool
}

// NewTerminal binds a proposal to an initialized screen and sizes the
// proposal's surface to it.
func NewTerminal(screen tcell.Screen, proposal *game.Proposal, cfg *config.SceneConfig) *Terminal {
	t := &Terminal{
		screen:   screen,
		proposal: proposal,
		lighting: systems.NewLighting(cfg.Lights),
		bg:       utils.MustParseHexColor(cfg.Window.Background),
	}
	screen.EnableMouse()
	t.resize()
	// The first Update applies the size before anything is drawn.
	proposal.Update(0)
	return t
}

func (t *Terminal) resize() {
	t.cols, t.rows = t.screen.Size()
	t.proposal.Resize(t.cols*pixelsPerDot, t.rows*2*pixelsPerDot)
	log.Printf("[Terminal] %dx%d cells", t.cols, t.rows)
}

// Run drives the proposal at 60 ticks per second until the context is
// cancelled or the user quits. Events are read on a separate goroutine and
// handled on this one, so the proposal is only touched here.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / ticksPerSecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !t.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			t.proposal.Update(tickSeconds)
			t.draw()
		}
	}
}

// handleEvent applies one event and reports whether to keep running.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			t.proposal.Activate()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				t.proposal.Activate()
			}
		}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if t.mouseDown && !down {
			x, y := ev.Position()
			label := t.proposal.Wizard().CurrentPanel().Control.Label
			if layoutFor(t.cols, t.rows, label).inButton(x, y) {
				t.proposal.Activate()
			}
		}
		t.mouseDown = down

	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
	return true
}

func (t *Terminal) draw() {
	if t.proposal.Stopped() {
		return
	}
	c := newCanvas(t.cols, t.rows*2, t.bg)
	t.drawHearts(c)
	t.drawConfetti(c)

	for y := 0; y < t.rows; y++ {
		for x := 0; x < t.cols; x++ {
			st := tcell.StyleDefault.Foreground(cellColor(c.at(x, 2*y))).Background(cellColor(c.at(x, 2*y+1)))
			t.screen.SetContent(x, y, '▀', nil, st)
		}
	}

	t.drawUI()
	t.screen.Show()
}

func (t *Terminal) drawHearts(c *canvas) {
	sprites := systems.HeartSprites(t.proposal.EntityManager(), t.proposal.Camera(), t.lighting)
	for _, h := range sprites {
		c.fillHeart(utils.Transform2{
			CX:     h.X / pixelsPerDot,
			CY:     h.Y / pixelsPerDot,
			Size:   h.Size / pixelsPerDot,
			ScaleX: h.ScaleX,
			ScaleY: h.ScaleY,
		}, h.Color, h.Alpha)
	}
}

func (t *Terminal) drawConfetti(c *canvas) {
	em := t.proposal.EntityManager()
	for _, id := range ecs.GetEntitiesWith2[*components.ConfettiComponent, *components.PositionComponent](em) {
		cf, _ := ecs.GetComponent[*components.ConfettiComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if cf.Alpha <= 0 {
			continue
		}
		c.blend(int(math.Floor(pos.X/pixelsPerDot)), int(math.Floor(pos.Y/pixelsPerDot)), cf.Color, cf.Alpha)
	}
}

func (t *Terminal) drawUI() {
	p := t.proposal
	panel := p.Wizard().CurrentPanel()
	l := layoutFor(t.cols, t.rows, panel.Control.Label)
	em := p.EntityManager()

	if bar, ok := ecs.GetComponent[*components.ProgressBarComponent](em, p.ProgressEntity()); ok && l.barY >= 0 {
		filled := int(math.Round(utils.Clamp01(bar.Displayed) * float64(l.barW)))
		for i := 0; i < l.barW; i++ {
			col := trackColor
			if i < filled {
				col = fillColor
			}
			t.screen.SetContent(l.barX+i, l.barY, '▄', nil, tcell.StyleDefault.Foreground(cellColor(col)).Background(cellColor(t.bg)))
		}
	}

	panelStyle := tcell.StyleDefault.Background(cellColor(panelColor)).Foreground(cellColor(textColor))
	for y := 0; y < l.panelH; y++ {
		for x := 0; x < l.panelW; x++ {
			t.screen.SetContent(l.panelX+x, l.panelY+y, ' ', nil, panelStyle)
		}
	}

	t.putText(l.panelX+2, l.panelY+1, panel.Title, l.panelW-4, panelStyle.Bold(true))
	measure := func(s string) float64 { return float64(runewidth.StringWidth(s)) }
	lines := utils.WrapText(panel.Body, measure, float64(l.panelW-4))
	for i, line := range lines {
		row := l.panelY + 3 + i
		if row >= l.buttonY {
			break
		}
		t.putText(l.panelX+2, row, line, l.panelW-4, panelStyle)
	}

	btn, ok := ecs.GetComponent[*components.ButtonComponent](em, p.ButtonEntity())
	if !ok {
		return
	}
	btnStyle := tcell.StyleDefault.Background(cellColor(fillColor)).Foreground(cellColor(textColor)).Bold(true)
	switch {
	case !btn.Enabled:
		btnStyle = tcell.StyleDefault.Background(cellColor(panelColor)).Foreground(cellColor(mutedColor))
	case btn.Pulsing && int(p.Clock()*2)%2 == 0:
		btnStyle = btnStyle.Background(cellColor(glowColor)).Foreground(cellColor(panelColor))
	}
	t.putText(l.buttonX, l.buttonY, "  "+panel.Control.Label+"  ", l.buttonW, btnStyle)
}

// putText writes s at (x, y), clipped to width cells.
func (t *Terminal) putText(x, y int, s string, width int, style tcell.Style) {
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if col+w > width {
			return
		}
		t.screen.SetContent(x+col, y, r, nil, style)
		col += w
	}
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
