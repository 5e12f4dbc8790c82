package game

import (
	"math/rand"
	"testing"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/ecs"
)

const tick = 1.0 / 60

type chimeCounter struct{ plays int }

func (c *chimeCounter) PlayChime() { c.plays++ }

func newTestProposal(t *testing.T, chime ChimePlayer) *Proposal {
	t.Helper()
	p, err := NewProposal(config.DefaultSceneConfig(), ProposalOptions{
		Rand:  rand.New(rand.NewSource(7)),
		Chime: chime,
	})
	if err != nil {
		t.Fatalf("NewProposal: %v", err)
	}
	return p
}

func activePanels(p *Proposal) []int {
	var steps []int
	for _, id := range ecs.GetEntitiesWith1[*components.PanelComponent](p.EntityManager()) {
		panel, _ := ecs.GetComponent[*components.PanelComponent](p.EntityManager(), id)
		if panel.Active {
			steps = append(steps, panel.Step)
		}
	}
	return steps
}

func button(p *Proposal) *components.ButtonComponent {
	btn, _ := ecs.GetComponent[*components.ButtonComponent](p.EntityManager(), p.ButtonEntity())
	return btn
}

func TestProposalStartsAtStepOne(t *testing.T) {
	p := newTestProposal(t, nil)

	if len(p.Hearts()) != 25 {
		t.Errorf("hearts = %d, want 25", len(p.Hearts()))
	}
	if p.Wizard().CurrentStep() != 1 || p.Wizard().Progress() != 0 {
		t.Errorf("wizard at step %d, %v%%", p.Wizard().CurrentStep(), p.Wizard().Progress())
	}
	if got := activePanels(p); len(got) != 1 || got[0] != 1 {
		t.Errorf("active panels = %v, want [1]", got)
	}
	if btn := button(p); btn.ControlID != "start-btn" || btn.Pulsing {
		t.Errorf("button = %+v", btn)
	}
}

func TestProposalEndToEnd(t *testing.T) {
	chime := &chimeCounter{}
	p := newTestProposal(t, chime)

	for i := 0; i < 4; i++ {
		p.Activate()
		p.Update(tick)
		if got := activePanels(p); len(got) != 1 || got[0] != i+2 {
			t.Fatalf("after advance %d active panels = %v", i+1, got)
		}
	}

	w := p.Wizard()
	if w.CurrentStep() != 5 || w.Progress() != 100 || !w.Ready() {
		t.Fatalf("wizard: step %d, %v%%, ready %v", w.CurrentStep(), w.Progress(), w.Ready())
	}
	if btn := button(p); !btn.Pulsing || btn.ControlID != "confetti-btn" {
		t.Errorf("final control should be pulsing: %+v", btn)
	}

	p.Activate()
	if got := p.Tweens().ActiveCount(); got != 50 {
		t.Errorf("tweens started = %d, want 50", got)
	}
	if p.Confetti().Bursts() != 0 {
		t.Error("bursts fire from the timeline, not synchronously")
	}

	burstsAt := map[int]int{}
	for i := 1; i <= 60; i++ {
		before := p.Confetti().Bursts()
		p.Update(tick)
		if n := p.Confetti().Bursts() - before; n > 0 {
			burstsAt[i] = n
		}
	}

	// 0 ms on the first tick, 300 ms on tick 18, 600 ms (two) on tick 36.
	want := map[int]int{1: 1, 18: 1, 36: 2}
	if len(burstsAt) != len(want) {
		t.Fatalf("bursts per tick = %v, want %v", burstsAt, want)
	}
	for k, v := range want {
		if burstsAt[k] != v {
			t.Errorf("tick %d: %d bursts, want %d (all: %v)", k, burstsAt[k], v, burstsAt)
		}
	}
	if chime.plays != 1 {
		t.Errorf("chime played %d times, want 1", chime.plays)
	}

	if btn := button(p); btn.Enabled || btn.Pulsing {
		t.Errorf("final control should be spent after the celebration: %+v", btn)
	}

	// A second activation changes nothing.
	p.Activate()
	p.Update(tick)
	if p.Confetti().Bursts() != 4 {
		t.Errorf("bursts = %d after a second activation, want 4", p.Confetti().Bursts())
	}
}

func TestProposalHeartsFadeOut(t *testing.T) {
	p := newTestProposal(t, nil)
	for i := 0; i < 5; i++ {
		p.Activate()
	}

	for i := 0; i < 4*60; i++ {
		p.Update(tick)
	}
	for _, id := range p.Hearts() {
		mat, _ := ecs.GetComponent[*components.MaterialComponent](p.EntityManager(), id)
		if mat.Opacity != 0 {
			t.Errorf("heart %d opacity = %v after the fly-away", id, mat.Opacity)
		}
	}
	if p.Tweens().ActiveCount() != 0 {
		t.Errorf("%d tweens still running", p.Tweens().ActiveCount())
	}
	// Hearts keep floating after the tweens end.
	if p.EntityManager().Count() == 0 {
		t.Error("hearts must not be destroyed by the celebration")
	}
}

func TestProposalResize(t *testing.T) {
	p := newTestProposal(t, nil)

	p.Resize(1280, 720)
	if w, _ := p.Size(); w != 960 {
		t.Fatal("a resize is applied at the next update")
	}
	p.Update(tick)

	cam := p.Camera()
	if cam.Aspect != 1280.0/720.0 {
		t.Errorf("aspect = %v, want %v", cam.Aspect, 1280.0/720.0)
	}
	if cam.ViewportWidth != 1280 || cam.ViewportHeight != 720 {
		t.Errorf("surface = %dx%d", cam.ViewportWidth, cam.ViewportHeight)
	}
	if w, h := p.Size(); w != 1280 || h != 720 {
		t.Errorf("size = %dx%d", w, h)
	}

	layout := LayoutFor(1280, 720)
	pos, _ := ecs.GetComponent[*components.PositionComponent](p.EntityManager(), p.ButtonEntity())
	if pos.X != layout.ButtonX || pos.Y != layout.ButtonY {
		t.Errorf("button at (%v, %v), want (%v, %v)", pos.X, pos.Y, layout.ButtonX, layout.ButtonY)
	}

	// Idempotent.
	before := *cam
	p.Resize(1280, 720)
	p.Update(tick)
	if *p.Camera() != before {
		t.Error("resizing to the same size changed the camera")
	}

	p.Resize(0, 720)
	p.Update(tick)
	if w, h := p.Size(); w != 1280 || h != 720 {
		t.Errorf("a zero width must be ignored, size = %dx%d", w, h)
	}
}

func TestProposalHandlePointer(t *testing.T) {
	p := newTestProposal(t, nil)
	layout := LayoutFor(960, 640)
	cx := layout.ButtonX + config.ButtonWidth/2
	cy := layout.ButtonY + config.ButtonHeight/2

	if p.HandlePointer(cx, cy, true, false) {
		t.Fatal("pressing alone must not click")
	}
	if !p.HandlePointer(cx, cy, false, true) {
		t.Fatal("a release over the button should click")
	}
	if p.Wizard().CurrentStep() != 2 {
		t.Fatalf("step = %d after a click, want 2", p.Wizard().CurrentStep())
	}
	if p.HandlePointer(0, 0, false, true) {
		t.Error("a release outside the button must not click")
	}
}

func TestProposalStop(t *testing.T) {
	p := newTestProposal(t, nil)
	p.Stop()

	if !p.Stopped() {
		t.Fatal("Stopped should be true")
	}
	if p.EntityManager().Count() != 0 {
		t.Errorf("%d entities left after Stop", p.EntityManager().Count())
	}

	p.Activate()
	p.Update(tick)
	if p.Wizard().CurrentStep() != 1 {
		t.Error("a stopped proposal must ignore input")
	}
	if p.Clock() != 0 {
		t.Error("a stopped proposal must not advance its clock")
	}
}
