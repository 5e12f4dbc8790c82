package game

import (
	"errors"
	"log"
	"math/rand"

	"github.com/decker502/proposal/pkg/components"
	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/ecs"
	"github.com/decker502/proposal/pkg/entities"
	"github.com/decker502/proposal/pkg/systems"
)

// ProposalOptions configures a Proposal.
type ProposalOptions struct {
	// Rand is the random source for the heart field and confetti.
	Rand *rand.Rand
	// Chime plays with the first burst; nil for silence.
	Chime ChimePlayer
}

// Proposal is the controller of the proposal: it owns the entity manager,
// the systems, the wizard and the celebration timeline, and routes the
// wizard's terminal action to the celebration and the heart field.
// Front-ends feed it input and draw what it holds.
type Proposal struct {
	cfg *config.SceneConfig
	em  *ecs.EntityManager

	wizard   *Wizard
	timeline *Timeline
	chime    ChimePlayer

	cameraSystem      *systems.CameraSystem
	floatSystem       *systems.FloatSystem
	tweenSystem       *systems.TweenSystem
	confettiSystem    *systems.ConfettiSystem
	lifetimeSystem    *systems.LifetimeSystem
	buttonSystem      *systems.ButtonSystem
	progressBarSystem *systems.ProgressBarSystem

	hearts         []ecs.EntityID
	panelEntities  []ecs.EntityID
	buttonEntity   ecs.EntityID
	progressEntity ecs.EntityID

	width, height int
	pendingResize bool
	pendingW      int
	pendingH      int

	clock   float64
	stopped bool
}

// NewProposal builds the proposal from a validated scene description on a
// surface of the window's configured size.
func NewProposal(cfg *config.SceneConfig, opts ProposalOptions) (*Proposal, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	wizard, err := NewWizard(cfg.Wizard)
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	w, h := cfg.Window.Width, cfg.Window.Height

	p := &Proposal{
		cfg:      cfg,
		em:       em,
		wizard:   wizard,
		timeline: NewTimeline(),
		chime:    opts.Chime,
		width:    w,
		height:   h,
	}

	p.tweenSystem = systems.NewTweenSystem(em)
	p.cameraSystem = systems.NewCameraSystem(em, cfg.Camera, w, h)
	p.floatSystem = systems.NewFloatSystem(em, p.tweenSystem)
	p.confettiSystem = systems.NewConfettiSystem(em, cfg.Confetti, rng, w, h)
	p.lifetimeSystem = systems.NewLifetimeSystem(em)
	p.buttonSystem = systems.NewButtonSystem(em)
	p.progressBarSystem = systems.NewProgressBarSystem(em)

	p.hearts = entities.NewHeartField(em, cfg.Hearts, rng)
	p.createUI()

	wizard.OnChange(p.onWizardChange)

	log.Printf("[Proposal] created: %d hearts, %d panels, %dx%d", len(p.hearts), wizard.TotalSteps(), w, h)
	return p, nil
}

func (p *Proposal) createUI() {
	layout := LayoutFor(p.width, p.height)

	for i, panel := range p.cfg.Wizard.Panels {
		id := p.em.CreateEntity()
		p.em.AddComponent(id, &components.PanelComponent{
			Step:  i + 1,
			ID:    panel.ID,
			Title: panel.Title,
			Body:  panel.Body,
		})
		p.em.AddComponent(id, &components.PositionComponent{X: layout.PanelX, Y: layout.PanelY})
		p.panelEntities = append(p.panelEntities, id)
	}

	p.buttonEntity = p.em.CreateEntity()
	p.em.AddComponent(p.buttonEntity, &components.ButtonComponent{
		Width:   config.ButtonWidth,
		Height:  config.ButtonHeight,
		Enabled: true,
		OnClick: p.Activate,
	})
	p.em.AddComponent(p.buttonEntity, &components.PositionComponent{X: layout.ButtonX, Y: layout.ButtonY})

	p.progressEntity = p.em.CreateEntity()
	p.em.AddComponent(p.progressEntity, &components.ProgressBarComponent{
		Width:  config.ProgressBarWidth,
		Height: config.ProgressBarHeight,
	})
	p.em.AddComponent(p.progressEntity, &components.PositionComponent{X: layout.BarX, Y: layout.BarY})
}

// onWizardChange mirrors the wizard into the UI entities.
func (p *Proposal) onWizardChange(st WizardState) {
	for _, id := range p.panelEntities {
		panel, _ := ecs.GetComponent[*components.PanelComponent](p.em, id)
		panel.Active = p.wizard.IsActive(panel.Step)
	}

	if btn, ok := ecs.GetComponent[*components.ButtonComponent](p.em, p.buttonEntity); ok {
		btn.ControlID = st.Panel.Control.ID
		btn.Label = st.Panel.Control.Label
		btn.Pulsing = st.Ready
		btn.Enabled = !p.wizard.Finished()
	}

	p.progressBarSystem.SetTarget(st.Progress / 100)
}

// Activate runs the current panel's control: advance, or celebrate on the
// last step. Wizard refusals are logged and ignored.
func (p *Proposal) Activate() {
	if p.stopped {
		return
	}
	action, err := p.wizard.Activate()
	if err != nil {
		if errors.Is(err, ErrAlreadyFinished) {
			return
		}
		log.Printf("[Proposal] %s refused: %v", action, err)
		return
	}
	if action == config.ActionCelebrate {
		p.celebrate()
	}
}

func (p *Proposal) celebrate() {
	var chime ChimePlayer
	if p.cfg.Celebration.Chime {
		chime = p.chime
	}
	Celebrate(p.confettiSystem, p.timeline, p.cfg.Celebration.Bursts, chime)

	if _, err := systems.FlyAway(p.em, p.tweenSystem, p.cfg.FlyAway); err != nil {
		log.Printf("[Proposal] fly away: %v", err)
	}
}

// HandlePointer routes one pointer sample in surface pixels to the button.
// It reports whether a click fired.
func (p *Proposal) HandlePointer(x, y float64, pressed, released bool) bool {
	if p.stopped {
		return false
	}
	return p.buttonSystem.HandlePointer(x, y, pressed, released)
}

// Update runs one tick.
func (p *Proposal) Update(deltaTime float64) {
	if p.stopped {
		return
	}
	p.applyResize()

	p.clock += deltaTime
	p.timeline.Update(deltaTime)
	// Tweens run before the float motion so a finished y tween hands the
	// channel back in the same tick.
	p.tweenSystem.Update(deltaTime)
	p.floatSystem.Update(deltaTime)
	p.lifetimeSystem.Update(deltaTime)
	p.confettiSystem.Update(deltaTime)
	p.progressBarSystem.Update(deltaTime)

	p.em.RemoveMarkedEntities()
}

// Resize records a new surface size; it is applied at the next Update.
func (p *Proposal) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == p.width && height == p.height && !p.pendingResize {
		return
	}
	p.pendingW, p.pendingH = width, height
	p.pendingResize = true
}

func (p *Proposal) applyResize() {
	if !p.pendingResize {
		return
	}
	p.pendingResize = false
	p.width, p.height = p.pendingW, p.pendingH

	p.cameraSystem.Resize(p.width, p.height)
	p.confettiSystem.Resize(p.width, p.height)

	layout := LayoutFor(p.width, p.height)
	for _, id := range p.panelEntities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](p.em, id)
		pos.X, pos.Y = layout.PanelX, layout.PanelY
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](p.em, p.buttonEntity); ok {
		pos.X, pos.Y = layout.ButtonX, layout.ButtonY
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](p.em, p.progressEntity); ok {
		pos.X, pos.Y = layout.BarX, layout.BarY
	}
	log.Printf("[Proposal] resized to %dx%d", p.width, p.height)
}

// Stop tears the proposal down: systems stop updating and every entity is
// destroyed.
func (p *Proposal) Stop() {
	if p.stopped {
		return
	}
	p.stopped = true
	for _, id := range p.em.GetEntitiesWith() {
		p.em.DestroyEntity(id)
	}
	p.em.RemoveMarkedEntities()
	log.Printf("[Proposal] stopped")
}

// Stopped reports whether Stop has been called.
func (p *Proposal) Stopped() bool { return p.stopped }

// Wizard returns the step wizard.
func (p *Proposal) Wizard() *Wizard { return p.wizard }

// Hearts returns the heart entity IDs.
func (p *Proposal) Hearts() []ecs.EntityID { return p.hearts }

// EntityManager returns the entity manager.
func (p *Proposal) EntityManager() *ecs.EntityManager { return p.em }

// Camera returns the camera component.
func (p *Proposal) Camera() *components.CameraComponent { return p.cameraSystem.Camera() }

// Tweens returns the tween system.
func (p *Proposal) Tweens() *systems.TweenSystem { return p.tweenSystem }

// Confetti returns the confetti system.
func (p *Proposal) Confetti() *systems.ConfettiSystem { return p.confettiSystem }

// Clock returns the seconds simulated so far.
func (p *Proposal) Clock() float64 { return p.clock }

// Size returns the applied surface size.
func (p *Proposal) Size() (int, int) { return p.width, p.height }

// ButtonEntity returns the entity of the wizard's button.
func (p *Proposal) ButtonEntity() ecs.EntityID { return p.buttonEntity }

// ProgressEntity returns the entity of the progress bar.
func (p *Proposal) ProgressEntity() ecs.EntityID { return p.progressEntity }
