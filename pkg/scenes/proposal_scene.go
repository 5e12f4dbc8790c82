package scenes

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/proposal/pkg/config"
	"github.com/decker502/proposal/pkg/game"
	"github.com/decker502/proposal/pkg/input"
	"github.com/decker502/proposal/pkg/render"
)

// InputSource feeds one tick of user input to the scene.
type InputSource interface {
	Pointer() input.InputState
	ActivatePressed() bool
}

// SceneOptions configures a ProposalScene.
type SceneOptions struct {
	// Rand is the random source for the heart field and confetti.
	Rand *rand.Rand
	// Chime plays with the first burst; nil for silence.
	Chime game.ChimePlayer
	// Input is polled every update; nil disables input.
	Input InputSource
	// Headless skips the renderer, for tests and tools without a window.
	Headless bool
}

// ProposalScene puts a game.Proposal in a window: it polls input before
// each tick and draws the world with the render system.
type ProposalScene struct {
	*game.Proposal

	input        InputSource
	renderSystem *render.RenderSystem
}

// NewProposalScene builds the scene from a validated description.
func NewProposalScene(cfg *config.SceneConfig, opts SceneOptions) (*ProposalScene, error) {
	p, err := game.NewProposal(cfg, game.ProposalOptions{Rand: opts.Rand, Chime: opts.Chime})
	if err != nil {
		return nil, err
	}

	s := &ProposalScene{Proposal: p, input: opts.Input}
	if !opts.Headless {
		rs, err := render.NewRenderSystem(p.EntityManager(), cfg)
		if err != nil {
			return nil, err
		}
		s.renderSystem = rs
	}
	return s, nil
}

// Update polls input and runs one tick.
func (s *ProposalScene) Update(deltaTime float64) {
	if s.Stopped() {
		return
	}
	if s.input != nil {
		ptr := s.input.Pointer()
		s.HandlePointer(float64(ptr.X), float64(ptr.Y), ptr.Pressed, ptr.JustReleased)
		if s.input.ActivatePressed() {
			s.Activate()
		}
	}
	s.Proposal.Update(deltaTime)
}

// Draw renders the scene. Headless scenes draw nothing.
func (s *ProposalScene) Draw(screen *ebiten.Image) {
	if s.renderSystem == nil || s.Stopped() {
		return
	}
	s.renderSystem.Draw(screen, s.Camera(), s.Clock())
}
