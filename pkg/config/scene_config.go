package config

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/proposal/internal/particle"
	"github.com/decker502/proposal/pkg/embedded"
	"github.com/decker502/proposal/pkg/utils"
)

// TotalSteps is the number of wizard panels. The wizard is linear and fixed.
const TotalSteps = 5

// Control actions bound to a panel's button.
const (
	// ActionAdvance moves the wizard to the next step.
	ActionAdvance = "advance"
	// ActionCelebrate is the terminal action on the last step.
	ActionCelebrate = "celebrate"
)

// DefaultScenePath is the embedded scene description.
const DefaultScenePath = "data/scene.yaml"

// SceneConfig is the full scene description.
//
// Config file: data/scene.yaml (embedded), or any file passed with -config.
type SceneConfig struct {
	Window      WindowConfig      `yaml:"window"`
	Camera      CameraConfig      `yaml:"camera"`
	Lights      LightsConfig      `yaml:"lights"`
	Hearts      HeartsConfig      `yaml:"hearts"`
	FlyAway     FlyAwayConfig     `yaml:"flyAway"`
	Wizard      WizardConfig      `yaml:"wizard"`
	Confetti    ConfettiConfig    `yaml:"confetti"`
	Celebration CelebrationConfig `yaml:"celebration"`
}

// WindowConfig is the initial window.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"`
}

// CameraConfig is the perspective camera.
type CameraConfig struct {
	FOV  float64 `yaml:"fov"` // vertical field of view, degrees
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
	Z    float64 `yaml:"z"` // camera sits on the z axis looking at the origin
}

// LightConfig is one light source.
type LightConfig struct {
	Color     string     `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
	Direction utils.Vec3 `yaml:"direction,omitempty"`
}

// LightsConfig is the ambient + directional rig.
type LightsConfig struct {
	Ambient     LightConfig `yaml:"ambient"`
	Directional LightConfig `yaml:"directional"`
}

// MaterialConfig is shared by every heart.
type MaterialConfig struct {
	Emissive          string  `yaml:"emissive"`
	EmissiveIntensity float64 `yaml:"emissiveIntensity"`
	Shininess         float64 `yaml:"shininess"`
	Opacity           float64 `yaml:"opacity"`
}

// HeartsConfig describes the floating heart field.
//
// Every range is sampled uniformly per heart.
type HeartsConfig struct {
	Count int `yaml:"count"`
	// SpawnCube is the side of the cube, centered at the origin, that
	// initial positions are drawn from.
	SpawnCube     float64        `yaml:"spawnCube"`
	Scale         particle.Range `yaml:"scale"`
	Rotation      particle.Range `yaml:"rotation"`
	DriftSpeed    particle.Range `yaml:"driftSpeed"`
	RotationSpeed particle.Range `yaml:"rotationSpeed"`
	FloatDistance particle.Range `yaml:"floatDistance"`
	Palette       []string       `yaml:"palette"`
	Material      MaterialConfig `yaml:"material"`
}

// FlyAwayConfig is the terminal animation of the hearts.
type FlyAwayConfig struct {
	Drop     float64 `yaml:"drop"`     // world units subtracted from y
	Duration float64 `yaml:"duration"` // seconds
	Ease     string  `yaml:"ease"`
}

// ControlConfig is the single button of a panel.
type ControlConfig struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	Action string `yaml:"action"`
}

// PanelConfig is one wizard step.
type PanelConfig struct {
	ID      string        `yaml:"id"`
	Title   string        `yaml:"title"`
	Body    string        `yaml:"body"`
	Control ControlConfig `yaml:"control"`
}

// WizardConfig lists the panels in order.
type WizardConfig struct {
	Panels []PanelConfig `yaml:"panels"`
	// PulsePeriod is the period of the "ready" highlight on the final
	// control, in seconds.
	PulsePeriod float64 `yaml:"pulsePeriod"`
}

// ConfettiConfig holds the physics shared by every burst particle.
// Velocities are in layout pixels per tick at 60 TPS.
type ConfettiConfig struct {
	StartVelocity float64        `yaml:"startVelocity"`
	Decay         float64        `yaml:"decay"`
	Gravity       float64        `yaml:"gravity"`
	Drift         float64        `yaml:"drift"`
	Ticks         int            `yaml:"ticks"`
	Scalar        float64        `yaml:"scalar"`
	Fade          particle.Curve `yaml:"fade"`
}

// Origin is a burst origin in normalized screen coordinates. Nil fields use
// the default of 0.5.
type Origin struct {
	X *float64 `yaml:"x,omitempty"`
	Y *float64 `yaml:"y,omitempty"`
}

// BurstOptions is one call to the burst launcher.
type BurstOptions struct {
	ParticleCount int      `yaml:"particleCount"`
	Spread        float64  `yaml:"spread"` // degrees
	Angle         *float64 `yaml:"angle,omitempty"`
	Origin        Origin   `yaml:"origin"`
	Colors        []string `yaml:"colors"`
	Shapes        []string `yaml:"shapes,omitempty"`
}

// ScheduledBurst is a burst fired DelayMs after the terminal action.
type ScheduledBurst struct {
	DelayMs      int `yaml:"delayMs"`
	BurstOptions `yaml:",inline"`
}

// CelebrationConfig is the terminal action's effect timeline.
type CelebrationConfig struct {
	Bursts []ScheduledBurst `yaml:"bursts"`
	Chime  bool             `yaml:"chime"`
}

// Burst shapes.
const (
	ShapeSquare = "square"
	ShapeCircle = "circle"
	ShapeHeart  = "heart"
)

// DefaultBurstAngle is the launch direction when Angle is nil: straight up.
const DefaultBurstAngle = 90.0

// AngleOrDefault returns the launch angle in degrees.
func (b BurstOptions) AngleOrDefault() float64 {
	if b.Angle == nil {
		return DefaultBurstAngle
	}
	return *b.Angle
}

// OriginXY returns the normalized origin, defaulting each axis to 0.5.
func (b BurstOptions) OriginXY() (float64, float64) {
	x, y := 0.5, 0.5
	if b.Origin.X != nil {
		x = *b.Origin.X
	}
	if b.Origin.Y != nil {
		y = *b.Origin.Y
	}
	return x, y
}

// ShapesOrDefault returns the shapes to pick from.
func (b BurstOptions) ShapesOrDefault() []string {
	if len(b.Shapes) == 0 {
		return []string{ShapeSquare, ShapeCircle}
	}
	return b.Shapes
}

// PaletteColors returns the parsed heart palette. Call after Validate.
func (h HeartsConfig) PaletteColors() []color.RGBA {
	out := make([]color.RGBA, len(h.Palette))
	for i, s := range h.Palette {
		out[i] = utils.MustParseHexColor(s)
	}
	return out
}

// LoadSceneConfig loads a scene description from the local file system.
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	return ParseSceneConfig(data)
}

// LoadEmbeddedSceneConfig loads a scene description from the embedded data.
func LoadEmbeddedSceneConfig(path string) (*SceneConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scene config %s: %w", path, err)
	}
	return ParseSceneConfig(data)
}

// ParseSceneConfig decodes and validates a scene description.
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the whole description. A missing panel or control is a
// fatal configuration error.
func (c *SceneConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := utils.ParseHexColor(c.Window.Background); err != nil {
		return fmt.Errorf("window background: %w", err)
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %.1f", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes invalid: near=%.3f far=%.3f", c.Camera.Near, c.Camera.Far)
	}

	for name, l := range map[string]LightConfig{"ambient": c.Lights.Ambient, "directional": c.Lights.Directional} {
		if _, err := utils.ParseHexColor(l.Color); err != nil {
			return fmt.Errorf("%s light: %w", name, err)
		}
		if l.Intensity < 0 {
			return fmt.Errorf("%s light intensity must be >= 0", name)
		}
	}
	if c.Lights.Directional.Direction.Len() == 0 {
		return fmt.Errorf("directional light needs a direction")
	}

	if err := c.Hearts.validate(); err != nil {
		return fmt.Errorf("hearts: %w", err)
	}

	if c.FlyAway.Duration <= 0 {
		return fmt.Errorf("flyAway duration must be positive, got %.2f", c.FlyAway.Duration)
	}
	if _, ok := utils.EaseByName(c.FlyAway.Ease); !ok {
		return fmt.Errorf("flyAway ease %q is unknown", c.FlyAway.Ease)
	}

	if err := c.Wizard.validate(); err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	if c.Confetti.Ticks <= 0 {
		return fmt.Errorf("confetti ticks must be positive, got %d", c.Confetti.Ticks)
	}
	if c.Confetti.Decay <= 0 || c.Confetti.Decay > 1 {
		return fmt.Errorf("confetti decay must be in (0, 1], got %.2f", c.Confetti.Decay)
	}
	if c.Confetti.Scalar <= 0 {
		return fmt.Errorf("confetti scalar must be positive, got %.2f", c.Confetti.Scalar)
	}

	for i, b := range c.Celebration.Bursts {
		if err := b.validate(); err != nil {
			return fmt.Errorf("burst %d: %w", i, err)
		}
	}
	return nil
}

func (h *HeartsConfig) validate() error {
	if h.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", h.Count)
	}
	if h.SpawnCube <= 0 {
		return fmt.Errorf("spawnCube must be positive, got %.2f", h.SpawnCube)
	}
	if h.Scale.Min <= 0 {
		return fmt.Errorf("scale must be positive, got %v", h.Scale)
	}
	if h.FloatDistance.Min < 0 {
		return fmt.Errorf("floatDistance must be >= 0, got %v", h.FloatDistance)
	}
	if h.Rotation.Min < 0 || h.Rotation.Max > 2*math.Pi {
		return fmt.Errorf("rotation must lie in [0, 2π], got %v", h.Rotation)
	}
	if len(h.Palette) == 0 {
		return fmt.Errorf("palette is empty")
	}
	for _, s := range h.Palette {
		if _, err := utils.ParseHexColor(s); err != nil {
			return fmt.Errorf("palette: %w", err)
		}
	}
	if _, err := utils.ParseHexColor(h.Material.Emissive); err != nil {
		return fmt.Errorf("material emissive: %w", err)
	}
	if h.Material.Opacity < 0 || h.Material.Opacity > 1 {
		return fmt.Errorf("material opacity must be in [0, 1], got %.2f", h.Material.Opacity)
	}
	return nil
}

func (w *WizardConfig) validate() error {
	if len(w.Panels) != TotalSteps {
		return fmt.Errorf("expected %d panels, got %d", TotalSteps, len(w.Panels))
	}
	seen := make(map[string]bool)
	for i, p := range w.Panels {
		if p.ID == "" {
			return fmt.Errorf("panel %d has no id", i+1)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate panel id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Control.ID == "" || p.Control.Label == "" {
			return fmt.Errorf("panel %q has no control", p.ID)
		}

		want := ActionAdvance
		if i == len(w.Panels)-1 {
			want = ActionCelebrate
		}
		if p.Control.Action != want {
			return fmt.Errorf("panel %q control action must be %q, got %q", p.ID, want, p.Control.Action)
		}
	}
	if w.PulsePeriod <= 0 {
		return fmt.Errorf("pulsePeriod must be positive, got %.2f", w.PulsePeriod)
	}
	return nil
}

func (b *ScheduledBurst) validate() error {
	if b.DelayMs < 0 {
		return fmt.Errorf("delayMs must be >= 0, got %d", b.DelayMs)
	}
	if b.ParticleCount <= 0 {
		return fmt.Errorf("particleCount must be positive, got %d", b.ParticleCount)
	}
	if b.Spread < 0 || b.Spread > 360 {
		return fmt.Errorf("spread must be in [0, 360], got %.1f", b.Spread)
	}
	if len(b.Colors) == 0 {
		return fmt.Errorf("colors is empty")
	}
	for _, s := range b.Colors {
		if _, err := utils.ParseHexColor(s); err != nil {
			return err
		}
	}
	for _, s := range b.Shapes {
		switch s {
		case ShapeSquare, ShapeCircle, ShapeHeart:
		default:
			return fmt.Errorf("unknown shape %q", s)
		}
	}
	return nil
}
