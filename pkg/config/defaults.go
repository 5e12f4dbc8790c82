package config

import (
	"math"

	"github.com/decker502/proposal/internal/particle"
	"github.com/decker502/proposal/pkg/utils"
)

func ptr(v float64) *float64 { return &v }

// DefaultSceneConfig returns the built-in scene. It matches data/scene.yaml
// and is what tests build scenes from.
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Window: WindowConfig{Width: 960, Height: 640, Title: "Will you?", Background: "#2a0d1c"},
		Camera: CameraConfig{FOV: 75, Near: 0.1, Far: 1000, Z: 30},
		Lights: LightsConfig{
			Ambient:     LightConfig{Color: "#ffffff", Intensity: 0.5},
			Directional: LightConfig{Color: "#ffffff", Intensity: 0.8, Direction: utils.Vec3{X: 1, Y: 1, Z: 1}},
		},
		Hearts: HeartsConfig{
			Count:         25,
			SpawnCube:     50,
			Scale:         particle.Range{Min: 0.5, Max: 1.3},
			Rotation:      particle.Range{Min: 0, Max: math.Pi},
			DriftSpeed:    particle.Range{Min: -0.01, Max: 0.01},
			RotationSpeed: particle.Range{Min: 0, Max: 0.01},
			FloatDistance: particle.Range{Min: 2, Max: 5},
			Palette: []string{
				"#ff6b6b", "#ff8e8e", "#ffb3b3", "#ffd8d8",
				"#ff9e9e", "#ffc1c1", "#ff6b8e", "#ff8eb3",
			},
			Material: MaterialConfig{Emissive: "#ff0000", EmissiveIntensity: 0.1, Shininess: 100, Opacity: 0.9},
		},
		FlyAway: FlyAwayConfig{Drop: 30, Duration: 3, Ease: "power1.out"},
		Wizard: WizardConfig{
			PulsePeriod: 1.2,
			Panels: []PanelConfig{
				{
					ID:      "step1",
					Title:   "Hey you",
					Body:    "I made a little something for you. Press start when you are ready.",
					Control: ControlConfig{ID: "start-btn", Label: "Start", Action: ActionAdvance},
				},
				{
					ID:      "step2",
					Title:   "Remember?",
					Body:    "The first time we talked, I already knew this would be something special.",
					Control: ControlConfig{ID: "next-btn-2", Label: "Next", Action: ActionAdvance},
				},
				{
					ID:      "step3",
					Title:   "Every day since",
					Body:    "You make the ordinary days bright and the hard days lighter.",
					Control: ControlConfig{ID: "next-btn-3", Label: "Next", Action: ActionAdvance},
				},
				{
					ID:      "step4",
					Title:   "So here is the thing",
					Body:    "I want to keep floating through life right next to you.",
					Control: ControlConfig{ID: "next-btn-4", Label: "Next", Action: ActionAdvance},
				},
				{
					ID:      "step5",
					Title:   "Will you marry me?",
					Body:    "There is only one button here, and it says yes.",
					Control: ControlConfig{ID: "confetti-btn", Label: "Yes!", Action: ActionCelebrate},
				},
			},
		},
		Confetti: ConfettiConfig{
			StartVelocity: 45,
			Decay:         0.9,
			Gravity:       1,
			Drift:         0,
			Ticks:         200,
			Scalar:        1,
			Fade:          particle.Curve{Keyframes: []particle.Keyframe{{Time: 0, Value: 1}, {Time: 1, Value: 0}}},
		},
		Celebration: CelebrationConfig{
			Chime: true,
			Bursts: []ScheduledBurst{
				{DelayMs: 0, BurstOptions: BurstOptions{
					ParticleCount: 150, Spread: 70,
					Origin: Origin{Y: ptr(0.6)},
					Colors: []string{"#ff0000", "#ff69b4", "#ff1493", "#ffc0cb"},
				}},
				{DelayMs: 300, BurstOptions: BurstOptions{
					ParticleCount: 30, Spread: 60,
					Origin: Origin{Y: ptr(0.5)},
					Shapes: []string{ShapeHeart},
					Colors: []string{"#ff0000", "#ff69b4"},
				}},
				{DelayMs: 600, BurstOptions: BurstOptions{
					ParticleCount: 20, Angle: ptr(60), Spread: 55,
					Origin: Origin{X: ptr(0)},
					Shapes: []string{ShapeHeart},
					Colors: []string{"#ff0000", "#ff69b4"},
				}},
				{DelayMs: 600, BurstOptions: BurstOptions{
					ParticleCount: 20, Angle: ptr(120), Spread: 55,
					Origin: Origin{X: ptr(1)},
					Shapes: []string{ShapeHeart},
					Colors: []string{"#ff0000", "#ff69b4"},
				}},
			},
		},
	}
}
