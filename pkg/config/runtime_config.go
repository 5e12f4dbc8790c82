package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// RuntimeOptions are the process-level switches. Environment variables set
// the defaults; command-line flags in main override them.
type RuntimeOptions struct {
	// Verbose enables log output.
	Verbose bool `env:"PROPOSAL_VERBOSE" envDefault:"false"`
	// Seed fixes the random source; 0 means seed from the clock.
	Seed int64 `env:"PROPOSAL_SEED" envDefault:"0"`
	// ConfigPath loads the scene from a file instead of the embedded copy.
	ConfigPath string `env:"PROPOSAL_CONFIG"`
	// Fullscreen starts in fullscreen mode.
	Fullscreen bool `env:"PROPOSAL_FULLSCREEN" envDefault:"false"`
	// Mute disables the celebration chime.
	Mute bool `env:"PROPOSAL_MUTE" envDefault:"false"`
}

// LoadRuntimeOptions reads RuntimeOptions from the environment.
func LoadRuntimeOptions() (RuntimeOptions, error) {
	var opts RuntimeOptions
	if err := env.Parse(&opts); err != nil {
		return RuntimeOptions{}, fmt.Errorf("parse env: %w", err)
	}
	return opts, nil
}

// LoadScene resolves the scene description for these options: the file at
// ConfigPath when set, otherwise the embedded default.
func (o RuntimeOptions) LoadScene() (*SceneConfig, error) {
	if o.ConfigPath != "" {
		return LoadSceneConfig(o.ConfigPath)
	}
	return LoadEmbeddedSceneConfig(DefaultScenePath)
}
