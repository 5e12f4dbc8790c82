// Package game holds the scene-independent state of the proposal: the
// linear step wizard, the celebration timeline and the Proposal controller
// that ties them to the heart field. Nothing here draws or polls input, so
// the window and terminal front-ends share it.
package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/proposal/pkg/config"
)

var (
	// ErrInvalidTransition is returned by AdvanceTo for any step other than
	// the next one.
	ErrInvalidTransition = errors.New("wizard: invalid transition")
	// ErrNotReady is returned by Finish before the terminal step.
	ErrNotReady = errors.New("wizard: terminal step not reached")
	// ErrAlreadyFinished is returned by Finish after the first success.
	ErrAlreadyFinished = errors.New("wizard: already finished")
)

// WizardState is a snapshot passed to change listeners.
type WizardState struct {
	Step     int
	Total    int
	Progress float64 // percent, 0 - 100
	Ready    bool
	Panel    config.PanelConfig
}

// Wizard is a linear, forward-only cursor over a fixed list of panels.
//
// Steps are 1-based. Exactly one panel is active at all times and it is the
// panel of the current step. The final control is marked ready only on the
// terminal step.
type Wizard struct {
	panels   []config.PanelConfig
	active   []bool
	current  int
	progress float64
	ready    bool
	finished bool

	onChange func(WizardState)
}

// NewWizard creates a wizard at step 1 with 0% progress.
//
// Returns:
//   - an error if the panel list does not have exactly config.TotalSteps
//     entries; a missing panel is a configuration error
func NewWizard(cfg config.WizardConfig) (*Wizard, error) {
	if len(cfg.Panels) != config.TotalSteps {
		return nil, fmt.Errorf("wizard needs %d panels, got %d", config.TotalSteps, len(cfg.Panels))
	}

	w := &Wizard{
		panels:  cfg.Panels,
		active:  make([]bool, len(cfg.Panels)),
		current: 1,
	}
	w.activate(1)
	w.UpdateProgressBar()
	return w, nil
}

// OnChange registers a listener called after every transition. It is
// called once immediately with the current state.
func (w *Wizard) OnChange(fn func(WizardState)) {
	w.onChange = fn
	w.notify()
}

// CurrentStep returns the 1-based current step.
func (w *Wizard) CurrentStep() int { return w.current }

// TotalSteps returns the number of panels.
func (w *Wizard) TotalSteps() int { return len(w.panels) }

// Ready reports whether the final control carries the ready marker.
func (w *Wizard) Ready() bool { return w.ready }

// Finished reports whether the terminal action has run.
func (w *Wizard) Finished() bool { return w.finished }

// Progress returns the last computed progress in percent.
func (w *Wizard) Progress() float64 { return w.progress }

// IsActive reports whether the panel of step is active.
func (w *Wizard) IsActive(step int) bool {
	if step < 1 || step > len(w.active) {
		return false
	}
	return w.active[step-1]
}

// ActiveCount returns the number of active panels.
func (w *Wizard) ActiveCount() int {
	n := 0
	for _, a := range w.active {
		if a {
			n++
		}
	}
	return n
}

// CurrentPanel returns the panel of the current step.
func (w *Wizard) CurrentPanel() config.PanelConfig {
	return w.panels[w.current-1]
}

// State returns a snapshot of the wizard.
func (w *Wizard) State() WizardState {
	return WizardState{
		Step:     w.current,
		Total:    len(w.panels),
		Progress: w.progress,
		Ready:    w.ready,
		Panel:    w.CurrentPanel(),
	}
}

// AdvanceTo moves to step, which must be the step after the current one.
// Any other value returns ErrInvalidTransition and changes nothing.
func (w *Wizard) AdvanceTo(step int) error {
	if step != w.current+1 || step > len(w.panels) {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidTransition, w.current, step)
	}

	w.current = step
	w.activate(step)
	w.UpdateProgressBar()
	w.ready = step == len(w.panels)

	log.Printf("[Wizard] step %d/%d (%.0f%%)", w.current, len(w.panels), w.progress)
	w.notify()
	return nil
}

// Advance moves to the next step.
func (w *Wizard) Advance() error {
	return w.AdvanceTo(w.current + 1)
}

// UpdateProgressBar recomputes the progress from the current step and
// returns it in percent.
func (w *Wizard) UpdateProgressBar() float64 {
	w.progress = ProgressPercent(w.current, len(w.panels))
	return w.progress
}

// Finish runs the terminal action bookkeeping. It is accepted once, on the
// terminal step.
func (w *Wizard) Finish() error {
	if w.finished {
		return ErrAlreadyFinished
	}
	if w.current != len(w.panels) {
		return fmt.Errorf("%w: at step %d", ErrNotReady, w.current)
	}
	w.finished = true
	w.ready = false
	log.Printf("[Wizard] finished")
	w.notify()
	return nil
}

// Activate runs the action bound to the current panel's control: advance
// on steps before the last, finish on the last.
//
// Returns:
//   - the action that ran (config.ActionAdvance or config.ActionCelebrate)
//   - the wizard error, if the action was refused
func (w *Wizard) Activate() (string, error) {
	action := w.CurrentPanel().Control.Action
	if action == config.ActionCelebrate {
		return action, w.Finish()
	}
	return action, w.Advance()
}

func (w *Wizard) activate(step int) {
	for i := range w.active {
		w.active[i] = false
	}
	w.active[step-1] = true
}

func (w *Wizard) notify() {
	if w.onChange != nil {
		w.onChange(w.State())
	}
}

// ProgressPercent maps a 1-based step to a 0 - 100 progress readout.
func ProgressPercent(step, total int) float64 {
	if total <= 1 {
		return 100
	}
	return float64(step-1) / float64(total-1) * 100
}
