// Package input polls ebiten pointer and keyboard state for the scene.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is the pointer state of the current tick, merged across mouse
// and touch.
type InputState struct {
	// JustPressed is true on the tick a click or touch began.
	JustPressed bool
	// JustReleased is true on the tick the pointer was released.
	JustReleased bool
	// Pressed is true while the pointer is held.
	Pressed bool
	// X, Y is the pointer position in layout pixels.
	X, Y int
	// IsTouching is true while a touch is active.
	IsTouching bool
}

// GetInputState polls the current pointer state. Touch wins over mouse.
func GetInputState() InputState {
	state := InputState{}

	if ids := inpututil.AppendJustReleasedTouchIDs(nil); len(ids) > 0 {
		state.JustReleased = true
		state.X, state.Y = inpututil.TouchPositionInPreviousTick(ids[0])
		state.IsTouching = true
		return state
	}

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		state.JustPressed = true
		state.Pressed = true
		state.X, state.Y = ebiten.TouchPosition(ids[0])
		state.IsTouching = true
		return state
	}

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		state.Pressed = true
		state.X, state.Y = ebiten.TouchPosition(ids[0])
		state.IsTouching = true
		return state
	}

	state.X, state.Y = ebiten.CursorPosition()
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return state
}

// IsActivateKeyJustPressed reports Enter or Space, the keyboard equivalent
// of clicking the current panel's control.
func IsActivateKeyJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// IsFullscreenToggleJustPressed reports F11.
func IsFullscreenToggleJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF11)
}
