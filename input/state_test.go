package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionalKeysAreLevelTriggered(t *testing.T) {
	s := NewState(DefaultBindings())

	assert.Equal(t, RotateLeft, s.KeyDown(KeyA))
	assert.True(t, s.Active(RotateLeft))
	s.KeyDown(KeyA)
	assert.True(t, s.Active(RotateLeft), "key repeat keeps the flag set")

	assert.Equal(t, RotateLeft, s.KeyUp(KeyA))
	assert.False(t, s.Active(RotateLeft))
}

func TestDirectionHeldByEitherBoundKey(t *testing.T) {
	s := NewState(DefaultBindings())

	s.KeyDown(KeyA)
	s.KeyDown(KeyLeft)
	s.KeyUp(KeyLeft)
	assert.True(t, s.Active(RotateLeft), "A is still held")

	s.KeyUp(KeyA)
	assert.False(t, s.Active(RotateLeft))

	s.KeyUp(KeyRight)
	assert.False(t, s.Active(RotateRight), "release without press")
}

func TestSetOnlyAffectsToggles(t *testing.T) {
	s := NewState(DefaultBindings())
	s.Set(ToggleFullscreen, true)
	assert.True(t, s.Active(ToggleFullscreen))

	s.Set(RotateUp, true)
	assert.False(t, s.Active(RotateUp))
}

func TestTogglesFlipOnKeyUp(t *testing.T) {
	s := NewState(DefaultBindings(), ToggleLighting)
	assert.True(t, s.Active(ToggleLighting))

	s.KeyDown(KeyL)
	assert.True(t, s.Active(ToggleLighting), "press alone does nothing")
	s.KeyUp(KeyL)
	assert.False(t, s.Active(ToggleLighting))

	s.KeyDown(KeyL)
	s.KeyDown(KeyL)
	s.KeyUp(KeyL)
	assert.True(t, s.Active(ToggleLighting), "held key flips once")

	s.KeyUp(KeySpace)
	assert.True(t, s.Active(ToggleAutoRotate))
	s.KeyUp(KeyF)
	assert.True(t, s.Active(ToggleFullscreen))
}

func TestExitLatchesOnKeyDown(t *testing.T) {
	s := NewState(DefaultBindings())
	assert.False(t, s.ExitRequested())
	assert.Equal(t, Exit, s.KeyDown(KeyEscape))
	assert.True(t, s.ExitRequested())
	s.KeyUp(KeyEscape)
	assert.True(t, s.ExitRequested())
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	s := NewState(DefaultBindings())
	assert.Equal(t, None, s.KeyDown(Key(999)))
	assert.Equal(t, None, s.KeyUp(Key(999)))
	for a := range actionNames {
		assert.False(t, s.Active(a), a.String())
	}
}

func TestArrowKeysShareActions(t *testing.T) {
	s := NewState(DefaultBindings())
	s.KeyDown(KeyUp)
	s.KeyDown(KeyRight)
	assert.True(t, s.Active(RotateUp))
	assert.True(t, s.Active(RotateRight))
	s.KeyUp(KeyUp)
	assert.False(t, s.Active(RotateUp))
	assert.True(t, s.Active(RotateRight))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "toggle-lighting", ToggleLighting.String())
	assert.Equal(t, "Action(42)", Action(42).String())
}
