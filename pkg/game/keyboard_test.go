package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardIsDown(t *testing.T) {
	kb := NewKeyboard()

	kb.Handle("ArrowLeft", true)
	assert.True(t, kb.IsDown("ArrowLeft"))
	assert.False(t, kb.IsDown("ArrowRight"))

	kb.Handle("ArrowLeft", false)
	assert.False(t, kb.IsDown("ArrowLeft"))
}

func TestKeyboardPressedEdge(t *testing.T) {
	kb := NewKeyboard()

	kb.Handle("a", true)
	assert.True(t, kb.Pressed("a"))

	// Holding across frames is not a new press.
	kb.EndFrame()
	assert.False(t, kb.Pressed("a"))
	assert.True(t, kb.IsDown("a"))
	kb.Handle("a", true)
	assert.False(t, kb.Pressed("a"), "repeat while held is not an edge")

	// Release and press again is.
	kb.Handle("a", false)
	kb.Handle("a", true)
	assert.True(t, kb.Pressed("a"))
}

func TestKeyboardPressAndReleaseWithinFrame(t *testing.T) {
	kb := NewKeyboard()

	kb.Handle(" ", true)
	kb.Handle(" ", false)
	assert.False(t, kb.IsDown(" "))
	assert.True(t, kb.Pressed(" "), "a tap inside one frame still reads as pressed")

	kb.EndFrame()
	assert.False(t, kb.Pressed(" "))
}
