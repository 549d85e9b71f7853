package client

import (
	"testing"
	"time"

	"MotionPong/core"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyControlMovesTargets(t *testing.T) {
	mb := core.NewMailbox()
	k := NewKeyControl(mb, 0.1)

	assert.True(t, k.Press("Rune[w]"))
	y, ok := mb.Take(core.SideLeft)
	require.True(t, ok)
	assert.InDelta(t, 0.6, y, 1e-9)

	assert.True(t, k.Press("Down"))
	y, ok = mb.Take(core.SideRight)
	require.True(t, ok)
	assert.InDelta(t, 0.4, y, 1e-9)

	assert.False(t, k.Press("Rune[x]"))
	assert.False(t, mb.QuitRequested())
}

func TestKeyControlStaysInRange(t *testing.T) {
	mb := core.NewMailbox()
	k := NewKeyControl(mb, 0.1)

	for i := 0; i < 20; i++ {
		k.Press("Rune[s]")
		k.Press("Up")
	}

	left, ok := mb.Take(core.SideLeft)
	require.True(t, ok)
	assert.InDelta(t, 0.1, left, 1e-9)

	right, ok := mb.Take(core.SideRight)
	require.True(t, ok)
	assert.Equal(t, 1.0, right)
}

func TestKeyControlQuit(t *testing.T) {
	mb := core.NewMailbox()
	k := NewKeyControl(mb, 0)

	assert.True(t, k.Press("Rune[q]"))
	assert.True(t, mb.QuitRequested())
}

func TestListenKeys(t *testing.T) {
	s, sim := newSimScreen(t)
	mb := core.NewMailbox()
	s.ListenKeys(NewKeyControl(mb, 0.1))

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	assert.Eventually(t, func() bool {
		y, ok := mb.Take(core.SideRight)
		return ok && y > 0.5
	}, time.Second, 5*time.Millisecond)

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	assert.Eventually(t, mb.QuitRequested, time.Second, 5*time.Millisecond)
}
