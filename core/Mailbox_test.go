package core

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailboxTakeClearsSlot(t *testing.T) {
	mb := NewMailbox()
	require.True(t, mb.Put(SideLeft, 0.3))

	y, ok := mb.Take(SideLeft)
	assert.True(t, ok)
	assert.Equal(t, 0.3, y)

	_, ok = mb.Take(SideLeft)
	assert.False(t, ok)

	_, ok = mb.Take(SideRight)
	assert.False(t, ok)
}

func TestMailboxLastValueWins(t *testing.T) {
	mb := NewMailbox()
	mb.Put(SideRight, 0.2)
	mb.Put(SideRight, 0.4)
	mb.Put(SideRight, 0.9)

	y, ok := mb.Take(SideRight)
	assert.True(t, ok)
	assert.Equal(t, 0.9, y)
}

func TestMailboxFiltersAndClamps(t *testing.T) {
	mb := NewMailbox()

	assert.False(t, mb.Put(SideLeft, Untracked))
	assert.False(t, mb.Put(SideLeft, math.NaN()))
	assert.False(t, mb.Put(SideNone, 0.5))
	_, ok := mb.Take(SideLeft)
	assert.False(t, ok)

	assert.True(t, mb.Put(SideLeft, 1.7))
	y, _ := mb.Take(SideLeft)
	assert.Equal(t, 1.0, y)

	assert.True(t, mb.Put(SideLeft, -0.2))
	y, _ = mb.Take(SideLeft)
	assert.Equal(t, 0.0, y)
}

func TestMailboxPoll(t *testing.T) {
	mb := NewMailbox()
	mb.Put(SideLeft, 0.75)

	in := mb.Poll(testField)
	require.NotNil(t, in.LeftTargetY)
	assert.InDelta(t, 150, *in.LeftTargetY, 1e-9)
	assert.Nil(t, in.RightTargetY)
	assert.False(t, in.Quit)

	//讀過一次就清空
	in = mb.Poll(testField)
	assert.Nil(t, in.LeftTargetY)

	mb.RequestQuit()
	assert.True(t, mb.Poll(testField).Quit)
	assert.True(t, mb.Poll(testField).Quit)
}

func TestMailboxConcurrentWriters(t *testing.T) {
	mb := NewMailbox()

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mb.Put(SideLeft, float64(i)/10)
				mb.Poll(testField)
			}
		}(i)
	}
	wg.Wait()

	mb.Put(SideLeft, 0.5)
	y, ok := mb.Take(SideLeft)
	assert.True(t, ok)
	assert.Equal(t, 0.5, y)
}
