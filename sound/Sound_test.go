package sound

import (
	"testing"
	"time"

	"MotionPong/core"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamAll(t *testing.T, s beep.Streamer) [][2]float64 {
	var all [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok {
			return all
		}
	}
}

func TestEventToneNoEvent(t *testing.T) {
	streamer, err := EventTone(core.FrameResult{})
	require.NoError(t, err)
	assert.Nil(t, streamer)
}

func TestEventToneLength(t *testing.T) {
	cases := []struct {
		name     string
		fr       core.FrameResult
		duration time.Duration
	}{
		{name: "hit", fr: core.FrameResult{Hit: core.SideLeft}, duration: toneDuration},
		{name: "score", fr: core.FrameResult{Scored: core.SideRight}, duration: toneDuration},
		{name: "over wins", fr: core.FrameResult{Over: true, Scored: core.SideRight}, duration: overDuration},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			streamer, err := EventTone(c.fr)
			require.NoError(t, err)
			require.NotNil(t, streamer)

			samples := streamAll(t, streamer)
			assert.Len(t, samples, sampleRate.N(c.duration))

			for i, s := range samples {
				require.True(t, s[0] >= -1 && s[0] <= 1, "sample %d out of range: %v", i, s[0])
			}
		})
	}
}

func TestPlayerRenderWithoutSpeaker(t *testing.T) {
	p := NewPlayer()

	assert.NoError(t, p.Render(core.FrameResult{Hit: core.SideRight}))
	assert.Equal(t, 0, p.mixer.Len())

	p.Cleanup()
}
