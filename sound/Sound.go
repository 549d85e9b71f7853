package sound

import (
	"fmt"
	"sync"
	"time"

	"MotionPong/core"
	"MotionPong/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const HitFreq = 440.0   // 撞到球拍
const ScoreFreq = 220.0 // 得分
const OverFreq = 880.0  // 比賽結束

const toneDuration = 80 * time.Millisecond
const overDuration = 400 * time.Millisecond

// Player 依照每一幀的事件播放短音效
type Player struct {
	mutex       sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize 初始化喇叭，失敗時保持靜音
func (p *Player) Initialize() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.SoundInitFailedMsg, err))
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Cleanup() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Render 實作 core.FrameSink
func (p *Player) Render(fr core.FrameResult) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.initialized {
		return nil
	}

	streamer, err := EventTone(fr)
	if err != nil {
		return err
	}
	if streamer == nil {
		return nil
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// EventTone 回傳這一幀要播的音效，沒事件時回傳 nil
func EventTone(fr core.FrameResult) (beep.Streamer, error) {
	switch {
	case fr.Over:
		return tone(OverFreq, overDuration)
	case fr.Scored != core.SideNone:
		return tone(ScoreFreq, toneDuration)
	case fr.Hit != core.SideNone:
		return tone(HitFreq, toneDuration)
	}
	return nil, nil
}

func tone(freq float64, duration time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %v: %w", freq, err)
	}
	return beep.Take(sampleRate.N(duration), sine), nil
}
