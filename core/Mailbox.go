package core

import (
	"math"
	"sync"
)

// Untracked 感測器沒有追蹤到手時回傳的 y 值
const Untracked = 0.0

type slot struct {
	value   float64
	pending bool
}

// Mailbox 每隻手只保留最新一筆讀數，tick 讀取後清空
type Mailbox struct {
	mutex sync.Mutex
	left  slot
	right slot
	quit  bool
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Put 寫入一筆 0~1 的手部高度，未追蹤(0)與 NaN 直接忽略，超出範圍夾回 [0,1]
func (mb *Mailbox) Put(side Side, normalizedY float64) bool {
	if normalizedY == Untracked || math.IsNaN(normalizedY) {
		return false
	}
	normalizedY = math.Max(0, math.Min(1, normalizedY))

	mb.mutex.Lock()
	defer mb.mutex.Unlock()

	switch side {
	case SideLeft:
		mb.left = slot{value: normalizedY, pending: true}
	case SideRight:
		mb.right = slot{value: normalizedY, pending: true}
	default:
		return false
	}
	return true
}

// Take 讀取並清空
func (mb *Mailbox) Take(side Side) (float64, bool) {
	mb.mutex.Lock()
	defer mb.mutex.Unlock()

	var s *slot
	switch side {
	case SideLeft:
		s = &mb.left
	case SideRight:
		s = &mb.right
	default:
		return 0, false
	}

	if !s.pending {
		return 0, false
	}
	value := s.value
	*s = slot{}
	return value, true
}

func (mb *Mailbox) RequestQuit() {
	mb.mutex.Lock()
	mb.quit = true
	mb.mutex.Unlock()
}

func (mb *Mailbox) QuitRequested() bool {
	mb.mutex.Lock()
	defer mb.mutex.Unlock()
	return mb.quit
}

// Poll 取出這一幀的輸入，手越高 target 越靠上： target = (1 - y) * height
func (mb *Mailbox) Poll(field Field) Input {
	in := Input{Quit: mb.QuitRequested()}

	if y, ok := mb.Take(SideLeft); ok {
		target := (1 - y) * field.Height
		in.LeftTargetY = &target
	}
	if y, ok := mb.Take(SideRight); ok {
		target := (1 - y) * field.Height
		in.RightTargetY = &target
	}
	return in
}
