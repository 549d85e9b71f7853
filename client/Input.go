package client

import (
	"math"

	"MotionPong/core"
	"MotionPong/logger"

	"github.com/gdamore/tcell"
)

// KeyControl 沒有感測器時用鍵盤模擬手的高度，跟感測器走同一個 mailbox
type KeyControl struct {
	mailbox *core.Mailbox
	step    float64
	left    float64
	right   float64
}

func NewKeyControl(mailbox *core.Mailbox, step float64) *KeyControl {
	if step <= 0 || step > 1 {
		step = 0.05
	}
	return &KeyControl{mailbox: mailbox, step: step, left: 0.5, right: 0.5}
}

// Press 處理一個按鍵名稱(tcell EventKey.Name)，回傳是否有用到這個按鍵
func (k *KeyControl) Press(key string) bool {
	switch key {
	case "Rune[q]":
		k.Quit()

	case "Rune[w]":
		k.left = k.nudge(k.left, k.step)
		k.mailbox.Put(core.SideLeft, k.left)

	case "Rune[s]":
		k.left = k.nudge(k.left, -k.step)
		k.mailbox.Put(core.SideLeft, k.left)

	case "Up":
		k.right = k.nudge(k.right, k.step)
		k.mailbox.Put(core.SideRight, k.right)

	case "Down":
		k.right = k.nudge(k.right, -k.step)
		k.mailbox.Put(core.SideRight, k.right)

	default:
		return false
	}
	return true
}

func (k *KeyControl) Quit() {
	logger.Log.Info(logger.PlayerQuitMsg)
	k.mailbox.RequestQuit()
}

// nudge 手的高度最低停在 step，避免變成代表未追蹤的 0
func (k *KeyControl) nudge(value, delta float64) float64 {
	return math.Max(k.step, math.Min(1, value+delta))
}

// ListenKeys 開一個 goroutine 監聽鍵盤事件，畫面 Fini 後結束
func (s *Screen) ListenKeys(control *KeyControl) {
	go func() {
		for {
			switch ev := s.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					control.Quit()
					continue
				}
				control.Press(ev.Name())
			}
		}
	}()
}
