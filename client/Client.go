package client

import (
	"fmt"
	"math"
	"strconv"

	"MotionPong/core"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const LineSymbol = 0x2590   // 中線符號
const LetterSymbol = 0x2588

var (
	ballStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	leftStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	rightStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	lineStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Screen 把場地座標等比例縮放到終端機格子上
type Screen struct {
	screen tcell.Screen
	field  core.Field
}

func NewScreen(field core.Field) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()

	return NewScreenWith(screen, field), nil
}

// NewScreenWith 使用已經 Init 過的 tcell.Screen
func NewScreenWith(screen tcell.Screen, field core.Field) *Screen {
	return &Screen{screen: screen, field: field}
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

func (s *Screen) cellX(x float64) int {
	cols, _ := s.screen.Size()
	return int(math.Floor(x * float64(cols) / s.field.Width))
}

func (s *Screen) cellY(y float64) int {
	_, rows := s.screen.Size()
	return int(math.Floor(y * float64(rows) / s.field.Height))
}

// Render 每一幀重畫整個畫面
func (s *Screen) Render(fr core.FrameResult) error {
	s.field = fr.Field
	s.screen.Clear()

	//中線與中圈
	s.Line(s.field.MiddleX(), 0, s.field.MiddleX(), s.field.Height, LineSymbol, lineStyle)
	s.Circle(s.field.MiddleX(), s.field.MiddleY(), s.field.Height/4, lineStyle)

	//兩個球拍
	s.FillRect(fr.Left.Rect(), PaddleSymbol, leftStyle)
	s.FillRect(fr.Right.Rect(), PaddleSymbol, rightStyle)

	//球
	s.FillCircle(fr.Ball.X, fr.Ball.Y, fr.Ball.Radius, BallSymbol, ballStyle)

	//分數更新
	fontSize := s.field.Width / 12
	s.Text(s.field.MiddleX()-fontSize, 16, strconv.Itoa(fr.LeftScore), textStyle)
	s.Text(s.field.MiddleX()+fontSize/3, 16, strconv.Itoa(fr.RightScore), textStyle)

	s.Present()
	return nil
}

func (s *Screen) Present() {
	s.screen.Show()
}

func (s *Screen) FillRect(r core.Rect, ch rune, style tcell.Style) {
	left, top := s.cellX(r.Left), s.cellY(r.Top)
	width := max(s.cellX(r.Right())-left, 1)
	height := max(s.cellY(r.Bottom())-top, 1)
	Print(s.screen, top, left, width, height, ch, style)
}

// FillCircle 格子中心落在圓內就畫，太小時至少畫圓心那一格
func (s *Screen) FillCircle(cx, cy, radius float64, ch rune, style tcell.Style) {
	cols, rows := s.screen.Size()
	cellW := s.field.Width / float64(cols)
	cellH := s.field.Height / float64(rows)

	for row := s.cellY(cy - radius); row <= s.cellY(cy+radius); row++ {
		for col := s.cellX(cx - radius); col <= s.cellX(cx+radius); col++ {
			x := (float64(col) + 0.5) * cellW
			y := (float64(row) + 0.5) * cellH
			if math.Hypot(x-cx, y-cy) <= radius {
				s.screen.SetContent(col, row, ch, nil, style)
			}
		}
	}
	s.screen.SetContent(s.cellX(cx), s.cellY(cy), ch, nil, style)
}

// Circle 只畫外框
func (s *Screen) Circle(cx, cy, radius float64, style tcell.Style) {
	const segments = 96
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		s.screen.SetContent(s.cellX(x), s.cellY(y), '·', nil, style)
	}
}

// Line Bresenham 直線
func (s *Screen) Line(x1, y1, x2, y2 float64, ch rune, style tcell.Style) {
	c1, r1 := s.cellX(x1), s.cellY(y1)
	c2, r2 := s.cellX(x2), s.cellY(y2)

	dc := abs(c2 - c1)
	dr := -abs(r2 - r1)
	sc, sr := sign(c2-c1), sign(r2-r1)
	e := dc + dr

	for {
		s.screen.SetContent(c1, r1, ch, nil, style)
		if c1 == c2 && r1 == r2 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c1 += sc
		}
		if e2 <= dc {
			e += dc
			r1 += sr
		}
	}
}

// Text 用點陣字把數字畫在 (x, y) 右下方
func (s *Screen) Text(x, y float64, word string, style tcell.Style) {
	drawLetters(s.screen, s.cellX(x), s.cellY(y), word, style)
}

func Print(screen tcell.Screen, row, col, width, height int, ch rune, style tcell.Style) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			screen.SetContent(col+c, row+r, ch, nil, style)
		}
	}
}

func drawLetters(screen tcell.Screen, x int, y int, word string, style tcell.Style) {
	for i, letter := range []rune(word) {
		offsetX := x + i*(LetterWidth+LetterSpacing)

		for _, cell := range GetCellsFromChar(letter) {
			screen.SetContent(offsetX+cell[0], y+cell[1], LetterSymbol, nil, style)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
