package core

const BallRadius = 14      // 球半徑
const BallInitialVelX = 12 // 開球水平速度
const BallInitialVelY = 0

const PaddleOffsetRatio = 0.04 // 球拍距離邊界 = 螢幕寬 * 0.04
const PaddleHeightRatio = 0.26 // 球拍高度 = 螢幕高 * 0.26

// Side 左右兩邊
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Field 場地大小
type Field struct {
	Width, Height float64
}

func (f Field) MiddleX() float64 {
	return f.Width / 2
}

func (f Field) MiddleY() float64 {
	return f.Height / 2
}

type Rect struct {
	Left, Top, Width, Height float64
}

func (r Rect) Right() float64 {
	return r.Left + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Overlaps 只有內部重疊才算碰撞，邊緣剛好相接不算
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right() && r.Right() > o.Left &&
		r.Top < o.Bottom() && r.Bottom() > o.Top
}

type Ball struct {
	X, Y       float64
	VelX, VelY int
	Radius     float64
}

func newBall(field Field) Ball {
	return Ball{
		X: field.MiddleX(), Y: field.MiddleY(),
		VelX: BallInitialVelX, VelY: BallInitialVelY,
		Radius: BallRadius,
	}
}

func (b *Ball) Move() {
	b.X += float64(b.VelX)
	b.Y += float64(b.VelY)
}

func (b Ball) Rect() Rect {
	return Rect{Left: b.X - b.Radius, Top: b.Y - b.Radius, Width: 2 * b.Radius, Height: 2 * b.Radius}
}

type Paddle struct {
	Side          Side
	X, Y          float64
	Width, Height float64
	// TargetY 最後一次輸入的目標（球拍中線）
	TargetY float64
}

func newPaddle(field Field, side Side) Paddle {
	offset := field.Width * PaddleOffsetRatio
	height := field.Height * PaddleHeightRatio

	x := offset
	if side == SideRight {
		x = field.Width - offset*1.5
	}

	return Paddle{
		Side: side,
		X:    x, Y: field.MiddleY() - height/2,
		Width: offset / 2, Height: height,
		TargetY: field.MiddleY(),
	}
}

// MoveTo 直接把球拍中線設到目標位置，不做畫面邊界限制
func (p *Paddle) MoveTo(targetY float64) {
	p.TargetY = targetY
	p.Y = targetY - p.Height/2
}

func (p Paddle) Rect() Rect {
	return Rect{Left: p.X, Top: p.Y, Width: p.Width, Height: p.Height}
}
