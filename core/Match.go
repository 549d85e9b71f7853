package core

const FinalScore = 10 // 遊戲結束分數

type EndReason int

const (
	EndNone EndReason = iota
	EndWin
	EndQuit
)

func (r EndReason) String() string {
	switch r {
	case EndWin:
		return "win"
	case EndQuit:
		return "quit"
	}
	return "none"
}

// Input 每一幀的外部輸入，nil 代表這一幀沒有新的讀數
type Input struct {
	LeftTargetY  *float64
	RightTargetY *float64
	Quit         bool
}

// FrameResult 每一幀模擬後的狀態，給畫面與音效使用
type FrameResult struct {
	Tick       uint64
	Field      Field
	Ball       Ball
	Left       Paddle
	Right      Paddle
	LeftScore  int
	RightScore int

	Hit    Side // 這一幀撞到哪一邊的球拍
	Scored Side // 這一幀哪一邊得分
	Over   bool
	Winner Side
	Reason EndReason
}

// Match 一場比賽的全部狀態，只在 tick goroutine 裡使用
type Match struct {
	field Field

	ball  Ball
	left  Paddle
	right Paddle

	leftScore  int
	rightScore int

	tick   uint64
	over   bool
	reason EndReason
}

func NewMatch(field Field) *Match {
	m := &Match{field: field}
	m.resetNewRound()
	return m
}

func (m *Match) Field() Field {
	return m.field
}

func (m *Match) Over() bool {
	return m.over
}

// resetNewRound 球與球拍回到原位，分數保留
func (m *Match) resetNewRound() {
	m.ball = newBall(m.field)
	m.left = newPaddle(m.field, SideLeft)
	m.right = newPaddle(m.field, SideRight)
}

// Advance 推進一幀
func (m *Match) Advance(in Input) FrameResult {
	if m.over {
		return m.frame(SideNone, SideNone)
	}
	m.tick++

	if in.Quit {
		m.over = true
		m.reason = EndQuit
		return m.frame(SideNone, SideNone)
	}

	//球拍直接移到感測器位置
	if in.LeftTargetY != nil {
		m.left.MoveTo(*in.LeftTargetY)
	}
	if in.RightTargetY != nil {
		m.right.MoveTo(*in.RightTargetY)
	}

	m.ball.Move()

	//檢查有沒有撞到上下牆壁
	if isCollidesWithWall(m.ball, m.field) {
		m.ball.VelY = -m.ball.VelY
	}

	//檢查是否有碰到球拍，先右後左
	hit := SideNone
	ballRect := m.ball.Rect()
	if ballRect.Overlaps(m.right.Rect()) && deflect(&m.ball, m.right) {
		hit = SideRight
	}
	if ballRect.Overlaps(m.left.Rect()) && deflect(&m.ball, m.left) {
		hit = SideLeft
	}

	clampSpeed(&m.ball)

	scored := m.calculateScore()
	if scored != SideNone {
		m.resetNewRound()
	}

	if m.leftScore >= FinalScore || m.rightScore >= FinalScore {
		m.over = true
		m.reason = EndWin
	}

	return m.frame(hit, scored)
}

func (m *Match) calculateScore() Side {
	if m.ball.X+m.ball.Radius <= 0 {
		m.rightScore += 1
		return SideRight
	}
	if m.ball.X-m.ball.Radius >= m.field.Width {
		m.leftScore += 1
		return SideLeft
	}
	return SideNone
}

func (m *Match) winner() Side {
	switch {
	case m.leftScore > m.rightScore:
		return SideLeft
	case m.rightScore > m.leftScore:
		return SideRight
	}
	return SideNone
}

func (m *Match) frame(hit, scored Side) FrameResult {
	fr := FrameResult{
		Tick:       m.tick,
		Field:      m.field,
		Ball:       m.ball,
		Left:       m.left,
		Right:      m.right,
		LeftScore:  m.leftScore,
		RightScore: m.rightScore,
		Hit:        hit,
		Scored:     scored,
		Over:       m.over,
		Reason:     m.reason,
	}
	if m.over {
		fr.Winner = m.winner()
	}
	return fr
}
