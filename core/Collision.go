package core

const BandCount = 5

const MaxSpeed = 20 // 水平與垂直速度上限
const MinSpeedX = 8 // 水平速度下限

// deflection 是右球拍每一段的反彈規則，左球拍用水平鏡像套用同一張表
type deflection struct {
	kickX int // 反向後再加上的水平速度
	fixX  int // 反彈後仍朝向球拍時改成這個速度
	kickY int // 垂直速度加減量，正值代表順著原本方向加速
}

// 由下往上 0..4
var deflections = [BandCount]deflection{
	{kickX: 4, fixX: -5, kickY: -4},
	{kickX: -4, fixX: -8, kickY: -2},
	{kickX: -10, fixX: -14, kickY: 0},
	{kickX: -4, fixX: -8, kickY: 2},
	{kickX: 4, fixX: -5, kickY: 4},
}

const centerBand = 2

// PaddleBand 回傳球心落在球拍哪一段（0 = 最下面, 4 = 最上面）
// 球心不在球拍範圍內時回傳 -1
func PaddleBand(p Paddle, ballY float64) int {
	bot := p.Rect().Bottom()
	top := p.Y
	step := float64(int(p.Height / BandCount))

	div := [BandCount + 1]float64{bot, bot - step, bot - 2*step, bot - 3*step, bot - 4*step, top}
	for i := 0; i < BandCount; i++ {
		if div[i] >= ballY && ballY > div[i+1] {
			return i
		}
	}
	return -1
}

// deflect 依照撞到的段落改變球速，回傳是否有反彈
func deflect(ball *Ball, p Paddle) bool {
	band := PaddleBand(p, ball.Y)
	if band < 0 {
		return false
	}
	rule := deflections[band]

	//左球拍：先鏡像成右球拍的方向再套用
	velX := ball.VelX
	if p.Side == SideLeft {
		velX = -velX
	}

	velX = -velX + rule.kickX
	if velX >= 0 && (band != centerBand || p.Side == SideRight) {
		velX = rule.fixX
	}

	if p.Side == SideLeft {
		velX = -velX
	}
	ball.VelX = velX

	if ball.VelY > 0 {
		ball.VelY += rule.kickY
	} else {
		ball.VelY -= rule.kickY
	}
	return true
}

// clampSpeed 水平速度限制在 [8, 20]，垂直速度不超過 20
func clampSpeed(ball *Ball) {
	if ball.VelX < -MaxSpeed {
		ball.VelX = -MaxSpeed
	} else if ball.VelX > MaxSpeed {
		ball.VelX = MaxSpeed
	} else if abs(ball.VelX) < MinSpeedX {
		if ball.VelX > 0 {
			ball.VelX = MinSpeedX
		} else {
			ball.VelX = -MinSpeedX
		}
	}

	if ball.VelY < -MaxSpeed {
		ball.VelY = -MaxSpeed
	} else if ball.VelY > MaxSpeed {
		ball.VelY = MaxSpeed
	}
}

func isCollidesWithWall(ball Ball, field Field) bool {
	return ball.Y+ball.Radius >= field.Height || ball.Y-ball.Radius <= 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
