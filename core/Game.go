package core

import (
	"context"
	"fmt"
	"time"

	"MotionPong/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// InputProvider 每一幀被讀一次
type InputProvider interface {
	Poll(field Field) Input
}

// FrameSink 畫面、音效等輸出
type FrameSink interface {
	Render(fr FrameResult) error
}

type Game struct {
	Id    string
	match *Match
	input InputProvider
	sinks []FrameSink
	fps   int
	log   *logrus.Entry
}

func NewGame(match *Match, input InputProvider, fps int, sinks ...FrameSink) *Game {
	if fps <= 0 {
		fps = DefaultFPS
	}
	id := uuid.New().String()
	return &Game{
		Id:    id,
		match: match,
		input: input,
		sinks: sinks,
		fps:   fps,
		log:   logger.Log.WithMatch(id),
	}
}

// Step 讀輸入、推進一幀、輸出
func (g *Game) Step() (FrameResult, error) {
	fr := g.match.Advance(g.input.Poll(g.match.Field()))

	if fr.Scored != SideNone {
		g.log.Info(fmt.Sprintf(logger.PlayerScoredMsg, fr.Scored, fr.LeftScore, fr.RightScore))
	}

	for _, sink := range g.sinks {
		if err := sink.Render(fr); err != nil {
			g.log.Error(fmt.Sprintf(logger.FrameSinkErrorMsg, err))
			return fr, err
		}
	}
	return fr, nil
}

// Run 固定頻率跑遊戲迴圈，比賽結束、sink 出錯或 ctx 取消時回傳
func (g *Game) Run(ctx context.Context) (FrameResult, error) {
	field := g.match.Field()
	g.log.Info(fmt.Sprintf(logger.MatchStartMsg, field.Width, field.Height, g.fps))

	ticker := time.NewTicker(time.Second / time.Duration(g.fps))
	defer ticker.Stop()

	var fr FrameResult
	for {
		select {
		case <-ctx.Done():
			return fr, ctx.Err()

		case <-ticker.C:
			var err error
			fr, err = g.Step()
			if err != nil {
				return fr, err
			}
			if fr.Over {
				g.log.WithField("tick", fr.Tick).
					Info(fmt.Sprintf(logger.MatchOverMsg, fr.Reason, fr.Winner, fr.LeftScore, fr.RightScore))
				return fr, nil
			}
		}
	}
}
