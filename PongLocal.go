package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"MotionPong/client"
	"MotionPong/core"
	"MotionPong/logger"
	"MotionPong/server"
	"MotionPong/sound"
)

func start() {
	env := os.Getenv("PONG_ENV")
	if env == "" {
		env = "dev"
	}
	props, err := core.ReadProperties(env)
	if err != nil {
		logger.Log.Fatal(err.Error())
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	mailbox := core.NewMailbox()

	//先綁定感測器的 port，失敗就不用開畫面了
	listener, err := net.Listen("tcp", props.SensorAddr())
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("listen sensor %s: %v", props.SensorAddr(), err))
	}
	sensor := server.NewJointServer(props.SensorAddr(), mailbox)
	go func() {
		if err := sensor.Serve(ctx, listener); err != nil {
			logger.Log.Error(err.Error())
		}
	}()

	screen, err := client.NewScreen(props.Field)
	if err != nil {
		logger.Log.Fatal(err.Error())
	}
	logger.Log.SetConsole(false)
	screen.ListenKeys(client.NewKeyControl(mailbox, props.KeyStep))

	sinks := []core.FrameSink{screen}
	if props.SoundEnabled {
		player := sound.NewPlayer()
		if player.Initialize() == nil {
			defer player.Cleanup()
			sinks = append(sinks, player)
		}
	}

	game := core.NewGame(core.NewMatch(props.Field), mailbox, props.FPS, sinks...)
	fr, err := game.Run(ctx)

	screen.Fini()
	logger.Log.SetConsole(true)

	if !isCleanExit(err) {
		logger.Log.Error(err.Error())
	}
	fmt.Printf("%d : %d\n", fr.LeftScore, fr.RightScore)
}

// isCleanExit 按 Ctrl-C 或收到 SIGTERM 取消的比賽不算錯誤
func isCleanExit(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}
