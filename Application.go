package main

import (
	"fmt"
	"os"

	"MotionPong/logger"
)

func main() {
	if err := logger.Log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logger.Log.Close()

	start()
}
