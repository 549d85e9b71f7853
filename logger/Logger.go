package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{console: true}

type Logger struct {
	// console 畫面被 tcell 接管時要關掉，不然會把畫面洗掉
	console bool
	output  io.WriteCloser
}

type loggerProperties struct {
	logFilename  string
	maxSize      int
	maxBackups   int
	maxAge       int
	compressFlag bool
	level        string
}

func readLoggerProperties(path string) (loggerProperties, error) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(path)

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("level", "Info")

	if err := v.ReadInConfig(); err != nil {
		return loggerProperties{}, fmt.Errorf("Fatal error config file: %w", err)
	}

	return loggerProperties{
		logFilename:  cast.ToString(v.Get("logFilename")),
		maxSize:      cast.ToInt(v.Get("maxSize")),
		maxBackups:   cast.ToInt(v.Get("maxBackups")),
		maxAge:       cast.ToInt(v.Get("maxAge")),
		compressFlag: cast.ToBool(v.Get("compress")),
		level:        cast.ToString(v.Get("level")),
	}, nil
}

func (l *Logger) Init() error {
	return l.InitFrom("./")
}

// InitFrom 讀取 <path>/logger.properties 設定 log 檔案與等級
func (l *Logger) InitFrom(path string) error {
	props, err := readLoggerProperties(path)
	if err != nil {
		return err
	}

	loggerConfig := &lumberjack.Logger{
		Filename:   props.logFilename,
		MaxSize:    props.maxSize,
		MaxBackups: props.maxBackups,
		MaxAge:     props.maxAge,
		Compress:   props.compressFlag,
	}
	l.output = loggerConfig

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(loggerConfig)
	logrus.SetLevel(parseLevel(props.level))
	return nil
}

func parseLevel(level string) logrus.Level {
	switch cast.ToString(level) {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// Close 關閉 log 檔
func (l *Logger) Close() error {
	if l.output == nil {
		return nil
	}
	return l.output.Close()
}

func (l *Logger) SetConsole(enabled bool) {
	l.console = enabled
}

func (l *Logger) WithMatch(matchId string) *logrus.Entry {
	return logrus.WithField("match", matchId)
}

func (l *Logger) Info(message string) {
	logrus.Info(message)
	l.echo("Info:", message)
}

func (l *Logger) Error(message string) {
	logrus.Error(message)
	l.echo("Error:", message)
}

func (l *Logger) Debug(message string) {
	logrus.Debug(message)
	l.echo("Debug:", message)
}

func (l *Logger) Warn(message string) {
	logrus.Warn(message)
	l.echo("Warn:", message)
}

func (l *Logger) Fatal(message string) {
	l.echo("Fatal:", message)
	logrus.Fatal(message)
}

func (l *Logger) echo(prefix, message string) {
	if l.console {
		fmt.Println(prefix, message)
	}
}
