package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 7
)

// Setup 配置全局logrus: verbose时为Debug级别,logFile非空时同时写入滚动日志文件.
// 返回的Closer用于在退出前关闭日志文件
func Setup(out io.Writer, verbose bool, logFile string) io.Closer {
	if out == nil {
		out = os.Stderr
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	if logFile == "" {
		log.SetOutput(out)
		return nopCloser{}
	}

	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	log.SetOutput(io.MultiWriter(out, rotator))
	return rotator
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
