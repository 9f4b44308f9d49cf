package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// Init sets up the shared logger writing to stdout and a rotating file.
func Init() {
	once.Do(func() {
		logger = logrus.New()
		logger.SetLevel(logrus.InfoLevel)

		logRotator := &lumberjack.Logger{
			Filename:   "cxos.log",
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}
		logger.SetOutput(io.MultiWriter(os.Stdout, logRotator))

		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	})
}

func get() *logrus.Logger {
	if logger == nil {
		Init()
	}
	return logger
}

func Info(message string, fields logrus.Fields) {
	get().WithFields(fields).Info(message)
}

func Warn(message string, fields logrus.Fields) {
	get().WithFields(fields).Warn(message)
}

func Error(message string, fields logrus.Fields) {
	get().WithFields(fields).Error(message)
}
