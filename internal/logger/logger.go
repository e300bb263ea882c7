package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger 全局日志实例
// 未初始化时丢弃所有输出，避免测试中产生噪音
var Logger = zerolog.New(io.Discard)

// Init 初始化 zerolog 日志
// level: 日志级别 ("debug", "info", "warn", "error")
// file: 日志文件路径，为空时仅输出到控制台
func Init(level string, file string) error {
	// 解析日志级别
	var logLevel zerolog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	// 控制台使用格式化输出
	var output io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
	}

	// 如果指定了文件，同时输出到文件和控制台
	if file != "" {
		fileWriter, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		output = io.MultiWriter(output, fileWriter)
	}

	Logger = zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	// 设置全局默认日志
	log.Logger = Logger

	return nil
}

// Debug 输出调试日志
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info 输出信息日志
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn 输出警告日志
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error 输出错误日志
func Error() *zerolog.Event {
	return Logger.Error()
}

// Fatal 输出致命错误日志并退出
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}
