package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

/**
 * @Author: wanglei
 * @File: logger
 * @Version: 1.0.0
 * @Description: 日志, 按天切分文件
 * @Date: 2023/07/05 16:02
 */

// Settings 日志配置
type Settings struct {
	// 日志目录, 为空时只输出到标准错误
	Path string
	// 文件名前缀
	Name string
	// trace debug info warn error fatal panic
	Level string
	// 保留天数
	MaxAge time.Duration
}

const (
	defaultName   = "indexlist"
	defaultMaxAge = 7 * 24 * time.Hour
)

var logger *logrus.Logger

func init() {
	logger = logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetOutput(os.Stderr)
}

// Setup 按配置重新设置日志级别和输出位置
func Setup(settings *Settings) error {
	level := logrus.InfoLevel
	if settings.Level != "" {
		lv, err := logrus.ParseLevel(settings.Level)
		if err != nil {
			return errors.Wrapf(err, "parse log level %q", settings.Level)
		}
		level = lv
	}
	logger.SetLevel(level)

	if settings.Path == "" {
		logger.SetOutput(os.Stderr)
		return nil
	}
	name := settings.Name
	if name == "" {
		name = defaultName
	}
	maxAge := settings.MaxAge
	if maxAge <= 0 {
		maxAge = defaultMaxAge
	}
	writer, err := rotatelogs.New(
		filepath.Join(settings.Path, name+"-%Y%m%d.log"),
		// 24小时切分一次
		rotatelogs.WithRotationTime(24*time.Hour),
		// WithMaxAge和WithRotationCount二者只能设置一个
		rotatelogs.WithMaxAge(maxAge),
	)
	if err != nil {
		return errors.Wrap(err, "create rotate log writer")
	}
	logger.SetOutput(writer)
	return nil
}

// SetOutput 测试时把日志重定向到内存
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func SetLevel(level logrus.Level) {
	logger.SetLevel(level)
}

func Debug(args ...interface{}) {
	logger.WithFields(logrus.Fields{
		"file": setFileLine(),
	}).Debug(args...)
}

func Debugf(format string, args ...interface{}) {
	logger.WithFields(logrus.Fields{
		"file": setFileLine(),
	}).Debugf(format, args...)
}

func Info(args ...interface{}) {
	logger.WithFields(logrus.Fields{
		"file": setFileLine(),
	}).Info(args...)
}

func Infof(format string, args ...interface{}) {
	logger.WithFields(logrus.Fields{
		"file": setFileLine(),
	}).Infof(format, args...)
}

func Warn(args ...interface{}) {
	logger.WithFields(logrus.Fields{
		"file": setFileLine(),
	}).Warn(args...)
}

func Warnf(format string, args ...interface{}) {
	logger.WithFields(logrus.Fields{
		"file": setFileLine(),
	}).Warnf(format, args...)
}

func Error(args ...interface{}) {
	logger.WithFields(logrus.Fields{
		"file": setFileLine(),
	}).Error(args...)
}

func Errorf(format string, args ...interface{}) {
	logger.WithFields(logrus.Fields{
		"file": setFileLine(),
	}).Errorf(format, args...)
}

func Fatal(args ...interface{}) {
	logger.WithFields(logrus.Fields{
		"file": setFileLine(),
	}).Fatal(args...)
}

func setFileLine() (filePath string) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "file path not found"
	}
	abs, _ := filepath.Abs(file)
	root, _ := os.Getwd()
	path := strings.Replace(strings.Replace(abs, root, "", 2), "\\", "/", -1)
	return fmt.Sprintf("%s:%d", path, line)
}
