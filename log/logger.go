package log

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-faster/errors"
	rotate "github.com/lestrrat-go/file-rotatelogs"
	"github.com/oqtopus-team/bec-qubits/common"
	"github.com/oqtopus-team/bec-qubits/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFilePattern = "becq-%Y-%m-%d.log"

func encoder(conf *core.Conf) zapcore.Encoder {
	if conf.DevMode {
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	c := zap.NewProductionEncoderConfig()
	c.EncodeTime = zapcore.ISO8601TimeEncoder //Not use UnixTime
	c.TimeKey = "timestamp"
	return zapcore.NewJSONEncoder(c)
}

func level(name string) zap.AtomicLevel {
	switch name {
	case "debug":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}

// NewLogger builds a logger writing to stdout and, when enabled, to a
// daily rotated file under conf.LogDir.
func NewLogger(conf *core.Conf) (*zap.Logger, error) {
	enc := encoder(conf)
	lv := level(conf.LogLevel)

	cores := []zapcore.Core{}
	if conf.EnableFileLog {
		rotator, err := makeRotator(conf.LogDir, conf.LogRotationMaxDays)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(rotator), lv))
	}
	if !conf.DisableStdoutLog {
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lv))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func makeRotator(dirPath string, rotationMaxDays int) (*rotate.RotateLogs, error) {
	if err := common.IsDirWritable(dirPath); err != nil {
		return nil, errors.Wrapf(err, "cannot log to %s", dirPath)
	}
	return rotate.New(
		filepath.Join(dirPath, logFilePattern),
		rotate.WithMaxAge(time.Duration(rotationMaxDays)*24*time.Hour),
		rotate.WithRotationTime(time.Hour))
}

// Setup builds the logger for conf and installs it as the zap global.
// The caller syncs the returned logger on exit.
func Setup(conf *core.Conf) (*zap.Logger, error) {
	logger, err := NewLogger(conf)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	zap.L().Debug("Starting logger",
		zap.Bool("dev_mode", conf.DevMode),
		zap.String("level", conf.LogLevel),
		zap.Int("rotation_max_days", conf.LogRotationMaxDays))
	return logger, nil
}
