package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nikmy/flighthub/pkg/environment"
	"github.com/nikmy/flighthub/pkg/errors"
)

type Logger interface {
	With(label string) Logger

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Panicf(format string, args ...any)

	Debug(err error)
	Info(err error)
	Warn(err error)
	Error(err error)
	Panic(err error)
}

func New(env environment.Env) (Logger, error) {
	var cfg zap.Config

	switch env {
	case environment.Production:
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.WrapFail(err, "init logger")
	}

	return FromZap(logger), nil
}

func FromZap(logger *zap.Logger) Logger {
	return &wrapper{base: logger.Sugar()}
}

type wrapper struct {
	base *zap.SugaredLogger
}

func (w *wrapper) With(label string) Logger {
	return &wrapper{w.base.Named(label)}
}

func (w *wrapper) enabled(lvl zapcore.Level) bool {
	return w.base.Desugar().Core().Enabled(lvl)
}

func (w *wrapper) Debug(err error) { w.Debugf("%s", err) }
func (w *wrapper) Info(err error)  { w.Infof("%s", err) }
func (w *wrapper) Warn(err error)  { w.Warnf("%s", err) }
func (w *wrapper) Error(err error) { w.Errorf("%s", err) }
func (w *wrapper) Panic(err error) { w.Panicf("%s", err) }

func (w *wrapper) Debugf(format string, args ...any) {
	if !w.enabled(zap.DebugLevel) {
		return
	}
	w.base.Debugf(format, args...)
}

func (w *wrapper) Infof(format string, args ...any) {
	if !w.enabled(zap.InfoLevel) {
		return
	}
	w.base.Infof(format, args...)
}

func (w *wrapper) Warnf(format string, args ...any) {
	if !w.enabled(zap.WarnLevel) {
		return
	}
	w.base.Warnf(format, args...)
	_ = w.base.Sync()
}

func (w *wrapper) Errorf(format string, args ...any) {
	if !w.enabled(zap.ErrorLevel) {
		return
	}
	w.base.Errorf(format, args...)
	_ = w.base.Sync()
}

func (w *wrapper) Panicf(format string, args ...any) {
	_ = w.base.Sync()
	w.base.Panicf(format, args...)
}
