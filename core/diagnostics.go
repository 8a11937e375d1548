package core

import "go.uber.org/zap"

//go:generate mockgen -source=diagnostics.go -destination=mock_diagnostics.go -package=core

// Diagnostics receives output that is informative but never affects a
// result: modelling assumptions and intermediate coefficients.
type Diagnostics interface {
	Notice(msg string, fields ...zap.Field)
	Trace(msg string, fields ...zap.Field)
}

// ZapDiagnostics writes notices at warn and traces at debug level.
type ZapDiagnostics struct {
	logger *zap.Logger
}

// NewZapDiagnostics returns a sink on l, or on the global logger when l is nil.
func NewZapDiagnostics(l *zap.Logger) *ZapDiagnostics {
	return &ZapDiagnostics{logger: l}
}

func (z *ZapDiagnostics) l() *zap.Logger {
	if z.logger == nil {
		return zap.L()
	}
	return z.logger
}

func (z *ZapDiagnostics) Notice(msg string, fields ...zap.Field) {
	z.l().Warn(msg, fields...)
}

func (z *ZapDiagnostics) Trace(msg string, fields ...zap.Field) {
	z.l().Debug(msg, fields...)
}

type nopDiagnostics struct{}

func (nopDiagnostics) Notice(string, ...zap.Field) {}
func (nopDiagnostics) Trace(string, ...zap.Field)  {}

// NopDiagnostics discards everything.
func NopDiagnostics() Diagnostics {
	return nopDiagnostics{}
}
