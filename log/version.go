package log

import (
	"github.com/oqtopus-team/bec-qubits/core"
	"go.uber.org/zap"
)

// LogVersion writes the running version and the non secret configuration.
func LogVersion() {
	fields := []zap.Field{zap.String("version", core.Version)}
	if core.CurrentInfo != nil && core.CurrentInfo.Conf != nil {
		c := core.CurrentInfo.Conf
		fields = append(fields,
			zap.String("setting_path", c.SettingPath),
			zap.Bool("quiet", c.Quiet))
	}
	zap.L().Info("becq", fields...)
}
