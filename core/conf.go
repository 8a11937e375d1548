package core

type Conf struct {
	Version            string `long:"version" description:"version of becq" env:"BECQ_VERSION"`
	DevMode            bool   `long:"dev-mode" description:"run in dev mode" env:"BECQ_DEV_MODE"`
	DisableStdoutLog   bool   `long:"disable-stdout-log" description:"do not log in standard output" env:"BECQ_DISABLE_STDOUT_LOG"`
	EnableFileLog      bool   `long:"enable-file-log" description:"enable log in file" env:"BECQ_ENABLE_FILE_LOG"`
	LogDir             string `long:"log-dir" description:"rotating log file dir" default:"./shares/logs" env:"BECQ_LOG_DIR"`
	LogLevel           string `long:"log-level" description:"log level" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" env:"BECQ_LOG_LEVEL"`
	LogRotationMaxDays int    `long:"log-rotation-max-days" description:"max days of log rotation" default:"7" env:"BECQ_LOG_ROTATION_MAX_DAYS"`
	SettingPath        string `long:"setting-path" description:"model setting file path" default:"./setting/setting.toml" env:"BECQ_SETTING_PATH"`
	Quiet              bool   `long:"quiet" description:"discard delta_l notices and coefficient traces" env:"BECQ_QUIET"`
}
