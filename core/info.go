package core

type NonSecretConf struct {
	DevMode            bool
	DisableStdoutLog   bool
	EnableFileLog      bool
	LogDir             string
	LogLevel           string
	LogRotationMaxDays int
	SettingPath        string
	Quiet              bool
}

type Info struct {
	Conf    *NonSecretConf
	Version string
}

var CurrentInfo *Info

func SetInfo(c *Conf) {
	conf := &NonSecretConf{
		DevMode:            c.DevMode,
		DisableStdoutLog:   c.DisableStdoutLog,
		EnableFileLog:      c.EnableFileLog,
		LogDir:             c.LogDir,
		LogLevel:           c.LogLevel,
		LogRotationMaxDays: c.LogRotationMaxDays,
		SettingPath:        c.SettingPath,
		Quiet:              c.Quiet,
	}

	CurrentInfo = &Info{
		Conf:    conf,
		Version: Version,
	}
}
