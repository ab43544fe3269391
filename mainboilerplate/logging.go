package mainboilerplate

import (
	log "github.com/sirupsen/logrus"
)

// LogConfig configures diagnostic logging. Command outcomes are printed
// to stdout regardless; these settings only shape logrus diagnostics,
// which go to stderr.
type LogConfig struct {
	Level string `long:"level" env:"LEVEL" default:"warn" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"Logging level"`
	Color bool   `long:"color" description:"Force colorized log output"`
}

// InitLog configures the logger for a one-shot command run: terse text
// output, no timestamps.
func InitLog(cfg LogConfig) {
	log.SetFormatter(&log.TextFormatter{
		ForceColors:      cfg.Color,
		DisableTimestamp: true,
	})

	var lvl, err = log.ParseLevel(cfg.Level)
	if err != nil {
		log.WithField("err", err).Fatal("unrecognized log level")
	}
	log.SetLevel(lvl)
}
