package main

import (
	"flag"
	"log/slog"
)

type logLevelFlag struct {
	value slog.Level
	set   bool
}

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	v, err := parseLogLevel(value)
	if err != nil {
		return err
	}
	l.value = v
	l.set = true
	return nil
}

// defined flags
var (
	levelFlag   logLevelFlag
	configFlag  = flag.String("config", "", "path to a YAML config file")
	logFileFlag = flag.String("logfile", "", "write logs to this file instead of the console")
	debugFlag   = flag.Bool("debug", false, "log every world and camera mutation")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level (overrides the config file)")
}
