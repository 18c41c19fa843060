package config

import "time"

// Refresh loop.
const (
	DefaultPollInterval = 100 * time.Millisecond
	MinPollInterval     = 10 * time.Millisecond
	MaxPollInterval     = time.Second
)

// Application settings.
const (
	AppName        = "countdown"
	ConfigFileName = "config.yaml"
	EnvPrefix      = "COUNTDOWN"
	DefaultTheme   = "default"
)
