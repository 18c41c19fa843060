package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/spf13/viper"
)

const (
	keyPollInterval = "poll_interval"
	keyTheme        = "theme"
	keyLogFile      = "log_file"
	keyStrictExit   = "strict_exit"
)

var ErrInvalidSetting = errors.New("invalid setting")

// SettingError reports a configuration value that could not be used.
type SettingError struct {
	Key   string
	Value string
	Err   error
}

func (e *SettingError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("setting %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *SettingError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Settings are the user-tunable knobs. There are no command line flags;
// values come from the config file and COUNTDOWN_* environment variables.
type Settings struct {
	PollInterval time.Duration
	Theme        string
	LogFile      string
	// StrictExit makes a failed run exit with status 1 instead of 0.
	StrictExit bool
}

func Defaults() Settings {
	return Settings{
		PollInterval: DefaultPollInterval,
		Theme:        DefaultTheme,
	}
}

// DefaultPath is where Load looks when no explicit file is given.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load reads settings from path, or from DefaultPath when path is empty.
// A missing default file is not an error; a missing explicit file is.
func Load(path string) (Settings, error) {
	v := viper.New()
	def := Defaults()
	v.SetDefault(keyPollInterval, def.PollInterval)
	v.SetDefault(keyTheme, def.Theme)
	v.SetDefault(keyLogFile, "")
	v.SetDefault(keyStrictExit, false)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil || explicit {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	s := Settings{
		PollInterval: v.GetDuration(keyPollInterval),
		Theme:        strings.ToLower(strings.TrimSpace(v.GetString(keyTheme))),
		LogFile:      util.ExpandHome(strings.TrimSpace(v.GetString(keyLogFile))),
		StrictExit:   v.GetBool(keyStrictExit),
	}
	if s.PollInterval < MinPollInterval || s.PollInterval > MaxPollInterval {
		return Settings{}, &SettingError{
			Key:   keyPollInterval,
			Value: v.GetString(keyPollInterval),
			Err:   fmt.Errorf("%w: must be between %s and %s", ErrInvalidSetting, MinPollInterval, MaxPollInterval),
		}
	}
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	return s, nil
}
