// Package config resolves cal's settings from .cal.yaml, CAL_* environment
// variables and built in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// EnvConfigPath names a directory searched first for .cal.yaml.
	EnvConfigPath = "CAL_CONFIG_PATH"

	configName = ".cal" // .yaml is implicit
	envPrefix  = "CAL"

	DefaultOutput = "text"
	DefaultAddr   = "127.0.0.1:8080"
)

// Config holds the resolved settings.
type Config struct {
	WeekStart time.Weekday
	Output    string
	Addr      string

	// File is the config file that was read, empty when none was found.
	File string
}

// LoadConfig reads the config from $CAL_CONFIG_PATH, the working directory
// and the home directory, in that order.
func LoadConfig() (*Config, error) {
	return Load(searchPaths()...)
}

// Load reads the first .cal.yaml found in paths. A missing file is not an
// error; the defaults and environment still apply.
func Load(paths ...string) (*Config, error) {
	v := newViper()
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return fromViper(v)
}

// LoadFile reads exactly one config file.
func LoadFile(file string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return fromViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("weekstart", "sunday")
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("addr", DefaultAddr)
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	ws, err := ParseWeekday(v.GetString("weekstart"))
	if err != nil {
		return nil, err
	}
	return &Config{
		WeekStart: ws,
		Output:    v.GetString("output"),
		Addr:      v.GetString("addr"),
		File:      v.ConfigFileUsed(),
	}, nil
}

func searchPaths() []string {
	var paths []string
	if override := os.Getenv(EnvConfigPath); override != "" {
		if expanded, err := homedir.Expand(override); err == nil {
			override = expanded
		}
		paths = append(paths, override)
	}
	paths = append(paths, "./")
	if home, err := homedir.Dir(); err == nil {
		paths = append(paths, home)
	}
	return paths
}

var weekdayNames = map[string]time.Weekday{
	"su": time.Sunday, "sun": time.Sunday, "sunday": time.Sunday,
	"mo": time.Monday, "mon": time.Monday, "monday": time.Monday,
	"tu": time.Tuesday, "tue": time.Tuesday, "tuesday": time.Tuesday,
	"we": time.Wednesday, "wed": time.Wednesday, "wednesday": time.Wednesday,
	"th": time.Thursday, "thu": time.Thursday, "thursday": time.Thursday,
	"fr": time.Friday, "fri": time.Friday, "friday": time.Friday,
	"sa": time.Saturday, "sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekday accepts weekday names, their common abbreviations and the
// numbers 0 (Sunday) through 6.
func ParseWeekday(s string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return time.Sunday, nil
	}
	if ws, ok := weekdayNames[key]; ok {
		return ws, nil
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 0 && n <= 6 {
		return time.Weekday(n), nil
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
