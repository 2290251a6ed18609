package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigName is the config file basename without extension.
	DefaultConfigName = "notify-config"
	// DefaultConfigFile is the full config file name.
	DefaultConfigFile = "notify-config.json"
	// DefaultSoundFile is the sound played when none is configured.
	DefaultSoundFile = "/System/Library/Sounds/Glass.aiff"
)

// Load reads notify-config.json from the first existing search path and
// returns a populated Config. An explicit configPath overrides the search.
// Absence of any config file is not an error: the returned Config then
// carries the in-memory defaults (local channels only).
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(DefaultConfigName)
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !isNotExist(err) {
			// A config file exists but could not be parsed.
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Default returns the minimal in-memory configuration used when no config
// file can be loaded: local channels only, nothing that needs credentials.
func Default() *Config {
	return &Config{
		Channels: ChannelsConfig{
			Sound: SoundConfig{Enabled: true, File: DefaultSoundFile},
			MacOS: MacOSConfig{Enabled: true},
		},
	}
}

// Path returns the effective config file path: the override if given, else
// the first existing search candidate, else the user-level default.
func Path(override string) string {
	if override != "" {
		return override
	}
	candidates := make([]string, 0, 2)
	for _, dir := range searchDirs() {
		candidates = append(candidates, filepath.Join(dir, DefaultConfigFile))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return DefaultConfigFile
}

// searchDirs returns the config search directories in priority order:
// the user-level ~/.claude directory, then the directory the binary was
// installed to (for a bundled default config).
func searchDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".claude"))
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return dirs
}

// setDefaults populates viper with the out-of-the-box channel settings.
func setDefaults(v *viper.Viper) {
	v.SetDefault("channels.sound.enabled", true)
	v.SetDefault("channels.sound.file", DefaultSoundFile)
	v.SetDefault("channels.macos_notification.enabled", true)
	v.SetDefault("channels.email.smtp_port", 587)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
