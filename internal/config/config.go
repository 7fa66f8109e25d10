package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Records  RecordsConfig
	Export   ExportConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings. An empty Path uses an in-memory store.
type DatabaseConfig struct {
	Path string
}

// RecordsConfig points at a YAML or JSONC fixture that replaces the database
// as the users source.
type RecordsConfig struct {
	File string
}

type ExportConfig struct {
	Dir string
}

type LogConfig struct {
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title    string
	NoColor  bool `mapstructure:"no_color"`
	Snapshot bool
	Width    int
	Height   int
}

// flagKeys maps CLI flag names onto config keys.
var flagKeys = map[string]string{
	"db":         "database.path",
	"records":    "records.file",
	"export-dir": "export.dir",
	"log-level":  "log.level",
	"no-color":   "ui.no_color",
	"snapshot":   "ui.snapshot",
}

// RegisterFlags adds the CLI flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default $XDG_CONFIG_HOME/jaskui/config.toml)")
	fs.String("db", "", "sqlite database path")
	fs.String("records", "", "load users from a .yaml or .jsonc file instead of the database")
	fs.String("export-dir", "", "directory for CSV/HTML exports")
	fs.String("log-level", "", "minimum level shown in the status bar (debug, info, warn, error)")
	fs.Bool("no-color", false, "disable colors")
	fs.Bool("snapshot", false, "render one frame to stdout and exit")
}

// Dir returns the config directory, honoring XDG_CONFIG_HOME.
func Dir() string {
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, "jaskui")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "jaskui")
}

// DataDir returns the data directory, honoring XDG_DATA_HOME.
func DataDir() string {
	if x := os.Getenv("XDG_DATA_HOME"); x != "" {
		return filepath.Join(x, "jaskui")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskui")
}

// Path is the config file Load reads: --config, then JASKUI_CONFIG, then
// the default location.
func Path(fs *pflag.FlagSet) string {
	if fs != nil {
		if p, err := fs.GetString("config"); err == nil && p != "" {
			return p
		}
	}
	if p := os.Getenv("JASKUI_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads configuration from file, env and flags, in increasing priority.
// Env var overrides use prefix JASKUI_. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(DataDir(), "jaskui.db"))
	v.SetDefault("records.file", "")
	v.SetDefault("export.dir", ".")
	v.SetDefault("log.level", "warn")
	v.SetDefault("ui.title", "jaskui")
	v.SetDefault("ui.no_color", false)
	v.SetDefault("ui.snapshot", false)
	v.SetDefault("ui.width", 100)
	v.SetDefault("ui.height", 30)

	v.SetConfigType("toml")
	v.SetConfigFile(Path(fs))

	v.SetEnvPrefix("JASKUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil && !missingConfig(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func missingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Save writes cfg to path, creating the config directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("records.file", cfg.Records.File)
	v.Set("export.dir", cfg.Export.Dir)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.no_color", cfg.UI.NoColor)
	v.Set("ui.width", cfg.UI.Width)
	v.Set("ui.height", cfg.UI.Height)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
