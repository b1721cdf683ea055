package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "TDA"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Log      LogConfig      `mapstructure:"log"`
	Export   ExportConfig   `mapstructure:"export"`
	Profiles ProfilesConfig `mapstructure:"profiles"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
}

type AnalysisConfig struct {
	Delay time.Duration `mapstructure:"delay"`
	// Seed makes scores reproducible; zero seeds from the runtime.
	Seed uint64 `mapstructure:"seed"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

type ProfilesConfig struct {
	Path    string `mapstructure:"path"`
	Default string `mapstructure:"default"`
}

type LoadOptions struct {
	// ConfigFile is an optional YAML/JSON/TOML file read by viper.
	ConfigFile string
	// DotEnvFile is loaded into the environment when present.
	DotEnvFile string
}

// SetDefaults initializes default values for every configuration key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.max_upload_bytes", int64(10<<20))

	v.SetDefault("analysis.delay", 3*time.Second)
	v.SetDefault("analysis.seed", uint64(0))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("export.dir", ".")

	v.SetDefault("profiles.path", "")
	v.SetDefault("profiles.default", "")
}

// Load reads configuration from defaults, an optional file and the
// environment, in increasing order of precedence.
func Load(opts LoadOptions) (*Config, error) {
	if opts.DotEnvFile != "" {
		if err := godotenv.Load(opts.DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", opts.DotEnvFile, err)
		}
	}

	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// the unprefixed names are kept for existing .env files
	_ = v.BindEnv("server.host", "TDA_SERVER_HOST", "SERVER_HOST")
	_ = v.BindEnv("server.port", "TDA_SERVER_PORT", "SERVER_PORT")

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Analysis.Delay < 0 {
		return fmt.Errorf("invalid analysis.delay: %s", c.Analysis.Delay)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("invalid server.max_upload_bytes: %d", c.Server.MaxUploadBytes)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %s", c.Log.Level)
	}
	return nil
}

// Logger builds the root logger described by the configuration.
func (c LogConfig) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if c.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
