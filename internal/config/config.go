package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix              = "ICIBM_WEB"
	defaultPort            = "8080"
	defaultEdition         = 2025
	defaultBaseURL         = "http://localhost:8080"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
)

// ErrConfigFileRead wraps failures reading an explicit config file.
var ErrConfigFileRead = errors.New("config: read config file")

// Config captures runtime settings for the web server.
type Config struct {
	Addr            string
	Edition         int
	EditionFile     string
	BaseURL         string
	TemplatesDir    string
	Dev             bool
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Load resolves configuration with precedence defaults < config file < environment < flags.
// args excludes the program name.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("icibm-web", pflag.ContinueOnError)
	fs.String("config", "", "optional config file (yaml, toml or json)")
	fs.String("addr", "", "HTTP listen address")
	fs.Int("edition", defaultEdition, "conference edition (year) to serve")
	fs.String("edition-file", "", "load the edition from a YAML file instead of the embedded data")
	fs.String("base-url", defaultBaseURL, "absolute base URL used for canonical links and the sitemap")
	fs.String("templates", "", "templates directory (overrides embedded templates)")
	fs.Bool("dev", false, "reparse templates per request and disable the page cache")
	fs.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	fs.Duration("shutdown-timeout", defaultShutdownTimeout, "graceful shutdown timeout")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("addr", ":"+defaultListenPort())
	v.SetDefault("edition", defaultEdition)
	v.SetDefault("base_url", defaultBaseURL)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("shutdown_timeout", defaultShutdownTimeout)
	v.SetDefault("dev", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file, _ := fs.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w %s: %v", ErrConfigFileRead, file, err)
		}
	}

	// flag names use hyphens, config keys use underscores
	bindings := map[string]string{
		"addr":             "addr",
		"edition":          "edition",
		"edition_file":     "edition-file",
		"base_url":         "base-url",
		"templates":        "templates",
		"dev":              "dev",
		"log_level":        "log-level",
		"shutdown_timeout": "shutdown-timeout",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("config: bind flag %s: %w", flag, err)
		}
	}

	cfg := Config{
		Addr:            strings.TrimSpace(v.GetString("addr")),
		Edition:         v.GetInt("edition"),
		EditionFile:     strings.TrimSpace(v.GetString("edition_file")),
		BaseURL:         strings.TrimRight(strings.TrimSpace(v.GetString("base_url")), "/"),
		TemplatesDir:    strings.TrimSpace(v.GetString("templates")),
		Dev:             v.GetBool("dev"),
		LogLevel:        strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":" + defaultListenPort()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that would prevent the server from starting.
func (c Config) Validate() error {
	var problems []string
	if c.Edition <= 0 && c.EditionFile == "" {
		problems = append(problems, "edition must be a positive year")
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, "shutdown timeout must be positive")
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("base url %q must be absolute", c.BaseURL))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// defaultListenPort honours Cloud Run's PORT when ICIBM_WEB_ADDR is unset.
func defaultListenPort() string {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		return port
	}
	return defaultPort
}
