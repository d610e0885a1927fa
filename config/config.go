package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DBUrl         string
	TokenSecret   string
	TokenTTL      time.Duration
	AdminUser     string
	AdminPassword string
	Retention     time.Duration
	RetentionSpec string
	LogoURL       string
	LogFormat     string
	Debug         bool
}

// ArchiveEnabled reports whether submissions are stored besides being logged.
func (cfg Config) ArchiveEnabled() bool {
	return cfg.DBUrl != ""
}

// ParseFlags loads an optional .env file, then parses the command line.
// Every flag defaults to its INTAKE_* environment variable.
func ParseFlags() (Config, error) {
	// a missing .env is fine, variables already set are kept
	_ = godotenv.Load()
	return Parse(os.Args[1:])
}

func Parse(args []string) (cfg Config, err error) {
	fs := flag.NewFlagSet("intake", flag.ContinueOnError)

	var host string
	fs.StringVar(&host, "host", env("INTAKE_HOST", "0.0.0.0"), "listen host name")
	var port uint
	fs.UintVar(&port, "port", envUint("INTAKE_PORT", 8080), "listen port number")
	fs.StringVar(&cfg.DBUrl, "db-url", env("INTAKE_DB_URL", ""), "path to SQLite3 archive file (empty disables the archive)")
	fs.StringVar(&cfg.TokenSecret, "token-secret", env("INTAKE_TOKEN_SECRET", ""), "secret key for admin token encryption")
	var ttl uint
	fs.UintVar(&ttl, "token-ttl", envUint("INTAKE_TOKEN_TTL", 120), "admin token TTL in seconds")
	fs.StringVar(&cfg.AdminUser, "admin-user", env("INTAKE_ADMIN_USER", "admin"), "admin user name")
	fs.StringVar(&cfg.AdminPassword, "admin-password", env("INTAKE_ADMIN_PASSWORD", ""), "admin password (empty keeps the stored one)")
	fs.DurationVar(&cfg.Retention, "retention", envDuration("INTAKE_RETENTION", 0), "delete archived submissions older than this (0 keeps them)")
	fs.StringVar(&cfg.RetentionSpec, "retention-spec", env("INTAKE_RETENTION_SPEC", "@daily"), "cron spec of the retention sweep")
	fs.StringVar(&cfg.LogoURL, "logo-url", env("INTAKE_LOGO_URL", "/static/logo.svg"), "URL of the branding logo")
	fs.StringVar(&cfg.LogFormat, "log-format", env("INTAKE_LOG_FORMAT", "text"), "log output format: text or json")
	fs.BoolVar(&cfg.Debug, "debug", env("INTAKE_DEBUG", "") == "true", "log at DEBUG level")

	err = fs.Parse(args)
	if err != nil {
		return
	}

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.TokenTTL = time.Duration(ttl) * time.Second

	switch {
	case cfg.LogFormat != "text" && cfg.LogFormat != "json":
		err = fmt.Errorf("invalid -log-format %q", cfg.LogFormat)
	case cfg.ArchiveEnabled() && cfg.TokenSecret == "":
		err = errors.New("missing parameter -token-secret (required with -db-url)")
	case cfg.Retention < 0:
		err = errors.New("-retention must not be negative")
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envUint(key string, fallback uint) uint {
	v, err := strconv.ParseUint(env(key, ""), 10, 32)
	if err != nil {
		return fallback
	}
	return uint(v)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(env(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
