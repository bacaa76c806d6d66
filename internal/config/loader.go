package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix     = "TALENT_"
	EnvConfigFile = "TALENT_CONFIG"
)

var ErrMissingRequired = errors.New("missing required configuration")

// Load layers, low to high: New() defaults, the YAML file named by
// TALENT_CONFIG, then TALENT_* env vars. A double underscore separates
// levels, so TALENT_APP__HTTP_PORT sets app.http_port.
func Load() (Config, error) {
	k := koanf.New(".")

	if path := strings.TrimSpace(os.Getenv(EnvConfigFile)); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var missing []string
	req := func(key, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, key)
		}
	}

	req("app.name", c.App.AppName)
	req("app.http_port", c.App.HTTPPort)
	req("database.host", c.Database.DBHost)
	req("database.name", c.Database.DBName)
	req("jwt.access_secret", c.JWT.AccessSecret)
	req("jwt.refresh_secret", c.JWT.RefreshSecret)
	if c.Seed.RunOnStart {
		req("seed.admin_email", c.Seed.AdminEmail)
		req("seed.admin_password", c.Seed.AdminPassword)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}
	if c.JWT.AccessExpiresIn <= 0 || c.JWT.RefreshExpiresIn <= 0 {
		return fmt.Errorf("%w: jwt expiry must be positive", ErrMissingRequired)
	}
	return nil
}
