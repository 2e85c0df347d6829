package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config captures all runtime configuration derived from environment variables.
type Config struct {
	Port              string `koanf:"port" validate:"required"`
	AuthToken         string `koanf:"auth_token" validate:"required"`
	DBURL             string `koanf:"db_url" validate:"required"`
	ReadTimeoutSecs   int    `koanf:"server_read_timeout" validate:"gt=0"`
	WriteTimeoutSecs  int    `koanf:"server_write_timeout" validate:"gt=0"`
	IdleTimeoutSecs   int    `koanf:"server_idle_timeout" validate:"gte=0"`
	DBMaxConns        int    `koanf:"db_max_conns" validate:"gt=0"`
	DBMinConns        int    `koanf:"db_min_conns" validate:"gte=0,ltefield=DBMaxConns"`
	DBMaxIdleSecs     int    `koanf:"db_max_conn_idle_secs" validate:"gte=0"`
	DBMaxLifeSecs     int    `koanf:"db_max_conn_lifetime_secs" validate:"gte=0"`
	DBConnTimeoutSecs int    `koanf:"db_conn_timeout_secs" validate:"gte=0"`
	// DBStatementCache of 0 leaves the pgx defaults in place.
	DBStatementCache  int    `koanf:"db_statement_cache_capacity" validate:"gte=0"`
	DBQueryLog        bool   `koanf:"db_query_log"`
	LogLevel          string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat         string `koanf:"log_format" validate:"oneof=json console"`
}

func defaults() Config {
	return Config{
		Port:              "8080",
		ReadTimeoutSecs:   15,
		WriteTimeoutSecs:  15,
		IdleTimeoutSecs:   60,
		DBMaxConns:        20,
		DBMinConns:        2,
		DBMaxIdleSecs:     300,
		DBMaxLifeSecs:     3600,
		DBConnTimeoutSecs: 10,
		DBStatementCache:  256,
		LogLevel:          "info",
		LogFormat:         "json",
	}
}

// Load reads configuration from environment variables, applying defaults and validation.
func Load() (Config, error) {
	cfg := defaults()
	known := knownKeys(cfg)

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if _, ok := known[key]; !ok {
			return ""
		}
		// An empty variable keeps the default, matching unset.
		if os.Getenv(s) == "" {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.ToUpper(fld.Tag.Get("koanf"))
	})

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "gt":
		return fmt.Errorf("%s must be positive", fe.Field())
	case "gte":
		return fmt.Errorf("%s must be non-negative", fe.Field())
	case "ltefield":
		return fmt.Errorf("%s cannot exceed DB_MAX_CONNS", fe.Field())
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}

func knownKeys(cfg Config) map[string]struct{} {
	t := reflect.TypeOf(cfg)
	keys := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("koanf"); tag != "" {
			keys[tag] = struct{}{}
		}
	}
	return keys
}
