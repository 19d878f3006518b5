package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"tracker_orders/internal/domain/entities"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "ORDERS_"

// Store drivers.
const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		Env      string `koanf:"env"`
		HTTPAddr string `koanf:"http_addr"`
		LogLevel string `koanf:"log_level"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	Store struct {
		Driver string `koanf:"driver"`
	} `koanf:"store"`

	AWS struct {
		Region          string `koanf:"region"`
		Endpoint        string `koanf:"endpoint"`
		AccessKeyID     string `koanf:"access_key_id"`
		SecretAccessKey string `koanf:"secret_access_key"`
		SessionToken    string `koanf:"session_token"`
		OrdersTable     string `koanf:"orders_table"`
	} `koanf:"aws"`

	Postgres struct {
		DSN             string        `koanf:"dsn"`
		MaxOpenConns    int           `koanf:"max_open_conns"`
		MaxIdleConns    int           `koanf:"max_idle_conns"`
		ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	} `koanf:"postgres"`

	Redis struct {
		Enabled  bool          `koanf:"enabled"`
		Addr     string        `koanf:"addr"`
		Password string        `koanf:"password"`
		DB       int           `koanf:"db"`
		TTL      time.Duration `koanf:"ttl"`
	} `koanf:"redis"`

	Payments struct {
		MercadoPagoAccessToken string `koanf:"mercadopago_access_token"`
		Mock                   bool   `koanf:"mock"`
	} `koanf:"payments"`

	Currencies entities.CurrencyTable `koanf:"currencies"`
}

// Load reads <dir>/base.yaml, the optional <dir>/<envName>.yaml and then the
// ORDERS_ environment overlay (nested keys separated by __, e.g.
// ORDERS_AWS__ORDERS_TABLE).
func Load(dir, envName string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", dir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	if envName != "" {
		path := fmt.Sprintf("%s/%s.yaml", dir, envName)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", envName, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	cfg.Currencies = normalizeCurrencies(cfg.Currencies)
	if cfg.Payments.MercadoPagoAccessToken == "" {
		cfg.Payments.MercadoPagoAccessToken = os.Getenv("MERCADOPAGO_ACCESS_TOKEN")
	}
	if envName != "" && cfg.App.Env == "" {
		cfg.App.Env = envName
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	switch c.Store.Driver {
	case StoreDynamoDB:
		if c.AWS.Region == "" {
			return fmt.Errorf("aws.region required for store.driver=%s", StoreDynamoDB)
		}
		if c.AWS.OrdersTable == "" {
			return fmt.Errorf("aws.orders_table required for store.driver=%s", StoreDynamoDB)
		}
	case StorePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn required for store.driver=%s", StorePostgres)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("store.driver must be one of %s, %s, %s (got %q)", StoreDynamoDB, StorePostgres, StoreMemory, c.Store.Driver)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr required when redis.enabled")
	}
	if c.Redis.Enabled && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be positive when redis.enabled")
	}
	for country, cur := range c.Currencies {
		if cur.Code == "" {
			return fmt.Errorf("currencies.%s.code required", country)
		}
		if cur.Rate < 0 {
			return fmt.Errorf("currencies.%s.rate must not be negative", country)
		}
	}
	return nil
}

func normalizeCurrencies(in entities.CurrencyTable) entities.CurrencyTable {
	if in == nil {
		return nil
	}
	out := make(entities.CurrencyTable, len(in))
	for country, cur := range in {
		out[strings.ToUpper(strings.TrimSpace(country))] = cur
	}
	return out
}
