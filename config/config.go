package config

import (
	"errors"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/angeloszaimis/wasi-qr-router/internal/httpserver"
	"github.com/angeloszaimis/wasi-qr-router/internal/qr"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	GreetingPath = "/hello"
	QRPath       = "/qr"
)

const DefaultGreeting = "Hello from Go in a web WASI worker!"

type ServerConfig struct {
	Address     string `mapstructure:"address"`
	Environment string `mapstructure:"environment"`
}

type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	AddSource bool   `mapstructure:"add_source"`
}

type RoutesConfig struct {
	WarmupPath string `mapstructure:"warmup_path"`
	Greeting   string `mapstructure:"greeting"`
}

type QRConfig struct {
	Engine string `mapstructure:"engine"`
	Scale  int    `mapstructure:"scale"`
	Border int    `mapstructure:"border"`
}

type MetricsConfig struct {
	Address string `mapstructure:"address"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Routes  RoutesConfig  `mapstructure:"routes"`
	QR      QRConfig      `mapstructure:"qr"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// Load reads defaults, then config.yaml from ./config or the working
// directory if present, then environment variables.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, err
		}
		slog.Info("config file not found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", slog.String("file", v.ConfigFileUsed()))
	}

	return decode(v)
}

// LoadEnv reads defaults and environment variables only. WASI guests have no
// config file to read.
func LoadEnv() (*Config, error) {
	return decode(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.environment", EnvDev)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", LogLevelInfo)
	v.SetDefault("logging.add_source", false)
	v.SetDefault("routes.warmup_path", "/")
	v.SetDefault("routes.greeting", DefaultGreeting)
	v.SetDefault("qr.engine", qr.EngineRSC)
	v.SetDefault("qr.scale", 4)
	v.SetDefault("qr.border", 4)
	v.SetDefault("metrics.address", "")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Server,
			validation.Required,
			validation.By(func(value interface{}) error {
				sc, ok := value.(ServerConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a ServerConfig")
				}
				return validation.ValidateStruct(&sc,
					validation.Field(&sc.Environment,
						validation.Required,
						validation.In(EnvDev, EnvStaging, EnvProd),
					),
					validation.Field(&sc.Address,
						validation.Required,
						validation.By(httpserver.ValidateAddress),
					),
				)
			}),
		),
		validation.Field(&c.Logging,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
					),
				)
			}),
		),
		validation.Field(&c.Routes,
			validation.Required,
			validation.By(func(value interface{}) error {
				rc, ok := value.(RoutesConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a RoutesConfig")
				}
				return validation.ValidateStruct(&rc,
					validation.Field(&rc.WarmupPath,
						validation.Required,
						validation.By(validateWarmupPath),
					),
					validation.Field(&rc.Greeting, validation.Required),
				)
			}),
		),
		validation.Field(&c.QR,
			validation.Required,
			validation.By(func(value interface{}) error {
				qc, ok := value.(QRConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a QRConfig")
				}
				return validation.ValidateStruct(&qc,
					validation.Field(&qc.Engine,
						validation.Required,
						validation.In(engineChoices()...),
					),
					validation.Field(&qc.Scale,
						validation.Required,
						validation.Min(1),
						validation.Max(64),
					),
					validation.Field(&qc.Border,
						validation.Min(0),
						validation.Max(16),
					),
				)
			}),
		),
		validation.Field(&c.Metrics,
			validation.By(func(value interface{}) error {
				mc, ok := value.(MetricsConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a MetricsConfig")
				}
				return validation.ValidateStruct(&mc,
					validation.Field(&mc.Address,
						validation.When(mc.Address != "", validation.By(httpserver.ValidateAddress)),
					),
				)
			}),
		),
	)
}

func engineChoices() []interface{} {
	engines := qr.Engines()
	choices := make([]interface{}, len(engines))
	for i, e := range engines {
		choices[i] = e
	}
	return choices
}

func validateWarmupPath(value interface{}) error {
	path, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if !strings.HasPrefix(path, "/") {
		return validation.NewError("validation_invalid_path", "path must start with /")
	}

	switch strings.ToLower(path) {
	case GreetingPath, QRPath:
		return validation.NewError("validation_reserved_path", "path is already routed")
	}

	return nil
}
