// Package config carga la configuración una sola vez al arrancar:
// defaults -> archivo yaml opcional -> overrides por env -> validación.
// El resultado es inmutable; nadie lo lee de nuevo después de main.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"

	SchemaActionNone        = "NONE"
	SchemaActionCreateIfNot = "CREATE_IF_NOT_EXISTS"

	AuthNone       = "none"
	AuthPassword   = "password"
	AuthAWSDefault = "aws-default"
	AuthAWSStatic  = "aws-static"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Store  StoreConfig  `yaml:"store"`
}

type ServerConfig struct {
	Address       string        `yaml:"address" validate:"required"`
	ReadTimeout   time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout  time.Duration `yaml:"write_timeout" validate:"gt=0"`
	EnableCORS    bool          `yaml:"enable_cors"`
	EnableMetrics bool          `yaml:"enable_metrics"`
	EnableSwagger bool          `yaml:"enable_swagger"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
	App    string `yaml:"app"`
}

// StoreConfig enumera todas las opciones de la sesión contra el store.
type StoreConfig struct {
	Backend         string        `yaml:"backend" validate:"required,oneof=memory dynamodb postgres"`
	Keyspace        string        `yaml:"keyspace" validate:"required"`
	SchemaAction    string        `yaml:"schema_action" validate:"oneof=NONE CREATE_IF_NOT_EXISTS"`
	Consistency     string        `yaml:"consistency" validate:"oneof=ONE LOCAL_ONE LOCAL_QUORUM QUORUM ALL"`
	RequestTimeout  time.Duration `yaml:"request_timeout" validate:"gt=0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" validate:"gt=0"`
	ContactPoints   []string      `yaml:"contact_points"`
	Port            int           `yaml:"port" validate:"gte=0,lte=65535"`
	LocalDatacenter string        `yaml:"local_datacenter"`
	Database        string        `yaml:"database"`
	DSN             string        `yaml:"dsn"`
	SSLMode         string        `yaml:"ssl_mode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	Auth            AuthConfig    `yaml:"auth"`
}

type AuthConfig struct {
	Mode     string `yaml:"mode" validate:"oneof=none password aws-default aws-static"`
	Username string `yaml:"username" validate:"required_if=Mode password,required_if=Mode aws-static"`
	Password string `yaml:"password" validate:"required_if=Mode aws-static"`
}

// Default: backend in-memory, keyspace spring_petclinic, LOCAL_QUORUM y
// timeouts de 20s contra el store.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:       ":8080",
			ReadTimeout:   5 * time.Second,
			WriteTimeout:  25 * time.Second,
			EnableMetrics: true,
			EnableSwagger: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "pet-clinic-rowstore",
		},
		Store: StoreConfig{
			Backend:         BackendMemory,
			Keyspace:        "spring_petclinic",
			SchemaAction:    SchemaActionCreateIfNot,
			Consistency:     "LOCAL_QUORUM",
			RequestTimeout:  20 * time.Second,
			ConnectTimeout:  20 * time.Second,
			ContactPoints:   []string{"localhost"},
			LocalDatacenter: "datacenter1",
			Database:        "postgres",
			SSLMode:         "disable",
			Auth:            AuthConfig{Mode: AuthNone},
		},
	}
}

// Load arma la configuración desde path (puede no existir) y el entorno.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			if err := decodeYAML(f, &cfg); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// archivo opcional
		default:
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeYAML(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

type lookupFunc func(string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("SERVER_ADDRESS", &cfg.Server.Address)
	if v, ok := lookup("PORT"); ok && strings.TrimSpace(v) != "" {
		cfg.Server.Address = ":" + strings.TrimSpace(v)
	}

	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("APP_NAME", &cfg.Log.App)

	str("STORE_BACKEND", &cfg.Store.Backend)
	str("STORE_KEYSPACE", &cfg.Store.Keyspace)
	str("STORE_SCHEMA_ACTION", &cfg.Store.SchemaAction)
	str("STORE_CONSISTENCY", &cfg.Store.Consistency)
	str("STORE_LOCAL_DATACENTER", &cfg.Store.LocalDatacenter)
	str("STORE_USERNAME", &cfg.Store.Auth.Username)
	str("STORE_PASSWORD", &cfg.Store.Auth.Password)
	str("STORE_AUTH_MODE", &cfg.Store.Auth.Mode)

	if v, ok := lookup("STORE_CONTACT_POINTS"); ok && strings.TrimSpace(v) != "" {
		cfg.Store.ContactPoints = splitList(v)
	}
	if v, ok := lookup("STORE_PORT"); ok && strings.TrimSpace(v) != "" {
		p, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("STORE_PORT: %w", err)
		}
		cfg.Store.Port = p
	}
	if v, ok := lookup("STORE_REQUEST_TIMEOUT"); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("STORE_REQUEST_TIMEOUT: %w", err)
		}
		cfg.Store.RequestTimeout = d
	}

	// Compatibilidad: DB_DSN selecciona Postgres directamente.
	if v, ok := lookup("DB_DSN"); ok && strings.TrimSpace(v) != "" {
		cfg.Store.Backend = BackendPostgres
		cfg.Store.DSN = strings.TrimSpace(v)
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var (
	validate   = validator.New()
	keyspaceRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,47}$`)
)

// Validate corre las reglas por tag y las que dependen de más de un campo.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	s := c.Store
	if !keyspaceRe.MatchString(s.Keyspace) {
		return fmt.Errorf("config: store.keyspace %q must be an identifier", s.Keyspace)
	}
	switch s.Backend {
	case BackendPostgres:
		if s.DSN == "" && len(s.ContactPoints) == 0 {
			return errors.New("config: store.contact_points or store.dsn is required for postgres")
		}
		if s.Auth.Mode == AuthAWSDefault || s.Auth.Mode == AuthAWSStatic {
			return fmt.Errorf("config: store.auth.mode %s not supported for postgres", s.Auth.Mode)
		}
	case BackendDynamoDB:
		if s.LocalDatacenter == "" {
			return errors.New("config: store.local_datacenter (aws region) is required for dynamodb")
		}
		if s.Auth.Mode == AuthPassword {
			return errors.New("config: store.auth.mode password not supported for dynamodb")
		}
	}
	return nil
}

func formatValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	msgs := make([]string, 0, len(ves))
	for _, e := range ves {
		field := strings.ToLower(e.Namespace())
		switch e.Tag() {
		case "required", "required_if":
			msgs = append(msgs, field+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		case "gt", "gte", "lte":
			msgs = append(msgs, fmt.Sprintf("%s out of range (%s %s)", field, e.Tag(), e.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return errors.New("config: " + strings.Join(msgs, "; "))
}
