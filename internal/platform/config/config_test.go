package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func env(m map[string]string) lookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Store.Backend != BackendMemory || cfg.Store.RequestTimeout != 20*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg.Store)
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
store:
  backend: dynamodb
  keyspace: petclinic
  consistency: ONE
  request_timeout: 5s
  local_datacenter: us-east-1
  contact_points: ["http://localhost:8000"]
  auth:
    mode: aws-static
    username: AKID
    password: secret
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Store.Backend != BackendDynamoDB || cfg.Store.Keyspace != "petclinic" {
		t.Fatalf("yaml not applied: %+v", cfg.Store)
	}
	if cfg.Store.RequestTimeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", cfg.Store.RequestTimeout)
	}
	// lo que el yaml no toca queda en default
	if cfg.Store.SchemaAction != SchemaActionCreateIfNot {
		t.Fatalf("expected default schema action, got %s", cfg.Store.SchemaAction)
	}
}

func TestLoad_UnknownYAMLFieldFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store:\n  keyspcae: typo\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := applyEnv(&cfg, env(map[string]string{
		"PORT":                  "9090",
		"STORE_CONTACT_POINTS":  "db1, db2,,",
		"STORE_PORT":            "5433",
		"STORE_REQUEST_TIMEOUT": "2s",
		"DB_DSN":                "postgres://u:p@localhost/petclinic",
	}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Server.Address != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.Server.Address)
	}
	if strings.Join(cfg.Store.ContactPoints, "|") != "db1|db2" {
		t.Fatalf("unexpected contact points %v", cfg.Store.ContactPoints)
	}
	if cfg.Store.Port != 5433 || cfg.Store.RequestTimeout != 2*time.Second {
		t.Fatalf("unexpected store %+v", cfg.Store)
	}
	if cfg.Store.Backend != BackendPostgres || cfg.Store.DSN == "" {
		t.Fatalf("DB_DSN should select postgres")
	}
}

func TestApplyEnv_BadPort(t *testing.T) {
	cfg := Default()
	if err := applyEnv(&cfg, env(map[string]string{"STORE_PORT": "x"})); err == nil {
		t.Fatalf("expected error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad backend", func(c *Config) { c.Store.Backend = "cassandra" }, "store.backend"},
		{"bad consistency", func(c *Config) { c.Store.Consistency = "TWO" }, "store.consistency"},
		{"keyspace not identifier", func(c *Config) { c.Store.Keyspace = "pet;drop" }, "keyspace"},
		{"zero timeout", func(c *Config) { c.Store.RequestTimeout = 0 }, "requesttimeout"},
		{"password without username", func(c *Config) { c.Store.Auth.Mode = AuthPassword }, "username"},
		{"dynamodb without region", func(c *Config) {
			c.Store.Backend = BackendDynamoDB
			c.Store.LocalDatacenter = ""
		}, "local_datacenter"},
		{"postgres with aws auth", func(c *Config) {
			c.Store.Backend = BackendPostgres
			c.Store.Auth.Mode = AuthAWSDefault
		}, "not supported"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(strings.ToLower(err.Error()), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, err.Error())
			}
		})
	}
}
