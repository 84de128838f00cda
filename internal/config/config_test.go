package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "STORE_DRIVER", "DB_LOCATION", "MONGO_DB",
		"POSTGRES_DSN", "SECRET_ACCESS_KEY", "DEFAULT_PROFILE_IMG",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "3000" {
		t.Errorf("Port: got %q, want %q", cfg.Port, "3000")
	}
	if cfg.StoreDriver != "mongo" {
		t.Errorf("StoreDriver: got %q, want %q", cfg.StoreDriver, "mongo")
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI: got %q", cfg.MongoURI)
	}
	if cfg.SecretAccessKey != "" {
		t.Errorf("SecretAccessKey: got %q, want empty", cfg.SecretAccessKey)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/users")
	t.Setenv("SECRET_ACCESS_KEY", "s3cret")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port: got %q, want %q", cfg.Port, "8080")
	}
	if cfg.StoreDriver != "postgres" {
		t.Errorf("StoreDriver: got %q, want %q", cfg.StoreDriver, "postgres")
	}
	if cfg.PostgresDSN != "postgres://localhost/users" {
		t.Errorf("PostgresDSN: got %q", cfg.PostgresDSN)
	}
	if cfg.SecretAccessKey != "s3cret" {
		t.Errorf("SecretAccessKey: got %q", cfg.SecretAccessKey)
	}
}
