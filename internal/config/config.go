package config

import "os"

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port              string
	StoreDriver       string
	MongoURI          string
	MongoDB           string
	PostgresDSN       string
	SecretAccessKey   string
	DefaultProfileImg string
}

func Load() *Config {
	return &Config{
		Port:              getenv("PORT", "3000"),
		StoreDriver:       getenv("STORE_DRIVER", "mongo"),
		MongoURI:          getenv("DB_LOCATION", "mongodb://localhost:27017"),
		MongoDB:           getenv("MONGO_DB", "blog"),
		PostgresDSN:       getenv("POSTGRES_DSN", ""),
		SecretAccessKey:   getenv("SECRET_ACCESS_KEY", ""),
		DefaultProfileImg: getenv("DEFAULT_PROFILE_IMG", ""),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
