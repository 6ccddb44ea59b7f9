package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	PostgresURL        string
	MongoURI           string
	DBName             string
	Environment        string
	AppId              string
	ExportDir          string // Physical directory for generated export files
	StatementTimeoutMS int    // Upper bound for a single shipment statement
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		PostgresURL:        getEnv("POSTGRES_URL", "postgres://localhost:5432/shipments?sslmode=disable"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:             getEnv("DB_NAME", "go-shipdata"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		AppId:              getEnv("APP_ID", "go-shipdata"),
		ExportDir:          getEnv("EXPORT_DIR", os.TempDir()),
		StatementTimeoutMS: getEnvInt("STATEMENT_TIMEOUT_MS", 30000),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
