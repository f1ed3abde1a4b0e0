package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the .env file named by START (e.g. .env-local or .env.docker)
// and fails fast on any missing required variable.
func Load() {
	if err := godotenv.Load(os.Getenv("START")); err != nil {
		log.Fatalf("Env file not found")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatalf("JWT_SECRET is not set in environment")
	}
	if os.Getenv("MYSQL_DSN") == "" {
		log.Fatalf("MySQLDSN is not set in environment")
	}
	if os.Getenv("MONGO_URI") == "" {
		log.Fatalf("MongoURI is not set in environment")
	}
	if os.Getenv("MONGO_DB_NAME") == "" {
		log.Fatalf("MongoDB is not set in environment")
	}
}

// HTTPAddr returns the listen address, defaulting to :8082.
func HTTPAddr() string {
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		return addr
	}
	return ":8082"
}
