package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultMongoURI = "mongodb://localhost:27017/orderdesk"
	defaultDBName   = "orderdesk"
	defaultPort     = "8080"
)

// Load reads a .env file if one is present. Real environment variables
// always win over file values.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}
}

func get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MongoURI returns the MongoDB connection string.
func MongoURI() string {
	return get("MONGO_URI", defaultMongoURI)
}

// DBName returns the database holding the users and orders collections.
func DBName() string {
	return get("MONGO_DB", defaultDBName)
}

// JWTSecret returns the HS256 signing key. Looked up per call so tests can
// swap it with t.Setenv.
func JWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

// Port returns the HTTP listen port.
func Port() string {
	return get("PORT", defaultPort)
}
