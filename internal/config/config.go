package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	MongoURI     string
	DatabaseName string
}

func Load() AppConfig {
	_ = godotenv.Load() // load .env if present
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	uri := os.Getenv("MONGODB_URL")
	if uri == "" {
		log.Fatal("missing required env: MONGODB_URL")
	}
	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		name = "hrms_lite"
	}
	return AppConfig{
		Port:         port,
		MongoURI:     uri,
		DatabaseName: name,
	}
}
