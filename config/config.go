package config

import (
	"os"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	Port      string
	UploadDir string
}

// Paging limits shared by list endpoints.
const (
	DefaultLimitComments      = 20
	MaxLimitComments          = 100
	DefaultLimitPosts         = 20
	MaxLimitPosts             = 100
	DefaultLimitRecommended   = 3
	DefaultLimitPopular       = 6
	DefaultLimitNotifications = 20
	MaxLimitNotifications     = 100
)

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	return Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "inkwell"),
		Port:      getEnv("PORT", "8000"),
		UploadDir: getEnv("UPLOAD_DIR", "./public/uploads"),
	}
}
