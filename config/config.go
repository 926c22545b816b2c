package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBType         string
	PostgresURL    string
	MongoURL       string
	JWTSecret      string
	AllowedOrigins []string
	StorageType    string
	UploadDir      string

	// R2 object storage (only used when StorageType == "r2")
	R2Bucket          string
	R2AccountID       string
	R2PublicURL       string
	R2AccessKeyID     string
	R2SecretAccessKey string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DBType:      os.Getenv("DB_TYPE"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		MongoURL:    os.Getenv("MONGO_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		StorageType: os.Getenv("STORAGE_TYPE"),
		UploadDir:   os.Getenv("UPLOAD_DIR"),

		R2Bucket:          os.Getenv("R2_BUCKET"),
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2PublicURL:       os.Getenv("R2_PUBLIC_URL"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBType == "" {
		cfg.DBType = "postgres"
	}
	if cfg.StorageType == "" {
		cfg.StorageType = "local"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}

	cfg.AllowedOrigins = SplitOrigins(os.Getenv("ALLOWED_ORIGINS"))
	return cfg
}

// SplitOrigins parses a comma-separated origin list, trimming blanks.
// An empty value falls back to the local dev frontend.
func SplitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"http://localhost:5173"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
