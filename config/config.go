package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const defaultJWTKey = "defaultSecret"

// Config holds application configuration
type Config struct {
	Env  string `envconfig:"ENV" default:"production"`
	Port string `envconfig:"PORT" default:"3000"`

	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite"` // sqlite or postgres
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"lms.db"`

	JWTKey string `envconfig:"JWT_SECRET_KEY" default:"defaultSecret"`

	// Base URL uploaded files are served from
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"local"` // local or s3
	UploadDir     string `envconfig:"UPLOAD_DIR" default:"./public/uploads"`
	S3Bucket      string `envconfig:"S3_BUCKET"`
	S3Region      string `envconfig:"S3_REGION" default:"us-east-1"`
	S3Endpoint    string `envconfig:"S3_ENDPOINT"`
	S3AccessKey   string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey   string `envconfig:"S3_SECRET_KEY"`

	SendgridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	MailFrom       string `envconfig:"MAIL_FROM" default:"noreply@localhost"`
	AppName        string `envconfig:"APP_NAME" default:"LMS"`
	NotifySchedule string `envconfig:"NOTIFY_SCHEDULE" default:"@every 1m"`

	// Client side (authoring scripts)
	APIBaseURL string        `envconfig:"API_BASE_URL" default:"http://localhost:3000"`
	APIToken   string        `envconfig:"API_TOKEN"`
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"15s"`
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	AppConfig = cfg

	if AppConfig.JWTKey == defaultJWTKey {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.StorageDriver == "s3" && AppConfig.S3Bucket == "" {
		log.Println("Warning: STORAGE_DRIVER=s3 without S3_BUCKET; uploads will fail.")
	}
}

// Load reads the environment into a fresh Config without touching AppConfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
