package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort  string
	CORSOrigins []string

	// Database
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBAutoMigrate bool

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RateLimit     int

	// JWT
	JWTSecret string
	JWTTTL    time.Duration

	// Audio storage: "fs", "s3" or "nats"
	AudioBackend    string
	AudioDir        string
	AudioURLBase    string
	NATSURL         string
	NATSAudioBucket string

	// AWS S3 / MinIO
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3UseSSL           string
	S3BucketName       string

	// RabbitMQ
	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQUser     string
	RabbitMQPassword string

	// TTS generation
	TTSAPIURL      string
	TTSAPIKey      string
	TTSModelID     string
	TTSTimeout     time.Duration
	TTSRatePerMin  int
	TTSPresetsPath string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "3001"),
		CORSOrigins: []string{getEnv("CORS_ORIGIN", "*")},

		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "vocalfeed"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		DBAutoMigrate: getEnvBool("DB_AUTO_MIGRATE", false),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RateLimit:     getEnvInt("RATE_LIMIT_PER_MINUTE", 100),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),

		AudioBackend:    getEnv("AUDIO_BACKEND", "fs"),
		AudioDir:        getEnv("AUDIO_DIR", "audio"),
		AudioURLBase:    getEnv("AUDIO_URL_BASE", "/api/v1/audio"),
		NATSURL:         getEnv("NATS_URL", "nats://localhost:4222"),
		NATSAudioBucket: getEnv("NATS_AUDIO_BUCKET", "audio-artifacts"),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		S3UseSSL:           getEnv("S3_USE_SSL", "true"),
		S3BucketName:       getEnv("S3_BUCKET_NAME", "vocal-feed-audio"),

		RabbitMQHost:     getEnv("RABBITMQ_HOST", ""),
		RabbitMQPort:     getEnv("RABBITMQ_PORT", "5672"),
		RabbitMQUser:     getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPassword: getEnv("RABBITMQ_PASSWORD", "guest"),

		TTSAPIURL:      getEnv("ELEVENLABS_API_URL", "https://api.elevenlabs.io/v1"),
		TTSAPIKey:      getEnv("ELEVENLABS_API_KEY", ""),
		TTSModelID:     getEnv("ELEVENLABS_MODEL_ID", "eleven_multilingual_v2"),
		TTSTimeout:     getEnvDuration("TTS_TIMEOUT", 60*time.Second),
		TTSRatePerMin:  getEnvInt("TTS_RATE_PER_MINUTE", 30),
		TTSPresetsPath: getEnv("TTS_PRESETS_PATH", ""),
	}

	return config, nil
}

// DSN returns the libpq-style connection string shared by gorm and goose.
func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
