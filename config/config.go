package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverMongo    = "mongo"
	DBDriverMemory   = "memory"

	LockDriverLocal = "local"
	LockDriverRedis = "redis"
)

type Config struct {
	Environment string
	Name        string
	Version     string
	LogLevel    string
	DBDriver    string
	LockDriver  string
	HTTP        HTTPConfig
	Postgres    PostgresConfig
	Mongo       MongoConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	JWT         JWTConfig
	S3          S3Config
	CORS        CORSConfig
	RateLimit   RateLimitConfig
}

type HTTPConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxHeaderMB    int
	MaxBodyMB      int
	MigrationsPath string
}

type PostgresConfig struct {
	Host               string
	Port               string
	Username           string
	Password           string
	DBName             string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	MaxLifetime        time.Duration
}

type MongoConfig struct {
	URI    string
	DBName string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	LockTTL  time.Duration
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type JWTConfig struct {
	SigningKey   string
	TokenTTL     time.Duration
	CookieName   string
	CookieSecure bool
}

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
	PresignExpiry   time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

func NewConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	httpReadTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("HTTP_READ_TIMEOUT: %w", err)
	}

	httpWriteTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("HTTP_WRITE_TIMEOUT: %w", err)
	}

	postgresMaxLifetime, err := time.ParseDuration(getEnv("POSTGRES_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("POSTGRES_MAX_LIFETIME: %w", err)
	}

	jwtTokenTTL, err := time.ParseDuration(getEnv("JWT_TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("JWT_TOKEN_TTL: %w", err)
	}

	redisLockTTL, err := time.ParseDuration(getEnv("REDIS_LOCK_TTL", "5s"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_LOCK_TTL: %w", err)
	}

	presignExpiry, err := time.ParseDuration(getEnv("S3_PRESIGN_EXPIRY", "15m"))
	if err != nil {
		return nil, fmt.Errorf("S3_PRESIGN_EXPIRY: %w", err)
	}

	cfg := &Config{
		Environment: getEnv("APP_ENV", "development"),
		Name:        getEnv("APP_NAME", "legalease"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", DBDriverPostgres)),
		LockDriver:  strings.ToLower(getEnv("LOCK_DRIVER", LockDriverLocal)),
		HTTP: HTTPConfig{
			Port:           getEnv("HTTP_PORT", "5001"),
			ReadTimeout:    httpReadTimeout,
			WriteTimeout:   httpWriteTimeout,
			MaxHeaderMB:    getEnvAsInt("HTTP_MAX_HEADER_MB", 1),
			MaxBodyMB:      getEnvAsInt("HTTP_MAX_BODY_MB", 10),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		},
		Postgres: PostgresConfig{
			Host:               getEnv("POSTGRES_HOST", "localhost"),
			Port:               getEnv("POSTGRES_PORT", "5432"),
			Username:           getEnv("POSTGRES_USER", "postgres"),
			Password:           getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:             getEnv("POSTGRES_DB", "legalease"),
			SSLMode:            getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConnections:     getEnvAsInt("POSTGRES_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("POSTGRES_MAX_IDLE_CONNECTIONS", 5),
			MaxLifetime:        postgresMaxLifetime,
		},
		Mongo: MongoConfig{
			URI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
			DBName: getEnv("MONGO_DB", "legalease"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			LockTTL:  redisLockTTL,
		},
		RabbitMQ: RabbitMQConfig{
			URL:      getEnv("RABBITMQ_URL", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", "legalease.events"),
		},
		JWT: JWTConfig{
			SigningKey:   getEnv("JWT_SIGNING_KEY", "your_secret_key"),
			TokenTTL:     jwtTokenTTL,
			CookieName:   getEnv("JWT_COOKIE_NAME", "token"),
			CookieSecure: getEnvAsBool("JWT_COOKIE_SECURE", true),
		},
		S3: S3Config{
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			Region:          getEnv("S3_REGION", "us-east-1"),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			Bucket:          getEnv("S3_BUCKET", "legalease"),
			UseSSL:          getEnvAsBool("S3_USE_SSL", true),
			PresignExpiry:   presignExpiry,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
	}

	switch cfg.DBDriver {
	case DBDriverPostgres, DBDriverMongo, DBDriverMemory:
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	switch cfg.LockDriver {
	case LockDriverLocal, LockDriverRedis:
	default:
		return nil, fmt.Errorf("unknown LOCK_DRIVER %q", cfg.LockDriver)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := 0
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.ToLower(os.Getenv(key))
	switch valueStr {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
