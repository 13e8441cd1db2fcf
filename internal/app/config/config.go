package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	Cache       CacheConfig
	JWT         JWTConfig
	Redis       RedisConfig
	MinIO       MinIOConfig
}

type CacheConfig struct {
	PageTTL time.Duration // TTL страничного кэша списков
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envJWTSecret = "JWT_SECRET"

	envMinIOEndpoint  = "MINIO_ENDPOINT"
	envMinIOAccessKey = "MINIO_ACCESS_KEY"
	envMinIOSecretKey = "MINIO_SECRET_KEY"
	envMinIOBucket    = "MINIO_BUCKET"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// TTL страничного кэша (10 минут по умолчанию)
	if cfg.Cache.PageTTL == 0 {
		cfg.Cache.PageTTL = 10 * time.Minute
	}

	// JWT конфигурация, секрет берём из окружения
	secret := os.Getenv(envJWTSecret)
	if secret == "" {
		return nil, fmt.Errorf("%s is not set", envJWTSecret)
	}
	cfg.JWT = JWTConfig{
		Token:         secret,
		ExpiresIn:     time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}

	// Redis конфигурация из env
	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
	if err != nil {
		return nil, fmt.Errorf("redis port must be int value: %w", err)
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	// MinIO конфигурация из env (опционально, без него загрузка фото отключена)
	cfg.MinIO.Endpoint = os.Getenv(envMinIOEndpoint)
	cfg.MinIO.AccessKey = os.Getenv(envMinIOAccessKey)
	cfg.MinIO.SecretKey = os.Getenv(envMinIOSecretKey)
	cfg.MinIO.Bucket = os.Getenv(envMinIOBucket)
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = "testimonials"
	}

	log.Info("config parsed")

	return cfg, nil
}
