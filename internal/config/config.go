package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LemmyBaseURL        string
	AuthToken           string
	Username            string
	Password            string
	ProxyURL            string
	UserAgent           string
	DefaultPostLimit    int64
	DefaultCommentLimit int64
	ServerPort          string
	RequestTimeout      time.Duration
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	LogLevel            string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	baseURL := os.Getenv("LEMMY_BASE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("LEMMY_BASE_URL environment variable is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid LEMMY_BASE_URL %q: must include scheme and host", baseURL)
	}

	if proxyURL := os.Getenv("LEMMY_PROXY_URL"); proxyURL != "" {
		if _, err := url.Parse(proxyURL); err != nil {
			return nil, fmt.Errorf("invalid LEMMY_PROXY_URL %s: %w", proxyURL, err)
		}
	}

	username := os.Getenv("LEMMY_USERNAME")
	password := os.Getenv("LEMMY_PASSWORD")
	if (username == "") != (password == "") {
		return nil, fmt.Errorf("LEMMY_USERNAME and LEMMY_PASSWORD must be set together")
	}

	return &Config{
		LemmyBaseURL:        baseURL,
		AuthToken:           os.Getenv("LEMMY_AUTH_TOKEN"),
		Username:            username,
		Password:            password,
		ProxyURL:            os.Getenv("LEMMY_PROXY_URL"),
		UserAgent:           getEnv("USER_AGENT", "lemmy-ingestion/1.0"),
		DefaultPostLimit:    getEnvInt64("INGEST_DEFAULT_POST_LIMIT", 25),
		DefaultCommentLimit: getEnvInt64("INGEST_DEFAULT_COMMENT_LIMIT", 300),
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		RequestTimeout:      getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		ReadTimeout:         getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
