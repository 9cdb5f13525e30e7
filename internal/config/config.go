package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host           string
	Port           string
	Mode           string
	AllowedOrigins []string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Recommender struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration

	// Consecutive failures that open the breaker, and how long it stays open.
	BreakerFailures int
	BreakerCooldown time.Duration
}

// Enabled reports whether the external recommendation step should be attempted.
func (r Recommender) Enabled() bool {
	return r.APIKey != "" && r.BaseURL != ""
}

type FallbackMode string

const (
	// Widen the pool with a random draw from the full catalog.
	FallbackRandomSample FallbackMode = "random_sample"
	// Report insufficient candidates to the caller.
	FallbackFail FallbackMode = "fail"
	// Rematch without decade and genre-preference filters.
	FallbackRelax FallbackMode = "relax"
)

type FallbackPolicy struct {
	Threshold  int
	Mode       FallbackMode
	SampleSize int
}

type RatingSource string

const (
	RatingSourceMovieThenGenre RatingSource = "movie_then_genre"
	RatingSourceMovie          RatingSource = "movie"
	RatingSourceGenre          RatingSource = "genre"
)

func (s RatingSource) Valid() bool {
	switch s {
	case RatingSourceMovieThenGenre, RatingSourceMovie, RatingSourceGenre:
		return true
	}
	return false
}

type Selection struct {
	FinalSize    int
	RatedSlots   int
	PreSortLimit int
	RatingSource RatingSource

	Suite2    FallbackPolicy
	Suite3    FallbackPolicy
	Streaming FallbackPolicy
}

type Config struct {
	HTTP        HTTPServer
	Redis       RedisCache
	Postgres    Postgres
	Recommender Recommender
	Selection   Selection
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	return FromEnv()
}

// FromEnv builds the config from the current process environment only.
func FromEnv() *Config {
	cfg := &Config{
		HTTP:        *newHTTP(),
		Redis:       *newRedis(),
		Postgres:    *newPostgres(),
		Recommender: *newRecommender(),
		Selection:   *newSelection(),
	}
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port:           getenv("HTTP_PORT", "8080"),
		Host:           getenv("HTTP_HOST", "localhost"),
		Mode:           getenv("HTTP_MODE", "RW"),
		AllowedOrigins: splitList(getenv("HTTP_ALLOWED_ORIGINS", "*")),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
		TTL:      getDuration("REDIS_TTL", 24*time.Hour),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "popcorn"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newRecommender() *Recommender {
	return &Recommender{
		BaseURL:     getenv("RECOMMENDER_BASE_URL", "https://api.openai.com"),
		APIKey:      getsecret("RECOMMENDER_API_KEY"),
		Model:       getenv("RECOMMENDER_MODEL", "gpt-3.5-turbo-1106"),
		Temperature: getFloat("RECOMMENDER_TEMPERATURE", 0.7),
		Timeout:     getDuration("RECOMMENDER_TIMEOUT", 10*time.Second),

		BreakerFailures: getInt("RECOMMENDER_BREAKER_FAILURES", 3),
		BreakerCooldown: getDuration("RECOMMENDER_BREAKER_COOLDOWN", 30*time.Second),
	}
}

func newSelection() *Selection {
	return &Selection{
		FinalSize:    getInt("SELECTION_FINAL_SIZE", 5),
		RatedSlots:   getInt("SELECTION_RATED_SLOTS", 3),
		PreSortLimit: getInt("SELECTION_PRESORT_LIMIT", 50),
		RatingSource: getRatingSource("SELECTION_RATING_SOURCE", RatingSourceMovieThenGenre),
		Suite2: FallbackPolicy{
			Threshold:  getInt("SUITE2_FALLBACK_THRESHOLD", 10),
			Mode:       FallbackRandomSample,
			SampleSize: getInt("SUITE2_RANDOM_SAMPLE", 500),
		},
		Suite3: FallbackPolicy{
			Threshold: getInt("SUITE3_MIN_CANDIDATES", 5),
			Mode:      FallbackFail,
		},
		Streaming: FallbackPolicy{
			Threshold: getInt("STREAMING_MIN_CANDIDATES", 5),
			Mode:      FallbackRelax,
		},
	}
}

// DefaultSelection returns the selection policy without consulting the environment.
func DefaultSelection() Selection {
	return Selection{
		FinalSize:    5,
		RatedSlots:   3,
		PreSortLimit: 50,
		RatingSource: RatingSourceMovieThenGenre,
		Suite2:       FallbackPolicy{Threshold: 10, Mode: FallbackRandomSample, SampleSize: 500},
		Suite3:       FallbackPolicy{Threshold: 5, Mode: FallbackFail},
		Streaming:    FallbackPolicy{Threshold: 5, Mode: FallbackRelax},
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

// Same as getenv but never echoes the value.
func getsecret(key string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined\n", logtag, key)
	}
	return val
}

func getInt(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("%s %s is not an integer. Using default value %d\n", logtag, key, defaultValue)
		return defaultValue
	}
	return v
}

func getFloat(key string, defaultValue float64) float64 {
	raw := getenv(key, strconv.FormatFloat(defaultValue, 'f', -1, 64))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Printf("%s %s is not a number. Using default value %v\n", logtag, key, defaultValue)
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	v, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Printf("%s %s is not a duration. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return v
}

func getRatingSource(key string, defaultValue RatingSource) RatingSource {
	v := RatingSource(getenv(key, string(defaultValue)))
	if !v.Valid() {
		fmt.Printf("%s %s must be one of %s, %s, %s. Using default value %s\n", logtag, key,
			RatingSourceMovieThenGenre, RatingSourceMovie, RatingSourceGenre, defaultValue)
		return defaultValue
	}
	return v
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
