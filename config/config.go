package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	GeminiApiKey string
	GeminiApiUrl string

	YouTubeApiKey    string
	YouTubeSearchUrl string
	YouTubeVideosUrl string

	HttpTimeoutSeconds int // applied to every outbound API call
	MaxActiveCourses   int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "8000"),

		GeminiApiKey: getEnv("GEMINI_API_KEY", ""),
		GeminiApiUrl: getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"),

		YouTubeApiKey:    getEnv("YOUTUBE_API_KEY", ""),
		YouTubeSearchUrl: getEnv("YOUTUBE_SEARCH_URL", "https://www.googleapis.com/youtube/v3/search"),
		YouTubeVideosUrl: getEnv("YOUTUBE_VIDEOS_URL", "https://www.googleapis.com/youtube/v3/videos"),

		HttpTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		MaxActiveCourses:   getEnvInt("MAX_ACTIVE_COURSES", 3),
	}

	// The client constructors refuse to start without keys; warn early so the
	// failure is easy to trace back to the environment.
	if AppConfig.GeminiApiKey == "" {
		log.Println("Warning: GEMINI_API_KEY is not set. Plan generation will not start.")
	}
	if AppConfig.YouTubeApiKey == "" {
		log.Println("Warning: YOUTUBE_API_KEY is not set. Video enrichment will not start.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
