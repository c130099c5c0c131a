package config

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// SelectionScope controls how duplicate selections are detected. The
// historical behavior checks class_id alone, so two different students
// cannot select the same class. Scoping per student is the corrected
// behavior; global stays the default because existing clients depend on it.
const (
	SelectionScopeGlobal  = "global"
	SelectionScopeStudent = "student"
)

type Config struct {
	Port             string
	MongoURI         string
	DatabaseName     string
	TokenSecret      string
	PaymentSecretKey string
	PaymentAPIBase   string
	Origin           string
	ConflictStatus   int
	SelectionScope   string
	Timeout          time.Duration
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic("Error loading .env file")
	}
	return Config{
		Port:             getEnv("PORT", "5000"),
		MongoURI:         getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName:     getEnv("DATABASE_NAME", "chromaCraftDB"),
		TokenSecret:      getEnv("ACCESS_TOKEN_SECRET", ""),
		PaymentSecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
		PaymentAPIBase:   getEnv("PAYMENT_API_BASE", "https://api.stripe.com"),
		Origin:           getEnv("ORIGIN", "*"),
		ConflictStatus:   getEnvInt("CONFLICT_STATUS", http.StatusConflict),
		SelectionScope:   getEnv("SELECTION_SCOPE", SelectionScopeGlobal),
		Timeout:          10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
