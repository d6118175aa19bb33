package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Payment configures the payment service binary.
type Payment struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Kafka    Kafka
}

// Reglament configures the write-off scheduler binary.
type Reglament struct {
	HTTP           HTTP
	Logger         Logger
	PaymentService PaymentService
	Scheduler      Scheduler
}

type HTTP struct {
	Port          int           `env:"HTTP_PORT" envDefault:"8080"`
	WriteTimeout  time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"2s"`
	APIKeyEnabled bool          `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string        `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Enabled      bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers      []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	EntriesTopic string   `env:"KAFKA_ENTRIES_TOPIC" envDefault:"entries-payment"`
}

type PaymentService struct {
	URL           string        `env:"PAYMENT_SERVICE_URL"`
	APIKey        string        `env:"PAYMENT_SERVICE_API_KEY" envDefault:""`
	Timeout       time.Duration `env:"PAYMENT_SERVICE_TIMEOUT" envDefault:"5s"`
	RetryAttempts int           `env:"PAYMENT_SERVICE_RETRY_ATTEMPTS" envDefault:"3"`
}

type Scheduler struct {
	Enabled   bool          `env:"SCHEDULER_ENABLED" envDefault:"true"`
	FixedRate time.Duration `env:"SCHEDULER_FIXED_RATE" envDefault:"1m"`
}

// New loads envPath into the environment when the file exists and parses T from it.
func New[T Payment | Reglament](envPath string) (T, error) {
	var zero T

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return zero, err
	}

	c, err := env.ParseAsWithOptions[T](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return zero, err
	}

	return c, nil
}
