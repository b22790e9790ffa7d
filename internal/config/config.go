package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port             string        `envconfig:"PORT" default:"8084"`
	DBDSNs           string        `envconfig:"DB_DSNS" default:"root:@tcp(127.0.0.1:3306)/cart-db?parseTime=true"`
	DBConnectRetries int           `envconfig:"DB_CONNECT_RETRIES" default:"10"`
	RedisAddr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	CacheTTL         time.Duration `envconfig:"CACHE_TTL" default:"1m"`
	KafkaEnabled     bool          `envconfig:"KAFKA_ENABLED" default:"true"`
	KafkaBrokers     string        `envconfig:"KAFKA_BROKERS" default:"localhost:9092,localhost:9093,localhost:9094"`
	KafkaTopic       string        `envconfig:"KAFKA_TOPIC" default:"bill-topic"`
	PublishTimeout   time.Duration `envconfig:"PUBLISH_TIMEOUT" default:"2s"`
	NodeID           int64         `envconfig:"NODE_ID" default:"0"`
	JWTSecret        string        `envconfig:"JWT_SECRET" default:"secret"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
	RateLimit        float64       `envconfig:"RATE_LIMIT" default:"1"`
	RateBurst        int           `envconfig:"RATE_BURST" default:"3"`
	RejectEmptyBills bool          `envconfig:"REJECT_EMPTY_BILLS" default:"false"`
	ReadTimeout      time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout     time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DSNs returns one DSN per database shard. The first shard also holds the catalog.
func (c *Config) DSNs() []string {
	return splitList(c.DBDSNs)
}

func (c *Config) Brokers() []string {
	return splitList(c.KafkaBrokers)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
