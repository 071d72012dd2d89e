package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr              string
	HTTPReadHeaderTimeout time.Duration
	SeedUsers             bool
	LogFile               string
	RabbitMQURL           string
	RabbitExchange        string
	RabbitQueue           string
	RabbitRoutingKey      string
	RabbitConsumerTag     string
	RabbitPublishPrefix   string
	RabbitDialTimeout     time.Duration
	EventBufferSize       int
	EventPublishTimeout   time.Duration
	SSEHeartbeat          time.Duration
	OTELServiceName       string
	OTLPEndpoint          string
	OTLPInsecure          bool
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:              "127.0.0.1:3000",
		HTTPReadHeaderTimeout: 5 * time.Second,
		SeedUsers:             true,
		LogFile:               "logs/app.log",
		RabbitExchange:        "users",
		RabbitQueue:           "users.import",
		RabbitRoutingKey:      "user.import",
		RabbitConsumerTag:     "user-import",
		RabbitPublishPrefix:   "user",
		RabbitDialTimeout:     2 * time.Second,
		EventBufferSize:       256,
		EventPublishTimeout:   5 * time.Second,
		SSEHeartbeat:          15 * time.Second,
		OTELServiceName:       "userapi",
		OTLPInsecure:          true,
	}

	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	} else if port := os.Getenv("PORT"); port != "" {
		cfg.HTTPAddr = "127.0.0.1:" + port
	}
	if v := os.Getenv("HTTP_READ_HEADER_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPReadHeaderTimeout = time.Duration(n) * time.Second
		}
	}

	if v := os.Getenv("SEED_USERS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SeedUsers = b
		}
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	cfg.RabbitMQURL = os.Getenv("RABBITMQ_URL")

	if v := os.Getenv("RABBITMQ_EXCHANGE"); v != "" {
		cfg.RabbitExchange = v
	}
	if v := os.Getenv("RABBITMQ_QUEUE"); v != "" {
		cfg.RabbitQueue = v
	}
	if v := os.Getenv("RABBITMQ_ROUTING_KEY"); v != "" {
		cfg.RabbitRoutingKey = v
	}
	if v := os.Getenv("RABBITMQ_CONSUMER_TAG"); v != "" {
		cfg.RabbitConsumerTag = v
	}
	if v := os.Getenv("RABBITMQ_PUBLISH_PREFIX"); v != "" {
		cfg.RabbitPublishPrefix = v
	}

	if v := os.Getenv("RABBITMQ_DIAL_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RabbitDialTimeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("EVENT_BUFFER_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.EventBufferSize = n
		}
	}
	if v := os.Getenv("EVENT_PUBLISH_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.EventPublishTimeout = time.Duration(n) * time.Second
		}
	}

	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.OTELServiceName = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTLPEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_INSECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.OTLPInsecure = b
		}
	}

	if v := os.Getenv("SSE_HEARTBEAT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SSEHeartbeat = time.Duration(n) * time.Second
		}
	}

	return cfg
}
