package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPPort    int `env:"HTTP_PORT"    envDefault:"8080"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"8083"`

	OutputRoot string `env:"OUTPUT_ROOT" envDefault:"output"`
	StaticDir  string `env:"STATIC_DIR"  envDefault:"static"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	MaxUploadMB    int64    `env:"MAX_UPLOAD_MB"   envDefault:"512"`

	DefaultThreshold float64 `env:"DEFAULT_THRESHOLD"  envDefault:"0.3"`
	SampleFPS        int     `env:"SAMPLE_FPS"         envDefault:"30"`
	FFmpegTimeoutSec int     `env:"FFMPEG_TIMEOUT_SEC" envDefault:"300"`

	// Optional: when empty, extraction events are not published anywhere.
	RabbitMQURL      string `env:"RABBITMQ_URL"      envDefault:""`
	RabbitMQExchange string `env:"RABBITMQ_EXCHANGE" envDefault:"frameextractor.events"`

	JaegerEndpoint string `env:"JAEGER_ENDPOINT" envDefault:"http://jaeger:4318/v1/traces"`
	LogLevel       string `env:"LOG_LEVEL"       envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
