package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	QuestionsPath string `env:"QUESTIONS_PATH" envDefault:"data/questions.json"`
	CoursesPath   string `env:"COURSES_PATH" envDefault:"data/courses.json"`
	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"file"`
	MatchLimit    int    `env:"MATCH_LIMIT" envDefault:"5"`
	CORSOrigin    string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`

	RedisAddr          string `env:"REDIS_ADDR"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	RedisDB            int    `env:"REDIS_DB" envDefault:"0"`
	IdempotencyTTLMins int    `env:"IDEMPOTENCY_TTL_MINUTES" envDefault:"1440"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"false"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
