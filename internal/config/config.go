package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	JWTSecret     string `env:"JWT_SECRET,required"`
	JWTTTLSeconds int    `env:"JWT_TTL_SECONDS" envDefault:"3600"`
	AuthUsername  string `env:"AUTH_USERNAME" envDefault:"admin"`
	AuthPassword  string `env:"AUTH_PASSWORD" envDefault:"secret"`
	ModelPath     string `env:"MODEL_PATH" envDefault:"model_iris_lr.json"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
