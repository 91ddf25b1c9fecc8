package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config contém todos os parâmetros de configuração lidos do ambiente.
type Config struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`

	HTTPPort     string `envconfig:"HTTP_PORT" default:"4545"`
	APISecretKey string `envconfig:"API_SECRET_KEY"`

	// Reanálise agendada de projetos com documentos alterados
	CronSchedule string `envconfig:"CRON_SCHEDULE" default:"*/30 * * * *"`

	// Arquivo de documentos de referência em storage compatível com S3
	RefS3Key    string `envconfig:"REF_S3_KEY" required:"true"`
	RefS3Secret string `envconfig:"REF_S3_SECRET" required:"true"`
	RefS3URL    string `envconfig:"REF_S3_URL" required:"true"`
	RefS3Region string `envconfig:"REF_S3_REGION" required:"true"`
	RefS3Bucket string `envconfig:"REF_S3_BUCKET" required:"true"`
}

// DSN retorna o Data Source Name da conexão PostgreSQL.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// Load carrega a configuração das variáveis de ambiente.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
