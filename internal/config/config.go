package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Storage      Storage      `mapstructure:",squash"`
	Upload       Upload       `mapstructure:",squash"`
	PDFRetention PDFRetention `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Storage struct {
	Driver   string `mapstructure:"storage_driver"`
	LocalDir string `mapstructure:"storage_local_dir"`
	Bucket   string `mapstructure:"storage_s3_bucket"`
	Prefix   string `mapstructure:"storage_s3_prefix"`
	Endpoint string `mapstructure:"storage_s3_endpoint"` // LocalStack/MinIO
}

type Upload struct {
	MaxBytes int64 `mapstructure:"upload_max_bytes"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type PDFRetention struct {
	CronSchedule string `mapstructure:"pdf_retention_cron"`
	Days         int    `mapstructure:"pdf_retention_days"`
	Enabled      bool   `mapstructure:"pdf_retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_reports?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STORAGE_DRIVER", StorageDriverLocal)
	viper.SetDefault("STORAGE_LOCAL_DIR", "./media")
	viper.SetDefault("STORAGE_S3_BUCKET", "")
	viper.SetDefault("STORAGE_S3_PREFIX", "sales-reports")
	viper.SetDefault("STORAGE_S3_ENDPOINT", "")

	viper.SetDefault("UPLOAD_MAX_BYTES", 50<<20) // 50MB

	viper.SetDefault("PDF_RETENTION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("PDF_RETENTION_DAYS", 30)
	viper.SetDefault("PDF_RETENTION_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica combinações de configuração que impedem a API de subir
func (c *Config) Validate() error {
	for i, origin := range c.Server.AllowedOrigins {
		c.Server.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	switch c.Storage.Driver {
	case StorageDriverLocal:
		if c.Storage.LocalDir == "" {
			return fmt.Errorf("STORAGE_LOCAL_DIR é obrigatório para o driver local")
		}
	case StorageDriverS3:
		if c.Storage.Bucket == "" {
			return fmt.Errorf("STORAGE_S3_BUCKET é obrigatório para o driver s3")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER inválido: %q", c.Storage.Driver)
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES deve ser positivo")
	}

	if c.PDFRetention.Enabled && c.PDFRetention.Days <= 0 {
		return fmt.Errorf("PDF_RETENTION_DAYS deve ser positivo")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
