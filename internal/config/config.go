package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Asaas        Asaas        `mapstructure:",squash"`
	Hotmart      Hotmart      `mapstructure:",squash"`
	LLM          LLM          `mapstructure:",squash"`
	Storage      Storage      `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	PaymentSync  PaymentSync  `mapstructure:",squash"`
	OverdueSweep OverdueSweep `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	MigrationsPath string `mapstructure:"database_migrations_path"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Asaas struct {
	URL       string            `mapstructure:"asaas_url"`
	RawKeys   []string          `mapstructure:"asaas_api_keys"`
	Keys      map[string]string `mapstructure:"-"`
	PageLimit int               `mapstructure:"asaas_page_limit"`
}

// HotmartCredential agrupa as credenciais OAuth de uma conta Hotmart
type HotmartCredential struct {
	ClientID     string
	ClientSecret string
	Basic        string
}

type Hotmart struct {
	AuthURL        string                       `mapstructure:"hotmart_auth_url"`
	URL            string                       `mapstructure:"hotmart_url"`
	RawCredentials []string                     `mapstructure:"hotmart_credentials"`
	Credentials    map[string]HotmartCredential `mapstructure:"-"`
	PageSize       int                          `mapstructure:"hotmart_page_size"`
}

type LLM struct {
	Enabled bool          `mapstructure:"llm_enabled"`
	URL     string        `mapstructure:"llm_url"`
	APIKey  string        `mapstructure:"llm_api_key"`
	Model   string        `mapstructure:"llm_model"`
	Timeout time.Duration `mapstructure:"llm_timeout"`
}

type Storage struct {
	Enabled           bool          `mapstructure:"storage_enabled"`
	Endpoint          string        `mapstructure:"storage_endpoint"`
	Region            string        `mapstructure:"storage_region"`
	Bucket            string        `mapstructure:"storage_bucket"`
	AccessKey         string        `mapstructure:"storage_access_key"`
	SecretKey         string        `mapstructure:"storage_secret_key"`
	UsePathStyle      bool          `mapstructure:"storage_use_path_style"`
	PresignExpiration time.Duration `mapstructure:"storage_presign_expiration"`
}

type Redis struct {
	Enabled        bool          `mapstructure:"redis_enabled"`
	Addr           string        `mapstructure:"redis_addr"`
	Password       string        `mapstructure:"redis_password"`
	DB             int           `mapstructure:"redis_db"`
	IdempotencyTTL time.Duration `mapstructure:"redis_idempotency_ttl"`
}

type PaymentSync struct {
	CronSchedule        string `mapstructure:"payment_sync_cron"`
	LookbackDays        int    `mapstructure:"payment_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"payment_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"payment_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"payment_sync_enabled"`
}

type OverdueSweep struct {
	CronSchedule string `mapstructure:"overdue_sweep_cron"`
	Enabled      bool   `mapstructure:"overdue_sweep_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/bora_hub?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATIONS_PATH", "migrations")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("ASAAS_URL", "https://api.asaas.com/v3")
	viper.SetDefault("ASAAS_API_KEYS", "")
	viper.SetDefault("ASAAS_PAGE_LIMIT", 100)

	viper.SetDefault("HOTMART_AUTH_URL", "https://api-sec-vlc.hotmart.com")
	viper.SetDefault("HOTMART_URL", "https://developers.hotmart.com")
	viper.SetDefault("HOTMART_CREDENTIALS", "")
	viper.SetDefault("HOTMART_PAGE_SIZE", 50)

	viper.SetDefault("LLM_ENABLED", false)
	viper.SetDefault("LLM_URL", "https://api.openai.com/v1")
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")
	viper.SetDefault("LLM_TIMEOUT", "60s")

	viper.SetDefault("STORAGE_ENABLED", false)
	viper.SetDefault("STORAGE_ENDPOINT", "http://localhost:9000")
	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("STORAGE_BUCKET", "bora-hub")
	viper.SetDefault("STORAGE_USE_PATH_STYLE", true)
	viper.SetDefault("STORAGE_PRESIGN_EXPIRATION", "15m")

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_IDEMPOTENCY_TTL", "72h")

	// Sincronização de pagamentos com Asaas e Hotmart
	viper.SetDefault("PAYMENT_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("PAYMENT_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("PAYMENT_SYNC_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre páginas
	viper.SetDefault("PAYMENT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 integrações em paralelo
	viper.SetDefault("PAYMENT_SYNC_ENABLED", false)

	// Parcelas vencidas
	viper.SetDefault("OVERDUE_SWEEP_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("OVERDUE_SWEEP_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if err := config.resolveSecrets(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// resolveSecrets monta os mapas de credenciais indexados pelo nome do segredo
// usado em cada integração cadastrada
func (c *Config) resolveSecrets() error {
	keys, err := ParseNamedSecrets(c.Asaas.RawKeys)
	if err != nil {
		return fmt.Errorf("ASAAS_API_KEYS inválido: %w", err)
	}
	c.Asaas.Keys = keys

	rawHotmart, err := ParseNamedSecrets(c.Hotmart.RawCredentials)
	if err != nil {
		return fmt.Errorf("HOTMART_CREDENTIALS inválido: %w", err)
	}

	c.Hotmart.Credentials = make(map[string]HotmartCredential, len(rawHotmart))
	for name, value := range rawHotmart {
		parts := strings.SplitN(value, ":", 3)
		if len(parts) != 3 {
			return fmt.Errorf("HOTMART_CREDENTIALS inválido para %s: esperado client_id:client_secret:basic", name)
		}
		c.Hotmart.Credentials[name] = HotmartCredential{
			ClientID:     parts[0],
			ClientSecret: parts[1],
			Basic:        parts[2],
		}
	}

	return nil
}

// ParseNamedSecrets converte uma lista "nome=valor" em mapa
func ParseNamedSecrets(entries []string) (map[string]string, error) {
	secrets := make(map[string]string, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, value, ok := strings.Cut(entry, "=")
		if !ok || strings.TrimSpace(name) == "" || strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("entrada mal formatada: %q", entry)
		}
		secrets[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	return secrets, nil
}

// IsDevelopment indica se a aplicação roda em ambiente local
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "" || c.App.Env == "development" || c.App.Env == "dev"
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

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
