package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Dashboard  Dashboard  `mapstructure:",squash"`
	Pagination Pagination `mapstructure:",squash"`
	Cors       Cors       `mapstructure:",squash"`
	Seed       Seed       `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Auth struct {
	Secret       string        `mapstructure:"auth_secret"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
	CookieName   string        `mapstructure:"auth_cookie_name"`
	CookieSecure bool          `mapstructure:"auth_cookie_secure"`
}

type Dashboard struct {
	DefaultPeriodDays int `mapstructure:"dashboard_default_period_days"`
	MaxPeriodDays     int `mapstructure:"dashboard_max_period_days"`
	GrowthWindowDays  int `mapstructure:"dashboard_growth_window_days"`
	TopCampaigns      int `mapstructure:"dashboard_top_campaigns"`
}

type Pagination struct {
	DefaultLimit int `mapstructure:"pagination_default_limit"`
	MaxLimit     int `mapstructure:"pagination_max_limit"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Seed guarda as credenciais do administrador inicial criado pela migração
type Seed struct {
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
	AdminName     string `mapstructure:"admin_name"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 3389)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 30)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "168h") // 7 dias
	viper.SetDefault("AUTH_COOKIE_NAME", "auth_token")
	viper.SetDefault("AUTH_COOKIE_SECURE", false)

	viper.SetDefault("DASHBOARD_DEFAULT_PERIOD_DAYS", 30)
	viper.SetDefault("DASHBOARD_MAX_PERIOD_DAYS", 366)
	viper.SetDefault("DASHBOARD_GROWTH_WINDOW_DAYS", 7)
	viper.SetDefault("DASHBOARD_TOP_CAMPAIGNS", 10)

	viper.SetDefault("PAGINATION_DEFAULT_LIMIT", 50)
	viper.SetDefault("PAGINATION_MAX_LIMIT", 200)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("ADMIN_EMAIL", "admin@example.com")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("ADMIN_NAME", "Administrador")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "Asia/Shanghai")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if err := config.validate(); err != nil {
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

// Location resolve o fuso horário usado para agrupar dados por dia
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando UTC", c.App.Timezone)
		return time.UTC
	}

	return loc
}

func (c *Config) validate() error {
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL deve ser positivo: %s", c.Auth.TokenTTL)
	}

	if c.Dashboard.DefaultPeriodDays <= 0 || c.Dashboard.GrowthWindowDays <= 0 {
		return fmt.Errorf("períodos do dashboard devem ser positivos")
	}

	if c.Dashboard.MaxPeriodDays < c.Dashboard.DefaultPeriodDays {
		c.Dashboard.MaxPeriodDays = c.Dashboard.DefaultPeriodDays
	}

	if c.Pagination.DefaultLimit <= 0 {
		return fmt.Errorf("PAGINATION_DEFAULT_LIMIT deve ser positivo: %d", c.Pagination.DefaultLimit)
	}

	if c.Pagination.MaxLimit < c.Pagination.DefaultLimit {
		c.Pagination.MaxLimit = c.Pagination.DefaultLimit
	}

	return nil
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
