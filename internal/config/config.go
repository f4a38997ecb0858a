package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	ERP           ERP           `mapstructure:",squash"`
	Pricing       Pricing       `mapstructure:",squash"`
	CatalogSync   CatalogSync   `mapstructure:",squash"`
	PriceAnalysis PriceAnalysis `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type ERP struct {
	URL         string `mapstructure:"erp_url"`
	AccessToken string `mapstructure:"erp_access_token"`
}

// Pricing concentra os limites do motor de precificação. Valores imutáveis
// após o carregamento; nenhum estado global mutável no núcleo.
type Pricing struct {
	FreshnessWindowDays        int     `mapstructure:"pricing_freshness_window_days"`
	CooldownDays               int     `mapstructure:"pricing_cooldown_days"`
	MaxSwingPercent            float64 `mapstructure:"pricing_max_swing_percent"`
	DefaultMinMarginPercent    float64 `mapstructure:"pricing_default_min_margin_percent"`
	DefaultTargetMarginPercent float64 `mapstructure:"pricing_default_target_margin_percent"`
	DefaultMaxPremiumPercent   float64 `mapstructure:"pricing_default_max_premium_percent"`
}

type CatalogSync struct {
	CronSchedule string `mapstructure:"catalog_sync_cron"`
	Enabled      bool   `mapstructure:"catalog_sync_enabled"`
}

type PriceAnalysis struct {
	CronSchedule string `mapstructure:"price_analysis_cron"`
	Enabled      bool   `mapstructure:"price_analysis_enabled"`
	AutoApply    bool   `mapstructure:"price_analysis_auto_apply"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pricing")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("ERP_URL", "https://erp.example.com/api/v1")
	viper.SetDefault("ERP_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	// Defaults do motor de precificação
	viper.SetDefault("PRICING_FRESHNESS_WINDOW_DAYS", 7)         // Observações mais antigas são ignoradas
	viper.SetDefault("PRICING_COOLDOWN_DAYS", 3)                 // Intervalo mínimo entre ajustes automáticos
	viper.SetDefault("PRICING_MAX_SWING_PERCENT", 15.0)          // Variação máxima por ajuste
	viper.SetDefault("PRICING_DEFAULT_MIN_MARGIN_PERCENT", 20.0) // Piso de margem da regra padrão
	viper.SetDefault("PRICING_DEFAULT_TARGET_MARGIN_PERCENT", 35.0)
	viper.SetDefault("PRICING_DEFAULT_MAX_PREMIUM_PERCENT", 15.0)

	// Defaults para sincronização do catálogo com o ERP
	viper.SetDefault("CATALOG_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("CATALOG_SYNC_ENABLED", false)

	// Defaults para análise de preços em lote
	viper.SetDefault("PRICE_ANALYSIS_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("PRICE_ANALYSIS_ENABLED", false)
	viper.SetDefault("PRICE_ANALYSIS_AUTO_APPLY", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
