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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	SearchAd     SearchAd     `mapstructure:",squash"`
	CollectSync  CollectSync  `mapstructure:",squash"`
	BizmoneySync BizmoneySync `mapstructure:",squash"`
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

type SearchAd struct {
	BaseURL           string `mapstructure:"searchad_base_url"`
	APIKey            string `mapstructure:"searchad_api_key"`
	APISecret         string `mapstructure:"searchad_api_secret"`
	TimeoutSeconds    int    `mapstructure:"searchad_timeout_seconds"`
	RetryMaxAttempts  int    `mapstructure:"searchad_retry_max_attempts"`
	RetryDelaySeconds int    `mapstructure:"searchad_retry_delay_seconds"`
}

type CollectSync struct {
	CronSchedule        string `mapstructure:"collect_sync_cron"`
	MaxConcurrentJobs   int    `mapstructure:"collect_sync_max_concurrent_jobs"`
	StatsBatchSize      int    `mapstructure:"collect_stats_batch_size"`
	ReportPollSeconds   int    `mapstructure:"collect_report_poll_seconds"`
	ReportPollAttempts  int    `mapstructure:"collect_report_poll_attempts"`
	KeywordsEnabled     bool   `mapstructure:"collect_keywords_enabled"`
	AdsEnabled          bool   `mapstructure:"collect_ads_enabled"`
	AdExtensionsEnabled bool   `mapstructure:"collect_ad_extensions_enabled"`
	Enabled             bool   `mapstructure:"collect_sync_enabled"`
}

type BizmoneySync struct {
	CronSchedule      string `mapstructure:"bizmoney_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"bizmoney_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"bizmoney_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/searchad")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SEARCHAD_BASE_URL", "https://api.searchad.naver.com")
	viper.SetDefault("SEARCHAD_API_KEY", "your_api_key")       // ONLY LOCAL
	viper.SetDefault("SEARCHAD_API_SECRET", "your_api_secret") // ONLY LOCAL
	viper.SetDefault("SEARCHAD_TIMEOUT_SECONDS", 60)
	viper.SetDefault("SEARCHAD_RETRY_MAX_ATTEMPTS", 4) // total de tentativas por chamada
	viper.SetDefault("SEARCHAD_RETRY_DELAY_SECONDS", 2)

	// Defaults da coleta diária de performance
	viper.SetDefault("COLLECT_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("COLLECT_SYNC_MAX_CONCURRENT_JOBS", 2)
	viper.SetDefault("COLLECT_STATS_BATCH_SIZE", 50) // limite de ids por requisição /stats
	viper.SetDefault("COLLECT_REPORT_POLL_SECONDS", 2)
	viper.SetDefault("COLLECT_REPORT_POLL_ATTEMPTS", 30)
	viper.SetDefault("COLLECT_KEYWORDS_ENABLED", true)
	viper.SetDefault("COLLECT_ADS_ENABLED", true)
	viper.SetDefault("COLLECT_AD_EXTENSIONS_ENABLED", false)
	viper.SetDefault("COLLECT_SYNC_ENABLED", false)

	// Defaults da coleta de saldo (bizmoney)
	viper.SetDefault("BIZMONEY_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("BIZMONEY_SYNC_MAX_CONCURRENT_JOBS", 10)
	viper.SetDefault("BIZMONEY_SYNC_ENABLED", false)

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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
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
