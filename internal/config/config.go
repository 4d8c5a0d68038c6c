package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Redis      Redis      `mapstructure:",squash"`
	Reconciler Reconciler `mapstructure:",squash"`
	Ops        Ops        `mapstructure:",squash"`
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

type Meta struct {
	BaseURL              string `mapstructure:"meta_base_url"`
	URL                  string `mapstructure:"-"`
	Version              string `mapstructure:"meta_version"`
	ConversionActionType string `mapstructure:"meta_conversion_action_type"`
	PageLimit            int    `mapstructure:"meta_page_limit"`
	RequestTimeoutSecs   int    `mapstructure:"meta_request_timeout_seconds"`
	PageDelayMillis      int    `mapstructure:"meta_page_delay_millis"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	LockDB   int    `mapstructure:"redis_lock_db"`
	StreamDB int    `mapstructure:"redis_stream_db"`
}

// Reconciler agrupa a configuração do motor de reconciliação de
// campanhas agendadas
type Reconciler struct {
	CronSchedule       string `mapstructure:"reconciler_cron"`
	BusinessTimezone   string `mapstructure:"reconciler_business_timezone"`
	MaxConcurrentJobs  int    `mapstructure:"reconciler_max_concurrent_jobs"`
	LockLeaseSeconds   int    `mapstructure:"reconciler_lock_lease_seconds"`
	UpdateMaxAttempts  int    `mapstructure:"reconciler_update_max_attempts"`
	VerifyDelaySeconds int    `mapstructure:"reconciler_verify_delay_seconds"`
	Enabled            bool   `mapstructure:"reconciler_enabled"`
}

type Ops struct {
	APIToken string `mapstructure:"ops_api_token"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/autopilot")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_CONVERSION_ACTION_TYPE", "omni_initiated_checkout")
	viper.SetDefault("META_PAGE_LIMIT", 500)
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 10)
	viper.SetDefault("META_PAGE_DELAY_MILLIS", 500) // 500ms entre páginas para evitar throttling

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_LOCK_DB", 2)
	viper.SetDefault("REDIS_STREAM_DB", 10)

	// Defaults para o motor de reconciliação
	viper.SetDefault("RECONCILER_CRON", "* * * * *") // Varredura a cada minuto
	viper.SetDefault("RECONCILER_BUSINESS_TIMEZONE", "Asia/Manila")
	viper.SetDefault("RECONCILER_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("RECONCILER_LOCK_LEASE_SECONDS", 300) // Lease do lock por conta
	viper.SetDefault("RECONCILER_UPDATE_MAX_ATTEMPTS", 3)
	viper.SetDefault("RECONCILER_VERIFY_DELAY_SECONDS", 1)
	viper.SetDefault("RECONCILER_ENABLED", true)

	viper.SetDefault("OPS_API_TOKEN", "")
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// BusinessLocation carrega o fuso horário do negócio; horários de
// agendamento são interpretados nesse fuso
func (c *Config) BusinessLocation() *time.Location {
	loc, err := time.LoadLocation(c.Reconciler.BusinessTimezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido %q, usando horário local", c.Reconciler.BusinessTimezone)
		return time.Local
	}

	return loc
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
