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

// Fontes aceitas para o histórico de envios
const (
	HistorySourceFile     = "file"
	HistorySourcePostgres = "postgres"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Sources            Sources            `mapstructure:",squash"`
	Cache              Cache              `mapstructure:",squash"`
	Analysis           Analysis           `mapstructure:",squash"`
	ReturnSnapshotSync ReturnSnapshotSync `mapstructure:",squash"`
	SecretKey          string             `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Enabled         bool          `mapstructure:"database_enabled"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Sources aponta para o histórico de envios e a planilha de vendas
type Sources struct {
	HistorySource string `mapstructure:"history_source"`
	HistoryFile   string `mapstructure:"history_file"`
	SalesFile     string `mapstructure:"sales_file"`
	SalesSheet    string `mapstructure:"sales_sheet"`
}

type Cache struct {
	TTL time.Duration `mapstructure:"cache_ttl"`
}

type Analysis struct {
	Workers     int     `mapstructure:"analysis_workers"`
	MessageCost float64 `mapstructure:"analysis_message_cost"`
}

type ReturnSnapshotSync struct {
	CronSchedule string `mapstructure:"return_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"return_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/reminder?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5) // Só o job de consolidação e a importação escrevem
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("HISTORY_SOURCE", HistorySourceFile)
	viper.SetDefault("HISTORY_FILE", "historico_envios.json")
	viper.SetDefault("SALES_FILE", "Vendas_Lubrimax.xlsx")
	viper.SetDefault("SALES_SHEET", "Sheet1")

	viper.SetDefault("CACHE_TTL", "5m") // Fontes relidas a cada 5 minutos

	viper.SetDefault("ANALYSIS_WORKERS", 1)         // 1 = análise sequencial
	viper.SetDefault("ANALYSIS_MESSAGE_COST", 0.05) // Custo estimado por mensagem enviada

	viper.SetDefault("RETURN_SNAPSHOT_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("RETURN_SNAPSHOT_SYNC_ENABLED", false)    // Requer DATABASE_ENABLED

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

	if err := config.Validate(); err != nil {
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

// Validate corrige valores fora do intervalo e recusa combinações impossíveis
func (c *Config) Validate() error {
	if c.Analysis.Workers < 1 {
		c.Analysis.Workers = 1
	}

	if c.Analysis.MessageCost < 0 {
		return fmt.Errorf("config: ANALYSIS_MESSAGE_COST não pode ser negativo: %v", c.Analysis.MessageCost)
	}

	if c.Sources.SalesSheet == "" {
		c.Sources.SalesSheet = "Sheet1"
	}

	switch c.Sources.HistorySource {
	case HistorySourceFile:
	case HistorySourcePostgres:
		if !c.Database.Enabled {
			return fmt.Errorf("config: HISTORY_SOURCE=postgres requer DATABASE_ENABLED=true")
		}
	default:
		return fmt.Errorf("config: HISTORY_SOURCE inválido: %q", c.Sources.HistorySource)
	}

	if c.ReturnSnapshotSync.Enabled && !c.Database.Enabled {
		logrus.Warn("RETURN_SNAPSHOT_SYNC_ENABLED ignorado: banco de dados desabilitado")
		c.ReturnSnapshotSync.Enabled = false
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
