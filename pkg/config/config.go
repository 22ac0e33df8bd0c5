package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DataModePostgres = "postgres"
	DataModeMemory   = "memory"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Analytics AnalyticsConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	Enabled       bool
}

// AnalyticsConfig carries every tunable policy coefficient of the engines.
// Each maps onto a default in the owning business package; values here only
// override when explicitly set.
type AnalyticsConfig struct {
	// where fetch collaborators read snapshots from: postgres or memory
	DataMode string

	ParetoValidityThreshold float64
	InvestmentPerMember     float64
	CampaignBudgetPct       float64
	HighRiskThreshold       float64
	HighImpactThreshold     float64
	ReportCacheTTLSeconds   int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	cacheTTL, err := getEnvInt("REPORT_CACHE_TTL_SECONDS", 300)
	if err != nil {
		return nil, err
	}

	paretoThreshold, err := getEnvFloat("PARETO_VALIDITY_THRESHOLD", 0.8)
	if err != nil {
		return nil, err
	}

	investment, err := getEnvFloat("INVESTMENT_PER_MEMBER", 2.5)
	if err != nil {
		return nil, err
	}

	budgetPct, err := getEnvFloat("CAMPAIGN_BUDGET_PCT", 0.02)
	if err != nil {
		return nil, err
	}

	highRisk, err := getEnvFloat("HIGH_RISK_THRESHOLD", 0.75)
	if err != nil {
		return nil, err
	}

	highImpact, err := getEnvFloat("HIGH_IMPACT_THRESHOLD", 10_000_000)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "StreamPulse Analytics API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "streampulse"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			Enabled:       getEnv("REDIS_ENABLED", "false") == "true",
		},
		Analytics: AnalyticsConfig{
			DataMode:                getEnv("DATA_MODE", DataModeMemory),
			ParetoValidityThreshold: paretoThreshold,
			InvestmentPerMember:     investment,
			CampaignBudgetPct:       budgetPct,
			HighRiskThreshold:       highRisk,
			HighImpactThreshold:     highImpact,
			ReportCacheTTLSeconds:   cacheTTL,
		},
	}

	if cfg.Analytics.DataMode != DataModePostgres && cfg.Analytics.DataMode != DataModeMemory {
		return nil, fmt.Errorf("invalid DATA_MODE %q: must be %q or %q",
			cfg.Analytics.DataMode, DataModePostgres, DataModeMemory)
	}

	if cfg.Analytics.DataMode == DataModePostgres && cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Analytics.ParetoValidityThreshold <= 0 || cfg.Analytics.ParetoValidityThreshold > 1 {
		return nil, errors.New("PARETO_VALIDITY_THRESHOLD must be in (0, 1]")
	}

	if cfg.Analytics.CampaignBudgetPct <= 0 || cfg.Analytics.CampaignBudgetPct > 1 {
		return nil, errors.New("CAMPAIGN_BUDGET_PCT must be in (0, 1]")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return n, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return f, nil
}
