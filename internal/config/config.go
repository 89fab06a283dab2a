package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host               string
	Port               int
	CORSAllowedOrigins []string
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	DraftTTL time.Duration
}

type AuthConfig struct {
	AccessSecret string
}

type CompanyConfig struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

type PricingConfig struct {
	MinimumCharge float64
	POTaxPercent  float64
}

type EmailConfig struct {
	Enabled   bool
	From      string
	FromName  string
	AWSRegion string
}

type GHLConfig struct {
	APIKey          string
	LocationID      string
	PipelineID      string
	PipelineStageID string
	BaseURL         string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Company     CompanyConfig
	Pricing     PricingConfig
	Email       EmailConfig
	GHL         GHLConfig
	Gemini      GeminiConfig
}

func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	setDefaults(v)
	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:               v.GetString("HTTP_HOST"),
			Port:               v.GetInt("HTTP_PORT"),
			CORSAllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			DraftTTL: v.GetDuration("DRAFT_TTL"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Company: CompanyConfig{
			Name:    v.GetString("COMPANY_NAME"),
			Address: v.GetString("COMPANY_ADDRESS"),
			Phone:   v.GetString("COMPANY_PHONE"),
			Email:   v.GetString("COMPANY_EMAIL"),
		},
		Pricing: PricingConfig{
			MinimumCharge: v.GetFloat64("PRICING_MINIMUM_CHARGE"),
			POTaxPercent:  v.GetFloat64("PO_TAX_PERCENT"),
		},
		Email: EmailConfig{
			Enabled:   v.GetBool("EMAIL_ENABLED"),
			From:      v.GetString("EMAIL_FROM"),
			FromName:  v.GetString("EMAIL_FROM_NAME"),
			AWSRegion: v.GetString("AWS_REGION"),
		},
		GHL: GHLConfig{
			APIKey:          v.GetString("GHL_API_KEY"),
			LocationID:      v.GetString("GHL_LOCATION_ID"),
			PipelineID:      v.GetString("GHL_PIPELINE_ID"),
			PipelineStageID: v.GetString("GHL_PIPELINE_STAGE_ID"),
			BaseURL:         v.GetString("GHL_BASE_URL"),
		},
		Gemini: GeminiConfig{
			APIKey: v.GetString("GEMINI_API_KEY"),
			Model:  v.GetString("GEMINI_MODEL"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 7090)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DRAFT_TTL", "168h")
	v.SetDefault("COMPANY_NAME", "Commercial Cleaning Co.")
	v.SetDefault("PRICING_MINIMUM_CHARGE", 500)
	v.SetDefault("PO_TAX_PERCENT", 8.25)
	v.SetDefault("EMAIL_ENABLED", false)
	v.SetDefault("EMAIL_FROM_NAME", "Estimating Team")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("GHL_BASE_URL", "https://services.leadconnectorhq.com")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if cfg.Pricing.MinimumCharge < 0 {
		return fmt.Errorf("PRICING_MINIMUM_CHARGE must not be negative")
	}
	if cfg.Pricing.POTaxPercent < 0 || cfg.Pricing.POTaxPercent > 100 {
		return fmt.Errorf("PO_TAX_PERCENT must be between 0 and 100")
	}
	if cfg.Email.Enabled && cfg.Email.From == "" {
		return fmt.Errorf("EMAIL_FROM is required when EMAIL_ENABLED is set")
	}
	if cfg.GHL.APIKey != "" && cfg.GHL.LocationID == "" {
		return fmt.Errorf("GHL_LOCATION_ID is required when GHL_API_KEY is set")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
