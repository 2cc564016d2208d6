package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type Config struct {
	GRPCPort    int
	HTTPPort    int
	DB          DatabaseConfig
	Kafka       KafkaConfig
	Pricing     model.PricingConfig
	ServiceName string
	LogLevel    string
	LogFormat   string
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
	if err := c.Pricing.Validate(); err != nil {
		panic(fmt.Sprintf("invalid pricing configuration: %v", err))
	}
}

func Load() Config {
	pricing := model.DefaultPricingConfig()
	pricing.MaxFeeRate = getEnvDecimal("PRICING_MAX_FEE_RATE", pricing.MaxFeeRate)
	pricing.MicroLoanThreshold = getEnvDecimal("PRICING_MICRO_LOAN_THRESHOLD", pricing.MicroLoanThreshold)
	pricing.MicroLoanTenure = getEnvInt("PRICING_MICRO_LOAN_TENURE", pricing.MicroLoanTenure)
	pricing.MaxDuration = getEnvInt("PRICING_MAX_DURATION", pricing.MaxDuration)
	pricing.MaxFallbackOffers = getEnvInt("PRICING_MAX_FALLBACK_OFFERS", pricing.MaxFallbackOffers)
	pricing.DefaultDurationIndex = getEnvInt("PRICING_DEFAULT_DURATION_INDEX", pricing.DefaultDurationIndex)
	pricing.TaxRate = getEnvDecimal("PRICING_TAX_RATE", pricing.TaxRate)
	pricing.DigisignFee = getEnvDecimal("PRICING_DIGISIGN_FEE", pricing.DigisignFee)
	pricing.RegistrationFee = getEnvDecimal("PRICING_REGISTRATION_FEE", pricing.RegistrationFee)
	pricing.ZeroInterest = model.ZeroInterestCampaign{
		Enabled:               getEnvBool("PRICING_ZERO_INTEREST_ENABLED", false),
		MaxAmount:             getEnvDecimal("PRICING_ZERO_INTEREST_MAX_AMOUNT", decimal.Zero),
		MaxTenure:             getEnvInt("PRICING_ZERO_INTEREST_MAX_TENURE", 0),
		ProvisionRateOverride: getEnvDecimal("PRICING_ZERO_INTEREST_PROVISION_RATE", decimal.Zero),
	}

	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9094),
		HTTPPort: getEnvInt("HTTP_PORT", 8094),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "pricing"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "pricing"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:   getEnv("KAFKA_TOPIC", "pricing-events"),
		},
		Pricing:     pricing,
		ServiceName: "pricing-service",
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return fallback
}
