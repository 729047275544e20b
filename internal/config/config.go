package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"settlement/internal/bill"
	"settlement/internal/finance"
	"settlement/internal/logger"
)

type Config struct {
	// Closing Configuration
	TaxRatePercent  decimal.Decimal
	CostPerCustomer decimal.Decimal

	// Bill Configuration
	MaxGroupSize        int
	RefundTypeCode      int
	CustomerRefundLabel string
	ForeignPaymentLabel string

	// Optional: Google Sheets export
	GoogleSheetURL       string
	GoogleSheetWorksheet string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	config := Default()

	var err error
	if config.TaxRatePercent, err = getDecimal("TAX_RATE_PERCENT", config.TaxRatePercent); err != nil {
		return nil, err
	}
	if config.CostPerCustomer, err = getDecimal("COST_PER_CUSTOMER", config.CostPerCustomer); err != nil {
		return nil, err
	}
	if config.MaxGroupSize, err = getInt("MAX_GROUP_SIZE", config.MaxGroupSize); err != nil {
		return nil, err
	}
	if config.RefundTypeCode, err = getInt("REFUND_TYPE_CODE", config.RefundTypeCode); err != nil {
		return nil, err
	}

	config.CustomerRefundLabel = getEnv("CUSTOMER_REFUND_LABEL", config.CustomerRefundLabel)
	config.ForeignPaymentLabel = getEnv("FOREIGN_PAYMENT_LABEL", config.ForeignPaymentLabel)
	config.GoogleSheetURL = getEnv("GOOGLE_SHEET_URL", config.GoogleSheetURL)
	config.GoogleSheetWorksheet = getEnv("GOOGLE_SHEET_WORKSHEET", config.GoogleSheetWorksheet)
	config.LogLevel = getEnv("LOG_LEVEL", config.LogLevel)
	config.LogFormat = getEnv("LOG_FORMAT", config.LogFormat)
	config.LogTimeFormat = getEnv("LOG_TIME_FORMAT", config.LogTimeFormat)
	config.LogOutput = getEnv("LOG_OUTPUT", config.LogOutput)

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	logConfig := logger.DefaultConfig()
	return &Config{
		TaxRatePercent:       decimal.NewFromInt(20),
		CostPerCustomer:      finance.DefaultCostPerCustomer,
		MaxGroupSize:         bill.DefaultMaxGroupSize,
		RefundTypeCode:       9,
		CustomerRefundLabel:  "客戶退款",
		ForeignPaymentLabel:  "國外付款",
		GoogleSheetWorksheet: "Bill",
		LogLevel:             logConfig.Level,
		LogFormat:            logConfig.Format,
		LogTimeFormat:        logConfig.TimeFormat,
		LogOutput:            logConfig.Output,
	}
}

func (c *Config) validate() error {
	if c.TaxRatePercent.IsNegative() {
		return fmt.Errorf("TAX_RATE_PERCENT must not be negative")
	}
	if c.CostPerCustomer.IsNegative() {
		return fmt.Errorf("COST_PER_CUSTOMER must not be negative")
	}
	if c.MaxGroupSize <= 0 {
		return fmt.Errorf("MAX_GROUP_SIZE must be positive")
	}
	if c.CustomerRefundLabel == "" || c.ForeignPaymentLabel == "" {
		return fmt.Errorf("CUSTOMER_REFUND_LABEL and FOREIGN_PAYMENT_LABEL must not be empty")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// BillOptions returns the bill constants.
func (c *Config) BillOptions() bill.Options {
	return bill.Options{
		RefundTypeCode: c.RefundTypeCode,
		Labels: bill.PaymentLabels{
			CustomerRefund: c.CustomerRefundLabel,
			ForeignPayment: c.ForeignPaymentLabel,
		},
		MaxGroupSize: c.MaxGroupSize,
	}
}

// ClosingDefaults returns the closing terms used before group settings apply.
func (c *Config) ClosingDefaults() finance.ClosingTerms {
	return finance.ClosingTerms{
		TaxRatePercent:  c.TaxRatePercent,
		CostPerCustomer: c.CostPerCustomer,
		RefundTypeCode:  c.RefundTypeCode,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getDecimal(key string, defaultValue decimal.Decimal) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a decimal number: %w", key, err)
	}
	return d, nil
}
