package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Config holds the raw environment values. Empty pricing and workflow values
// fall back to the service defaults.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	TaxRate            string
	DefaultDeliveryFee string
	DeliveryWindow     string

	KafkaHost              string
	KafkaOrderChangedTopic string
}

// DSN is a postgres:// URL understood by lib/pq, pgx and the GORM driver.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%s", c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

func (c Config) Validate() error {
	var errsList []error
	if c.HTTPPort == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if c.DBHost == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("DB_HOST"))
	}
	if c.DBName == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("DB_NAME"))
	}
	if c.JWTSecret == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("JWT_SECRET"))
	}
	if c.KafkaHost != "" && c.KafkaOrderChangedTopic == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("KAFKA_ORDER_CHANGED_TOPIC"))
	}
	return errors.Join(errsList...)
}

// Pricing parses TAX_RATE and DEFAULT_DELIVERY_FEE.
func (c Config) Pricing() (services.PricingConfig, error) {
	defaults := services.DefaultPricingConfig()

	taxRate := defaults.TaxRate()
	if c.TaxRate != "" {
		parsed, err := decimal.NewFromString(c.TaxRate)
		if err != nil {
			return services.PricingConfig{}, errs.NewValueIsInvalidErrorWithCause("TAX_RATE", err)
		}
		taxRate = parsed
	}

	fee := defaults.DefaultDeliveryFee()
	if c.DefaultDeliveryFee != "" {
		parsed, err := kernel.MoneyFromString(c.DefaultDeliveryFee)
		if err != nil {
			return services.PricingConfig{}, errs.NewValueIsInvalidErrorWithCause("DEFAULT_DELIVERY_FEE", err)
		}
		fee = parsed
	}

	return services.NewPricingConfig(taxRate, fee)
}

// Workflow parses DELIVERY_WINDOW, a Go duration such as "45m".
func (c Config) Workflow() (services.WorkflowConfig, error) {
	if c.DeliveryWindow == "" {
		return services.DefaultWorkflowConfig(), nil
	}
	window, err := time.ParseDuration(c.DeliveryWindow)
	if err != nil {
		return services.WorkflowConfig{}, errs.NewValueIsInvalidErrorWithCause("DELIVERY_WINDOW", err)
	}
	return services.NewWorkflowConfig(window)
}
