package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds the service settings. Every key can be overridden by the
// environment variable bound to it in Load (a .env file is loaded first by
// godotenv/autoload in main).
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb" validate:"required"`
	Tables   TablesConfig   `mapstructure:"tables" validate:"required"`
	Billing  BillingConfig  `mapstructure:"billing" validate:"required"`
	Payments PaymentsConfig `mapstructure:"payments"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,gt=0,lt=65536"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"region" validate:"required"`
	Endpoint        string `mapstructure:"endpoint" validate:"omitempty,url"`
	AccessKeyID     string `mapstructure:"access_key_id" validate:"required"`
	SecretAccessKey string `mapstructure:"secret_access_key" validate:"required"`
}

type TablesConfig struct {
	Appointments string `mapstructure:"appointments" validate:"required"`
	Plans        string `mapstructure:"plans" validate:"required"`
	Sessions     string `mapstructure:"sessions" validate:"required"`
	Payments     string `mapstructure:"payments" validate:"required"`
	Techniques   string `mapstructure:"techniques" validate:"required"`
}

type BillingConfig struct {
	// FullPaymentDiscountPercent is offered when a plan is paid upfront in full.
	FullPaymentDiscountPercent float64 `mapstructure:"full_payment_discount_percent" validate:"gte=0,lte=100"`
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string `mapstructure:"mercadopago_access_token"`
	GatewayMock            bool   `mapstructure:"gateway_mock"`
	// TestPayerEmail fills payer.email on sandbox card payments without a payer.
	TestPayerEmail string `mapstructure:"test_payer_email" validate:"omitempty,email"`
}

// Sandbox reports whether the access token belongs to a Mercado Pago test account.
func (p PaymentsConfig) Sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(p.MercadoPagoAccessToken), "TEST-")
}

// FullPaymentDiscount returns the configured discount as a decimal percentage.
func (b BillingConfig) FullPaymentDiscount() decimal.Decimal {
	return decimal.NewFromFloat(b.FullPaymentDiscountPercent)
}

var envBindings = map[string][]string{
	"server.port":                           {"PORT"},
	"dynamodb.region":                       {"AWS_REGION"},
	"dynamodb.endpoint":                     {"DYNAMODB_ENDPOINT"},
	"dynamodb.access_key_id":                {"AWS_ACCESS_KEY_ID"},
	"dynamodb.secret_access_key":            {"AWS_SECRET_ACCESS_KEY"},
	"tables.appointments":                   {"APPOINTMENTS_TABLE"},
	"tables.plans":                          {"PLANS_TABLE"},
	"tables.sessions":                       {"SESSIONS_TABLE"},
	"tables.payments":                       {"PAYMENTS_TABLE"},
	"tables.techniques":                     {"TECHNIQUES_TABLE"},
	"billing.full_payment_discount_percent": {"FULL_PAYMENT_DISCOUNT_PERCENT", "DESCUENTO_PAGO_COMPLETO"},
	"payments.mercadopago_access_token":     {"MERCADOPAGO_ACCESS_TOKEN"},
	"payments.gateway_mock":                 {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
	"payments.test_payer_email":             {"MERCADOPAGO_TEST_PAYER_EMAIL"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("tables.appointments", "appointments")
	v.SetDefault("tables.plans", "treatment_plans")
	v.SetDefault("tables.sessions", "sessions")
	v.SetDefault("tables.payments", "payments")
	v.SetDefault("tables.techniques", "techniques")
	v.SetDefault("billing.full_payment_discount_percent", 20)
	v.SetDefault("payments.mercadopago_access_token", "")
	v.SetDefault("payments.gateway_mock", false)
	v.SetDefault("payments.test_payer_email", "")
}

// Load reads defaults, an optional config.yaml in the working directory and
// the environment, then validates the result.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var fields []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s(%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
