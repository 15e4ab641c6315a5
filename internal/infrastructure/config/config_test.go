package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, envs := range envBindings {
		for _, e := range envs {
			t.Setenv(e, "")
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Tables.Plans != "treatment_plans" || cfg.Tables.Payments != "payments" {
		t.Fatalf("unexpected tables: %+v", cfg.Tables)
	}
	if got := cfg.Billing.FullPaymentDiscount().String(); got != "20" {
		t.Fatalf("expected 20, got %s", got)
	}
	if cfg.Payments.GatewayMock {
		t.Fatalf("expected mock disabled")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("FULL_PAYMENT_DISCOUNT_PERCENT", "15")
	t.Setenv("PAYMENTS_TABLE", "pagos")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected 9090, got %d", cfg.Server.Port)
	}
	if got := cfg.Billing.FullPaymentDiscount().String(); got != "15" {
		t.Fatalf("expected 15, got %s", got)
	}
	if cfg.Tables.Payments != "pagos" {
		t.Fatalf("expected pagos, got %s", cfg.Tables.Payments)
	}
	if !cfg.Payments.GatewayMock {
		t.Fatalf("expected mock enabled")
	}
}

func TestLoad_InvalidDiscount(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("FULL_PAYMENT_DISCOUNT_PERCENT", "150")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "FullPaymentDiscountPercent") {
		t.Fatalf("expected discount validation error, got %v", err)
	}
}
