package request

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-03T15:00:00Z", time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC)},
		{"2026-03-03T10:00:00-05:00", time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC)},
		{"2026-03-03T15:00", time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC)},
		{" 2026-03-03 ", time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDateTime(tc.in)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.in, err)
		}
		if !got.Equal(tc.want) || got.Location() != time.UTC {
			t.Fatalf("expected %v, got %v", tc.want, got)
		}
	}

	for _, bad := range []string{"", "03/03/2026", "tomorrow"} {
		if _, err := ParseDateTime(bad); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %q, got %v", bad, err)
		}
	}
}

func TestParseOptionalDateTime(t *testing.T) {
	got, err := ParseOptionalDateTime("  ")
	if err != nil || !got.IsZero() {
		t.Fatalf("expected zero time, got %v %v", got, err)
	}
	if _, err := ParseOptionalDateTime("nope"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestConfirmPlanRequest_Resolve(t *testing.T) {
	r := ConfirmPlanRequest{PaymentModality: " pago_completo "}
	if got := r.ResolveModality(); got != "PAGO_COMPLETO" {
		t.Fatalf("expected PAGO_COMPLETO, got %q", got)
	}
	if !r.ResolveApplyDiscount() {
		t.Fatalf("expected discount to apply by default")
	}

	no := false
	r.ApplyDiscount = &no
	if r.ResolveApplyDiscount() {
		t.Fatalf("expected discount to be skipped")
	}
}

func TestStatusAndEnumNormalization(t *testing.T) {
	if got := (ChangeAppointmentStatusRequest{Status: "en_atencion"}).ResolveStatus(); got != "EN_ATENCION" {
		t.Fatalf("expected EN_ATENCION, got %q", got)
	}
	if got := (UpdatePlanStatusRequest{Status: " Abandonado"}).ResolveStatus(); got != "ABANDONADO" {
		t.Fatalf("expected ABANDONADO, got %q", got)
	}
	p := RegisterPaymentRequest{Type: "pago_sesion", Method: "yape"}
	if p.ResolveType() != "PAGO_SESION" || p.ResolveMethod() != "YAPE" {
		t.Fatalf("unexpected normalization: %q %q", p.ResolveType(), p.ResolveMethod())
	}
}

func TestRecordSessionRequest_ResolveDate(t *testing.T) {
	d, err := (RecordSessionRequest{}).ResolveDate()
	if err != nil || !d.IsZero() {
		t.Fatalf("expected zero date, got %v %v", d, err)
	}
	d, err = (RecordSessionRequest{Date: "2026-03-03T09:30"}).ResolveDate()
	if err != nil || d.Hour() != 9 || d.Minute() != 30 {
		t.Fatalf("unexpected date %v %v", d, err)
	}
}

func TestScheduleAppointmentRequest_ResolveScheduledAt(t *testing.T) {
	if _, err := (ScheduleAppointmentRequest{ScheduledAt: "x"}).ResolveScheduledAt(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := (RescheduleAppointmentRequest{NewDate: "2026-03-04T10:00:00Z"}).ResolveNewDate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
