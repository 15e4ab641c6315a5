package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"clinica_fisio/internal/adapter/http/handlers/mocks"
	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase"
	"clinica_fisio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAppointmentRouter(t *testing.T) (*gin.Engine, *mocks.MockIAppointmentUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAppointmentUseCase(ctrl)
	h := NewAppointmentHandler(uc)

	r := newTestRouter()
	r.POST("/v1/appointments", h.Schedule)
	r.GET("/v1/appointments", h.List)
	r.GET("/v1/appointments/:id", h.GetByID)
	r.PATCH("/v1/appointments/:id/status", h.ChangeStatus)
	r.POST("/v1/appointments/:id/reschedule", h.Reschedule)
	return r, uc
}

func TestAppointmentHandler_Schedule(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newAppointmentRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/appointments", `{"patient_id":"patient-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		r, _ := newAppointmentRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/appointments", `{"patient_id":"patient-1","type":"CONSULTA","scheduled_at":"03/03/2026"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "INVALID_DATE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("closed plan", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(entities.Appointment{}, usecase.ErrPlanClosed)

		w := doRequest(r, http.MethodPost, "/v1/appointments", `{"patient_id":"patient-1","plan_id":"plan-1","type":"sesion","scheduled_at":"2026-03-03T15:00"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().Schedule(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.ScheduleAppointmentInput) (entities.Appointment, error) {
			if in.Type != entities.AppointmentTypeSesion || !in.ScheduledAt.Equal(time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC)) || in.SessionNumber != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Appointment{ID: "appt-1", PatientID: in.PatientID, ScheduledAt: in.ScheduledAt, Type: in.Type, Status: entities.AppointmentStatusProgramada}, nil
		})

		w := doRequest(r, http.MethodPost, "/v1/appointments", `{"patient_id":"patient-1","plan_id":"plan-1","type":"sesion","scheduled_at":"2026-03-03T15:00","session_number":2}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["id"] != "appt-1" || body["status"] != "PROGRAMADA" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAppointmentHandler_List(t *testing.T) {
	t.Run("filter required", func(t *testing.T) {
		r, _ := newAppointmentRouter(t)
		if w := doRequest(r, http.MethodGet, "/v1/appointments", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by patient", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().ListByPatientID(gomock.Any(), "patient-1").Return([]entities.Appointment{{ID: "a1"}, {ID: "a2"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/appointments?patient_id=patient-1", "")
		if w.Code != http.StatusOK || w.Body.Len() == 0 {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("by day", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().ListByDay(gomock.Any(), time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)).Return(nil, nil)

		w := doRequest(r, http.MethodGet, "/v1/appointments?date=2026-03-03", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("date only range covers the last day", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().ListByRange(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, from, to time.Time) ([]entities.Appointment, error) {
			if !from.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected from %v", from)
			}
			if !to.Equal(time.Date(2026, 3, 8, 23, 59, 59, 999999999, time.UTC)) {
				t.Fatalf("unexpected to %v", to)
			}
			return nil, nil
		})

		if w := doRequest(r, http.MethodGet, "/v1/appointments?from=2026-03-02&to=2026-03-08", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid range", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().ListByRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidDateRange)

		if w := doRequest(r, http.MethodGet, "/v1/appointments?from=2026-03-08&to=2026-03-02", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_GetByID(t *testing.T) {
	r, uc := newAppointmentRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Appointment{}, usecase.ErrAppointmentNotFound)

	w := doRequest(r, http.MethodGet, "/v1/appointments/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if decodeBody(t, w)["code"] != "APPOINTMENT_NOT_FOUND" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAppointmentHandler_ChangeStatus(t *testing.T) {
	t.Run("status normalized and actor forwarded", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().ChangeStatus(gomock.Any(), "appt-1", entities.AppointmentStatusEnAtencion, "", "physio-7").
			Return(entities.Appointment{ID: "appt-1", Status: entities.AppointmentStatusEnAtencion, AttendedByID: "physio-7"}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/appointments/appt-1/status", `{"status":"en_atencion","attended_by_id":"physio-7"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["attended_by_id"] != "physio-7" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().ChangeStatus(gomock.Any(), "appt-1", entities.AppointmentStatusCancelada, "late", "").
			Return(entities.Appointment{}, &clinic.TransitionError{Entity: "appointment", From: "COMPLETADA", To: "CANCELADA"})

		w := doRequest(r, http.MethodPatch, "/v1/appointments/appt-1/status", `{"status":"CANCELADA","reason":"late"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "INVALID_TRANSITION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("concurrent update", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		uc.EXPECT().ChangeStatus(gomock.Any(), "appt-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Appointment{}, interfaces.ErrVersionConflict)

		w := doRequest(r, http.MethodPatch, "/v1/appointments/appt-1/status", `{"status":"CONFIRMADA"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		r, _ := newAppointmentRouter(t)
		if w := doRequest(r, http.MethodPatch, "/v1/appointments/appt-1/status", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_Reschedule(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newAppointmentRouter(t)
		newDate := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
		uc.EXPECT().Reschedule(gomock.Any(), "appt-1", newDate, "patient travel").Return(
			entities.Appointment{ID: "appt-1", Status: entities.AppointmentStatusReprogramada},
			entities.Appointment{ID: "appt-2", Status: entities.AppointmentStatusProgramada, RescheduledFromID: "appt-1", ScheduledAt: newDate},
			nil,
		)

		w := doRequest(r, http.MethodPost, "/v1/appointments/appt-1/reschedule", `{"new_date":"2026-03-05T09:00:00Z","reason":"patient travel"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		rescheduled := body["rescheduled"].(map[string]any)
		original := body["original"].(map[string]any)
		if rescheduled["rescheduled_from_id"] != "appt-1" || original["status"] != "REPROGRAMADA" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing new date", func(t *testing.T) {
		r, _ := newAppointmentRouter(t)
		if w := doRequest(r, http.MethodPost, "/v1/appointments/appt-1/reschedule", `{"reason":"x"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
