package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"clinica_fisio/internal/adapter/http/handlers/mocks"
	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPlanRouter(t *testing.T) (*gin.Engine, *mocks.MockIPlanUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPlanUseCase(ctrl)
	h := NewPlanHandler(uc)

	r := newTestRouter()
	r.POST("/v1/plans", h.Propose)
	r.GET("/v1/plans", h.List)
	r.GET("/v1/plans/:id", h.GetByID)
	r.POST("/v1/plans/:id/confirm", h.Confirm)
	r.PATCH("/v1/plans/:id/status", h.UpdateStatus)
	return r, uc
}

func TestPlanHandler_Propose(t *testing.T) {
	t.Run("at least one session", func(t *testing.T) {
		r, _ := newPlanRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/plans", `{"patient_id":"patient-1","number_of_sessions":0,"technique_ids":["t-1"]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown technique", func(t *testing.T) {
		r, uc := newPlanRouter(t)
		uc.EXPECT().Propose(gomock.Any(), gomock.Any()).Return(entities.TreatmentPlan{}, fmt.Errorf("%w: t-9", usecase.ErrUnknownTechnique))

		w := doRequest(r, http.MethodPost, "/v1/plans", `{"patient_id":"patient-1","number_of_sessions":10,"technique_ids":["t-9"]}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "UNKNOWN_TECHNIQUE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPlanRouter(t)
		uc.EXPECT().Propose(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.ProposePlanInput) (entities.TreatmentPlan, error) {
			if in.NumberOfSessions != 10 || len(in.TechniqueIDs) != 2 || in.Diagnosis != "lumbalgia" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.TreatmentPlan{
				ID:                 "plan-1",
				PatientID:          in.PatientID,
				NumberOfSessions:   10,
				CostPerSession:     decimal.RequireFromString("50"),
				TotalCost:          decimal.RequireFromString("500"),
				OutstandingBalance: decimal.RequireFromString("500"),
				PaymentModality:    entities.PaymentModalityPendiente,
				Status:             entities.PlanStatusPropuesto,
				TechniqueIDs:       in.TechniqueIDs,
			}, nil
		})

		w := doRequest(r, http.MethodPost, "/v1/plans", `{"patient_id":"patient-1","diagnosis":"lumbalgia","number_of_sessions":10,"technique_ids":["t-1","t-2"]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["total_cost"] != "500" || body["status"] != "PROPUESTO" || body["remaining_sessions"] != float64(10) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPlanHandler_Confirm(t *testing.T) {
	t.Run("discount applies by default", func(t *testing.T) {
		r, uc := newPlanRouter(t)
		uc.EXPECT().Confirm(gomock.Any(), "plan-1", entities.PaymentModalityPagoCompleto, true).Return(entities.TreatmentPlan{ID: "plan-1", Status: entities.PlanStatusAceptado}, nil)

		if w := doRequest(r, http.MethodPost, "/v1/plans/plan-1/confirm", `{"payment_modality":"pago_completo"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("discount declined", func(t *testing.T) {
		r, uc := newPlanRouter(t)
		uc.EXPECT().Confirm(gomock.Any(), "plan-1", entities.PaymentModalityPagoCompleto, false).Return(entities.TreatmentPlan{ID: "plan-1"}, nil)

		if w := doRequest(r, http.MethodPost, "/v1/plans/plan-1/confirm", `{"payment_modality":"PAGO_COMPLETO","apply_discount":false}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("undecided modality", func(t *testing.T) {
		r, uc := newPlanRouter(t)
		uc.EXPECT().Confirm(gomock.Any(), "plan-1", entities.PaymentModalityPendiente, true).Return(entities.TreatmentPlan{}, clinic.ErrInvalidModality)

		if w := doRequest(r, http.MethodPost, "/v1/plans/plan-1/confirm", `{"payment_modality":"PENDIENTE"}`); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newPlanRouter(t)
		uc.EXPECT().Confirm(gomock.Any(), "missing", gomock.Any(), gomock.Any()).Return(entities.TreatmentPlan{}, usecase.ErrPlanNotFound)

		if w := doRequest(r, http.MethodPost, "/v1/plans/missing/confirm", `{"payment_modality":"PAGO_POR_SESION"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPlanHandler_UpdateStatus(t *testing.T) {
	r, uc := newPlanRouter(t)
	uc.EXPECT().UpdateStatus(gomock.Any(), "plan-1", entities.PlanStatusAbandonado).
		Return(entities.TreatmentPlan{}, &clinic.TransitionError{Entity: "plan", From: "PROPUESTO", To: "ABANDONADO"})

	w := doRequest(r, http.MethodPatch, "/v1/plans/plan-1/status", `{"status":"abandonado"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestPlanHandler_List(t *testing.T) {
	t.Run("by status", func(t *testing.T) {
		r, uc := newPlanRouter(t)
		uc.EXPECT().ListByStatus(gomock.Any(), entities.PlanStatusEnCurso).Return([]entities.TreatmentPlan{{ID: "plan-1"}}, nil)

		if w := doRequest(r, http.MethodGet, "/v1/plans?status=en_curso", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		r, uc := newPlanRouter(t)
		uc.EXPECT().ListByStatus(gomock.Any(), entities.PlanStatus("X")).Return(nil, usecase.ErrInvalidPlanStatus)

		if w := doRequest(r, http.MethodGet, "/v1/plans?status=x", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by patient", func(t *testing.T) {
		r, uc := newPlanRouter(t)
		uc.EXPECT().ListByPatientID(gomock.Any(), "patient-1").Return(nil, nil)

		if w := doRequest(r, http.MethodGet, "/v1/plans?patient_id=patient-1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
