package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/usecase"
	"clinica_fisio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestMapClinicError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{interfaces.ErrVersionConflict, http.StatusConflict, "CONCURRENT_MODIFICATION"},
		{&clinic.TransitionError{Entity: "appointment", From: "COMPLETADA", To: "CANCELADA"}, http.StatusConflict, "INVALID_TRANSITION"},
		{clinic.ErrPlanExhausted, http.StatusConflict, "PLAN_EXHAUSTED"},
		{clinic.ErrOrdinalMismatch, http.StatusConflict, "SESSION_NUMBER_MISMATCH"},
		{clinic.ErrAlreadyRefunded, http.StatusConflict, "PAYMENT_ALREADY_REFUNDED"},
		{clinic.ErrOverpaymentNotAllowed, http.StatusUnprocessableEntity, "BUSINESS_RULE_VIOLATION"},
		{fmt.Errorf("wrapped: %w", clinic.ErrInvalidPainScale), http.StatusUnprocessableEntity, "BUSINESS_RULE_VIOLATION"},
	}
	for _, tc := range cases {
		got := mapClinicError(tc.err)
		if got == nil || got.HTTPStatus != tc.status || got.Code != tc.code {
			t.Fatalf("for %v expected %d/%s, got %+v", tc.err, tc.status, tc.code, got)
		}
	}

	if got := mapClinicError(usecase.ErrPlanNotFound); got != nil {
		t.Fatalf("expected nil for non core error, got %+v", got)
	}
	if got := mapClinicError(errors.New("boom")); got != nil {
		t.Fatalf("expected nil for unknown error, got %+v", got)
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	r := newTestRouter()
	r.GET("/x", func(c *gin.Context) { writeError(c, internalError(errors.New("dynamodb: secret detail"))) })

	w := doRequest(r, http.MethodGet, "/x", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("secret")) {
		t.Fatalf("internal detail leaked: %s", w.Body.String())
	}
}
