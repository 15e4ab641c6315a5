package handlers

import (
	request "clinica_fisio/internal/adapter/http/dto/request"
	response "clinica_fisio/internal/adapter/http/dto/response"
	"clinica_fisio/internal/usecase"
	"clinica_fisio/pkg"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles HTTP requests for attended sessions of a plan.

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// Record godoc
// @Summary      Record a session
// @Description  Advances the plan. The first session moves an ACEPTADO plan to EN_CURSO; a linked appointment in EN_ATENCION is completed.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Plan ID"
// @Param        body  body      request.RecordSessionRequest  true  "Session"
// @Success      201   {object}  response.RecordSessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /plans/{id}/sessions [post]
func (h *SessionHandler) Record(c *gin.Context) {
	planID := c.Param("id")
	var payload request.RecordSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[session][handler] invalid payload plan_id=%s err=%v", planID, err)
		writeError(c, errInvalidRequest)
		return
	}
	date, err := payload.ResolveDate()
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}

	res, err := h.usecase.Record(c.Request.Context(), usecase.RecordSessionInput{
		PlanID:        planID,
		Number:        payload.Number,
		Date:          date,
		PainScale:     payload.PainScale,
		WeightKg:      payload.WeightKg,
		HeightCm:      payload.HeightCm,
		Observations:  payload.Observations,
		AttendedByID:  payload.AttendedByID,
		TechniqueIDs:  payload.TechniqueIDs,
		AppointmentID: payload.AppointmentID,
	})
	if err != nil {
		log.Printf("[session][handler] record failed plan_id=%s err=%v", planID, err)
		writeError(c, mapSessionError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromRecordSessionResult(res))
}

// ListByPlan godoc
// @Summary      List sessions of a plan
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Plan ID"
// @Success      200  {array}   response.SessionResponse
// @Router       /plans/{id}/sessions [get]
func (h *SessionHandler) ListByPlan(c *gin.Context) {
	sessions, err := h.usecase.ListByPlanID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSessions(sessions))
}

func mapSessionError(err error) *pkg.AppError {
	if appErr := mapClinicError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPlanID), errors.Is(err, usecase.ErrInvalidAppointmentID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPlanNotActive):
		return pkg.NewDomainErrorSimple("PLAN_NOT_ACTIVE", "Treatment plan is not accepted or in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrAppointmentNotInAttention):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_IN_ATTENTION", "Appointment cannot be completed from its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrAppointmentPlanMismatch):
		return pkg.NewDomainErrorSimple("APPOINTMENT_PLAN_MISMATCH", "Appointment does not belong to this plan", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Treatment plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
