package handlers

import (
	request "clinica_fisio/internal/adapter/http/dto/request"
	response "clinica_fisio/internal/adapter/http/dto/response"
	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase"
	"clinica_fisio/pkg"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PlanHandler handles HTTP requests for treatment plans.

type PlanHandler struct {
	usecase usecase.IPlanUseCase
}

func NewPlanHandler(uc usecase.IPlanUseCase) *PlanHandler {
	return &PlanHandler{usecase: uc}
}

// Propose godoc
// @Summary      Propose a treatment plan
// @Description  Prices the plan from the technique catalog. The plan starts PROPUESTO with modality PENDIENTE.
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        body  body      request.ProposePlanRequest  true  "Plan"
// @Success      201   {object}  response.PlanResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /plans [post]
func (h *PlanHandler) Propose(c *gin.Context) {
	var payload request.ProposePlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[plan][handler] invalid payload err=%v", err)
		writeError(c, errInvalidRequest)
		return
	}

	plan, err := h.usecase.Propose(c.Request.Context(), usecase.ProposePlanInput{
		PatientID:          payload.PatientID,
		ConsultationID:     payload.ConsultationID,
		Diagnosis:          payload.Diagnosis,
		NumberOfSessions:   payload.NumberOfSessions,
		TechniqueIDs:       payload.TechniqueIDs,
		Observations:       payload.Observations,
		SuggestedFrequency: payload.SuggestedFrequency,
	})
	if err != nil {
		log.Printf("[plan][handler] propose failed patient_id=%s err=%v", payload.PatientID, err)
		writeError(c, mapPlanError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromPlan(plan))
}

// GetByID godoc
// @Summary      Get a treatment plan
// @Tags         plans
// @Produce      json
// @Param        id   path      string  true  "Plan ID"
// @Success      200  {object}  response.PlanResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /plans/{id} [get]
func (h *PlanHandler) GetByID(c *gin.Context) {
	plan, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPlanError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPlan(plan))
}

// List godoc
// @Summary      List treatment plans
// @Description  Filters by patient_id or by status.
// @Tags         plans
// @Produce      json
// @Param        patient_id  query     string  false  "Patient ID"
// @Param        status      query     string  false  "Plan status"
// @Success      200  {array}   response.PlanResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /plans [get]
func (h *PlanHandler) List(c *gin.Context) {
	var (
		plans []entities.TreatmentPlan
		err   error
	)
	switch {
	case c.Query("patient_id") != "":
		plans, err = h.usecase.ListByPatientID(c.Request.Context(), c.Query("patient_id"))
	case c.Query("status") != "":
		status := entities.PlanStatus(strings.ToUpper(strings.TrimSpace(c.Query("status"))))
		plans, err = h.usecase.ListByStatus(c.Request.Context(), status)
	default:
		writeError(c, errInvalidRequest)
		return
	}
	if err != nil {
		writeError(c, mapPlanError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPlans(plans))
}

// Confirm godoc
// @Summary      Confirm a treatment plan
// @Description  Records the payment modality. PAGO_COMPLETO applies the configured full-payment discount unless apply_discount is false.
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Plan ID"
// @Param        body  body      request.ConfirmPlanRequest  true  "Modality"
// @Success      200   {object}  response.PlanResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /plans/{id}/confirm [post]
func (h *PlanHandler) Confirm(c *gin.Context) {
	id := c.Param("id")
	var payload request.ConfirmPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	modality := payload.ResolveModality()
	log.Printf("[plan][handler] confirm start id=%s modality=%s", id, modality)
	plan, err := h.usecase.Confirm(c.Request.Context(), id, entities.PaymentModality(modality), payload.ResolveApplyDiscount())
	if err != nil {
		log.Printf("[plan][handler] confirm failed id=%s err=%v", id, err)
		writeError(c, mapPlanError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPlan(plan))
}

// UpdateStatus godoc
// @Summary      Change treatment plan status
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "Plan ID"
// @Param        body  body      request.UpdatePlanStatusRequest  true  "New status"
// @Success      200   {object}  response.PlanResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /plans/{id}/status [patch]
func (h *PlanHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var payload request.UpdatePlanStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	plan, err := h.usecase.UpdateStatus(c.Request.Context(), id, entities.PlanStatus(payload.ResolveStatus()))
	if err != nil {
		log.Printf("[plan][handler] update-status failed id=%s status=%s err=%v", id, payload.Status, err)
		writeError(c, mapPlanError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPlan(plan))
}

func mapPlanError(err error) *pkg.AppError {
	if appErr := mapClinicError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPlanID),
		errors.Is(err, usecase.ErrInvalidPatientID),
		errors.Is(err, usecase.ErrInvalidPlanStatus):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrNoTechniques):
		return pkg.NewDomainErrorSimple("TECHNIQUES_REQUIRED", "At least one technique is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnknownTechnique):
		return pkg.NewDomainError("UNKNOWN_TECHNIQUE", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Treatment plan not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
