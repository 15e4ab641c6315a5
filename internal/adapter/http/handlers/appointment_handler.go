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
	"time"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles HTTP requests for the agenda.

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

// Schedule godoc
// @Summary      Schedule an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      request.ScheduleAppointmentRequest  true  "Appointment"
// @Success      201   {object}  response.AppointmentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /appointments [post]
func (h *AppointmentHandler) Schedule(c *gin.Context) {
	var payload request.ScheduleAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[appointment][handler] invalid payload err=%v", err)
		writeError(c, errInvalidRequest)
		return
	}
	at, err := payload.ResolveScheduledAt()
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}

	created, err := h.usecase.Schedule(c.Request.Context(), usecase.ScheduleAppointmentInput{
		PatientID:     payload.PatientID,
		PlanID:        payload.PlanID,
		ScheduledAt:   at,
		Type:          entities.AppointmentType(strings.ToUpper(strings.TrimSpace(payload.Type))),
		SessionNumber: payload.SessionNumber,
		Notes:         payload.Notes,
	})
	if err != nil {
		log.Printf("[appointment][handler] schedule failed patient_id=%s err=%v", payload.PatientID, err)
		writeError(c, mapAppointmentError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(created))
}

// GetByID godoc
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Param        id   path      string  true  "Appointment ID"
// @Success      200  {object}  response.AppointmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAppointment(a))
}

// List godoc
// @Summary      List appointments
// @Description  Filters by patient_id, by a single date (YYYY-MM-DD) or by a from/to range. Exactly one filter is required.
// @Tags         appointments
// @Produce      json
// @Param        patient_id  query     string  false  "Patient ID"
// @Param        date        query     string  false  "Day (YYYY-MM-DD)"
// @Param        from        query     string  false  "Range start"
// @Param        to          query     string  false  "Range end"
// @Success      200  {array}   response.AppointmentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		items []entities.Appointment
		err   error
	)

	switch {
	case c.Query("patient_id") != "":
		items, err = h.usecase.ListByPatientID(ctx, c.Query("patient_id"))
	case c.Query("date") != "":
		day, perr := request.ParseDateTime(c.Query("date"))
		if perr != nil {
			writeError(c, errInvalidDate)
			return
		}
		items, err = h.usecase.ListByDay(ctx, day)
	case c.Query("from") != "" || c.Query("to") != "":
		from, to, perr := parseRange(c)
		if perr != nil {
			writeError(c, errInvalidDate)
			return
		}
		items, err = h.usecase.ListByRange(ctx, from, to)
	default:
		writeError(c, errInvalidRequest)
		return
	}
	if err != nil {
		log.Printf("[appointment][handler] list failed query=%q err=%v", c.Request.URL.RawQuery, err)
		writeError(c, mapAppointmentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromAppointments(items))
}

// ChangeStatus godoc
// @Summary      Change appointment status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id    path      string                                  true  "Appointment ID"
// @Param        body  body      request.ChangeAppointmentStatusRequest  true  "New status"
// @Success      200   {object}  response.AppointmentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /appointments/{id}/status [patch]
func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id := c.Param("id")
	var payload request.ChangeAppointmentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	status := payload.ResolveStatus()
	log.Printf("[appointment][handler] change-status start id=%s status=%s", id, status)
	updated, err := h.usecase.ChangeStatus(c.Request.Context(), id, entities.AppointmentStatus(status), payload.Reason, payload.AttendedByID)
	if err != nil {
		log.Printf("[appointment][handler] change-status failed id=%s status=%s err=%v", id, status, err)
		writeError(c, mapAppointmentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(updated))
}

// Reschedule godoc
// @Summary      Reschedule an appointment
// @Description  Marks the appointment REPROGRAMADA and books a linked PROGRAMADA one at the new date.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id    path      string                                true  "Appointment ID"
// @Param        body  body      request.RescheduleAppointmentRequest  true  "New date"
// @Success      201   {object}  response.RescheduleResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /appointments/{id}/reschedule [post]
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id := c.Param("id")
	var payload request.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	newDate, err := payload.ResolveNewDate()
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}

	original, rescheduled, err := h.usecase.Reschedule(c.Request.Context(), id, newDate, payload.Reason)
	if err != nil {
		log.Printf("[appointment][handler] reschedule failed id=%s err=%v", id, err)
		writeError(c, mapAppointmentError(err))
		return
	}

	c.JSON(http.StatusCreated, response.RescheduleResponse{
		Original:    response.FromAppointment(original),
		Rescheduled: response.FromAppointment(rescheduled),
	})
}

// parseRange reads from/to query values. A date-only `to` covers the whole day.
func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	from, err := request.ParseDateTime(c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	rawTo := strings.TrimSpace(c.Query("to"))
	to, err := request.ParseDateTime(rawTo)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if len(rawTo) == len("2006-01-02") {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

func mapAppointmentError(err error) *pkg.AppError {
	if appErr := mapClinicError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID),
		errors.Is(err, usecase.ErrInvalidPatientID),
		errors.Is(err, usecase.ErrInvalidAppointmentType),
		errors.Is(err, usecase.ErrInvalidAppointmentState),
		errors.Is(err, usecase.ErrInvalidScheduleDate),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidPlanID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPlanPatientMismatch):
		return pkg.NewDomainErrorSimple("PLAN_PATIENT_MISMATCH", "Plan belongs to another patient", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPlanClosed):
		return pkg.NewDomainErrorSimple("PLAN_CLOSED", "Treatment plan is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Treatment plan not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
