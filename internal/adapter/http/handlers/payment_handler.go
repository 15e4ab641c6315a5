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

// PaymentHandler handles HTTP requests for payments and income reports.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Register godoc
// @Summary      Register a payment
// @Description  Validates the payment against its plan or appointment. TARJETA payments are charged through Mercado Pago using mp_payload.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.RegisterPaymentRequest  true  "Payment"
// @Success      201   {object}  response.RegisterPaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      402   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) Register(c *gin.Context) {
	var payload request.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		writeError(c, errInvalidRequest)
		return
	}
	log.Printf("[payment][handler] register start patient_id=%s type=%s method=%s", payload.PatientID, payload.ResolveType(), payload.ResolveMethod())

	res, err := h.usecase.Register(c.Request.Context(), usecase.RegisterPaymentInput{
		PatientID:       payload.PatientID,
		AppointmentID:   payload.AppointmentID,
		ConsultationID:  payload.ConsultationID,
		PlanID:          payload.PlanID,
		SessionID:       payload.SessionID,
		Type:            entities.PaymentType(payload.ResolveType()),
		Amount:          payload.Amount,
		Method:          entities.PaymentMethod(payload.ResolveMethod()),
		Reference:       payload.Reference,
		Concept:         payload.Concept,
		Notes:           payload.Notes,
		RegisteredByID:  payload.RegisteredByID,
		ProviderPayload: payload.MPPayload,
	})
	if err != nil {
		log.Printf("[payment][handler] register failed patient_id=%s err=%v", payload.PatientID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] register success payment_id=%s status=%s", res.Payment.ID, res.Payment.Status)

	c.JSON(http.StatusCreated, response.FromRegisterPaymentResult(res))
}

// GetByID godoc
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// List godoc
// @Summary      List payments
// @Description  Filters by patient_id, plan_id, a single date or a from/to range.
// @Tags         payments
// @Produce      json
// @Param        patient_id  query     string  false  "Patient ID"
// @Param        plan_id     query     string  false  "Plan ID"
// @Param        date        query     string  false  "Day (YYYY-MM-DD)"
// @Param        from        query     string  false  "Range start"
// @Param        to          query     string  false  "Range end"
// @Success      200  {array}   response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		items []entities.Payment
		err   error
	)

	switch {
	case c.Query("patient_id") != "":
		items, err = h.usecase.ListByPatientID(ctx, c.Query("patient_id"))
	case c.Query("plan_id") != "":
		items, err = h.usecase.ListByPlanID(ctx, c.Query("plan_id"))
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
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(items))
}

// Refund godoc
// @Summary      Refund a payment
// @Description  Moves an APLICADO payment to DEVUELTO and restores the plan balance.
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  response.RefundResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /payments/{id}/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] refund start payment_id=%s", id)
	p, plan, err := h.usecase.Refund(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] refund failed payment_id=%s err=%v", id, err)
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRefund(p, plan))
}

// PlanTotalPaid godoc
// @Summary      Total applied payments of a plan
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Plan ID"
// @Success      200  {object}  response.PlanTotalPaidResponse
// @Router       /plans/{id}/payments/total [get]
func (h *PaymentHandler) PlanTotalPaid(c *gin.Context) {
	planID := c.Param("id")
	total, err := h.usecase.TotalPaidByPlan(c.Request.Context(), planID)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.PlanTotalPaidResponse{PlanID: planID, TotalPaid: total})
}

// SuggestedAmount godoc
// @Summary      Suggested amount for a plan payment
// @Tags         payments
// @Produce      json
// @Param        id    path      string  true  "Plan ID"
// @Param        type  query     string  true  "PAGO_PLAN_COMPLETO, PAGO_SESION or ADELANTO_PLAN"
// @Success      200   {object}  response.SuggestedAmountResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /plans/{id}/payments/suggested [get]
func (h *PaymentHandler) SuggestedAmount(c *gin.Context) {
	planID := c.Param("id")
	paymentType := strings.ToUpper(strings.TrimSpace(c.Query("type")))
	amount, err := h.usecase.SuggestedAmount(c.Request.Context(), planID, entities.PaymentType(paymentType))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuggestedAmountResponse{PlanID: planID, Type: paymentType, SuggestedAmount: amount})
}

// Summary godoc
// @Summary      Income summary
// @Description  Sum and count of APLICADO payments for a day or a from/to range. Defaults to today (UTC).
// @Tags         reports
// @Produce      json
// @Param        date  query     string  false  "Day (YYYY-MM-DD)"
// @Param        from  query     string  false  "Range start"
// @Param        to    query     string  false  "Range end"
// @Success      200   {object}  response.PaymentSummaryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /reports/income [get]
func (h *PaymentHandler) Summary(c *gin.Context) {
	var from, to time.Time
	switch {
	case c.Query("from") != "" || c.Query("to") != "":
		var err error
		if from, to, err = parseRange(c); err != nil {
			writeError(c, errInvalidDate)
			return
		}
	default:
		day := time.Now().UTC()
		if raw := c.Query("date"); raw != "" {
			var err error
			if day, err = request.ParseDateTime(raw); err != nil {
				writeError(c, errInvalidDate)
				return
			}
		}
		from = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		to = from.Add(24*time.Hour - time.Nanosecond)
	}

	summary, err := h.usecase.Summary(c.Request.Context(), from, to)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSummary(summary))
}

func mapPaymentError(err error) *pkg.AppError {
	if appErr := mapClinicError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPatientID),
		errors.Is(err, usecase.ErrInvalidPlanID),
		errors.Is(err, usecase.ErrInvalidPaymentType),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidProviderPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentTargetRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_TARGET_REQUIRED", "Plan payments require a plan_id", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPlanPatientMismatch):
		return pkg.NewDomainErrorSimple("PLAN_PATIENT_MISMATCH", "Plan belongs to another patient", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAppointmentPatientMismatch):
		return pkg.NewDomainErrorSimple("APPOINTMENT_PATIENT_MISMATCH", "Appointment belongs to another patient", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPlanClosed):
		return pkg.NewDomainErrorSimple("PLAN_CLOSED", "Treatment plan is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Card payment rejected by provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Card payments are not available", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Treatment plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
