package routes

import (
	"clinica_fisio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAppointments = "/appointments"
	PathPlans        = "/plans"
	PathPayments     = "/payments"
	PathTechniques   = "/techniques"
	PathReports      = "/reports"
)

type handlerSet struct {
	appointments *handlers.AppointmentHandler
	plans        *handlers.PlanHandler
	sessions     *handlers.SessionHandler
	payments     *handlers.PaymentHandler
	techniques   *handlers.TechniqueHandler
}

func addClinicRoutes(rg *gin.RouterGroup, h handlerSet) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", h.appointments.Schedule)
		appointments.GET("", h.appointments.List)
		appointments.GET("/:id", h.appointments.GetByID)
		appointments.PATCH("/:id/status", h.appointments.ChangeStatus)
		appointments.POST("/:id/reschedule", h.appointments.Reschedule)
	}

	plans := rg.Group(PathPlans)
	{
		plans.POST("", h.plans.Propose)
		plans.GET("", h.plans.List)
		plans.GET("/:id", h.plans.GetByID)
		plans.POST("/:id/confirm", h.plans.Confirm)
		plans.PATCH("/:id/status", h.plans.UpdateStatus)

		plans.POST("/:id/sessions", h.sessions.Record)
		plans.GET("/:id/sessions", h.sessions.ListByPlan)

		plans.GET("/:id/payments/total", h.payments.PlanTotalPaid)
		plans.GET("/:id/payments/suggested", h.payments.SuggestedAmount)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", h.payments.Register)
		payments.GET("", h.payments.List)
		payments.GET("/:id", h.payments.GetByID)
		payments.POST("/:id/refund", h.payments.Refund)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/income", h.payments.Summary)
	}

	techniques := rg.Group(PathTechniques)
	{
		techniques.GET("", h.techniques.ListActive)
		techniques.GET("/:id", h.techniques.GetByID)
	}
}
