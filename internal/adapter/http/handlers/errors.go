package handlers

import (
	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/usecase/interfaces"
	"clinica_fisio/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidDate    = pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date", http.StatusBadRequest)
)

// mapClinicError covers the rule violations shared by every resource. It
// returns nil for errors the caller must map itself.
func mapClinicError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "The resource was modified by another request, reload and retry", http.StatusConflict)
	case errors.Is(err, clinic.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, clinic.ErrPlanExhausted):
		return pkg.NewDomainErrorSimple("PLAN_EXHAUSTED", "Plan has no remaining sessions", http.StatusConflict)
	case errors.Is(err, clinic.ErrOrdinalMismatch):
		return pkg.NewDomainErrorSimple("SESSION_NUMBER_MISMATCH", "Session number does not match the next expected session", http.StatusConflict)
	case errors.Is(err, clinic.ErrAlreadyRefunded):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_REFUNDED", "Payment already refunded", http.StatusConflict)
	case errors.Is(err, clinic.ErrPaymentNotApplied):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPLIED", "Payment is not applied", http.StatusConflict)
	case errors.Is(err, clinic.ErrInvalidQuantity),
		errors.Is(err, clinic.ErrInvalidPercent),
		errors.Is(err, clinic.ErrInvalidModality),
		errors.Is(err, clinic.ErrInvalidPainScale),
		errors.Is(err, clinic.ErrNonPositiveAmount),
		errors.Is(err, clinic.ErrOverpaymentNotAllowed),
		errors.Is(err, clinic.ErrInvalidPaymentType),
		errors.Is(err, clinic.ErrPlanMismatch):
		return pkg.NewDomainError("BUSINESS_RULE_VIOLATION", err.Error(), err, http.StatusUnprocessableEntity)
	}
	return nil
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
