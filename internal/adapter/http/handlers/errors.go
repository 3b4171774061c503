package handlers

import (
	"errors"
	"net/http"

	"drywall_estimator/internal/domain/calculator"
	"drywall_estimator/internal/usecase"
	"drywall_estimator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimationPayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATION_INPUT", "Invalid estimation payload", http.StatusBadRequest)
	errInvalidCalculatorPayload = pkg.NewDomainErrorSimple("INVALID_CALCULATOR_INPUT", "Invalid calculator payload", http.StatusBadRequest)
)

func mapEstimationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidEstimationID), errors.Is(err, usecase.ErrInvalidDraftID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, calculator.ErrUnknownKind):
		return pkg.NewDomainErrorSimple("UNKNOWN_CALCULATOR", "Unknown calculator kind", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyEstimation):
		return pkg.NewDomainErrorSimple("EMPTY_ESTIMATION", "Estimation produced no materials", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimationNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATION_NOT_FOUND", "Estimation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftInvoiceNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_INVOICE_NOT_FOUND", "Draft invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptySession):
		return pkg.NewDomainErrorSimple("EMPTY_SESSION", "Session has no estimations", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
