package handlers

import (
	"errors"
	"net/http"

	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase"
	"consultoria_xpto/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func mapEngagementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return errInvalidRequest.WithDetails(err)
	case errors.Is(err, usecase.ErrInvalidEngagementID):
		return pkg.NewDomainErrorSimple("INVALID_ENGAGEMENT_ID", "Invalid engagement id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDimension):
		return pkg.NewDomainErrorSimple("INVALID_DIMENSION", "Unknown breakdown dimension", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Engagement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrEngagementClosed):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_CLOSED", "Engagement is completed or cancelled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, log *zap.Logger, err error) {
	appErr := mapEngagementError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("[http][handler] request failed",
			zap.String("route", c.FullPath()),
			zap.String("engagement_id", c.Param("id")),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
