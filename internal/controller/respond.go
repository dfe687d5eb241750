// Package controller holds the pieces shared by the HTTP handlers.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizforge/internal/dto"
	"github.com/lshigami/quizforge/internal/ingest"
	"github.com/lshigami/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

// StatusFor maps service and pipeline errors to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, ingest.ErrInvalidInput),
		errors.Is(err, ingest.ErrNotFound),
		errors.Is(err, ingest.ErrInsufficientContent),
		errors.Is(err, ingest.ErrExtractionEmpty):
		return http.StatusBadRequest
	case errors.Is(err, ingest.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as a dto.ErrorResponse. Unmapped errors are logged
// and hidden behind a generic message.
func RespondError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(status, dto.ErrorResponse{Error: "Internal server error"})
		return
	}
	log.Warn().Err(err).Str("path", c.FullPath()).Int("status", status).Msg("Request rejected")
	c.JSON(status, dto.ErrorResponse{Error: PublicMessage(err)})
}

// PublicMessage is the client facing text for a mapped error. Causes and
// upstream provider text stay in the log.
func PublicMessage(err error) string {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	var ingestErr *ingest.Error
	if errors.As(err, &ingestErr) {
		return ingestErr.Message
	}
	switch {
	case errors.Is(err, ingest.ErrExtractionEmpty):
		return "Failed to generate valid questions"
	case errors.Is(err, ingest.ErrGenerationFailed):
		return "Failed to generate content. Please try again later."
	case errors.Is(err, ingest.ErrInsufficientContent):
		return "Could not extract sufficient content from the provided URL"
	case errors.Is(err, ingest.ErrNotFound):
		return "Could not fetch video details. Please check if the video exists."
	default:
		return "Invalid input"
	}
}

// BadRequest reports a binding failure.
func BadRequest(c *gin.Context, err error) {
	log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request")
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
}

// Health godoc
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
