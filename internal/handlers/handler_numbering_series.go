package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// numberingSeriesHandler handles HTTP requests related to voucher numbering series.
type numberingSeriesHandler struct {
	seriesService portssvc.NumberingSeriesSvcFacade
}

func newNumberingSeriesHandler(ss portssvc.NumberingSeriesSvcFacade) *numberingSeriesHandler {
	return &numberingSeriesHandler{seriesService: ss}
}

// RegisterNumberingSeriesRoutes registers the series preview and the series routes of a business.
func RegisterNumberingSeriesRoutes(rg *gin.RouterGroup, seriesService portssvc.NumberingSeriesSvcFacade) {
	h := newNumberingSeriesHandler(seriesService)

	rg.POST("/numbering-series/preview", h.previewSeries)

	series := rg.Group("/businesses/:business_id/numbering-series")
	{
		series.POST("", h.createSeries)
		series.GET("", h.listSeries)
		series.GET("/:series_id", h.getSeries)
		series.PATCH("/:series_id", h.updateSeries)
		series.DELETE("/:series_id", h.deactivateSeries)
		series.GET("/:series_id/next-number", h.nextNumber)
	}
}

// previewSeries godoc
// @Summary Preview a numbering format
// @Description Renders unsaved series form values with the start number. Nothing is stored.
// @Tags numbering-series
// @Accept  json
// @Produce  json
// @Param   series body dto.PreviewNumberingSeriesRequest true "Series form values"
// @Success 200 {object} dto.PreviewNumberingSeriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /numbering-series/preview [post]
func (h *numberingSeriesHandler) previewSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PreviewNumberingSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewSeries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.seriesService.PreviewSeries(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "preview numbering series")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// createSeries godoc
// @Summary Create a numbering series
// @Description Requires the admin role. A default series replaces the previous default of the same voucher type.
// @Tags numbering-series
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   series body dto.CreateNumberingSeriesRequest true "Series details"
// @Success 201 {object} dto.NumberingSeriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Series name already used"
// @Security BearerAuth
// @Router /businesses/{business_id}/numbering-series [post]
func (h *numberingSeriesHandler) createSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var req dto.CreateNumberingSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSeries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	series, err := h.seriesService.CreateSeries(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create numbering series")
		return
	}

	c.JSON(http.StatusCreated, dto.ToNumberingSeriesResponse(series))
}

// listSeries godoc
// @Summary List numbering series
// @Tags numbering-series
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   voucher_type query string false "Voucher type"
// @Success 200 {object} dto.ListNumberingSeriesResponse
// @Failure 400 {object} map[string]string "Invalid voucher type"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /businesses/{business_id}/numbering-series [get]
func (h *numberingSeriesHandler) listSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var params dto.ListNumberingSeriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListSeries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	series, err := h.seriesService.ListSeries(c.Request.Context(), businessID, userID, params)
	if err != nil {
		respondWithError(c, logger, err, "list numbering series")
		return
	}

	c.JSON(http.StatusOK, dto.ToListNumberingSeriesResponse(series))
}

// getSeries godoc
// @Summary Get a numbering series
// @Tags numbering-series
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   series_id path string true "Series ID"
// @Success 200 {object} dto.NumberingSeriesResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Series not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/numbering-series/{series_id} [get]
func (h *numberingSeriesHandler) getSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	seriesID := c.Param("series_id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	series, err := h.seriesService.GetSeriesByID(c.Request.Context(), businessID, seriesID, userID)
	if err != nil {
		respondWithError(c, logger, err, "retrieve numbering series")
		return
	}

	c.JSON(http.StatusOK, dto.ToNumberingSeriesResponse(series))
}

// updateSeries godoc
// @Summary Update a numbering series
// @Description Only the fields present in the body change.
// @Tags numbering-series
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   series_id path string true "Series ID"
// @Param   series body dto.UpdateNumberingSeriesRequest true "Fields to change"
// @Success 200 {object} dto.NumberingSeriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Series not found"
// @Failure 409 {object} map[string]string "Modified concurrently or name already used"
// @Security BearerAuth
// @Router /businesses/{business_id}/numbering-series/{series_id} [patch]
func (h *numberingSeriesHandler) updateSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	seriesID := c.Param("series_id")

	var req dto.UpdateNumberingSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSeries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	series, err := h.seriesService.UpdateSeries(c.Request.Context(), businessID, seriesID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "update numbering series")
		return
	}

	c.JSON(http.StatusOK, dto.ToNumberingSeriesResponse(series))
}

// deactivateSeries godoc
// @Summary Deactivate a numbering series
// @Tags numbering-series
// @Param   business_id path string true "Business ID"
// @Param   series_id path string true "Series ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Series not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/numbering-series/{series_id} [delete]
func (h *numberingSeriesHandler) deactivateSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	seriesID := c.Param("series_id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.seriesService.DeactivateSeries(c.Request.Context(), businessID, seriesID, userID); err != nil {
		respondWithError(c, logger, err, "deactivate numbering series")
		return
	}

	c.Status(http.StatusNoContent)
}

// nextNumber godoc
// @Summary Show the next number of a series
// @Description Renders what the series would issue now, honouring its reset frequency. Nothing is consumed.
// @Tags numbering-series
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   series_id path string true "Series ID"
// @Success 200 {object} dto.NextNumberResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Series not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/numbering-series/{series_id}/next-number [get]
func (h *numberingSeriesHandler) nextNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	seriesID := c.Param("series_id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	number, err := h.seriesService.PreviewNextNumber(c.Request.Context(), businessID, seriesID, userID)
	if err != nil {
		respondWithError(c, logger, err, "preview next number")
		return
	}

	c.JSON(http.StatusOK, dto.NextNumberResponse{SeriesID: seriesID, NextNumber: number})
}
