package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// businessHandler handles HTTP requests related to businesses.
type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
}

func newBusinessHandler(bs portssvc.BusinessSvcFacade) *businessHandler {
	return &businessHandler{
		businessService: bs,
	}
}

// RegisterBusinessRoutes registers routes for businesses the calling user belongs to.
func RegisterBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessSvcFacade) {
	h := newBusinessHandler(businessService)

	businesses := rg.Group("/businesses")
	{
		businesses.POST("", h.createBusiness)
		businesses.GET("", h.listUserBusinesses)
		businesses.GET("/:business_id", h.getBusiness)
	}
}

// createBusiness godoc
// @Summary Create a new business
// @Description Creates a business and makes the caller its admin.
// @Tags businesses
// @Accept  json
// @Produce  json
// @Param   business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create business"
// @Security BearerAuth
// @Router /businesses [post]
func (h *businessHandler) createBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBusiness", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "create business")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// listUserBusinesses godoc
// @Summary List the caller's businesses
// @Tags businesses
// @Produce  json
// @Success 200 {object} dto.ListBusinessesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list businesses"
// @Security BearerAuth
// @Router /businesses [get]
func (h *businessHandler) listUserBusinesses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	businesses, err := h.businessService.ListUserBusinesses(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "list businesses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBusinessesResponse(businesses))
}

// getBusiness godoc
// @Summary Get a business
// @Tags businesses
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Business not found"
// @Security BearerAuth
// @Router /businesses/{business_id} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	business, err := h.businessService.FindBusinessByID(c.Request.Context(), businessID, userID)
	if err != nil {
		respondWithError(c, logger, err, "retrieve business")
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}
