package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to ledgers of a business.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// RegisterLedgerRoutes registers the ledger routes of a business.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledgers := rg.Group("/businesses/:business_id/ledgers")
	{
		ledgers.POST("", h.createLedger)
		ledgers.GET("", h.listLedgers)
		ledgers.GET("/:ledger_id", h.getLedger)
	}
}

// createLedger godoc
// @Summary Create a ledger
// @Tags ledgers
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   ledger body dto.CreateLedgerRequest true "Ledger details"
// @Success 201 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Ledger name already used"
// @Security BearerAuth
// @Router /businesses/{business_id}/ledgers [post]
func (h *ledgerHandler) createLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var req dto.CreateLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.CreateLedger(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create ledger")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerResponse(ledger))
}

// listLedgers godoc
// @Summary List ledgers
// @Description Lists the active ledgers of a business. purpose=contra keeps only cash and bank ledgers.
// @Tags ledgers
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   purpose query string false "Ledger purpose" Enums(contra)
// @Success 200 {object} dto.ListLedgersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /businesses/{business_id}/ledgers [get]
func (h *ledgerHandler) listLedgers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var params dto.ListLedgersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListLedgers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	ledgers, err := h.ledgerService.ListLedgers(c.Request.Context(), businessID, userID, domain.LedgerPurpose(params.Purpose))
	if err != nil {
		respondWithError(c, logger, err, "list ledgers")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLedgersResponse(ledgers))
}

// getLedger godoc
// @Summary Get a ledger
// @Tags ledgers
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   ledger_id path string true "Ledger ID"
// @Success 200 {object} dto.LedgerResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Ledger not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/ledgers/{ledger_id} [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	ledgerID := c.Param("ledger_id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.GetLedgerByID(c.Request.Context(), businessID, ledgerID, userID)
	if err != nil {
		respondWithError(c, logger, err, "retrieve ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}
