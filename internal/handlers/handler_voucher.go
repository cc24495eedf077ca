package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: vs}
}

// RegisterVoucherRoutes registers the draft check and the voucher routes of a business.
func RegisterVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	rg.POST("/vouchers/validate", h.validateDraft)

	vouchers := rg.Group("/businesses/:business_id/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucher_id", h.getVoucher)
		vouchers.POST("/:voucher_id/cancel", h.cancelVoucher)
	}
}

// validateDraft godoc
// @Summary Check voucher editor rows
// @Description Runs the balance checks on debit and credit rows without saving anything.
// @Description The response is 200 whether or not the draft is valid; see the valid and reason fields.
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   draft body dto.ValidateVoucherDraftRequest true "Debit and credit rows"
// @Success 200 {object} dto.ValidateVoucherDraftResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Security BearerAuth
// @Router /vouchers/validate [post]
func (h *voucherHandler) validateDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ValidateVoucherDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ValidateDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result := h.voucherService.ValidateDraft(c.Request.Context(), req)
	c.JSON(http.StatusOK, dto.ToValidateVoucherDraftResponse(result))
}

// createVoucher godoc
// @Summary Create a voucher
// @Description Validates and saves a voucher. The number comes from the default active series of its type.
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   voucher body dto.CreateVoucherRequest true "Voucher"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input or unusable ledger"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 422 {object} dto.VoucherValidationErrorResponse "Voucher does not balance"
// @Failure 500 {object} map[string]string "Failed to create voucher"
// @Security BearerAuth
// @Router /businesses/{business_id}/vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("business_id", businessID))
	logger.Info("Received request to create voucher",
		slog.String("voucher_type", req.VoucherType),
		slog.Int("entry_count", len(req.LedgerEntries)))

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create voucher")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List vouchers
// @Description Lists vouchers newest first, one page at a time.
// @Tags vouchers
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   voucher_type query string false "Voucher type"
// @Param   limit query int false "Page size" default(20)
// @Param   next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListVouchersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /businesses/{business_id}/vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListVouchers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.voucherService.ListVouchers(c.Request.Context(), businessID, userID, params)
	if err != nil {
		respondWithError(c, logger, err, "list vouchers")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getVoucher godoc
// @Summary Get a voucher with its ledger entries
// @Tags vouchers
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   voucher_id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/vouchers/{voucher_id} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	voucherID := c.Param("voucher_id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), businessID, voucherID, userID)
	if err != nil {
		respondWithError(c, logger, err, "retrieve voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// cancelVoucher godoc
// @Summary Cancel a voucher
// @Description The voucher keeps its number; cancelling twice is a conflict.
// @Tags vouchers
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   voucher_id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 409 {object} map[string]string "Already cancelled or modified concurrently"
// @Security BearerAuth
// @Router /businesses/{business_id}/vouchers/{voucher_id}/cancel [post]
func (h *voucherHandler) cancelVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	voucherID := c.Param("voucher_id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	voucher, err := h.voucherService.CancelVoucher(c.Request.Context(), businessID, voucherID, userID)
	if err != nil {
		respondWithError(c, logger, err, "cancel voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}
