package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/boarding-admin-api/internal/dto"
	"github.com/noah-isme/boarding-admin-api/internal/models"
	"github.com/noah-isme/boarding-admin-api/pkg/response"
)

type pocketMoneyService interface {
	Record(ctx context.Context, req dto.PocketMoneyRequest) (*models.PocketMoneyTransaction, error)
	List(ctx context.Context, period models.Period) ([]models.PocketMoneyEntry, error)
	MonthlyReport(ctx context.Context, period models.Period) ([]models.PocketMoneyBalance, error)
}

// PocketMoneyHandler exposes pocket money endpoints.
type PocketMoneyHandler struct {
	pocketMoney pocketMoneyService
}

// NewPocketMoneyHandler constructs the handler.
func NewPocketMoneyHandler(pocketMoney pocketMoneyService) *PocketMoneyHandler {
	return &PocketMoneyHandler{pocketMoney: pocketMoney}
}

// Record godoc
// @Summary Record a pocket money disbursement
// @Tags Pocket Money
// @Accept json
// @Produce json
// @Param payload body dto.PocketMoneyRequest true "Disbursement"
// @Success 201 {object} response.Envelope
// @Router /pocket-money [post]
func (h *PocketMoneyHandler) Record(c *gin.Context) {
	var req dto.PocketMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	tx, err := h.pocketMoney.Record(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tx)
}

// List godoc
// @Summary List disbursements of a month
// @Tags Pocket Money
// @Produce json
// @Param month query int true "Month"
// @Param year query int true "Year"
// @Success 200 {object} response.Envelope
// @Router /pocket-money [get]
func (h *PocketMoneyHandler) List(c *gin.Context) {
	period, err := periodFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	entries, err := h.pocketMoney.List(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// MonthlyReport godoc
// @Summary Per-student allowance balance for a month
// @Tags Pocket Money
// @Produce json
// @Param month query int true "Month"
// @Param year query int true "Year"
// @Success 200 {object} response.Envelope
// @Router /pocket-money/report [get]
func (h *PocketMoneyHandler) MonthlyReport(c *gin.Context) {
	period, err := periodFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	balances, err := h.pocketMoney.MonthlyReport(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, balances, nil)
}
