package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/server/http/dto"
)

// AdminHandler manages administrator-only endpoints.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// CompleteOrder handles POST /api/admin/orders/:id/complete.
func (h *AdminHandler) CompleteOrder(c *gin.Context) {
	orderID := pathID(c, "id")
	if orderID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.CompleteOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.CompleteOrder(c.Request.Context(), orderID, CurrentUserID(c), req.Notes)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusOK, dto.CompleteOrderResponse{
		Order:         toOrderResponse(*result.Order),
		Profit:        result.Profit,
		PointsGranted: result.PointsGranted,
		StockDeducted: result.StockDeducted,
	})
}

// UpdateOrderStatus handles PATCH /api/admin/orders/:id/status.
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID := pathID(c, "id")
	if orderID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), orderID, model.OrderStatus(req.Status), req.Notes)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// ConfirmPayment handles POST /api/admin/payments/:id/confirm.
func (h *AdminHandler) ConfirmPayment(c *gin.Context) {
	paymentID := pathID(c, "id")
	if paymentID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, err := h.facade.ConfirmPayment(c.Request.Context(), paymentID, CurrentUserID(c), req.TxnRef)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusOK, toPaymentResponse(*payment))
}

// SweepExpired handles POST /api/admin/sweep-expired. The background
// sweeper runs the same cancellation on a timer; this endpoint lets an
// administrator trigger it immediately with an explicit age bound.
func (h *AdminHandler) SweepExpired(c *gin.Context) {
	var req dto.SweepExpiredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cutoff := time.Now().Add(-time.Duration(req.OlderThanMinutes) * time.Minute)
	cancelled, err := h.facade.CancelExpiredOrders(c.Request.Context(), cutoff)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	resp := dto.SweepExpiredResponse{Cancelled: make([]dto.OrderResponse, 0, len(cancelled)), Count: len(cancelled)}
	for _, order := range cancelled {
		resp.Cancelled = append(resp.Cancelled, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, resp)
}

// AdjustStock handles POST /api/admin/stock/:productId/adjust.
func (h *AdminHandler) AdjustStock(c *gin.Context) {
	productID := pathID(c, "productId")
	if productID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	actorID := CurrentUserID(c)
	entry, err := h.facade.AdjustStock(c.Request.Context(), productID, req.Delta,
		model.StockReason(req.Reason), req.ReferenceOrderID, &actorID)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusOK, toStockLogResponse(*entry))
}

// StockLevel handles GET /api/admin/stock/:productId.
func (h *AdminHandler) StockLevel(c *gin.Context) {
	productID := pathID(c, "productId")
	if productID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	level, err := h.facade.StockLevel(c.Request.Context(), productID)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusOK, toStockLevelResponse(*level))
}

// StockLogs handles GET /api/admin/stock/:productId/logs.
func (h *AdminHandler) StockLogs(c *gin.Context) {
	productID := pathID(c, "productId")
	if productID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	logs, err := h.facade.StockLogs(c.Request.Context(), productID)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if len(logs) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.StockLogResponse, 0, len(logs))
	for _, entry := range logs {
		resp = append(resp, toStockLogResponse(entry))
	}
	c.JSON(http.StatusOK, resp)
}

// LowStock handles GET /api/admin/stock-alerts.
func (h *AdminHandler) LowStock(c *gin.Context) {
	levels, err := h.facade.LowStock(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.StockLevelResponse, 0, len(levels))
	for _, level := range levels {
		resp = append(resp, toStockLevelResponse(level))
	}
	c.JSON(http.StatusOK, resp)
}

func toStockLevelResponse(level model.StockLevel) dto.StockLevelResponse {
	return dto.StockLevelResponse{
		ProductID:        level.ProductID,
		Quantity:         level.Quantity,
		MinimumThreshold: level.MinimumThreshold,
	}
}

func toStockLogResponse(entry model.StockLogEntry) dto.StockLogResponse {
	return dto.StockLogResponse{
		Delta:            entry.Delta,
		Reason:           string(entry.Reason),
		ReferenceOrderID: entry.ReferenceOrderID,
		ActorID:          entry.ActorID,
		CreatedAt:        entry.CreatedAt,
	}
}
