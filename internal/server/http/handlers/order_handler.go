package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/server/http/dto"
	"github.com/strungco/stringmart/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/user/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.CreateOrder(c.Request.Context(), usecase.CreateOrderCommand{
		UserID:        userID,
		ProductID:     req.ProductID,
		Tension:       req.Tension,
		UserPackageID: req.UserPackageID,
		UserVoucherID: req.UserVoucherID,
		Notes:         req.Notes,
	})
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Order:           toOrderResponse(*result.Order),
		FinalPrice:      result.FinalPrice,
		Discount:        result.Discount,
		PaymentRequired: result.PaymentRequired,
	})
}

// List handles GET /api/user/orders.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	orders, err := h.facade.Orders(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Queue handles GET /api/user/orders/:id/queue.
func (h *OrderHandler) Queue(c *gin.Context) {
	orderID := pathID(c, "id")
	if orderID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.ownOrder(c, orderID)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if order.Status.Terminal() {
		c.Status(http.StatusConflict)
		return
	}

	status, err := h.facade.QueueStatus(c.Request.Context(), orderID)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusOK, dto.QueueResponse{Position: status.Position, EstimatedAt: status.EstimatedAt})
}

// Review handles POST /api/user/orders/:id/review.
func (h *OrderHandler) Review(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID := pathID(c, "id")
	if orderID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.ownOrder(c, orderID)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if order.Status != model.OrderStatusCompleted {
		c.Status(http.StatusConflict)
		return
	}

	entry, err := h.facade.GrantReviewReward(c.Request.Context(), userID, orderID)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusOK, toPointsLogResponse(*entry))
}

// ownOrder loads the order and hides it from non-owners.
func (h *OrderHandler) ownOrder(c *gin.Context, orderID int64) (*model.Order, error) {
	order, err := h.facade.Order(c.Request.Context(), orderID)
	if err != nil {
		return nil, err
	}
	if CurrentRole(c) != model.RoleAdmin && order.UserID != CurrentUserID(c) {
		return nil, domainErrors.ErrOrderNotFound
	}
	return order, nil
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                    order.ID,
		ProductID:             order.ProductID,
		Tension:               order.Tension,
		Price:                 order.Price,
		Discount:              order.Discount,
		Status:                string(order.Status),
		Notes:                 order.Notes,
		EstimatedCompletionAt: order.EstimatedCompletionAt,
		CompletedAt:           order.CompletedAt,
		CreatedAt:             order.CreatedAt,
	}
}
