package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/server/http/dto"
)

// WalletHandler serves the caller's points, vouchers and packages.
type WalletHandler struct {
	facade WalletFacade
}

// NewWalletHandler constructs WalletHandler.
func NewWalletHandler(facade WalletFacade) *WalletHandler {
	return &WalletHandler{facade: facade}
}

// Points handles GET /api/user/points.
func (h *WalletHandler) Points(c *gin.Context) {
	userID := CurrentUserID(c)
	balance, err := h.facade.PointsBalance(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.PointsBalanceResponse{Balance: balance})
}

// PointsHistory handles GET /api/user/points/history.
func (h *WalletHandler) PointsHistory(c *gin.Context) {
	userID := CurrentUserID(c)
	history, err := h.facade.PointsHistory(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(history) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.PointsLogResponse, 0, len(history))
	for _, entry := range history {
		resp = append(resp, toPointsLogResponse(entry))
	}
	c.JSON(http.StatusOK, resp)
}

// Packages handles GET /api/user/packages.
func (h *WalletHandler) Packages(c *gin.Context) {
	userID := CurrentUserID(c)
	packages, err := h.facade.UserPackages(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(packages) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.UserPackageResponse, 0, len(packages))
	for _, p := range packages {
		resp = append(resp, dto.UserPackageResponse{
			ID:        p.ID,
			PackageID: p.PackageID,
			Remaining: p.Remaining,
			Status:    string(p.Status),
			ExpiresAt: p.ExpiresAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Vouchers handles GET /api/user/vouchers.
func (h *WalletHandler) Vouchers(c *gin.Context) {
	userID := CurrentUserID(c)
	vouchers, err := h.facade.UserVouchers(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(vouchers) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.UserVoucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		resp = append(resp, dto.UserVoucherResponse{
			ID:          v.ID,
			Code:        v.Voucher.Code,
			Type:        string(v.Voucher.Type),
			Value:       v.Voucher.Value,
			MinPurchase: v.Voucher.MinPurchase,
			ValidUntil:  v.Voucher.ValidUntil,
			Status:      string(v.Status),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// PurchasePackage handles POST /api/user/packages/:id/purchase.
func (h *WalletHandler) PurchasePackage(c *gin.Context) {
	userID := CurrentUserID(c)
	packageID := pathID(c, "id")
	if packageID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, err := h.facade.PurchasePackage(c.Request.Context(), userID, packageID)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusCreated, toPaymentResponse(*payment))
}

func toPointsLogResponse(entry model.PointsLogEntry) dto.PointsLogResponse {
	return dto.PointsLogResponse{
		Amount:           entry.Amount,
		Reason:           string(entry.Reason),
		ReferenceOrderID: entry.ReferenceOrderID,
		BalanceAfter:     entry.BalanceAfter,
		CreatedAt:        entry.CreatedAt,
	}
}

func toPaymentResponse(p model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:          p.ID,
		OrderID:     p.OrderID,
		PackageID:   p.PackageID,
		Amount:      p.Amount,
		Provider:    p.Provider,
		Status:      string(p.Status),
		ConfirmedAt: p.ConfirmedAt,
	}
}
