package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/domain/repository"
	"github.com/strungco/stringmart/internal/server/http/dto"
	"github.com/strungco/stringmart/internal/server/http/middleware"
	"github.com/strungco/stringmart/internal/test"
	testhelpers "github.com/strungco/stringmart/internal/test/facadestub"
	"github.com/strungco/stringmart/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, url string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
		c.Set(middleware.UserRoleContextKey, model.RoleUser)
	}
}

func asAdmin(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
		c.Set(middleware.UserRoleContextKey, model.RoleAdmin)
	}
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestCurrentRole(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentRole(c); got != model.RoleUser {
		t.Fatalf("expected user role by default, got %s", got)
	}

	c.Set(middleware.UserRoleContextKey, model.RoleAdmin)
	if got := CurrentRole(c); got != model.RoleAdmin {
		t.Fatalf("expected admin role, got %s", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	login := test.RandomASCIIString(7, 14)
	password := test.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.AuthRequest{Login: login, Password: password})
	resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	foundCookie := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "stringmart_token" {
			if cookie.Value != "token" {
				t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
			}
			foundCookie = true
			break
		}
	}
	if !foundCookie {
		t.Fatal("expected auth cookie named stringmart_token")
	}
}

func TestAuthHandlerRegisterForwardsReferralCode(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "user", Password: "pass", ReferralCode: "ABCD1234"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, login, password, referralCode string) (string, error) {
		if referralCode != "ABCD1234" {
			t.Fatalf("referral code not forwarded: %q", referralCode)
		}
		return "token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", "/register", handler.Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid credentials", body: []byte(`{"login":"","password":""}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusBadRequest},
		{name: "already exists", body: []byte(`{"login":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
			return "", domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict},
		{name: "unknown referral code", body: []byte(`{"login":"a","password":"b","referral_code":"NOPE"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
			return "", domainErrors.Validation("unknown referral code")
		}}, status: http.StatusUnprocessableEntity},
		{name: "internal", body: []byte(`{"login":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "user", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid", body: []byte(`{"login":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "internal", body: []byte(`{"login":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(tt.facade).Login, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{CreateOrderFn: func(ctx context.Context, cmd usecase.CreateOrderCommand) (*usecase.CreateOrderResult, error) {
		if cmd.UserID != 1 || cmd.ProductID != 10 || cmd.Tension != 24 {
			t.Fatalf("unexpected command: %+v", cmd)
		}
		return &usecase.CreateOrderResult{
			Order:           &model.Order{ID: 7, UserID: cmd.UserID, ProductID: cmd.ProductID, Tension: cmd.Tension, Status: model.OrderStatusPending},
			FinalPrice:      180,
			Discount:        20,
			PaymentRequired: true,
		}, nil
	}}
	body := []byte(`{"product_id":10,"tension":24}`)
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(facade).Create, asUser(1), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var decoded dto.CreateOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Order.ID != 7 || decoded.FinalPrice != 180 || !decoded.PaymentRequired {
		t.Fatalf("unexpected response: %+v", decoded)
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "tension", body: []byte(`{"product_id":10,"tension":99}`), facade: testhelpers.OrderFacadeStub{CreateOrderFn: func(context.Context, usecase.CreateOrderCommand) (*usecase.CreateOrderResult, error) {
			return nil, domainErrors.ErrTensionOutOfRange
		}}, status: http.StatusUnprocessableEntity},
		{name: "no stock", body: []byte(`{"product_id":10,"tension":24}`), facade: testhelpers.OrderFacadeStub{CreateOrderFn: func(context.Context, usecase.CreateOrderCommand) (*usecase.CreateOrderResult, error) {
			return nil, domainErrors.ErrInsufficientStock
		}}, status: http.StatusConflict},
		{name: "unknown product", body: []byte(`{"product_id":99,"tension":24}`), facade: testhelpers.OrderFacadeStub{CreateOrderFn: func(context.Context, usecase.CreateOrderCommand) (*usecase.CreateOrderResult, error) {
			return nil, domainErrors.ErrProductNotFound
		}}, status: http.StatusNotFound},
		{name: "internal", body: []byte(`{"product_id":10,"tension":24}`), facade: testhelpers.OrderFacadeStub{CreateOrderFn: func(context.Context, usecase.CreateOrderCommand) (*usecase.CreateOrderResult, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(tt.facade).Create, asUser(1), tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerList(t *testing.T) {
	orders := []model.Order{{ID: 1, UserID: 1}, {ID: 2, UserID: 1}}
	facade := testhelpers.OrderFacadeStub{OrdersFn: func(context.Context, int64) ([]model.Order, error) {
		return orders, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders", "/orders", NewOrderHandler(facade).List, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != len(orders) {
		t.Fatalf("expected %d orders, got %d", len(orders), len(decoded))
	}
}

func TestOrderHandlerListEmpty(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{OrdersFn: func(context.Context, int64) ([]model.Order, error) {
		return nil, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders", "/orders", NewOrderHandler(facade).List, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestOrderHandlerQueue(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/orders/:id/queue", "/orders/5/queue", NewOrderHandler(testhelpers.OrderFacadeStub{}).Queue, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.QueueResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Position != 1 {
		t.Fatalf("unexpected queue response: %+v", decoded)
	}
}

func TestOrderHandlerQueueFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		url    string
		setup  func(*gin.Context)
		status int
	}{
		{name: "bad id", url: "/orders/abc/queue", setup: asUser(1), status: http.StatusBadRequest},
		{name: "foreign order", url: "/orders/5/queue", setup: asUser(2), facade: testhelpers.OrderFacadeStub{OrderFn: func(context.Context, int64) (*model.Order, error) {
			return &model.Order{ID: 5, UserID: 1, Status: model.OrderStatusPending}, nil
		}}, status: http.StatusNotFound},
		{name: "terminal order", url: "/orders/5/queue", setup: asUser(1), facade: testhelpers.OrderFacadeStub{OrderFn: func(context.Context, int64) (*model.Order, error) {
			return &model.Order{ID: 5, UserID: 1, Status: model.OrderStatusCompleted}, nil
		}}, status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodGet, "/orders/:id/queue", tt.url, NewOrderHandler(tt.facade).Queue, tt.setup, nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerReview(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{OrderFn: func(context.Context, int64) (*model.Order, error) {
		return &model.Order{ID: 5, UserID: 1, Status: model.OrderStatusCompleted}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/orders/:id/review", "/orders/5/review", NewOrderHandler(facade).Review, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.PointsLogResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Amount != 25 {
		t.Fatalf("unexpected reward: %+v", decoded)
	}
}

func TestOrderHandlerReviewNotCompleted(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{OrderFn: func(context.Context, int64) (*model.Order, error) {
		return &model.Order{ID: 5, UserID: 1, Status: model.OrderStatusInProgress}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/orders/:id/review", "/orders/5/review", NewOrderHandler(facade).Review, asUser(1), nil, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestWalletHandlerPoints(t *testing.T) {
	facade := testhelpers.WalletFacadeStub{BalanceFn: func(context.Context, int64) (int64, error) {
		return 125, nil
	}}
	resp := performRequest(t, http.MethodGet, "/points", "/points", NewWalletHandler(facade).Points, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.PointsBalanceResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Balance != 125 {
		t.Fatalf("unexpected balance: %+v", decoded)
	}
}

func TestWalletHandlerPointsHistoryEmpty(t *testing.T) {
	facade := testhelpers.WalletFacadeStub{HistoryFn: func(context.Context, int64) ([]model.PointsLogEntry, error) {
		return nil, nil
	}}
	resp := performRequest(t, http.MethodGet, "/points/history", "/points/history", NewWalletHandler(facade).PointsHistory, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestWalletHandlerPackagesAndVouchers(t *testing.T) {
	handler := NewWalletHandler(testhelpers.WalletFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/packages", "/packages", handler.Packages, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("packages: expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/vouchers", "/vouchers", handler.Vouchers, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("vouchers: expected status 200, got %d", resp.Code)
	}
}

func TestWalletHandlerPurchasePackage(t *testing.T) {
	facade := testhelpers.WalletFacadeStub{PurchaseFn: func(ctx context.Context, userID, packageID int64) (*model.Payment, error) {
		if userID != 1 || packageID != 3 {
			t.Fatalf("unexpected purchase: user=%d package=%d", userID, packageID)
		}
		return &model.Payment{ID: 9, UserID: userID, PackageID: &packageID, Amount: 800, Status: model.PaymentStatusPending}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/packages/:id/purchase", "/packages/3/purchase", NewWalletHandler(facade).PurchasePackage, asUser(1), nil, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var decoded dto.PaymentResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Amount != 800 || decoded.Status != string(model.PaymentStatusPending) {
		t.Fatalf("unexpected payment: %+v", decoded)
	}
}

func TestCatalogHandler(t *testing.T) {
	handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/products", "/products", handler.Products, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("products: expected status 200, got %d", resp.Code)
	}
	var products []dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &products); err != nil {
		t.Fatalf("failed to decode products: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}

	resp = performRequest(t, http.MethodGet, "/packages", "/packages", handler.Packages, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("packages: expected status 200, got %d", resp.Code)
	}
}

func TestAdminHandlerCompleteOrder(t *testing.T) {
	facade := testhelpers.AdminFacadeStub{CompleteOrderFn: func(ctx context.Context, orderID, adminID int64, notes string) (*repository.CompletionResult, error) {
		if orderID != 5 || adminID != 99 {
			t.Fatalf("unexpected call: order=%d admin=%d", orderID, adminID)
		}
		return &repository.CompletionResult{
			Order:         &model.Order{ID: orderID, Status: model.OrderStatusCompleted},
			Profit:        140,
			PointsGranted: 75,
			StockDeducted: 1,
		}, nil
	}}
	// Completion accepts an empty body.
	resp := performRequest(t, http.MethodPost, "/orders/:id/complete", "/orders/5/complete", NewAdminHandler(facade).CompleteOrder, asAdmin(99), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.CompleteOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.PointsGranted != 75 || decoded.StockDeducted != 1 {
		t.Fatalf("unexpected response: %+v", decoded)
	}
}

func TestAdminHandlerCompleteOrderFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AdminFacadeStub
		url    string
		status int
	}{
		{name: "bad id", url: "/orders/abc/complete", status: http.StatusBadRequest},
		{name: "not found", url: "/orders/5/complete", facade: testhelpers.AdminFacadeStub{CompleteOrderFn: func(context.Context, int64, int64, string) (*repository.CompletionResult, error) {
			return nil, domainErrors.ErrOrderNotFound
		}}, status: http.StatusNotFound},
		{name: "wrong state", url: "/orders/5/complete", facade: testhelpers.AdminFacadeStub{CompleteOrderFn: func(context.Context, int64, int64, string) (*repository.CompletionResult, error) {
			return nil, domainErrors.ErrIllegalTransition
		}}, status: http.StatusConflict},
		{name: "no stock", url: "/orders/5/complete", facade: testhelpers.AdminFacadeStub{CompleteOrderFn: func(context.Context, int64, int64, string) (*repository.CompletionResult, error) {
			return nil, domainErrors.ErrInsufficientStock
		}}, status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders/:id/complete", tt.url, NewAdminHandler(tt.facade).CompleteOrder, asAdmin(99), nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAdminHandlerUpdateOrderStatus(t *testing.T) {
	facade := testhelpers.AdminFacadeStub{UpdateStatusFn: func(ctx context.Context, orderID int64, to model.OrderStatus, notes string) (*model.Order, error) {
		if to != model.OrderStatusInProgress || notes != "on the bench" {
			t.Fatalf("unexpected transition: to=%s notes=%q", to, notes)
		}
		return &model.Order{ID: orderID, Status: to, Notes: notes}, nil
	}}
	body := []byte(`{"status":"in_progress","notes":"on the bench"}`)
	resp := performRequest(t, http.MethodPatch, "/orders/:id/status", "/orders/5/status", NewAdminHandler(facade).UpdateOrderStatus, asAdmin(99), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAdminHandlerUpdateOrderStatusFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AdminFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "unknown status", body: []byte(`{"status":"shipped"}`), facade: testhelpers.AdminFacadeStub{UpdateStatusFn: func(context.Context, int64, model.OrderStatus, string) (*model.Order, error) {
			return nil, domainErrors.Validation("unknown order status")
		}}, status: http.StatusUnprocessableEntity},
		{name: "illegal transition", body: []byte(`{"status":"pending"}`), facade: testhelpers.AdminFacadeStub{UpdateStatusFn: func(context.Context, int64, model.OrderStatus, string) (*model.Order, error) {
			return nil, domainErrors.ErrIllegalTransition
		}}, status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPatch, "/orders/:id/status", "/orders/5/status", NewAdminHandler(tt.facade).UpdateOrderStatus, asAdmin(99), tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAdminHandlerConfirmPayment(t *testing.T) {
	facade := testhelpers.AdminFacadeStub{ConfirmPaymentFn: func(ctx context.Context, paymentID, adminID int64, txnRef string) (*model.Payment, error) {
		if paymentID != 42 || txnRef != "txn-1" {
			t.Fatalf("unexpected confirmation: payment=%d ref=%q", paymentID, txnRef)
		}
		return &model.Payment{ID: paymentID, Status: model.PaymentStatusSuccess, TxnRef: txnRef}, nil
	}}
	body := []byte(`{"txn_ref":"txn-1"}`)
	resp := performRequest(t, http.MethodPost, "/payments/:id/confirm", "/payments/42/confirm", NewAdminHandler(facade).ConfirmPayment, asAdmin(99), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAdminHandlerConfirmPaymentAlreadyConfirmed(t *testing.T) {
	facade := testhelpers.AdminFacadeStub{ConfirmPaymentFn: func(context.Context, int64, int64, string) (*model.Payment, error) {
		return nil, domainErrors.ErrPaymentAlreadyConfirmed
	}}
	resp := performRequest(t, http.MethodPost, "/payments/:id/confirm", "/payments/42/confirm", NewAdminHandler(facade).ConfirmPayment, asAdmin(99), nil, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestAdminHandlerSweepExpired(t *testing.T) {
	facade := testhelpers.AdminFacadeStub{CancelExpiredFn: func(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
		age := time.Since(cutoff)
		if age < 30*time.Minute-time.Minute || age > 30*time.Minute+time.Minute {
			t.Fatalf("cutoff %v is not about thirty minutes old", cutoff)
		}
		return []model.Order{{ID: 7, UserID: 3, Status: model.OrderStatusCancelled}}, nil
	}}
	body := []byte(`{"older_than_minutes":30}`)
	resp := performRequest(t, http.MethodPost, "/sweep-expired", "/sweep-expired", NewAdminHandler(facade).SweepExpired, asAdmin(99), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var result dto.SweepExpiredResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Count != 1 || len(result.Cancelled) != 1 || result.Cancelled[0].ID != 7 {
		t.Fatalf("unexpected response: %+v", result)
	}
}

func TestAdminHandlerSweepExpiredBadRequest(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/sweep-expired", "/sweep-expired", NewAdminHandler(testhelpers.AdminFacadeStub{}).SweepExpired, asAdmin(99), nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestAdminHandlerAdjustStock(t *testing.T) {
	facade := testhelpers.AdminFacadeStub{AdjustStockFn: func(ctx context.Context, productID int64, delta int, reason model.StockReason, referenceOrderID, actorID *int64) (*model.StockLogEntry, error) {
		if productID != 10 || delta != 5 || reason != model.StockReasonRestock {
			t.Fatalf("unexpected adjustment: product=%d delta=%d reason=%s", productID, delta, reason)
		}
		if actorID == nil || *actorID != 99 {
			t.Fatalf("actor id not forwarded: %+v", actorID)
		}
		return &model.StockLogEntry{ProductID: productID, Delta: delta, Reason: reason, ActorID: actorID}, nil
	}}
	body := []byte(`{"delta":5,"reason":"restock"}`)
	resp := performRequest(t, http.MethodPost, "/stock/:productId/adjust", "/stock/10/adjust", NewAdminHandler(facade).AdjustStock, asAdmin(99), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAdminHandlerAdjustStockFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AdminFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "zero delta", body: []byte(`{"delta":0,"reason":"restock"}`), facade: testhelpers.AdminFacadeStub{AdjustStockFn: func(context.Context, int64, int, model.StockReason, *int64, *int64) (*model.StockLogEntry, error) {
			return nil, domainErrors.Validation("stock delta must not be zero")
		}}, status: http.StatusUnprocessableEntity},
		{name: "would go negative", body: []byte(`{"delta":-5,"reason":"adjustment"}`), facade: testhelpers.AdminFacadeStub{AdjustStockFn: func(context.Context, int64, int, model.StockReason, *int64, *int64) (*model.StockLogEntry, error) {
			return nil, domainErrors.ErrInsufficientStock
		}}, status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/stock/:productId/adjust", "/stock/10/adjust", NewAdminHandler(tt.facade).AdjustStock, asAdmin(99), tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAdminHandlerStockLevel(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/stock/:productId", "/stock/10", NewAdminHandler(testhelpers.AdminFacadeStub{}).StockLevel, asAdmin(99), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.StockLevelResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ProductID != 10 || decoded.Quantity != 10 {
		t.Fatalf("unexpected level: %+v", decoded)
	}
}

func TestAdminHandlerStockLogsEmpty(t *testing.T) {
	facade := testhelpers.AdminFacadeStub{StockLogsFn: func(context.Context, int64) ([]model.StockLogEntry, error) {
		return nil, nil
	}}
	resp := performRequest(t, http.MethodGet, "/stock/:productId/logs", "/stock/10/logs", NewAdminHandler(facade).StockLogs, asAdmin(99), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestAdminHandlerLowStock(t *testing.T) {
	facade := testhelpers.AdminFacadeStub{LowStockFn: func(context.Context) ([]model.StockLevel, error) {
		return []model.StockLevel{{ProductID: 10, Quantity: 1, MinimumThreshold: 2}}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/stock-alerts", "/stock-alerts", NewAdminHandler(facade).LowStock, asAdmin(99), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.StockLevelResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 1 || decoded[0].ProductID != 10 {
		t.Fatalf("unexpected alerts: %+v", decoded)
	}
}

func TestPhotoHandlerList(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/orders/:id/photos", "/orders/5/photos", NewPhotoHandler(testhelpers.PhotoFacadeStub{}).List, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.PhotoResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 photo, got %d", len(decoded))
	}
}

func TestPhotoHandlerAdd(t *testing.T) {
	facade := testhelpers.PhotoFacadeStub{AddFn: func(ctx context.Context, orderID, requesterID int64, role model.Role, url string) (*model.OrderPhoto, error) {
		if url != "https://cdn.example/racket.jpg" {
			t.Fatalf("url not forwarded: %q", url)
		}
		return &model.OrderPhoto{ID: 1, OrderID: orderID, URL: url}, nil
	}}
	body := []byte(`{"url":"https://cdn.example/racket.jpg"}`)
	resp := performRequest(t, http.MethodPost, "/orders/:id/photos", "/orders/5/photos", NewPhotoHandler(facade).Add, asUser(1), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestPhotoHandlerRemove(t *testing.T) {
	resp := performRequest(t, http.MethodDelete, "/orders/:id/photos/:photoId", "/orders/5/photos/2", NewPhotoHandler(testhelpers.PhotoFacadeStub{}).Remove, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestPhotoHandlerReorder(t *testing.T) {
	facade := testhelpers.PhotoFacadeStub{ReorderFn: func(ctx context.Context, orderID, requesterID int64, role model.Role, photoIDs []int64) error {
		if len(photoIDs) != 2 || photoIDs[0] != 2 || photoIDs[1] != 1 {
			t.Fatalf("unexpected order: %v", photoIDs)
		}
		return nil
	}}
	body := []byte(`{"photo_ids":[2,1]}`)
	resp := performRequest(t, http.MethodPut, "/orders/:id/photos", "/orders/5/photos", NewPhotoHandler(facade).Reorder, asUser(1), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestPhotoHandlerForeignOrder(t *testing.T) {
	facade := testhelpers.PhotoFacadeStub{PhotosFn: func(context.Context, int64, int64, model.Role) ([]model.OrderPhoto, error) {
		return nil, domainErrors.ErrOrderNotFound
	}}
	resp := performRequest(t, http.MethodGet, "/orders/:id/photos", "/orders/5/photos", NewPhotoHandler(facade).List, asUser(2), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
