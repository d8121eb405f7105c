package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flashlink/internal/adapter/http/handlers/mocks"
	"flashlink/internal/domain/entities"
	"flashlink/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreateIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payment-intent", h.CreateIntent)

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-intent", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payment-intent", h.CreateIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).Return(usecase.IntentResult{}, usecase.ErrInvalidPaymentAmount)

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-intent", bytes.NewBufferString(`{"amount":-1,"customerName":"Jane","customerEmail":"jane@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway error maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payment-intent", h.CreateIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).Return(usecase.IntentResult{}, usecase.ErrPaymentGateway)

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-intent", bytes.NewBufferString(`{"amount":90,"customerName":"Jane","customerEmail":"jane@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success returns 201 with client token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payment-intent", h.CreateIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), usecase.CreateIntentInput{
			Amount: 90, Weight: 10, ShippingType: entities.ShippingTypeAir,
			CustomerName: "Jane", CustomerEmail: "jane@example.com",
		}).Return(usecase.IntentResult{ClientToken: "pi_1_secret", OrderNumber: "FL1", IntentID: "pi_1"}, nil)

		body := `{"amount":90,"weight":10,"shippingType":"air","customerName":"Jane","customerEmail":"jane@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payment-intent", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["clientToken"] != "pi_1_secret" || resp["orderNumber"] != "FL1" || resp["intentId"] != "pi_1" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestPaymentHandler_Confirm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *PaymentHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/payment-confirm", h.Confirm)
		return r
	}
	body := `{"intentId":"pi_1","orderNumber":"FL1","amount":90,"weight":10,"shippingType":"air"}`

	statusCases := []struct {
		name string
		err  error
		code int
	}{
		{"not completed", usecase.ErrPaymentNotCompleted, http.StatusBadRequest},
		{"not found", usecase.ErrPaymentNotFound, http.StatusNotFound},
		{"claim mismatch", usecase.ErrPaymentClaimMismatch, http.StatusConflict},
		{"state conflict", usecase.ErrPaymentStateConflict, http.StatusConflict},
		{"gateway failure", usecase.ErrPaymentGateway, http.StatusBadGateway},
	}
	for _, c := range statusCases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			h := NewPaymentHandler(uc)
			r := newRouter(h)

			uc.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(usecase.ConfirmResult{}, c.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/payment-confirm", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != c.code {
				t.Fatalf("expected %d, got %d", c.code, w.Code)
			}
		})
	}

	t.Run("success returns shipment payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newRouter(h)

		uc.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(usecase.ConfirmResult{
			OrderNumber: "FL1",
			Shipment:    entities.Shipment{OrderNumber: "FL1", Status: entities.ShipmentStatusPending},
			ReceiptURL:  "https://receipts.example/FL1",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-confirm", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			OrderNumber string `json:"orderNumber"`
			Shipment    struct {
				OrderNumber string `json:"orderNumber"`
				Status      string `json:"status"`
			} `json:"shipment"`
			ReceiptURL string `json:"receiptUrl"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp.OrderNumber != "FL1" || resp.Shipment.Status != "pending" || resp.ReceiptURL == "" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestPaymentHandler_GetPaymentByOrderNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:orderNumber", h.GetPaymentByOrderNumber)

		uc.EXPECT().GetByOrderNumber(gomock.Any(), "FL-missing").Return(entities.PaymentRecord{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/FL-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:orderNumber", h.GetPaymentByOrderNumber)

		uc.EXPECT().GetByOrderNumber(gomock.Any(), "FL1").Return(entities.PaymentRecord{
			IntentID: "pi_1", OrderNumber: "FL1", Status: entities.PaymentStatusSucceeded,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/FL1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["intentId"] != "pi_1" || resp["status"] != "succeeded" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}
