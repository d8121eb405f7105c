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

func TestShipmentHandler_CreateShipment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShipmentUseCase(ctrl)
		h := NewShipmentHandler(uc)

		r := gin.New()
		r.POST("/v1/shipments", h.CreateShipment)

		req := httptest.NewRequest(http.MethodPost, "/v1/shipments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShipmentUseCase(ctrl)
		h := NewShipmentHandler(uc)

		r := gin.New()
		r.POST("/v1/shipments", h.CreateShipment)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateShipmentInput{
			CustomerName: "Jane", CustomerEmail: "jane@example.com",
			Weight: 3, ShippingType: entities.ShippingTypeExpress, Cost: 45,
		}).Return(entities.Shipment{OrderNumber: "FL1", Status: entities.ShipmentStatusPending}, nil)

		body := `{"customerName":"Jane","customerEmail":"jane@example.com","weight":3,"shippingType":"express","cost":45}`
		req := httptest.NewRequest(http.MethodPost, "/v1/shipments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestShipmentHandler_Track(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShipmentUseCase(ctrl)
		h := NewShipmentHandler(uc)

		r := gin.New()
		r.GET("/v1/track/:orderNumber", h.Track)

		uc.EXPECT().TrackByOrderNumber(gomock.Any(), "FL-missing").Return(entities.Shipment{}, usecase.ErrShipmentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/track/FL-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found returns tracking history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShipmentUseCase(ctrl)
		h := NewShipmentHandler(uc)

		r := gin.New()
		r.GET("/v1/track/:orderNumber", h.Track)

		uc.EXPECT().TrackByOrderNumber(gomock.Any(), "FL1").Return(entities.Shipment{
			OrderNumber: "FL1",
			Status:      entities.ShipmentStatusInTransit,
			TrackingUpdates: []entities.TrackingUpdate{
				{Status: entities.ShipmentStatusPending, Location: "China"},
				{Status: entities.ShipmentStatusInTransit, Location: "In Transit"},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/track/FL1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			OrderNumber     string `json:"orderNumber"`
			TrackingUpdates []struct {
				Status string `json:"status"`
			} `json:"trackingUpdates"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp.OrderNumber != "FL1" || len(resp.TrackingUpdates) != 2 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestShipmentHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *ShipmentHandler) *gin.Engine {
		r := gin.New()
		r.PATCH("/v1/shipments/:orderNumber", h.UpdateStatus)
		return r
	}

	t.Run("transition not allowed maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShipmentUseCase(ctrl)
		h := NewShipmentHandler(uc)
		r := newRouter(h)

		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(entities.Shipment{}, usecase.ErrStatusTransitionNotAllowed)

		req := httptest.NewRequest(http.MethodPatch, "/v1/shipments/FL1", bytes.NewBufferString(`{"status":"pending"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShipmentUseCase(ctrl)
		h := NewShipmentHandler(uc)
		r := newRouter(h)

		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(entities.Shipment{}, usecase.ErrInvalidShipmentStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/shipments/FL1", bytes.NewBufferString(`{"status":"warp"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success passes path order number through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShipmentUseCase(ctrl)
		h := NewShipmentHandler(uc)
		r := newRouter(h)

		uc.EXPECT().UpdateStatus(gomock.Any(), usecase.UpdateStatusInput{
			OrderNumber: "FL1",
			Status:      entities.ShipmentStatusCustoms,
			Location:    "Bujumbura",
			Note:        "Customs clearance",
		}).Return(entities.Shipment{OrderNumber: "FL1", Status: entities.ShipmentStatusCustoms}, nil)

		body := `{"status":"customs","location":"Bujumbura","note":"Customs clearance"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/shipments/FL1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
