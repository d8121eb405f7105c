package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"flashlink/internal/domain/entities"
	mock_interfaces "flashlink/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestShipmentUseCase_Create(t *testing.T) {
	t.Run("missing customer info", func(t *testing.T) {
		uc := NewShipmentUseCase(nil, DefaultTariffs(), ShipmentUseCaseOptions{})
		_, err := uc.Create(context.Background(), CreateShipmentInput{Weight: 10, ShippingType: entities.ShippingTypeSea})
		if !errors.Is(err, ErrInvalidShipmentInput) {
			t.Fatalf("expected ErrInvalidShipmentInput, got %v", err)
		}
	})

	t.Run("invalid weight", func(t *testing.T) {
		uc := NewShipmentUseCase(nil, DefaultTariffs(), ShipmentUseCaseOptions{})
		_, err := uc.Create(context.Background(), CreateShipmentInput{
			CustomerName: "Jane", CustomerEmail: "jane@example.com",
			Weight: 0, ShippingType: entities.ShippingTypeSea,
		})
		if !errors.Is(err, ErrInvalidShipmentInput) {
			t.Fatalf("expected ErrInvalidShipmentInput, got %v", err)
		}
	})

	t.Run("estimated delivery derived from type", func(t *testing.T) {
		cases := []struct {
			shipType entities.ShippingType
			days     int
		}{
			{entities.ShippingTypeSea, 30},
			{entities.ShippingTypeAir, 10},
			{entities.ShippingTypeExpress, 5},
		}
		for _, c := range cases {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
			uc := NewShipmentUseCase(repo, DefaultTariffs(), ShipmentUseCaseOptions{})

			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, s entities.Shipment) (entities.Shipment, error) {
					want := s.CreatedAt.AddDate(0, 0, c.days)
					if !s.EstimatedDelivery.Equal(want) {
						t.Fatalf("%s: estimated delivery %v, want %v", c.shipType, s.EstimatedDelivery, want)
					}
					if time.Until(s.EstimatedDelivery) > time.Duration(c.days)*24*time.Hour {
						t.Fatalf("%s: estimated delivery too far out", c.shipType)
					}
					if len(s.TrackingUpdates) != 1 || s.TrackingUpdates[0].Note != "Order received and processing" {
						t.Fatalf("unexpected first entry: %+v", s.TrackingUpdates)
					}
					if s.CustomerPhone != "N/A" {
						t.Fatalf("expected default phone, got %q", s.CustomerPhone)
					}
					return s, nil
				},
			)

			_, err := uc.Create(context.Background(), CreateShipmentInput{
				CustomerName: "Jane", CustomerEmail: "jane@example.com",
				Weight: 3, ShippingType: c.shipType,
			})
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", c.shipType, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("order number collision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		uc := NewShipmentUseCase(repo, DefaultTariffs(), ShipmentUseCaseOptions{})

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Shipment{}, nil)

		_, err := uc.Create(context.Background(), CreateShipmentInput{
			CustomerName: "Jane", CustomerEmail: "jane@example.com",
			Weight: 3, ShippingType: entities.ShippingTypeAir,
		})
		if !errors.Is(err, ErrShipmentAlreadyExists) {
			t.Fatalf("expected ErrShipmentAlreadyExists, got %v", err)
		}
	})
}

func TestShipmentUseCase_UpdateStatus(t *testing.T) {
	existing := entities.Shipment{
		OrderNumber: "FL1",
		Status:      entities.ShipmentStatusInTransit,
		TrackingUpdates: []entities.TrackingUpdate{
			{Status: entities.ShipmentStatusPending, Location: "China", Note: "Order received and processing"},
			{Status: entities.ShipmentStatusInTransit, Location: "Shanghai port", Note: "Departed"},
		},
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		uc := NewShipmentUseCase(repo, DefaultTariffs(), ShipmentUseCaseOptions{})

		repo.EXPECT().GetByOrderNumber(gomock.Any(), "FL-missing").Return(entities.Shipment{}, nil)

		_, err := uc.UpdateStatus(context.Background(), UpdateStatusInput{OrderNumber: "FL-missing", Status: entities.ShipmentStatusCustoms})
		if !errors.Is(err, ErrShipmentNotFound) {
			t.Fatalf("expected ErrShipmentNotFound, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		uc := NewShipmentUseCase(repo, DefaultTariffs(), ShipmentUseCaseOptions{})

		repo.EXPECT().GetByOrderNumber(gomock.Any(), "FL1").Return(existing, nil)

		_, err := uc.UpdateStatus(context.Background(), UpdateStatusInput{OrderNumber: "FL1", Status: "lost_in_space"})
		if !errors.Is(err, ErrInvalidShipmentStatus) {
			t.Fatalf("expected ErrInvalidShipmentStatus, got %v", err)
		}
	})

	t.Run("backward transition rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		uc := NewShipmentUseCase(repo, DefaultTariffs(), ShipmentUseCaseOptions{})

		repo.EXPECT().GetByOrderNumber(gomock.Any(), "FL1").Return(existing, nil)

		_, err := uc.UpdateStatus(context.Background(), UpdateStatusInput{OrderNumber: "FL1", Status: entities.ShipmentStatusPickedUp})
		if !errors.Is(err, ErrStatusTransitionNotAllowed) {
			t.Fatalf("expected ErrStatusTransitionNotAllowed, got %v", err)
		}
	})

	t.Run("backward transition allowed with rollback enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		uc := NewShipmentUseCase(repo, DefaultTariffs(), ShipmentUseCaseOptions{AllowStatusRollback: true})

		repo.EXPECT().GetByOrderNumber(gomock.Any(), "FL1").Return(existing, nil)
		repo.EXPECT().AppendTracking(gomock.Any(), "FL1", entities.ShipmentStatusPickedUp, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, status entities.ShipmentStatus, update entities.TrackingUpdate) (entities.Shipment, error) {
				out := existing
				out.Status = status
				out.TrackingUpdates = append(out.TrackingUpdates, update)
				return out, nil
			},
		)

		updated, err := uc.UpdateStatus(context.Background(), UpdateStatusInput{OrderNumber: "FL1", Status: entities.ShipmentStatusPickedUp})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.ShipmentStatusPickedUp {
			t.Fatalf("expected rolled back status, got %s", updated.Status)
		}
	})

	t.Run("appends exactly one entry and preserves prior ones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		uc := NewShipmentUseCase(repo, DefaultTariffs(), ShipmentUseCaseOptions{})

		repo.EXPECT().GetByOrderNumber(gomock.Any(), "FL1").Return(existing, nil)
		repo.EXPECT().AppendTracking(gomock.Any(), "FL1", entities.ShipmentStatusCustoms, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, status entities.ShipmentStatus, update entities.TrackingUpdate) (entities.Shipment, error) {
				if update.Status != entities.ShipmentStatusCustoms || update.Location != "Bujumbura" {
					t.Fatalf("unexpected update: %+v", update)
				}
				out := existing
				out.Status = status
				out.TrackingUpdates = append(out.TrackingUpdates, update)
				return out, nil
			},
		)

		updated, err := uc.UpdateStatus(context.Background(), UpdateStatusInput{
			OrderNumber: "FL1",
			Status:      entities.ShipmentStatusCustoms,
			Location:    "Bujumbura",
			Note:        "Customs clearance",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.TrackingUpdates) != len(existing.TrackingUpdates)+1 {
			t.Fatalf("expected %d entries, got %d", len(existing.TrackingUpdates)+1, len(updated.TrackingUpdates))
		}
		for i, prior := range existing.TrackingUpdates {
			if updated.TrackingUpdates[i] != prior {
				t.Fatalf("prior entry %d changed: %+v", i, updated.TrackingUpdates[i])
			}
		}
	})

	t.Run("missing fields use defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		uc := NewShipmentUseCase(repo, DefaultTariffs(), ShipmentUseCaseOptions{})

		repo.EXPECT().GetByOrderNumber(gomock.Any(), "FL1").Return(existing, nil)
		repo.EXPECT().AppendTracking(gomock.Any(), "FL1", existing.Status, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, status entities.ShipmentStatus, update entities.TrackingUpdate) (entities.Shipment, error) {
				if update.Status != existing.Status {
					t.Fatalf("expected current status, got %s", update.Status)
				}
				if update.Location != "In Transit" || update.Note != "Status updated" {
					t.Fatalf("expected defaults, got %+v", update)
				}
				out := existing
				out.TrackingUpdates = append(out.TrackingUpdates, update)
				return out, nil
			},
		)

		if _, err := uc.UpdateStatus(context.Background(), UpdateStatusInput{OrderNumber: "FL1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestShipmentUseCase_TrackByOrderNumber(t *testing.T) {
	t.Run("not found returns error, never an empty record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		uc := NewShipmentUseCase(repo, DefaultTariffs(), ShipmentUseCaseOptions{})

		repo.EXPECT().GetByOrderNumber(gomock.Any(), "FL-missing").Return(entities.Shipment{}, nil)

		_, err := uc.TrackByOrderNumber(context.Background(), "FL-missing")
		if !errors.Is(err, ErrShipmentNotFound) {
			t.Fatalf("expected ErrShipmentNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		uc := NewShipmentUseCase(repo, DefaultTariffs(), ShipmentUseCaseOptions{})

		repo.EXPECT().GetByOrderNumber(gomock.Any(), "FL1").Return(entities.Shipment{OrderNumber: "FL1"}, nil)

		s, err := uc.TrackByOrderNumber(context.Background(), " FL1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.OrderNumber != "FL1" {
			t.Fatalf("unexpected shipment: %+v", s)
		}
	})
}
