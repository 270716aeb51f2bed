package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
	repo_mocks "github.com/duoc-capstone/biblioteca-service/biblioteca/internal/repository/mocks"
)

func TestService_ActivarReserva(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var tests = []struct {
		name         string
		mockBehavior func(r *repo_mocks.MockRepository)
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetReserva(ctx, 1).Return(model.Reserva{ID: 1, DocumentoID: 2, Estado: model.ReservaPendiente}, nil)
				r.EXPECT().GetDocumento(ctx, 2).Return(model.Documento{ID: 2, Disponible: true}, nil)
				r.EXPECT().UpdateReservaEstado(ctx, 1, model.ReservaActiva, nil).Return(model.Reserva{ID: 1, Estado: model.ReservaActiva}, nil)
			},
		},
		{
			name: "sin existencias",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetReserva(ctx, 1).Return(model.Reserva{ID: 1, DocumentoID: 2, Estado: model.ReservaPendiente}, nil)
				r.EXPECT().GetDocumento(ctx, 2).Return(model.Documento{ID: 2}, nil)
			},
			wantErr: errs.ErrEjemplarNoDisponible,
		},
		{
			name: "ya cancelada",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetReserva(ctx, 1).Return(model.Reserva{ID: 1, Estado: model.ReservaCancelada}, nil)
			},
			wantErr: errs.ErrReservaCerrada,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t, nil, nil)
			tt.mockBehavior(repo)

			_, err := svc.ActivarReserva(ctx, 1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_CancelarReserva(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	motivo := "ya no lo necesito"

	t.Run("pendiente se cancela con motivo", func(t *testing.T) {
		svc, repo := newTestService(t, nil, nil)
		repo.EXPECT().GetReserva(ctx, 1).Return(model.Reserva{ID: 1, Estado: model.ReservaPendiente}, nil)
		repo.EXPECT().UpdateReservaEstado(ctx, 1, model.ReservaCancelada, &motivo).
			Return(model.Reserva{ID: 1, Estado: model.ReservaCancelada}, nil)

		reserva, err := svc.CancelarReserva(ctx, 1, motivo)
		require.NoError(t, err)
		require.Equal(t, model.ReservaCancelada, reserva.Estado)
	})

	t.Run("completada no se cancela", func(t *testing.T) {
		svc, repo := newTestService(t, nil, nil)
		repo.EXPECT().GetReserva(ctx, 1).Return(model.Reserva{ID: 1, Estado: model.ReservaCompletada}, nil)

		_, err := svc.CancelarReserva(ctx, 1, motivo)
		require.ErrorIs(t, err, errs.ErrReservaCerrada)
	})
}
