package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
	repo_mocks "github.com/duoc-capstone/biblioteca-service/biblioteca/internal/repository/mocks"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/service"
)

type enqueuerStub struct {
	msgs []any
	err  error
}

func (e *enqueuerStub) Enqueue(_ string, v any) error {
	if e.err != nil {
		return e.err
	}
	e.msgs = append(e.msgs, v)
	return nil
}

type senderStub struct {
	err error
}

func (s *senderStub) Send(context.Context, model.NotificacionMsg) error { return s.err }

func newTestService(t *testing.T, enq *enqueuerStub, snd *senderStub) (*service.Service, *repo_mocks.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockRepository(c)
	if enq == nil {
		enq = &enqueuerStub{}
	}
	if snd == nil {
		snd = &senderStub{}
	}
	return service.NewService(repo, enq, snd, zap.NewExample().Named("test")), repo
}

func TestService_RegistrarPrestamo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req := model.PrestamoCreateRequest{
		Tipo:         model.PrestamoDomicilio,
		UsuarioID:    7,
		BibliotecaID: 1,
		EjemplarIDs:  []int{3},
	}
	activo := model.Usuario{ID: 7, Activo: true}

	var tests = []struct {
		name         string
		mockBehavior func(r *repo_mocks.MockRepository)
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUsuario(ctx, 7).Return(activo, nil)
				r.EXPECT().CountPrestamos(ctx, 7, model.PrestamoActivo).Return(1, nil)
				r.EXPECT().CountPrestamos(ctx, 7, model.PrestamoVencido).Return(0, nil)
				r.EXPECT().CreatePrestamo(ctx, req, gomock.Any()).Return(model.Prestamo{ID: 11}, nil)
			},
		},
		{
			name: "usuario inactivo",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUsuario(ctx, 7).Return(model.Usuario{ID: 7}, nil)
			},
			wantErr: errs.ErrUsuarioInactivo,
		},
		{
			name: "usuario sancionado",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				hasta := time.Now().Add(24 * time.Hour)
				r.EXPECT().GetUsuario(ctx, 7).Return(model.Usuario{ID: 7, Activo: true, SancionadoHasta: &hasta}, nil)
			},
			wantErr: errs.ErrUsuarioSancionado,
		},
		{
			name: "limite de prestamos activos",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUsuario(ctx, 7).Return(activo, nil)
				r.EXPECT().CountPrestamos(ctx, 7, model.PrestamoActivo).Return(3, nil)
			},
			wantErr: errs.ErrPrestamosActivos,
		},
		{
			name: "prestamos vencidos pendientes",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUsuario(ctx, 7).Return(activo, nil)
				r.EXPECT().CountPrestamos(ctx, 7, model.PrestamoActivo).Return(0, nil)
				r.EXPECT().CountPrestamos(ctx, 7, model.PrestamoVencido).Return(1, nil)
			},
			wantErr: errs.ErrPrestamosVencidos,
		},
		{
			name: "usuario no existe",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUsuario(ctx, 7).Return(model.Usuario{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t, nil, nil)
			tt.mockBehavior(repo)

			_, err := svc.RegistrarPrestamo(ctx, req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_RegistrarPrestamo_fechaDevolucion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req := model.PrestamoCreateRequest{
		Tipo:         model.PrestamoSala,
		UsuarioID:    7,
		BibliotecaID: 1,
		EjemplarIDs:  []int{3},
	}

	svc, repo := newTestService(t, nil, nil)
	repo.EXPECT().GetUsuario(ctx, 7).Return(model.Usuario{ID: 7, Activo: true}, nil)
	repo.EXPECT().CountPrestamos(ctx, 7, model.PrestamoActivo).Return(0, nil)
	repo.EXPECT().CountPrestamos(ctx, 7, model.PrestamoVencido).Return(0, nil)
	repo.EXPECT().CreatePrestamo(ctx, req, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.PrestamoCreateRequest, fecha time.Time) (model.Prestamo, error) {
			// a sala loan is due at closing time the same day
			now := time.Now().UTC()
			require.Equal(t, now.Day(), fecha.Day())
			require.Equal(t, 20, fecha.Hour())
			return model.Prestamo{ID: 1}, nil
		})

	_, err := svc.RegistrarPrestamo(ctx, req)
	require.NoError(t, err)
}

func TestService_RegistrarPrestamoPorRutISBN(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req := model.PrestamoPorRutISBNRequest{RUT: "12345678-5", ISBN: "978-0-13-468599-1"}

	var tests = []struct {
		name         string
		mockBehavior func(r *repo_mocks.MockRepository)
		wantErr      error
	}{
		{
			name: "ok, defaults to domicilio and first active biblioteca",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUsuarioByRUT(ctx, req.RUT).Return(model.Usuario{ID: 7, Activo: true}, nil)
				r.EXPECT().GetDocumentoByISBN(ctx, req.ISBN).Return(model.Documento{ID: 2}, nil)
				r.EXPECT().ListEjemplares(ctx, 2, model.EjemplarDisponible).Return([]model.Ejemplar{{ID: 31}, {ID: 32}}, nil)
				r.EXPECT().ListBibliotecas(ctx, true).Return([]model.Biblioteca{{ID: 4}}, nil)
				r.EXPECT().GetUsuario(ctx, 7).Return(model.Usuario{ID: 7, Activo: true}, nil)
				r.EXPECT().CountPrestamos(ctx, 7, model.PrestamoActivo).Return(0, nil)
				r.EXPECT().CountPrestamos(ctx, 7, model.PrestamoVencido).Return(0, nil)
				r.EXPECT().CreatePrestamo(ctx, model.PrestamoCreateRequest{
					Tipo:         model.PrestamoDomicilio,
					UsuarioID:    7,
					BibliotecaID: 4,
					EjemplarIDs:  []int{31},
				}, gomock.Any()).Return(model.Prestamo{ID: 11}, nil)
			},
		},
		{
			name: "sin ejemplares disponibles",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUsuarioByRUT(ctx, req.RUT).Return(model.Usuario{ID: 7, Activo: true}, nil)
				r.EXPECT().GetDocumentoByISBN(ctx, req.ISBN).Return(model.Documento{ID: 2}, nil)
				r.EXPECT().ListEjemplares(ctx, 2, model.EjemplarDisponible).Return(nil, nil)
			},
			wantErr: errs.ErrEjemplarNoDisponible,
		},
		{
			name: "rut desconocido",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUsuarioByRUT(ctx, req.RUT).Return(model.Usuario{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t, nil, nil)
			tt.mockBehavior(repo)

			_, err := svc.RegistrarPrestamoPorRutISBN(ctx, req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_NotificarVencidos(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	enq := &enqueuerStub{}
	svc, repo := newTestService(t, enq, nil)
	repo.EXPECT().SweepVencidos(ctx).Return([]model.Prestamo{{ID: 1}}, nil)
	repo.EXPECT().ListVencidosNoNotificados(ctx).Return([]model.PrestamoNotificacion{
		{Prestamo: model.Prestamo{ID: 1}, Email: "ana@example.cl"},
		{Prestamo: model.Prestamo{ID: 2}, Email: "luis@example.cl"},
	}, nil)

	n, err := svc.NotificarVencidos(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Len(t, enq.msgs, 2)

	msg, ok := enq.msgs[0].(model.NotificacionMsg)
	require.True(t, ok)
	require.Equal(t, "ana@example.cl", msg.Destinatario)
	require.Equal(t, "vencimiento", msg.Tipo)
}

func TestService_ProcesarNotificacion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	msg := model.NotificacionMsg{PrestamoID: 5, Tipo: "vencimiento", Destinatario: "ana@example.cl", Asunto: "Prestamo #5 vencido"}

	t.Run("delivery ok marks notificado", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, nil, &senderStub{})
		repo.EXPECT().AppendNotificacion(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, n model.Notificacion) (model.Notificacion, error) {
				require.True(t, n.Exito)
				require.Nil(t, n.Error)
				return n, nil
			})
		repo.EXPECT().MarkNotificado(ctx, 5).Return(nil)

		require.NoError(t, svc.ProcesarNotificacion(ctx, msg))
	})

	t.Run("delivery failure is logged, not fatal", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, nil, &senderStub{err: errors.New("smtp down")})
		repo.EXPECT().AppendNotificacion(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, n model.Notificacion) (model.Notificacion, error) {
				require.False(t, n.Exito)
				require.NotNil(t, n.Error)
				return n, nil
			})

		require.NoError(t, svc.ProcesarNotificacion(ctx, msg))
	})

	t.Run("loan returned before delivery", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t, nil, &senderStub{})
		repo.EXPECT().AppendNotificacion(ctx, gomock.Any()).Return(model.Notificacion{}, nil)
		repo.EXPECT().MarkNotificado(ctx, 5).Return(errs.ErrPrestamoNoVencido)

		require.NoError(t, svc.ProcesarNotificacion(ctx, msg))
	})
}
