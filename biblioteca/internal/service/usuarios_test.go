package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

func TestService_Authenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	cuenta := model.Usuario{ID: 7, Email: "ana@example.cl", PasswordHash: string(hash), Activo: true}

	t.Run("ok", func(t *testing.T) {
		svc, repo := newTestService(t, nil, nil)
		repo.EXPECT().GetUsuarioByEmail(ctx, "ana@example.cl").Return(cuenta, nil)

		usuario, err := svc.Authenticate(ctx, "ana@example.cl", "secreto123")
		require.NoError(t, err)
		require.Equal(t, 7, usuario.ID)
	})

	t.Run("password incorrecto", func(t *testing.T) {
		svc, repo := newTestService(t, nil, nil)
		repo.EXPECT().GetUsuarioByEmail(ctx, "ana@example.cl").Return(cuenta, nil)

		_, err := svc.Authenticate(ctx, "ana@example.cl", "otra-cosa")
		require.ErrorIs(t, err, errs.ErrCredenciales)
	})

	t.Run("email desconocido no revela la cuenta", func(t *testing.T) {
		svc, repo := newTestService(t, nil, nil)
		repo.EXPECT().GetUsuarioByEmail(ctx, "nadie@example.cl").Return(model.Usuario{}, errs.ErrNotFound)

		_, err := svc.Authenticate(ctx, "nadie@example.cl", "secreto123")
		require.ErrorIs(t, err, errs.ErrCredenciales)
	})

	t.Run("cuenta sin activar", func(t *testing.T) {
		inactiva := cuenta
		inactiva.Activo = false
		svc, repo := newTestService(t, nil, nil)
		repo.EXPECT().GetUsuarioByEmail(ctx, "ana@example.cl").Return(inactiva, nil)

		_, err := svc.Authenticate(ctx, "ana@example.cl", "secreto123")
		require.ErrorIs(t, err, errs.ErrUsuarioInactivo)
	})
}

func TestService_RegisterUsuario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req := model.UsuarioCreateRequest{
		RUT:       "12345678-5",
		Nombres:   "Ana",
		Apellidos: "Rojas",
		Email:     "ana@example.cl",
		Password:  "secreto123",
	}

	svc, repo := newTestService(t, nil, nil)
	repo.EXPECT().CreateUsuario(ctx, req, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.UsuarioCreateRequest, hash string, _ time.Duration) (model.Usuario, model.TokenValidacion, error) {
			// the hash must verify against the plaintext and never equal it
			require.NotEqual(t, req.Password, hash)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)))
			return model.Usuario{ID: 7}, model.TokenValidacion{Token: "tok"}, nil
		})

	usuario, token, err := svc.RegisterUsuario(ctx, req)
	require.NoError(t, err)
	require.Equal(t, 7, usuario.ID)
	require.Equal(t, "tok", token.Token)
}
