package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

// RegisterUsuario stores the account inactive with a bcrypt password
// hash and returns the one-time activation token alongside it.
func (s *Service) RegisterUsuario(ctx context.Context, req model.UsuarioCreateRequest) (model.Usuario, model.TokenValidacion, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Usuario{}, model.TokenValidacion{}, errors.Wrap(err, "hash password")
	}
	return s.repo.CreateUsuario(ctx, req, string(hash), tokenTTL)
}

func (s *Service) ActivateUsuario(ctx context.Context, token string) (model.Usuario, error) {
	return s.repo.ActivateUsuario(ctx, token)
}

// Authenticate verifies the credentials and returns the account; the
// handler mints the JWT from it.
func (s *Service) Authenticate(ctx context.Context, email, password string) (model.Usuario, error) {
	usuario, err := s.repo.GetUsuarioByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Usuario{}, errs.ErrCredenciales
		}
		return model.Usuario{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		return model.Usuario{}, errs.ErrCredenciales
	}
	if !usuario.Activo {
		return model.Usuario{}, errs.ErrUsuarioInactivo
	}
	return usuario, nil
}

func (s *Service) GetUsuario(ctx context.Context, id int) (model.Usuario, error) {
	return s.repo.GetUsuario(ctx, id)
}

func (s *Service) GetUsuarioByRUT(ctx context.Context, rut string) (model.Usuario, error) {
	return s.repo.GetUsuarioByRUT(ctx, rut)
}

func (s *Service) SetSancion(ctx context.Context, id int, hasta *time.Time) (model.Usuario, error) {
	return s.repo.SetSancion(ctx, id, hasta)
}

func (s *Service) DeleteUsuario(ctx context.Context, id int) error {
	return s.repo.DeleteUsuario(ctx, id)
}
