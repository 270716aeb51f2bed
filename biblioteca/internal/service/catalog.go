package service

import (
	"context"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

func (s *Service) CreateDocumento(ctx context.Context, req model.DocumentoCreateRequest) (model.Documento, error) {
	return s.repo.CreateDocumento(ctx, req)
}

func (s *Service) GetDocumento(ctx context.Context, id int) (model.Documento, error) {
	return s.repo.GetDocumento(ctx, id)
}

func (s *Service) GetDocumentoByISBN(ctx context.Context, isbn string) (model.Documento, error) {
	return s.repo.GetDocumentoByISBN(ctx, isbn)
}

func (s *Service) ListDocumentos(ctx context.Context, tipo, categoria string, page, size int) (model.ListDocumentos, error) {
	return s.repo.ListDocumentos(ctx, tipo, categoria, page, size)
}

func (s *Service) SearchDocumentos(ctx context.Context, termino string, page, size int) (model.ListDocumentos, error) {
	return s.repo.SearchDocumentos(ctx, termino, page, size)
}

func (s *Service) UpdateDocumento(ctx context.Context, id int, req model.DocumentoUpdateRequest) (model.Documento, error) {
	return s.repo.UpdateDocumento(ctx, id, req)
}

func (s *Service) DeleteDocumento(ctx context.Context, id int) error {
	return s.repo.DeleteDocumento(ctx, id)
}

func (s *Service) CreateEjemplar(ctx context.Context, req model.EjemplarCreateRequest) (model.Ejemplar, error) {
	return s.repo.CreateEjemplar(ctx, req)
}

func (s *Service) ListEjemplares(ctx context.Context, documentoID int, estado model.EstadoEjemplar) ([]model.Ejemplar, error) {
	return s.repo.ListEjemplares(ctx, documentoID, estado)
}

func (s *Service) CambiarEstadoEjemplar(ctx context.Context, id int, nuevo model.EstadoEjemplar, actorID *int, motivo string) (model.Ejemplar, error) {
	return s.repo.CambiarEstadoEjemplar(ctx, id, nuevo, actorID, motivo)
}

func (s *Service) GetHistorialEjemplar(ctx context.Context, ejemplarID int) ([]model.HistorialEjemplar, error) {
	return s.repo.GetHistorialEjemplar(ctx, ejemplarID)
}

func (s *Service) CreateBiblioteca(ctx context.Context, req model.BibliotecaCreateRequest) (model.Biblioteca, error) {
	return s.repo.CreateBiblioteca(ctx, req)
}

func (s *Service) ListBibliotecas(ctx context.Context, soloActivas bool) ([]model.Biblioteca, error) {
	return s.repo.ListBibliotecas(ctx, soloActivas)
}

func (s *Service) DeleteBiblioteca(ctx context.Context, id int) error {
	return s.repo.DeleteBiblioteca(ctx, id)
}
