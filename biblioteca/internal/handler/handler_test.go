package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/handler"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
	"github.com/duoc-capstone/biblioteca-service/pkg/validate"

	service_mocks "github.com/duoc-capstone/biblioteca-service/biblioteca/internal/handler/mocks"
)

func TestHandler_ListDocumentos(t *testing.T) {
	t.Parallel()
	type input struct {
		tipo       string
		page, size int
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBibliotecaService, req input)

	autor := "Isabel Allende"
	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBibliotecaService, req input) {
				r.EXPECT().
					ListDocumentos(context.Background(), req.tipo, "", req.page, req.size).
					Return(model.ListDocumentos{
						Paging: model.Paging{
							Page:          req.page,
							PageSize:      req.size,
							TotalElements: 1,
						},
						Items: []model.Documento{
							{
								ID:          3,
								Tipo:        "libro",
								Titulo:      "La casa de los espíritus",
								Autor:       &autor,
								Existencias: 2,
								Disponible:  true,
							},
						},
					}, nil)
			},
			input: input{tipo: "libro", page: 1, size: 10},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":10,"totalElements":1,"items":[{"id":3,"tipo":"libro","titulo":"La casa de los espíritus","autor":"Isabel Allende","editorial":null,"resumen":null,"link":null,"anio":null,"edicion":null,"categoria":null,"tipoMedio":null,"existencias":2,"disponible":true,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}]}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockBibliotecaService, req input) {
				r.EXPECT().
					ListDocumentos(context.Background(), req.tipo, "", req.page, req.size).
					Return(model.ListDocumentos{}, errors.New("db internal"))
			},
			input: input{tipo: "libro"},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBibliotecaService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/documentos", h.ListDocumentos)

			r := httptest.NewRequest(
				http.MethodGet, fmt.Sprintf("/documentos?tipo=%s&page=%d&size=%d", tt.input.tipo, tt.input.page, tt.input.size), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_RegistrarPrestamo(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBibliotecaService)

	okBody := `{"tipo":"domicilio","usuarioId":7,"bibliotecaId":1,"ejemplarIds":[3]}`
	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: okBody,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					RegistrarPrestamo(context.Background(), gomock.Any()).
					Return(model.Prestamo{ID: 11, Tipo: model.PrestamoDomicilio, UsuarioID: 7, BibliotecaID: 1, Estado: model.PrestamoActivo}, nil)
			},
			response: response{expectedCode: http.StatusCreated},
		},
		{
			name:         "err. sin ejemplares",
			body:         `{"tipo":"domicilio","usuarioId":7,"bibliotecaId":1,"ejemplarIds":[]}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {},
			response:     response{expectedCode: http.StatusBadRequest},
			wantErr:      true,
		},
		{
			name:         "err. tipo invalido",
			body:         `{"tipo":"permanente","usuarioId":7,"bibliotecaId":1,"ejemplarIds":[3]}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {},
			response:     response{expectedCode: http.StatusBadRequest},
			wantErr:      true,
		},
		{
			name: "err. usuario sancionado",
			body: okBody,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					RegistrarPrestamo(context.Background(), gomock.Any()).
					Return(model.Prestamo{}, errs.ErrUsuarioSancionado)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"usuario is sanctioned"}`,
			},
			wantErr: true,
		},
		{
			name: "err. limite de prestamos",
			body: okBody,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					RegistrarPrestamo(context.Background(), gomock.Any()).
					Return(model.Prestamo{}, errs.ErrPrestamosActivos)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"usuario has reached the active loans limit"}`,
			},
			wantErr: true,
		},
		{
			name: "err. ejemplar no disponible",
			body: okBody,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					RegistrarPrestamo(context.Background(), gomock.Any()).
					Return(model.Prestamo{}, errs.ErrEjemplarNoDisponible)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"ejemplar is not available"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBibliotecaService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/prestamos/registrar", h.RegistrarPrestamo)

			r := httptest.NewRequest(http.MethodPost, "/prestamos/registrar", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CambiarEstadoEjemplar(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBibliotecaService)

	var tests = []struct {
		name         string
		id           string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			id:   "3",
			body: `{"estado":"mantenimiento","motivo":"lomo dañado"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					CambiarEstadoEjemplar(context.Background(), 3, model.EjemplarMantenimiento, nil, "lomo dañado").
					Return(model.Ejemplar{ID: 3, Estado: model.EjemplarMantenimiento}, nil)
			},
			response: response{expectedCode: http.StatusOK},
		},
		{
			name: "err. transicion invalida",
			id:   "3",
			body: `{"estado":"prestado","motivo":"prueba"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {
				r.EXPECT().
					CambiarEstadoEjemplar(context.Background(), 3, model.EjemplarPrestado, nil, "prueba").
					Return(model.Ejemplar{}, errs.ErrTransicionInvalida)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"estado transition is not allowed"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. estado desconocido",
			id:           "3",
			body:         `{"estado":"perdido","motivo":"prueba"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {},
			response:     response{expectedCode: http.StatusBadRequest},
			wantErr:      true,
		},
		{
			name:         "err. motivo requerido",
			id:           "3",
			body:         `{"estado":"baja"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {},
			response:     response{expectedCode: http.StatusBadRequest},
			wantErr:      true,
		},
		{
			name:         "err. id invalido",
			id:           "abc",
			body:         `{"estado":"baja","motivo":"prueba"}`,
			mockBehavior: func(r *service_mocks.MockBibliotecaService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id is invalid"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBibliotecaService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PATCH("/ejemplares/:id/estado", h.CambiarEstadoEjemplar)

			r := httptest.NewRequest(http.MethodPatch, "/ejemplares/"+tt.id+"/estado", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}
