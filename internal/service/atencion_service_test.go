package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/model"
	"github.com/edulopezdev/barberiaLopez/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type atencionFixture struct {
	svc          service.AtencionService
	repo         *stubAtencionRepo
	usuarioRepo  *stubUsuarioRepo
	productoRepo *stubProductoRepo
	turnoRepo    *stubTurnoRepo
	cliente      *model.Usuario
	barbero      *model.Usuario
	corte        *model.ProductoServicio
	gel          *model.ProductoServicio
}

func newAtencionFixture(t *testing.T) *atencionFixture {
	t.Helper()
	usuarioRepo := newStubUsuarioRepo()
	productoRepo := newStubProductoRepo()
	atencionRepo := newStubAtencionRepo()
	turnoRepo := newStubTurnoRepo()

	cliente := seedUsuario(t, usuarioRepo, "cliente@test.com", "x12345678", model.RolClienteID, true, false)
	barbero := seedUsuario(t, usuarioRepo, "barbero@test.com", "x12345678", model.RolBarberoID, true, true)

	corte := &model.ProductoServicio{Nombre: "Corte clásico", Precio: decimal.NewFromInt(1500)}
	gel := &model.ProductoServicio{Nombre: "Gel fijador", Precio: decimal.NewFromInt(800), EsAlmacenable: true, Cantidad: 10}
	require.NoError(t, productoRepo.Create(context.Background(), corte))
	require.NoError(t, productoRepo.Create(context.Background(), gel))

	return &atencionFixture{
		svc:          service.NewAtencionService(atencionRepo, usuarioRepo, productoRepo, turnoRepo),
		repo:         atencionRepo,
		usuarioRepo:  usuarioRepo,
		productoRepo: productoRepo,
		turnoRepo:    turnoRepo,
		cliente:      cliente,
		barbero:      barbero,
		corte:        corte,
		gel:          gel,
	}
}

func TestCrearAtencionRecalculaTotal(t *testing.T) {
	f := newAtencionFixture(t)

	resp, err := f.svc.Crear(context.Background(), f.barbero.ID, dto.CrearAtencionRequest{
		ClienteID: f.cliente.ID,
		// The body claims a wrong total; the service must ignore it.
		Total: decimal.NewFromInt(1),
		Detalles: []dto.DetalleRequest{
			{ProductoServicioID: f.corte.ID, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(1500)},
			{ProductoServicioID: f.gel.ID, Cantidad: 2, PrecioUnitario: decimal.NewFromInt(800)},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(3100)), "total = %s", resp.Total)
	assert.Equal(t, f.barbero.ID, resp.BarberoID)
	assert.Len(t, resp.Detalles, 2)
	assert.True(t, resp.Detalles[1].Subtotal.Equal(decimal.NewFromInt(1600)))
}

func TestCrearAtencionTotalNegativo(t *testing.T) {
	f := newAtencionFixture(t)

	_, err := f.svc.Crear(context.Background(), f.barbero.ID, dto.CrearAtencionRequest{
		ClienteID: f.cliente.ID,
		Total:     decimal.NewFromInt(-100),
		Detalles: []dto.DetalleRequest{
			{ProductoServicioID: f.corte.ID, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(1500)},
		},
	})
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestCrearAtencionCantidadCero(t *testing.T) {
	f := newAtencionFixture(t)

	_, err := f.svc.Crear(context.Background(), f.barbero.ID, dto.CrearAtencionRequest{
		ClienteID: f.cliente.ID,
		Detalles: []dto.DetalleRequest{
			{ProductoServicioID: f.corte.ID, Cantidad: 0, PrecioUnitario: decimal.NewFromInt(1500)},
		},
	})
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestCrearAtencionPrecioNegativo(t *testing.T) {
	f := newAtencionFixture(t)

	_, err := f.svc.Crear(context.Background(), f.barbero.ID, dto.CrearAtencionRequest{
		ClienteID: f.cliente.ID,
		Detalles: []dto.DetalleRequest{
			{ProductoServicioID: f.corte.ID, Cantidad: 2, PrecioUnitario: decimal.NewFromInt(-500)},
		},
	})
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestCrearAtencionPrecioFueraDeRango(t *testing.T) {
	f := newAtencionFixture(t)

	_, err := f.svc.Crear(context.Background(), f.barbero.ID, dto.CrearAtencionRequest{
		ClienteID: f.cliente.ID,
		Detalles: []dto.DetalleRequest{
			{ProductoServicioID: f.corte.ID, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(10001)},
		},
	})
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestCrearAtencionSinDetalles(t *testing.T) {
	f := newAtencionFixture(t)

	_, err := f.svc.Crear(context.Background(), f.barbero.ID, dto.CrearAtencionRequest{
		ClienteID: f.cliente.ID,
	})
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestCrearAtencionClienteInvalido(t *testing.T) {
	f := newAtencionFixture(t)

	// barbero as "cliente" is rejected even though the user exists
	_, err := f.svc.Crear(context.Background(), f.barbero.ID, dto.CrearAtencionRequest{
		ClienteID: f.barbero.ID,
		Detalles: []dto.DetalleRequest{
			{ProductoServicioID: f.corte.ID, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(1500)},
		},
	})
	assertAPIError(t, err, http.StatusBadRequest)

	_, err = f.svc.Crear(context.Background(), f.barbero.ID, dto.CrearAtencionRequest{
		ClienteID: 99,
		Detalles: []dto.DetalleRequest{
			{ProductoServicioID: f.corte.ID, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(1500)},
		},
	})
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestCrearAtencionClienteNoPuedeRegistrar(t *testing.T) {
	f := newAtencionFixture(t)

	_, err := f.svc.Crear(context.Background(), f.cliente.ID, dto.CrearAtencionRequest{
		ClienteID: f.cliente.ID,
		Detalles: []dto.DetalleRequest{
			{ProductoServicioID: f.corte.ID, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(1500)},
		},
	})
	assertAPIError(t, err, http.StatusForbidden)
}

func TestCrearAtencionProductoInexistente(t *testing.T) {
	f := newAtencionFixture(t)

	_, err := f.svc.Crear(context.Background(), f.barbero.ID, dto.CrearAtencionRequest{
		ClienteID: f.cliente.ID,
		Detalles: []dto.DetalleRequest{
			{ProductoServicioID: 999, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(1500)},
		},
	})
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestCrearAtencionTurnoInexistente(t *testing.T) {
	f := newAtencionFixture(t)
	turnoID := uint(77)

	_, err := f.svc.Crear(context.Background(), f.barbero.ID, dto.CrearAtencionRequest{
		ClienteID: f.cliente.ID,
		TurnoID:   &turnoID,
		Detalles: []dto.DetalleRequest{
			{ProductoServicioID: f.corte.ID, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(1500)},
		},
	})
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestActualizarAtencionIDNoCoincide(t *testing.T) {
	f := newAtencionFixture(t)

	_, err := f.svc.Actualizar(context.Background(), 1, dto.ActualizarAtencionRequest{
		ID:        2,
		ClienteID: f.cliente.ID,
		BarberoID: f.barbero.ID,
	})
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestActualizarAtencionDesaparecida(t *testing.T) {
	f := newAtencionFixture(t)

	// Row never existed: zero rows affected maps to 404.
	_, err := f.svc.Actualizar(context.Background(), 55, dto.ActualizarAtencionRequest{
		ID:        55,
		ClienteID: f.cliente.ID,
		BarberoID: f.barbero.ID,
		Fecha:     time.Now(),
		Total:     decimal.NewFromInt(1000),
	})
	assertAPIError(t, err, http.StatusNotFound)
}

func TestEliminarAtencionConDetallesBloqueado(t *testing.T) {
	f := newAtencionFixture(t)

	resp, err := f.svc.Crear(context.Background(), f.barbero.ID, dto.CrearAtencionRequest{
		ClienteID: f.cliente.ID,
		Detalles: []dto.DetalleRequest{
			{ProductoServicioID: f.corte.ID, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(1500)},
		},
	})
	require.NoError(t, err)

	err = f.svc.Eliminar(context.Background(), resp.ID)
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestResumenBarbero(t *testing.T) {
	f := newAtencionFixture(t)
	fecha := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := f.svc.Crear(context.Background(), f.barbero.ID, dto.CrearAtencionRequest{
			ClienteID: f.cliente.ID,
			Fecha:     fecha,
			Detalles: []dto.DetalleRequest{
				{ProductoServicioID: f.corte.ID, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(1500)},
			},
		})
		require.NoError(t, err)
	}

	resumen, err := f.svc.ResumenBarbero(context.Background(), f.barbero.ID, 3, 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resumen.TotalAtenciones)
	assert.True(t, resumen.Ingresos.Equal(decimal.NewFromInt(4500)))

	// Another month is empty.
	resumen, err = f.svc.ResumenBarbero(context.Background(), f.barbero.ID, 4, 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resumen.TotalAtenciones)
}

func TestResumenBarberoMesInvalido(t *testing.T) {
	f := newAtencionFixture(t)

	_, err := f.svc.ResumenBarbero(context.Background(), f.barbero.ID, 13, 2026)
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestResumenBarberoClienteRechazado(t *testing.T) {
	f := newAtencionFixture(t)

	_, err := f.svc.ResumenBarbero(context.Background(), f.cliente.ID, 3, 2026)
	assertAPIError(t, err, http.StatusBadRequest)
}
