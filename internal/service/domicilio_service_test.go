package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/IMANOL01277/BollitoPy/internal/dto"
	"github.com/IMANOL01277/BollitoPy/internal/model"
	"github.com/IMANOL01277/BollitoPy/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) domicilioService(n service.Notificador) service.DomicilioService {
	movs := service.NewMovimientoService(f.movimientos, f.reloj)
	return service.NewDomicilioService(f.domicilios, f.productos, movs, n, f.reloj)
}

func pedido(productoID uuid.UUID, cantidad int) dto.CrearDomicilioRequest {
	return dto.CrearDomicilioRequest{
		ConductorResponsable: "Juan",
		MatriculaVehiculo:    "ABC123",
		Observaciones:        "Portón verde",
		IDProducto:           productoID.String(),
		Cantidad:             cantidad,
	}
}

func TestCrearDomicilioDescuentaStockYRegistraSalida(t *testing.T) {
	f := newFixture()
	id := crearProducto(t, f, f.productoService(), "Bollo limpio", "2.50", 5)
	svc := f.domicilioService(nil)

	d, err := svc.Crear(context.Background(), pedido(id, 3))
	require.NoError(t, err)

	assert.Equal(t, "Bollo limpio", d.Producto)
	assert.Equal(t, f.ahora, d.FechaRegistro)
	assert.Equal(t, 2, f.productos.productos[id].Stock)

	movs := f.movimientos.porProducto(id)
	require.Len(t, movs, 2)
	m := movs[1]
	assert.Equal(t, model.MovimientoSalida, m.Tipo)
	assert.Equal(t, 3, m.Cantidad)
	assert.True(t, decimal.RequireFromString("2.50").Equal(m.PrecioUnitario))
	assert.True(t, decimal.RequireFromString("7.50").Equal(m.Total))
	assert.Equal(t, "Domicilio entregado por Juan", m.Descripcion)
}

func TestCrearDomicilioStockNegativoAlerta(t *testing.T) {
	f := newFixture()
	id := crearProducto(t, f, f.productoService(), "Bollo limpio", "2.50", 2)
	n := &stubNotificador{}
	svc := f.domicilioService(n)

	_, err := svc.Crear(context.Background(), pedido(id, 5))
	require.NoError(t, err)

	assert.Equal(t, -3, f.productos.productos[id].Stock)
	require.Len(t, n.alertas, 1)
	assert.Equal(t, "Bollo limpio", n.alertas[0].producto)
	assert.Equal(t, -3, n.alertas[0].stock)
}

func TestCrearDomicilioFalloDeAlertaNoRevierte(t *testing.T) {
	f := newFixture()
	id := crearProducto(t, f, f.productoService(), "Bollo limpio", "2.50", 0)
	svc := f.domicilioService(&stubNotificador{err: errors.New("redis caído")})

	_, err := svc.Crear(context.Background(), pedido(id, 1))
	require.NoError(t, err)
	assert.Equal(t, -1, f.productos.productos[id].Stock)
	assert.Len(t, f.domicilios.domicilios, 1)
}

func TestCrearDomicilioRechazos(t *testing.T) {
	f := newFixture()
	id := crearProducto(t, f, f.productoService(), "Bollo limpio", "2.50", 5)
	svc := f.domicilioService(nil)

	for name, req := range map[string]dto.CrearDomicilioRequest{
		"cantidad cero":        pedido(id, 0),
		"cantidad negativa":    pedido(id, -2),
		"producto inexistente": pedido(uuid.New(), 1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Crear(context.Background(), req)
			require.Error(t, err)
			assert.True(t, service.EsValidacion(err))
			assert.Equal(t, service.MensajeProductoOCantidad, err.Error())
		})
	}
	assert.Empty(t, f.domicilios.domicilios)
	assert.Equal(t, 5, f.productos.productos[id].Stock)
	assert.Len(t, f.movimientos.porProducto(id), 1)
}

func TestCrearDomicilioSinConductorOMatricula(t *testing.T) {
	f := newFixture()
	id := crearProducto(t, f, f.productoService(), "Bollo limpio", "2.50", 5)
	svc := f.domicilioService(nil)

	sinConductor := pedido(id, 1)
	sinConductor.ConductorResponsable = "   "
	sinMatricula := pedido(id, 1)
	sinMatricula.MatriculaVehiculo = ""

	for name, req := range map[string]dto.CrearDomicilioRequest{
		"conductor en blanco": sinConductor,
		"matrícula vacía":     sinMatricula,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Crear(context.Background(), req)
			require.Error(t, err)
			assert.True(t, service.EsValidacion(err))
			assert.Equal(t, service.MensajeConductorMatricula, err.Error())
		})
	}
	assert.Empty(t, f.domicilios.domicilios)
	assert.Equal(t, 5, f.productos.productos[id].Stock)
}

func TestEliminarDomicilioNoRevierteStock(t *testing.T) {
	f := newFixture()
	id := crearProducto(t, f, f.productoService(), "Bollo limpio", "2.50", 5)
	svc := f.domicilioService(nil)
	d, err := svc.Crear(context.Background(), pedido(id, 2))
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), d.ID))

	assert.Empty(t, f.domicilios.domicilios)
	assert.Equal(t, 3, f.productos.productos[id].Stock)
	assert.Len(t, f.movimientos.porProducto(id), 2)
	assert.ErrorIs(t, svc.Eliminar(context.Background(), d.ID), service.ErrDomicilioNoEncontrado)
}

func TestDomicilioConservaNombreHistorico(t *testing.T) {
	f := newFixture()
	id := crearProducto(t, f, f.productoService(), "Bollo limpio", "2.50", 5)
	svc := f.domicilioService(nil)
	_, err := svc.Crear(context.Background(), pedido(id, 1))
	require.NoError(t, err)

	f.productos.productos[id].Nombre = "Bollo renombrado"

	list, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bollo limpio", list[0].Producto)
}
