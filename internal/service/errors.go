package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Not-found outcomes. Handlers report them as soft failures (success:false).
var (
	ErrProductoNoEncontrado  = errors.New("Producto no encontrado")
	ErrCategoriaNoEncontrada = errors.New("Categoría no encontrada")
	ErrProveedorNoEncontrado = errors.New("Proveedor no encontrado")
	ErrUsuarioNoEncontrado   = errors.New("Usuario no encontrado")
	ErrDomicilioNoEncontrado = errors.New("Domicilio no encontrado")
	ErrVendedorNoEncontrado  = errors.New("Vendedor no encontrado")

	ErrCredenciales = errors.New("Credenciales incorrectas")
)

// ErrorValidacion is malformed input; the operation was not attempted.
type ErrorValidacion struct {
	Mensaje string
}

func (e *ErrorValidacion) Error() string { return e.Mensaje }

func validacion(msg string) error { return &ErrorValidacion{Mensaje: msg} }

// EsValidacion reports whether err is a validation failure.
func EsValidacion(err error) bool {
	var v *ErrorValidacion
	return errors.As(err, &v)
}

// EsNoEncontrado reports whether err is one of the not-found sentinels.
func EsNoEncontrado(err error) bool {
	for _, target := range []error{
		ErrProductoNoEncontrado, ErrCategoriaNoEncontrada, ErrProveedorNoEncontrado,
		ErrUsuarioNoEncontrado, ErrDomicilioNoEncontrado, ErrVendedorNoEncontrado,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// notFound maps gorm.ErrRecordNotFound to sentinel and passes other errors through.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
