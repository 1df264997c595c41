package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `form:"nombre"       validate:"required,min=1,max=120"`
	Descripcion string          `form:"descripcion"`
	Precio      decimal.Decimal `form:"precio"       validate:"min=0"`
	Stock       int             `form:"stock"        validate:"min=0"`
	IDCategoria string          `form:"id_categoria" validate:"required,uuid"`
	IDProveedor string          `form:"id_proveedor" validate:"omitempty,uuid"`
}

type ActualizarProductoRequest struct {
	IDProducto string `form:"id_producto" validate:"required,uuid"`
	CrearProductoRequest
}

type EliminarProductoRequest struct {
	IDProducto string `form:"id_producto" validate:"required,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ProductoResponse is one row of the inventory table.
type ProductoResponse struct {
	IDProducto  string          `json:"id_producto"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Categoria   *string         `json:"categoria"`
	Proveedor   *string         `json:"proveedor"`
}

// ProductoDetalleResponse feeds the edit form.
type ProductoDetalleResponse struct {
	IDProducto  string          `json:"id_producto"`
	Nombre      string          `json:"nombre"`
	IDCategoria string          `json:"id_categoria"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	IDProveedor *string         `json:"id_proveedor"`
}
