package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre      string `form:"nombre"`
	Descripcion string `form:"descripcion"`
}

type CrearProveedorRequest struct {
	Nombre    string `form:"nombre"`
	Contacto  string `form:"contacto"`
	Telefono  string `form:"telefono"`
	Correo    string `form:"correo"    validate:"omitempty,email"`
	Direccion string `form:"direccion"`
}

type CrearVendedorRequest struct {
	Nombre    string `form:"nombre"`
	Telefono  string `form:"telefono"`
	Direccion string `form:"direccion"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type OpcionCategoria struct {
	IDCategoria string `json:"id_categoria"`
	Nombre      string `json:"nombre"`
}

type OpcionProveedor struct {
	IDProveedor string `json:"id_proveedor"`
	Nombre      string `json:"nombre"`
}
