package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Correo     string `form:"correo"     validate:"required"`
	Contrasena string `form:"contraseña" validate:"required"`
}

// RegistroRequest is the public sign-up form. Field rules are checked in
// order by AuthService.Registrar so the first failing rule is reported.
type RegistroRequest struct {
	Nombre     string `form:"nombre"`
	Correo     string `form:"correo"`
	Contrasena string `form:"contraseña"`
	Confirmar  string `form:"confirmar"`
}

type CrearUsuarioRequest struct {
	Nombre     string `form:"nombre"     validate:"required,min=2,max=100"`
	Correo     string `form:"correo"     validate:"required,email"`
	Contrasena string `form:"contraseña" validate:"required,min=8"`
	Rol        string `form:"rol"        validate:"omitempty,oneof=empleado administrador"`
}

type ActualizarUsuarioRequest struct {
	IDUsuario  string `form:"id_usuario" validate:"required,uuid"`
	Nombre     string `form:"nombre"     validate:"required,min=2,max=100"`
	Correo     string `form:"correo"     validate:"required,email"`
	Rol        string `form:"rol"        validate:"required,oneof=empleado administrador"`
	Contrasena string `form:"contraseña" validate:"omitempty,min=8"`
}

type EliminarUsuarioRequest struct {
	IDUsuario string `form:"id_usuario" validate:"required,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	IDUsuario string `json:"id_usuario"`
	Nombre    string `json:"nombre"`
	Correo    string `json:"correo"`
	Rol       string `json:"rol"`
}
