package dto

type CrearDomicilioRequest struct {
	ConductorResponsable string `form:"conductor_responsable" validate:"required,max=120"`
	MatriculaVehiculo    string `form:"matricula_vehiculo"    validate:"required,max=20"`
	Observaciones        string `form:"observaciones"`
	IDProducto           string `form:"id_producto"           validate:"required,uuid"`
	Cantidad             int    `form:"cantidad"`
}

type EliminarDomicilioRequest struct {
	IDDomicilio string `form:"id_domicilio" validate:"required,uuid"`
}
