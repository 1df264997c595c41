package handler

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/IMANOL01277/BollitoPy/internal/apierror"
	"github.com/IMANOL01277/BollitoPy/internal/middleware"
	"github.com/IMANOL01277/BollitoPy/internal/service"
	"github.com/IMANOL01277/BollitoPy/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const MensajeAccionInvalida = "Acción no válida"

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// accion reads the dispatch key from the query string, then the form body.
func accion(c *gin.Context) string {
	if a := c.Query("action"); a != "" {
		return a
	}
	return c.PostForm("action")
}

// bindAndValidate binds the form (or query string) and runs validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Datos inválidos: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindForm is bindAndValidate for page handlers: it returns a short message
// meant for a flash instead of writing a response. Empty means valid.
func bindForm(c *gin.Context, req interface{}) string {
	if err := c.ShouldBind(req); err != nil {
		return "Datos del formulario inválidos"
	}
	if err := validate.Struct(req); err != nil {
		var campos []string
		for _, fe := range err.(validator.ValidationErrors) {
			campos = append(campos, strings.ToLower(fe.Field()))
		}
		return "Revisa los campos: " + strings.Join(campos, ", ")
	}
	return ""
}

// responderError maps service errors onto the JSON envelope. Infrastructure
// errors are handed to the ErrorHandler middleware.
func responderError(c *gin.Context, err error) {
	switch {
	case service.EsValidacion(err):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case service.EsNoEncontrado(err):
		c.JSON(http.StatusOK, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
	}
}

// render writes a page with the fields every template expects.
func render(c *gin.Context, status int, pagina, titulo string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Titulo"] = titulo
	data["Usuario"] = middleware.GetIdentidad(c)
	data["Flashes"] = web.Consumir(c)
	c.HTML(status, pagina, data)
}

// volver flashes msg and redirects to path.
func volver(c *gin.Context, path, categoria, msg string) {
	if msg != "" {
		web.Flashear(c, categoria, msg)
	}
	c.Redirect(http.StatusFound, path)
}
