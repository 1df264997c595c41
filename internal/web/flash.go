package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FlashCookie carries messages across a redirect. It is read and cleared by
// the next rendered page.
const FlashCookie = "flash"

const flashPendientesKey = "flash_pendientes"

// Flash categories, as used by the page styles.
const (
	FlashExito       = "success"
	FlashError       = "danger"
	FlashAdvertencia = "warning"
	FlashInfo        = "info"
)

type Flash struct {
	Categoria string `json:"c"`
	Mensaje   string `json:"m"`
}

func decodificar(raw string) []Flash {
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var out []Flash
	if json.Unmarshal(data, &out) != nil {
		return nil
	}
	return out
}

// Flashear queues a message for the next page the client renders.
func Flashear(c *gin.Context, categoria, mensaje string) {
	pendientes, ok := c.Get(flashPendientesKey)
	var lista []Flash
	if ok {
		lista = pendientes.([]Flash)
	} else if raw, err := c.Cookie(FlashCookie); err == nil {
		lista = decodificar(raw)
	}
	lista = append(lista, Flash{Categoria: categoria, Mensaje: mensaje})
	c.Set(flashPendientesKey, lista)

	data, err := json.Marshal(lista)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookie, base64.RawURLEncoding.EncodeToString(data), 0, "/", "", false, true)
}

// Consumir returns the pending messages and clears the cookie. Messages
// queued during the current request are included.
func Consumir(c *gin.Context) []Flash {
	var lista []Flash
	if pendientes, ok := c.Get(flashPendientesKey); ok {
		lista = pendientes.([]Flash)
	} else if raw, err := c.Cookie(FlashCookie); err == nil {
		lista = decodificar(raw)
	} else {
		return nil
	}
	c.Set(flashPendientesKey, []Flash(nil))
	c.SetCookie(FlashCookie, "", -1, "/", "", false, true)
	return lista
}
