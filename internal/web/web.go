// Package web holds the server-rendered page shells and the flash-message
// cookie shared by the page handlers and the access gate.
package web

import (
	"embed"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"fecha": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
	"dinero": func(d decimal.Decimal) string {
		return "$" + d.StringFixed(2)
	},
}

// Templates parses every embedded page. Page templates are addressed by file
// name, e.g. "login.html".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}
