package templates

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Load parses the storefront page templates.
func Load() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"price": func(v float64) string { return fmt.Sprintf("Rs %.0f/-", v) },
	}).ParseFS(files, "*.tmpl"))
}
