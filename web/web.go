// Package web embeds the html templates served by the site.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

// Layout wraps every page rendered through the engine.
const Layout = "layouts/main"

// NewEngine builds the fiber view engine over the embedded templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		// the embed directive guarantees the directory
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
