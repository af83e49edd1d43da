package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var templatesFS embed.FS

// NewEngine builds the template engine from the embedded form markup,
// so the binary carries its views and tests need no working directory.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(templatesFS), ".html")
}
