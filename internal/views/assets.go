package views

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embedded embed.FS

// EmbeddedTemplates returns the templates compiled into the binary.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embedded, "templates")
}
