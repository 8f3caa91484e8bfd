package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the embedded browser client, rooted at the static directory
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
