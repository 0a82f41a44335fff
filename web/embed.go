// Package web embeds the browser dashboard served at the site root.
package web

import (
	"embed"
	"net/http"
)

//go:embed index.html app.js styles.css
var assets embed.FS

// Handler serves the embedded dashboard files.
func Handler() http.Handler {
	return http.FileServer(http.FS(assets))
}
