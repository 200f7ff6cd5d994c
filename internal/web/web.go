package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// Static returns the embedded UI files rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// ALLOW-PANIC: the embedded directory is fixed at build time
		panic(err)
	}
	return sub
}

// Handler serves index.html at / and the remaining UI assets by path.
// Pages are never cached so a deploy takes effect on reload.
func Handler() http.Handler {
	files := http.FileServerFS(Static())
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		files.ServeHTTP(w, r)
	})
}
