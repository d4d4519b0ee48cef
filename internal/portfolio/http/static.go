package http

import (
	"io/fs"
	"net/http"

	"github.com/stefanramac/portfolio/internal/portfolio/web"
)

// StaticHandler serves the embedded landing page at the root and the 404
// page for every unmatched path. Registered on the catch-all pattern, so it
// only sees requests no API route claimed.
func StaticHandler() http.Handler {
	pages, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err)
	}

	index, err := fs.ReadFile(pages, "index.html")
	if err != nil {
		panic(err)
	}
	notFound, err := fs.ReadFile(pages, "404.html")
	if err != nil {
		panic(err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(index)
			return
		}

		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write(notFound)
	})
}
