package http

import (
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/oaktable/menu-service/web"
)

// StaticHandler serves the embedded page and assets. Unknown routes get the
// menu page back with a 404 status so a visitor always lands somewhere
// useful.
type StaticHandler struct{}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if name == "" || name == "." {
		name = "index.html"
	}

	data, err := web.Assets.ReadFile(name)
	if err != nil {
		h.fallback(w)
		return
	}

	ctype := mime.TypeByExtension(path.Ext(name))
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ctype)
	_, _ = w.Write(data)
}

func (h *StaticHandler) fallback(w http.ResponseWriter) {
	data, err := web.Assets.ReadFile("index.html")
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(data)
}
