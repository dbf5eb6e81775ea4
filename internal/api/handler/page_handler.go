package handler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/arco/demo/internal/view"
)

// PageHandler serves the HTML views. Each route maps to exactly one view
// and nothing but the path selects it.
type PageHandler struct {
	onRender func(view string)
}

// NewPageHandler takes a callback invoked once per rendered view; nil is allowed.
func NewPageHandler(onRender func(view string)) *PageHandler {
	if onRender == nil {
		onRender = func(string) {}
	}
	return &PageHandler{onRender: onRender}
}

// Version handles GET /version
func (h *PageHandler) Version(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.NameVersion, http.StatusOK, view.Version())
}

// Health handles GET /health
func (h *PageHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.NameHealth, http.StatusOK, view.Health())
}

// NotFound is installed as the router's fallback for unregistered paths.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.NameNotFound, http.StatusNotFound, view.NotFound(r.URL.Path))
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, name string, status int, c templ.Component) {
	h.onRender(name)
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}
