package handler

import "net/http"

// HealthHandler serves the JSON health endpoint. Like the Health view it is
// static: it reports that the process answers HTTP, nothing more.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Health handles GET /healthz and GET /healthcheck
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
