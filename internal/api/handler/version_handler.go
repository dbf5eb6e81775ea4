package handler

import (
	"net/http"

	"github.com/arco/demo/internal/version"
)

type VersionHandler struct {
	appName string
}

func NewVersionHandler(appName string) *VersionHandler {
	return &VersionHandler{appName: appName}
}

// Version handles GET /api/v1/version
func (h *VersionHandler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"name":    h.appName,
		"version": version.Version,
	})
}
