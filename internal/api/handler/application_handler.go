package handler

import "net/http"

// Application returns a handler for GET /v1/<name> that names the
// application that answered.
func Application(name string) http.HandlerFunc {
	body := map[string]string{"application": name}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, body)
	}
}
