package view

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

// Names used to label rendered views in logs and metrics.
const (
	NameVersion  = "version"
	NameHealth   = "health"
	NameNotFound = "not_found"
)

// HealthText is the static indicator shown by the Health view.
const HealthText = "ok"
