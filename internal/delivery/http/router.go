package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"regrelay/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all relay routes.
func NewRouter(
	registration *controllers.RegistrationController,
	event *controllers.EventController,
	publish *controllers.PublishController,
	diag *controllers.DiagController,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", registration.Register)
	mux.HandleFunc("GET /api/event", event.Lookup)
	// The publisher accepts webhook POSTs and manual GETs.
	mux.HandleFunc("POST /api/event-url", publish.Publish)
	mux.HandleFunc("GET /api/event-url", publish.Publish)
	mux.HandleFunc("GET /api/diag", diag.Diagnose)

	mux.HandleFunc("GET /healthz", healthz)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
