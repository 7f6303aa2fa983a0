package app

import (
	"net/http"
	"time"

	"github.com/riskibarqy/cricinfo/internal/interfaces/httpapi"
)

// HTTPServer serves the read-only API over a.Client.
func (a *App) HTTPServer() *http.Server {
	handler := httpapi.NewHandler(a.Client, a.Logger)
	return &http.Server{
		Addr:              a.Config.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, a.Logger, a.Config.CORSAllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		// Hydrating a series fans out to many upstream fetches.
		WriteTimeout: a.Config.Timeout * time.Duration(a.Config.MaxRetries+2),
	}
}
