package httpserver

import (
	"net/http"
	"time"
)

// New builds the API server. Write and idle timeouts are generous because
// list endpoints over large disclosed projections can be slow under load;
// the header timeout stays tight to shed idle connections early.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
