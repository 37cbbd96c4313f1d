// Package service controls the process lifecycle of the HTTP layer: it
// brings the server up against a given store target and tears it down again.
package service

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"inkwell/app/config"
	"inkwell/app/repositories"
	"inkwell/app/routes"
)

// App owns the store connection and the HTTP server.
type App struct {
	cfg    *config.Config
	repo   repositories.PostRepository
	server *http.Server
	ln     net.Listener
}

// New creates an App from configuration. Nothing is opened until Start.
func New(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Start opens the store at the given connection target, wires the routes
// and begins serving on the configured address. It returns once the
// listener is bound; serving continues in the background.
func (a *App) Start(target string) error {
	repo, err := repositories.Open(target)
	if err != nil {
		return err
	}
	a.repo = repo

	router := routes.SetupRoutes(repo, a.cfg)
	a.server = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", a.cfg.Addr)
	if err != nil {
		_ = repo.Close()
		return err
	}
	a.ln = ln

	go func() {
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	}()
	log.Printf("inkwell listening on %s", ln.Addr())
	return nil
}

// Addr reports the bound listen address. Valid only after Start.
func (a *App) Addr() string {
	if a.ln == nil {
		return ""
	}
	return a.ln.Addr().String()
}

// Stop shuts the HTTP server down gracefully and closes the store.
func (a *App) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var firstErr error
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if a.repo != nil {
		if err := a.repo.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
